package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

const personColumns = `p.id, p.rut, p.name, p.company_id, p.card, p.active, p.type, p.created_at, p.updated_at`

// personCopyColumns orden de columnas para COPY.
var personCopyColumns = []string{"id", "rut", "name", "company_id", "card", "active", "type", "created_at", "updated_at"}

// PersonRepo implementación de PersonRepository (usable con pool o tx).
type PersonRepo struct {
	q Querier
}

// NewPersonRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

func scanPerson(row pgx.Row) (*entity.Person, error) {
	var p entity.Person
	err := row.Scan(&p.ID, &p.RUT, &p.Name, &p.CompanyID, &p.Card, &p.Active, &p.Type, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste una persona.
func (r *PersonRepo) Create(ctx context.Context, p *entity.Person) error {
	query := `
		INSERT INTO persons (id, rut, name, company_id, card, active, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, p.ID, p.RUT, p.Name, p.CompanyID, p.Card, p.Active, p.Type, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

// GetByID obtiene una persona; nil, nil si no existe.
func (r *PersonRepo) GetByID(ctx context.Context, id string) (*entity.Person, error) {
	p, err := scanPerson(r.q.QueryRow(ctx, `SELECT `+personColumns+` FROM persons p WHERE p.id = $1`, id))
	if err != nil {
		if isNoRows(err) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables. La empresa no cambia.
func (r *PersonRepo) Update(ctx context.Context, p *entity.Person) error {
	query := `
		UPDATE persons SET rut = $2, name = $3, card = $4, active = $5, type = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.RUT, p.Name, p.Card, p.Active, p.Type, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una persona por ID.
func (r *PersonRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count total de personas que cumplen el filtro.
func (r *PersonRepo) Count(ctx context.Context, companyID string, f query.Filter) (int, error) {
	w := personWhere(companyID, f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM persons p`+w.String(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count persons: %w", err)
	}
	return n, nil
}

// List personas del filtro por id ascendente. limit <= 0 trae todas.
func (r *PersonRepo) List(ctx context.Context, companyID string, f query.Filter, limit, offset int) ([]*entity.Person, error) {
	w := personWhere(companyID, f)
	sql := `SELECT ` + personColumns + ` FROM persons p` + w.String() + ` ORDER BY p.id ASC`
	if limit > 0 {
		sql += ` LIMIT ` + w.next(limit)
	}
	if offset > 0 {
		sql += ` OFFSET ` + w.next(offset)
	}
	rows, err := r.q.Query(ctx, sql, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// DeleteByCompany borra la nómina completa de la empresa.
func (r *PersonRepo) DeleteByCompany(ctx context.Context, companyID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM persons WHERE company_id = $1`, companyID)
	if err != nil {
		return 0, fmt.Errorf("delete roster: %w", err)
	}
	return tag.RowsAffected(), nil
}

// BulkInsert inserta con COPY. Pensado para correr dentro de la tx del reemplazo.
func (r *PersonRepo) BulkInsert(ctx context.Context, persons []*entity.Person) (int64, error) {
	if len(persons) == 0 {
		return 0, nil
	}
	src := pgx.CopyFromSlice(len(persons), func(i int) ([]any, error) {
		p := persons[i]
		return []any{p.ID, p.RUT, p.Name, p.CompanyID, p.Card, p.Active, p.Type, p.CreatedAt, p.UpdatedAt}, nil
	})
	n, err := r.q.CopyFrom(ctx, pgx.Identifier{"persons"}, personCopyColumns, src)
	if err != nil {
		return n, fmt.Errorf("copy persons: %w", err)
	}
	return n, nil
}
