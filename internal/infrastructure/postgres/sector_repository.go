package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.SectorRepository = (*SectorRepo)(nil)

// SectorRepo implementación de SectorRepository sobre PostgreSQL.
type SectorRepo struct {
	q Querier
}

func NewSectorRepository(q Querier) *SectorRepo {
	return &SectorRepo{q: q}
}

func (r *SectorRepo) GetByID(ctx context.Context, id string) (*entity.Sector, error) {
	var s entity.Sector
	err := r.q.QueryRow(ctx, `SELECT id, name FROM sectors WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if isNoRows(err) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sector: %w", err)
	}
	return &s, nil
}

func (r *SectorRepo) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sectors WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		if isInvalidText(err) {
			return false, nil
		}
		return false, fmt.Errorf("exists sector: %w", err)
	}
	return ok, nil
}

func (r *SectorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Sector, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM sectors ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sector
	for rows.Next() {
		var s entity.Sector
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan sector: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
