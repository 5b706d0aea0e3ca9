package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.RegisterRepository = (*RegisterRepo)(nil)

// registerDetailSQL una sola sentencia con LEFT JOIN a persona, sector y par
// resuelto. person_id no tiene FK: al reemplazar una nómina los registros
// históricos quedan y su persona sale nula.
const registerDetailSQL = `
		SELECT r.id, r.time, r.type, r.person_type, r.is_resolved, r.person_id, r.sector_id, r.resolved_register_id,
		       p.id, p.rut, p.name, p.company_id, p.card, p.active, p.type, p.created_at, p.updated_at,
		       s.id, s.name,
		       rr.id, rr.time, rr.type, rr.person_type, rr.is_resolved, rr.person_id, rr.sector_id
		FROM registers r
		LEFT JOIN persons p ON p.id = r.person_id
		LEFT JOIN sectors s ON s.id = r.sector_id
		LEFT JOIN registers rr ON rr.id = r.resolved_register_id`

// RegisterRepo consultas de registros sobre PostgreSQL.
type RegisterRepo struct {
	q Querier
}

func NewRegisterRepository(q Querier) *RegisterRepo {
	return &RegisterRepo{q: q}
}

// ListDetailed registros del alcance, id descendente.
func (r *RegisterRepo) ListDetailed(ctx context.Context, scope repository.RegisterScope, f query.Filter, limit int) ([]*entity.RegisterDetail, error) {
	if (scope.SectorID == "") == (scope.CompanyID == "") {
		return nil, fmt.Errorf("list registers: alcance inválido %+v", scope)
	}
	w := registerWhere(scope, f)
	sql := registerDetailSQL + w.String() + ` ORDER BY r.id DESC`
	if limit > 0 {
		sql += ` LIMIT ` + w.next(limit)
	}

	rows, err := r.q.Query(ctx, sql, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list registers: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.RegisterDetail, 0)
	for rows.Next() {
		var (
			d entity.RegisterDetail

			pID, pRUT, pName, pCompany, pType *string
			pCard                             *int64
			pActive                           *bool
			pCreated, pUpdated                *time.Time

			rPersonID, rSectorID *string

			sID, sName *string

			rrID, rrType, rrPersonType, rrPersonID, rrSectorID *string
			rrTime                                             *time.Time
			rrResolved                                         *bool
		)
		err := rows.Scan(
			&d.ID, &d.Time, &d.Type, &d.PersonType, &d.IsResolved, &rPersonID, &rSectorID, &d.ResolvedRegisterID,
			&pID, &pRUT, &pName, &pCompany, &pCard, &pActive, &pType, &pCreated, &pUpdated,
			&sID, &sName,
			&rrID, &rrTime, &rrType, &rrPersonType, &rrResolved, &rrPersonID, &rrSectorID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan register: %w", err)
		}
		// sector_id queda nulo si se elimina el sector
		d.PersonID, d.SectorID = deref(rPersonID), deref(rSectorID)
		if pID != nil {
			d.Person = &entity.Person{
				ID: *pID, RUT: deref(pRUT), Name: deref(pName), CompanyID: deref(pCompany),
				Card: deref(pCard), Active: deref(pActive), Type: deref(pType),
				CreatedAt: deref(pCreated), UpdatedAt: deref(pUpdated),
			}
		}
		if sID != nil {
			d.Sector = &entity.Sector{ID: *sID, Name: deref(sName)}
		}
		if rrID != nil {
			d.ResolvedRegister = &entity.Register{
				ID: *rrID, Time: deref(rrTime), Type: deref(rrType), PersonType: deref(rrPersonType),
				IsResolved: deref(rrResolved), PersonID: deref(rrPersonID), SectorID: deref(rrSectorID),
			}
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
