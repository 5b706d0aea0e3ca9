package postgres

import (
	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// personWhere compila el filtro de personas. Cada llamada produce una
// sentencia independiente; el Filter no se modifica.
func personWhere(companyID string, f query.Filter) *where {
	w := &where{}
	w.add("p.company_id = ?", companyID)
	if f.NamePrefix != nil {
		w.add("p.name ILIKE ?", prefixPattern(*f.NamePrefix))
	}
	if f.RUTPrefix != nil {
		w.add("p.rut ILIKE ?", prefixPattern(*f.RUTPrefix))
	}
	if f.PersonType != nil {
		w.add("p.type = ?", *f.PersonType)
	}
	if f.Active != nil {
		w.add("p.active = ?", *f.Active)
	}
	return w
}

// registerWhere compila alcance y filtro de registros. El alcance por empresa
// requiere el JOIN con persons (alias p).
func registerWhere(scope repository.RegisterScope, f query.Filter) *where {
	w := &where{}
	if scope.SectorID != "" {
		w.add("r.sector_id = ?", scope.SectorID)
	}
	if scope.CompanyID != "" {
		w.add("p.company_id = ?", scope.CompanyID)
	}
	if f.Type != nil {
		w.add("r.type = ?", *f.Type)
	}
	if f.PersonType != nil {
		w.add("r.person_type = ?", *f.PersonType)
	}
	if f.From != nil {
		w.add("r.time >= ?", *f.From)
	}
	if f.To != nil {
		w.add("r.time <= ?", *f.To)
	}
	if f.Incomplete {
		w.add("r.is_resolved = false")
	}
	return w
}
