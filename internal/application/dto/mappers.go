package dto

import "github.com/jhoicas/Directorio-api/internal/domain/entity"

// ToCompanyResponse proyección pública de una empresa; el logo nunca se expone aquí.
func ToCompanyResponse(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func ToSectorResponse(s *entity.Sector) *SectorResponse {
	if s == nil {
		return nil
	}
	return &SectorResponse{ID: s.ID, Name: s.Name}
}

func ToPersonResponse(p *entity.Person) *PersonResponse {
	if p == nil {
		return nil
	}
	return &PersonResponse{
		ID:        p.ID,
		RUT:       p.RUT,
		Name:      p.Name,
		Company:   p.CompanyID,
		Card:      p.Card,
		Active:    p.Active,
		Type:      p.Type,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toRegisterSummary(r *entity.Register) *RegisterSummary {
	if r == nil {
		return nil
	}
	return &RegisterSummary{
		ID:         r.ID,
		Time:       r.Time,
		Type:       r.Type,
		PersonType: r.PersonType,
		IsResolved: r.IsResolved,
		PersonID:   optional(r.PersonID),
		SectorID:   optional(r.SectorID),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ToRegisterResponse desnormaliza un registro con sus relaciones embebidas.
func ToRegisterResponse(d *entity.RegisterDetail) RegisterResponse {
	return RegisterResponse{
		RegisterSummary:  *toRegisterSummary(&d.Register),
		Person:           ToPersonResponse(d.Person),
		Sector:           ToSectorResponse(d.Sector),
		ResolvedRegister: toRegisterSummary(d.ResolvedRegister),
	}
}
