package dto

import "time"

// RegisterSummary registro sin relaciones (se usa para el par resuelto).
type RegisterSummary struct {
	ID         string    `json:"id"`
	Time       time.Time `json:"time"`
	Type       string    `json:"type"`
	PersonType string    `json:"personType"`
	IsResolved bool      `json:"isResolved"`

	// Referencias crudas: se conservan aunque la persona o el sector ya no existan.
	PersonID *string `json:"personId"`
	SectorID *string `json:"sectorId"`
}

// RegisterResponse registro desnormalizado: persona, sector y par embebidos.
type RegisterResponse struct {
	RegisterSummary
	Person           *PersonResponse  `json:"person"`
	Sector           *SectorResponse  `json:"sector"`
	ResolvedRegister *RegisterSummary `json:"resolvedRegister,omitempty"`
}
