package dto

import "time"

// CompanyResponse salida de una empresa (sin logo).
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SectorResponse salida de un sector.
type SectorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
