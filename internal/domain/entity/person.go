package entity

import "time"

// Person es un integrante de la nómina de una empresa.
// La unicidad de RUT dentro de la empresa es un criterio de calidad de datos,
// no una restricción de la tabla.
type Person struct {
	ID        string
	RUT       string // RUT chileno tal como viene de la planilla
	Name      string
	CompanyID string
	Card      int64 // número de credencial
	Active    bool
	Type      string // categoría: empleado, contratista, visita...
	CreatedAt time.Time
	UpdatedAt time.Time
}
