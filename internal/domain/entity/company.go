package entity

import "time"

// Company representa una empresa/tenant dueña de una nómina de personas.
type Company struct {
	ID        string
	Name      string
	Logo      []byte // se excluye de las proyecciones de listado
	CreatedAt time.Time
	UpdatedAt time.Time
}
