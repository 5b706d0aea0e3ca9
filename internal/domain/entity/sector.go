package entity

// Sector es un área física u organizacional donde se generan registros.
type Sector struct {
	ID   string
	Name string
}
