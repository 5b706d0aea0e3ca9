package entity

import "time"

// Register es un evento de acceso/asistencia. Solo se agrega, nunca se modifica
// salvo IsResolved, que se activa cuando llega el evento que lo empareja.
type Register struct {
	ID                 string
	Time               time.Time
	Type               string
	PersonType         string
	IsResolved         bool
	PersonID           string
	SectorID           string
	ResolvedRegisterID *string // registro que cierra el par (entrada/salida)
}

// RegisterDetail es un registro con su persona, sector y par resuelto embebidos.
type RegisterDetail struct {
	Register
	Person           *Person
	Sector           *Sector
	ResolvedRegister *Register
}
