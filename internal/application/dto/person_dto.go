package dto

import (
	"encoding/json"
	"time"
)

// CreatePersonRequest entrada para crear una persona en una empresa.
type CreatePersonRequest struct {
	RUT    string `json:"rut"`
	Name   string `json:"name"`
	Card   int64  `json:"card"`
	Active *bool  `json:"active"` // nil = true
	Type   string `json:"type"`
}

// PatchOperation operación JSON Patch sobre una persona.
// Solo se aceptan op add|remove|replace|test sobre /name, /rut, /card, /active, /type.
type PatchOperation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// PersonResponse salida de una persona.
type PersonResponse struct {
	ID        string    `json:"id"`
	RUT       string    `json:"rut"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Card      int64     `json:"card"`
	Active    bool      `json:"active"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PersonListResult resultado de un listado de personas. Page es nil si no se paginó.
type PersonListResult struct {
	Items []PersonResponse
	Page  *PageMeta
}
