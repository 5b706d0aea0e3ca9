// Package access decide si un principal puede operar sobre la nómina de una empresa.
package access

import (
	"slices"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// Principal es el actor autenticado de la petición. Se construye desde el token
// en la capa HTTP y se pasa explícitamente a cada caso de uso que autoriza.
type Principal struct {
	UserID     string
	Role       string
	CompanyIDs []string
}

// IsAdmin informa si el principal tiene rol administrador.
func (p Principal) IsAdmin() bool {
	return p.Role == entity.RoleAdmin
}

// Authorize es verdadero si el principal es admin o es dueño de la empresa.
// Sin efectos laterales ni I/O.
func Authorize(p Principal, companyID string) bool {
	if p.IsAdmin() {
		return true
	}
	if companyID == "" {
		return false
	}
	return slices.Contains(p.CompanyIDs, companyID)
}

// Require devuelve domain.ErrUnauthorized cuando Authorize es falso.
func Require(p Principal, companyID string) error {
	if !Authorize(p, companyID) {
		return domain.ErrUnauthorized
	}
	return nil
}
