package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
)

// RegisterScope acota los registros a un sector o a las personas de una empresa.
// Exactamente uno de los dos campos debe venir informado.
type RegisterScope struct {
	SectorID  string
	CompanyID string
}

// RegisterRepository consultas de solo lectura sobre registros.
type RegisterRepository interface {
	// ListDetailed devuelve los registros con persona, sector y par resuelto embebidos,
	// ordenados por id descendente. limit <= 0 = sin tope.
	ListDetailed(ctx context.Context, scope RegisterScope, f query.Filter, limit int) ([]*entity.RegisterDetail, error)
}
