package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// SectorRepository define el puerto de persistencia para Sector.
type SectorRepository interface {
	// GetByID devuelve nil, nil si el sector no existe.
	GetByID(ctx context.Context, id string) (*entity.Sector, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Sector, error)
}
