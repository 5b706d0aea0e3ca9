package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// GetByID devuelve nil, nil si la empresa no existe. No carga el logo.
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetLogo devuelve solo el logo; nil si no hay.
	GetLogo(ctx context.Context, id string) ([]byte, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
}
