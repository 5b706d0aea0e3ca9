package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
)

// PersonRepository define el puerto de persistencia para Person.
// Los listados se ordenan por id ascendente; Filter.Top no se aplica aquí,
// el límite lo decide el llamador.
type PersonRepository interface {
	Create(ctx context.Context, person *entity.Person) error
	// GetByID devuelve nil, nil si la persona no existe.
	GetByID(ctx context.Context, id string) (*entity.Person, error)
	Update(ctx context.Context, person *entity.Person) error
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context, companyID string, f query.Filter) (int, error)
	// List con limit <= 0 devuelve todas las filas del filtro.
	List(ctx context.Context, companyID string, f query.Filter, limit, offset int) ([]*entity.Person, error)

	// DeleteByCompany y BulkInsert componen el reemplazo de nómina; deben
	// ejecutarse dentro de la misma transacción.
	DeleteByCompany(ctx context.Context, companyID string) (int64, error)
	BulkInsert(ctx context.Context, persons []*entity.Person) (int64, error)
}
