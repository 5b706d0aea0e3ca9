package http

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/roster"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
)

// Contratos que los handlers esperan de la capa de aplicación. Los implementan
// los casos de uso de usecase, roster y analytics.

type CompanyService interface {
	GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error)
	List(ctx context.Context, limit, offset int) ([]dto.CompanyResponse, error)
	Logo(ctx context.Context, id string) ([]byte, error)
}

type SectorService interface {
	GetByID(ctx context.Context, id string) (*dto.SectorResponse, error)
	List(ctx context.Context, limit, offset int) ([]dto.SectorResponse, error)
}

type PersonService interface {
	List(ctx context.Context, companyID string, f query.Filter, page dto.PageRequest) (*dto.PersonListResult, error)
	GetByID(ctx context.Context, id string) (*dto.PersonResponse, error)
	Create(ctx context.Context, principal access.Principal, companyID string, in dto.CreatePersonRequest) (*dto.PersonResponse, error)
	Patch(ctx context.Context, principal access.Principal, id string, ops []dto.PatchOperation) (*dto.PersonResponse, error)
	Delete(ctx context.Context, principal access.Principal, id string) error
}

type RosterImporter interface {
	ImportRoster(ctx context.Context, principal access.Principal, companyID string, open roster.Opener) (*dto.ImportOutcome, error)
}

type RosterExporter interface {
	ExportRoster(ctx context.Context, principal access.Principal, companyID string) ([]byte, error)
	ExportRosterPDF(ctx context.Context, principal access.Principal, companyID string) ([]byte, error)
}

type StatisticsService interface {
	CompanyStatistics(ctx context.Context, companyID string) (*dto.StatisticsResponse, error)
	SectorStatistics(ctx context.Context, sectorID string) (*dto.StatisticsResponse, error)
}

type RegisterService interface {
	CompanyRegisters(ctx context.Context, companyID string, f query.Filter) ([]dto.RegisterResponse, error)
	SectorRegisters(ctx context.Context, sectorID string, f query.Filter) ([]dto.RegisterResponse, error)
}
