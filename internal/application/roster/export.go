package roster

import (
	"context"
	"fmt"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// ExportUseCase serializa la nómina completa de una empresa (sin filtros).
type ExportUseCase struct {
	companies repository.CompanyRepository
	persons   repository.PersonRepository
	codec     SheetCodec
	pdf       PDFRenderer
}

func NewExportUseCase(companies repository.CompanyRepository, persons repository.PersonRepository, codec SheetCodec, pdf PDFRenderer) *ExportUseCase {
	return &ExportUseCase{companies: companies, persons: persons, codec: codec, pdf: pdf}
}

// ExportRoster devuelve la planilla de la nómina. Reimportarla produce la misma nómina.
func (uc *ExportUseCase) ExportRoster(ctx context.Context, principal access.Principal, companyID string) ([]byte, error) {
	_, persons, err := uc.load(ctx, principal, companyID)
	if err != nil {
		return nil, err
	}
	out, err := uc.codec.Encode(RosterSheet(persons))
	if err != nil {
		return nil, fmt.Errorf("roster: exportar planilla: %w", err)
	}
	return out, nil
}

// ExportRosterPDF devuelve el listado imprimible de la nómina.
func (uc *ExportUseCase) ExportRosterPDF(ctx context.Context, principal access.Principal, companyID string) ([]byte, error) {
	company, persons, err := uc.load(ctx, principal, companyID)
	if err != nil {
		return nil, err
	}
	if uc.pdf == nil {
		return nil, fmt.Errorf("roster: generador PDF no configurado")
	}
	out, err := uc.pdf.RenderRoster(ctx, company, persons)
	if err != nil {
		return nil, fmt.Errorf("roster: exportar PDF: %w", err)
	}
	return out, nil
}

func (uc *ExportUseCase) load(ctx context.Context, principal access.Principal, companyID string) (*entity.Company, []*entity.Person, error) {
	if err := access.Require(principal, companyID); err != nil {
		return nil, nil, err
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, nil, fmt.Errorf("roster: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}
	persons, err := uc.persons.List(ctx, companyID, query.Filter{}, 0, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("roster: listar nómina: %w", err)
	}
	return company, persons, nil
}
