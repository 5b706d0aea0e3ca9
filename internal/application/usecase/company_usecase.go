package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// CompanyUseCase consultas de empresas. El alta y la edición viven en otro servicio.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetByID obtiene una empresa por ID. domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, id)
	}
	return dto.ToCompanyResponse(company), nil
}

// List lista empresas por nombre con limit/offset.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.ToCompanyResponse(c))
	}
	return items, nil
}

// Logo devuelve la imagen de la empresa. domain.ErrNotFound si la empresa no
// existe o no tiene logo cargado.
func (uc *CompanyUseCase) Logo(ctx context.Context, id string) ([]byte, error) {
	logo, err := uc.repo.GetLogo(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(logo) == 0 {
		return nil, fmt.Errorf("%w: logo de empresa %s", domain.ErrNotFound, id)
	}
	return logo, nil
}
