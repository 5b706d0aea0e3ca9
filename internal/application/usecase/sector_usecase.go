package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// SectorUseCase consultas de sectores.
type SectorUseCase struct {
	repo repository.SectorRepository
}

func NewSectorUseCase(repo repository.SectorRepository) *SectorUseCase {
	return &SectorUseCase{repo: repo}
}

func (uc *SectorUseCase) GetByID(ctx context.Context, id string) (*dto.SectorResponse, error) {
	sector, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sector == nil {
		return nil, fmt.Errorf("%w: sector %s", domain.ErrNotFound, id)
	}
	return dto.ToSectorResponse(sector), nil
}

func (uc *SectorUseCase) List(ctx context.Context, limit, offset int) ([]dto.SectorResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SectorResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *dto.ToSectorResponse(s))
	}
	return items, nil
}
