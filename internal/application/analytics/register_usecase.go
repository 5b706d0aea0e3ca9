package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// RegisterUseCase listados de registros con persona, sector y par resuelto embebidos.
// El orden es id descendente (más nuevos primero) y los clientes dependen de él.
type RegisterUseCase struct {
	companies repository.CompanyRepository
	sectors   repository.SectorRepository
	registers repository.RegisterRepository
}

func NewRegisterUseCase(companies repository.CompanyRepository, sectors repository.SectorRepository, registers repository.RegisterRepository) *RegisterUseCase {
	return &RegisterUseCase{companies: companies, sectors: sectors, registers: registers}
}

// SectorRegisters registros de un sector.
func (uc *RegisterUseCase) SectorRegisters(ctx context.Context, sectorID string, f query.Filter) ([]dto.RegisterResponse, error) {
	ok, err := uc.sectors.Exists(ctx, sectorID)
	if err != nil {
		return nil, fmt.Errorf("registers: verificar sector: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: sector %s", domain.ErrNotFound, sectorID)
	}
	return uc.list(ctx, repository.RegisterScope{SectorID: sectorID}, f)
}

// CompanyRegisters registros de las personas de una empresa.
func (uc *RegisterUseCase) CompanyRegisters(ctx context.Context, companyID string, f query.Filter) ([]dto.RegisterResponse, error) {
	ok, err := uc.companies.Exists(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("registers: verificar empresa: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}
	return uc.list(ctx, repository.RegisterScope{CompanyID: companyID}, f)
}

func (uc *RegisterUseCase) list(ctx context.Context, scope repository.RegisterScope, f query.Filter) ([]dto.RegisterResponse, error) {
	rows, err := uc.registers.ListDetailed(ctx, scope, f, f.Top)
	if err != nil {
		return nil, fmt.Errorf("registers: listar: %w", err)
	}
	out := make([]dto.RegisterResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToRegisterResponse(r))
	}
	return out, nil
}
