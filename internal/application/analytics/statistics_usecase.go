// Package analytics contiene los casos de uso de lectura agregada: contadores
// por empresa o sector y listados de registros desnormalizados.
package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// Nombres de métricas. Las métricas por categoría se arman con prefijo.
const (
	MetricPersons             = "persons"
	MetricActive              = "active"
	MetricInactive            = "inactive"
	MetricRegisters           = "registers"
	MetricRegistersIncomplete = "registers_incomplete"
	MetricRegistersResolved   = "registers_resolved"
	PrefixType                = "type:"
	PrefixPersonType          = "personType:"
)

// StatisticsUseCase calcula contadores de solo lectura.
//
// Fuente de datos: StatisticsRepository. La verificación de existencia y las
// agregaciones corren en paralelo; si la entidad no existe se descarta todo.
type StatisticsUseCase struct {
	companies repository.CompanyRepository
	sectors   repository.SectorRepository
	stats     repository.StatisticsRepository
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(companies repository.CompanyRepository, sectors repository.SectorRepository, stats repository.StatisticsRepository) *StatisticsUseCase {
	return &StatisticsUseCase{companies: companies, sectors: sectors, stats: stats}
}

// CompanyStatistics contadores de la nómina y de los registros de sus personas.
func (uc *StatisticsUseCase) CompanyStatistics(ctx context.Context, companyID string) (*dto.StatisticsResponse, error) {
	var (
		exists    bool
		persons   *repository.PersonStats
		registers *repository.RegisterStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		exists, err = uc.companies.Exists(gctx, companyID)
		return err
	})
	g.Go(func() (err error) {
		persons, err = uc.stats.PersonStats(gctx, companyID)
		return err
	})
	g.Go(func() (err error) {
		registers, err = uc.stats.RegisterStats(gctx, repository.RegisterScope{CompanyID: companyID})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("statistics: empresa %s: %w", companyID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}

	m := map[string]int64{
		MetricPersons:             persons.Total,
		MetricActive:              persons.Active,
		MetricInactive:            persons.Total - persons.Active,
		MetricRegisters:           registers.Total,
		MetricRegistersIncomplete: registers.Incomplete,
	}
	addPrefixed(m, PrefixType, persons.ByType)

	pct := persons.ActivePct.Round(2)
	return &dto.StatisticsResponse{EntityID: companyID, Metrics: m, ActivePct: &pct}, nil
}

// SectorStatistics contadores de los registros de un sector.
func (uc *StatisticsUseCase) SectorStatistics(ctx context.Context, sectorID string) (*dto.StatisticsResponse, error) {
	var (
		exists    bool
		registers *repository.RegisterStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		exists, err = uc.sectors.Exists(gctx, sectorID)
		return err
	})
	g.Go(func() (err error) {
		registers, err = uc.stats.RegisterStats(gctx, repository.RegisterScope{SectorID: sectorID})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("statistics: sector %s: %w", sectorID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: sector %s", domain.ErrNotFound, sectorID)
	}

	m := map[string]int64{
		MetricRegisters:           registers.Total,
		MetricRegistersIncomplete: registers.Incomplete,
		MetricRegistersResolved:   registers.Total - registers.Incomplete,
		MetricPersons:             registers.DistinctPersons,
	}
	addPrefixed(m, PrefixType, registers.ByType)
	addPrefixed(m, PrefixPersonType, registers.ByPersonType)
	return &dto.StatisticsResponse{EntityID: sectorID, Metrics: m}, nil
}

func addPrefixed(dst map[string]int64, prefix string, src map[string]int64) {
	for k, v := range src {
		dst[prefix+k] = v
	}
}
