package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// PersonStats contadores de la nómina de una empresa.
type PersonStats struct {
	Total     int64
	Active    int64
	ByType    map[string]int64
	ActivePct decimal.Decimal // Active / Total * 100, dos decimales; cero si no hay personas
}

// RegisterStats contadores de registros en un alcance.
type RegisterStats struct {
	Total           int64
	Incomplete      int64
	DistinctPersons int64
	ByType          map[string]int64
	ByPersonType    map[string]int64
}

// StatisticsRepository agregaciones de solo lectura (no modifican datos).
type StatisticsRepository interface {
	PersonStats(ctx context.Context, companyID string) (*PersonStats, error)
	RegisterStats(ctx context.Context, scope RegisterScope) (*RegisterStats, error)
}
