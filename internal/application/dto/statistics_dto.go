package dto

import "github.com/shopspring/decimal"

// StatisticsResponse contadores por nombre de métrica para una empresa o sector.
// Las métricas por categoría usan el prefijo "type:" o "personType:".
type StatisticsResponse struct {
	EntityID  string           `json:"entity_id"`
	Metrics   map[string]int64 `json:"metrics"`
	ActivePct *decimal.Decimal `json:"active_pct,omitempty"` // solo empresas
}
