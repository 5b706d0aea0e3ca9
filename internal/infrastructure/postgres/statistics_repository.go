package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo agregaciones read-only. Cada llamada abre su propia
// transacción de solo lectura para que los contadores sean coherentes entre sí.
// Un id con formato inválido (22P02) devuelve contadores en cero; la existencia
// la decide quien llama.
type StatisticsRepo struct {
	pool txStarter
}

func NewStatisticsRepository(pool txStarter) *StatisticsRepo {
	return &StatisticsRepo{pool: pool}
}

// PersonStats totales, activos, porcentaje activo y conteo por tipo.
// El porcentaje se calcula en SQL como NUMERIC y se escanea con pgx-shopspring-decimal.
func (r *StatisticsRepo) PersonStats(ctx context.Context, companyID string) (*repository.PersonStats, error) {
	out := &repository.PersonStats{ByType: map[string]int64{}}
	err := r.readOnly(ctx, func(tx pgx.Tx) error {
		totals := `
			SELECT count(*),
			       count(*) FILTER (WHERE active),
			       COALESCE(round(100.0 * count(*) FILTER (WHERE active) / NULLIF(count(*), 0), 2), 0)::numeric
			FROM persons WHERE company_id = $1`
		var pct decimal.Decimal
		if err := tx.QueryRow(ctx, totals, companyID).Scan(&out.Total, &out.Active, &pct); err != nil {
			return fmt.Errorf("person totals: %w", err)
		}
		out.ActivePct = pct

		byType := `SELECT type, count(*) FROM persons WHERE company_id = $1 GROUP BY type`
		return collectCounts(ctx, tx, byType, out.ByType, companyID)
	})
	if err != nil {
		return nil, fmt.Errorf("person stats: %w", err)
	}
	return out, nil
}

// RegisterStats contadores de registros del alcance (sector o empresa).
func (r *StatisticsRepo) RegisterStats(ctx context.Context, scope repository.RegisterScope) (*repository.RegisterStats, error) {
	from := ` FROM registers r`
	w := &where{}
	switch {
	case scope.SectorID != "":
		w.add("r.sector_id = ?", scope.SectorID)
	case scope.CompanyID != "":
		from += ` JOIN persons p ON p.id = r.person_id`
		w.add("p.company_id = ?", scope.CompanyID)
	default:
		return nil, fmt.Errorf("register stats: alcance vacío")
	}
	cond := w.String()

	out := &repository.RegisterStats{ByType: map[string]int64{}, ByPersonType: map[string]int64{}}
	err := r.readOnly(ctx, func(tx pgx.Tx) error {
		totals := `SELECT count(*), count(*) FILTER (WHERE NOT r.is_resolved), count(DISTINCT r.person_id)` + from + cond
		if err := tx.QueryRow(ctx, totals, w.args...).Scan(&out.Total, &out.Incomplete, &out.DistinctPersons); err != nil {
			return fmt.Errorf("register totals: %w", err)
		}
		if err := collectCounts(ctx, tx, `SELECT r.type, count(*)`+from+cond+` GROUP BY r.type`, out.ByType, w.args...); err != nil {
			return err
		}
		return collectCounts(ctx, tx, `SELECT r.person_type, count(*)`+from+cond+` GROUP BY r.person_type`, out.ByPersonType, w.args...)
	})
	if err != nil {
		return nil, fmt.Errorf("register stats: %w", err)
	}
	return out, nil
}

func (r *StatisticsRepo) readOnly(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return fmt.Errorf("begin read-only: %w", err)
	}
	// solo lectura: no hay nada que confirmar
	defer func() { _ = tx.Rollback(ctx) }()
	if err := fn(tx); err != nil && !isInvalidText(err) {
		return err
	}
	// un id que no es uuid no tiene filas: contadores en cero
	return nil
}

func collectCounts(ctx context.Context, q Querier, sql string, dst map[string]int64, args ...any) error {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("group counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			key string
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("scan group count: %w", err)
		}
		dst[key] = n
	}
	return rows.Err()
}
