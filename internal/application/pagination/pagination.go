// Package pagination convierte una consulta sin límite en una página acotada
// con metadatos de total. El conteo y la lectura corren en paralelo sobre dos
// consultas independientes construidas por la misma fábrica.
package pagination

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Source es una consulta ejecutable: cuenta el total y lee una ventana.
type Source[T any] interface {
	Count(ctx context.Context) (int, error)
	Fetch(ctx context.Context, limit, offset int) ([]T, error)
}

// Factory construye una Source nueva y equivalente en cada llamada.
type Factory[T any] func() Source[T]

// Page resultado paginado.
type Page[T any] struct {
	Items    []T
	Total    int
	PageSize int
	Pages    int
	Current  int
}

// Normalize ajusta página (mínimo 1) y tamaño (default si <= 0, tope MaxPageSize).
// La página se acota para que el offset (page-1)*pageSize no desborde int.
func Normalize(page, pageSize int) (int, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}
	return page, pageSize
}

// TotalPages = ceil(count / pageSize), mínimo 1.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate ejecuta conteo y lectura de forma concurrente y combina el resultado.
// Si cualquiera de las dos falla se cancela la otra y se devuelve el primer error.
func Paginate[T any](ctx context.Context, factory Factory[T], page, pageSize int) (*Page[T], error) {
	page, pageSize = Normalize(page, pageSize)

	var (
		total int
		items []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := factory().Count(gctx)
		if err != nil {
			return fmt.Errorf("pagination: count: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		rows, err := factory().Fetch(gctx, pageSize, (page-1)*pageSize)
		if err != nil {
			return fmt.Errorf("pagination: fetch: %w", err)
		}
		items = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:    items,
		Total:    total,
		PageSize: pageSize,
		Pages:    TotalPages(total, pageSize),
		Current:  page,
	}, nil
}
