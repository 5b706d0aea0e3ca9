package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
)

// Cabeceras de paginación. El cuerpo de un listado paginado sigue siendo un arreglo.
const (
	HeaderPaginationCount = "X-Pagination-Count"
	HeaderPaginationLimit = "X-Pagination-Limit"
	HeaderPaginationPages = "X-Pagination-Pages"
	HeaderPaginationPage  = "X-Pagination-Page"
)

// parsePageRequest activa la paginación con paging=true o con cualquier page.
func parsePageRequest(c *fiber.Ctx) (dto.PageRequest, error) {
	var req dto.PageRequest
	if raw := strings.TrimSpace(c.Query("paging")); raw != "" {
		on, ok := query.ParseBool(raw)
		if !ok {
			return req, fmt.Errorf("%w: paging=%q", domain.ErrInvalidInput, raw)
		}
		req.Enabled = on
	}
	page, err := positiveQuery(c, "page")
	if err != nil {
		return req, err
	}
	if page > 0 {
		req.Enabled = true
	}
	size, err := positiveQuery(c, "pageSize")
	if err != nil {
		return req, err
	}
	req.Page, req.PageSize = page, size
	return req, nil
}

// positiveQuery devuelve 0 si el parámetro no viene.
func positiveQuery(c *fiber.Ctx, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidInput, key, raw)
	}
	return n, nil
}

func setPageHeaders(c *fiber.Ctx, meta *dto.PageMeta) {
	if meta == nil {
		return
	}
	c.Set(HeaderPaginationCount, strconv.Itoa(meta.Total))
	c.Set(HeaderPaginationLimit, strconv.Itoa(meta.PageSize))
	c.Set(HeaderPaginationPages, strconv.Itoa(meta.Pages))
	c.Set(HeaderPaginationPage, strconv.Itoa(meta.Page))
}
