package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// AnalyticsHandler estadísticas y listados de registros de empresas y sectores.
type AnalyticsHandler struct {
	stats     StatisticsService
	registers RegisterService
	log       *logger.Logger
}

func NewAnalyticsHandler(stats StatisticsService, registers RegisterService, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{stats: stats, registers: registers, log: log}
}

// CompanyStatistics godoc
// @Summary      Estadísticas de una empresa
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.StatisticsResponse
// @Failure      404
// @Router       /api/companies/{id}/statistics [get]
func (h *AnalyticsHandler) CompanyStatistics(c *fiber.Ctx) error {
	out, err := h.stats.CompanyStatistics(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SectorStatistics godoc
// @Summary      Estadísticas de un sector
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del sector"
// @Success      200  {object}  dto.StatisticsResponse
// @Failure      404
// @Router       /api/sectors/{id}/statistics [get]
func (h *AnalyticsHandler) SectorStatistics(c *fiber.Ctx) error {
	out, err := h.stats.SectorStatistics(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CompanyRegisters godoc
// @Summary      Registros de una empresa
// @Description  Más recientes primero. from y to son epoch en milisegundos, inclusivos.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        id          path   string  true   "ID de la empresa"
// @Param        type        query  string  false  "Tipo de registro"
// @Param        personType  query  string  false  "Tipo de persona"
// @Param        from        query  int     false  "Desde (epoch ms)"
// @Param        to          query  int     false  "Hasta (epoch ms)"
// @Param        incomplete  query  bool    false  "Solo sin resolver"
// @Param        top         query  int     false  "Máximo de ítems"
// @Success      200  {array}   dto.RegisterResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/companies/{id}/registers [get]
func (h *AnalyticsHandler) CompanyRegisters(c *fiber.Ctx) error {
	f, err := query.ParseRegisterFilter(c.Queries())
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.registers.CompanyRegisters(c.UserContext(), c.Params("id"), f)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SectorRegisters godoc
// @Summary      Registros de un sector
// @Description  Cada registro trae embebidos la persona, el sector y el registro que lo resolvió.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        id          path   string  true   "ID del sector"
// @Param        type        query  string  false  "Tipo de registro"
// @Param        personType  query  string  false  "Tipo de persona"
// @Param        from        query  int     false  "Desde (epoch ms)"
// @Param        to          query  int     false  "Hasta (epoch ms)"
// @Param        incomplete  query  bool    false  "Solo sin resolver"
// @Param        top         query  int     false  "Máximo de ítems"
// @Success      200  {array}   dto.RegisterResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/sectors/{id}/registers [get]
func (h *AnalyticsHandler) SectorRegisters(c *fiber.Ctx) error {
	f, err := query.ParseRegisterFilter(c.Queries())
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.registers.SectorRegisters(c.UserContext(), c.Params("id"), f)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
