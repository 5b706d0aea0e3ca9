package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// SectorHandler consultas de sectores.
type SectorHandler struct {
	uc  SectorService
	log *logger.Logger
}

func NewSectorHandler(uc SectorService, log *logger.Logger) *SectorHandler {
	return &SectorHandler{uc: uc, log: log}
}

// GetByID godoc
// @Summary      Obtener sector por ID
// @Tags         sectors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del sector"
// @Success      200  {object}  dto.SectorResponse
// @Failure      404
// @Router       /api/sectors/{id} [get]
func (h *SectorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar sectores
// @Tags         sectors
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}   dto.SectorResponse
// @Router       /api/sectors [get]
func (h *SectorHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit < 0 || offset < 0 {
		return badRequest(c, "INVALID_INPUT", "limit y offset no pueden ser negativos")
	}
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
