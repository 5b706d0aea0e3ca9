package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// CompanyHandler consultas de empresas.
type CompanyHandler struct {
	uc  CompanyService
	log *logger.Logger
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc CompanyService, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}   dto.CompanyResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
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

// Logo godoc
// @Summary      Logo de la empresa
// @Tags         companies
// @Produce      image/png
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {file}  binary
// @Failure      404
// @Router       /api/companies/{id}/logo [get]
func (h *CompanyHandler) Logo(c *fiber.Ctx) error {
	logo, err := h.uc.Logo(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, http.DetectContentType(logo))
	return c.Send(logo)
}
