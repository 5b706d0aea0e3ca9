package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// PersonHandler listado filtrado y CRUD puntual de personas.
type PersonHandler struct {
	uc  PersonService
	log *logger.Logger
}

func NewPersonHandler(uc PersonService, log *logger.Logger) *PersonHandler {
	return &PersonHandler{uc: uc, log: log}
}

// ListByCompany godoc
// @Summary      Personas de una empresa
// @Description  Filtros combinables por AND. Con paging=true (o page) responde una página y las cabeceras X-Pagination-*.
// @Tags         persons
// @Produce      json
// @Security     BearerAuth
// @Param        id          path   string  true   "ID de la empresa"
// @Param        name        query  string  false  "Prefijo del nombre"
// @Param        rut         query  string  false  "Prefijo del RUT"
// @Param        personType  query  string  false  "Tipo de persona"
// @Param        status      query  bool    false  "Activo"
// @Param        top         query  int     false  "Máximo de ítems"
// @Param        paging      query  bool    false  "Activar paginación"
// @Param        page        query  int     false  "Página (1-based)"
// @Param        pageSize    query  int     false  "Tamaño de página"
// @Success      200  {array}   dto.PersonResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/companies/{id}/persons [get]
func (h *PersonHandler) ListByCompany(c *fiber.Ctx) error {
	f, err := query.ParsePersonFilter(c.Queries())
	if err != nil {
		return writeError(c, h.log, err)
	}
	page, err := parsePageRequest(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.List(c.UserContext(), c.Params("id"), f, page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	setPageHeaders(c, out.Page)
	return c.JSON(out.Items)
}

// Create godoc
// @Summary      Crear persona en una empresa
// @Tags         persons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID de la empresa"
// @Param        body  body  dto.CreatePersonRequest  true  "Datos de la persona"
// @Success      201   {object}  dto.PersonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/persons [post]
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener persona
// @Tags         persons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la persona"
// @Success      200  {object}  dto.PersonResponse
// @Failure      404
// @Router       /api/persons/{id} [get]
func (h *PersonHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Modificar persona (JSON Patch)
// @Description  Operaciones add, remove, replace y test sobre /name, /rut, /card, /active y /type. Se aplican todas o ninguna.
// @Tags         persons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "ID de la persona"
// @Param        body  body  []dto.PatchOperation  true  "Operaciones"
// @Success      200   {object}  dto.PersonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/persons/{id} [patch]
func (h *PersonHandler) Patch(c *fiber.Ctx) error {
	var ops []dto.PatchOperation
	if err := c.BodyParser(&ops); err != nil {
		return badRequest(c, "INVALID_BODY", "se espera un arreglo de operaciones")
	}
	out, err := h.uc.Patch(c.UserContext(), GetPrincipal(c), c.Params("id"), ops)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar persona
// @Tags         persons
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la persona"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/persons/{id} [delete]
func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
