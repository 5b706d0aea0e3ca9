package http

import (
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

const (
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEPDF  = "application/pdf"

	HeaderImportRows   = "X-Import-Rows"
	HeaderImportErrors = "X-Import-Errors"

	exportFilename = "persons-export"
)

// RosterHandler importación y exportación de la nómina de una empresa.
type RosterHandler struct {
	importer RosterImporter
	exporter RosterExporter
	maxBytes int64
	log      *logger.Logger
}

// NewRosterHandler maxBytes <= 0 no limita el tamaño del archivo (queda el BodyLimit de Fiber).
func NewRosterHandler(importer RosterImporter, exporter RosterExporter, maxBytes int64, log *logger.Logger) *RosterHandler {
	return &RosterHandler{importer: importer, exporter: exporter, maxBytes: maxBytes, log: log}
}

// Import godoc
// @Summary      Reemplazar la nómina desde una planilla xlsx
// @Description  Valida todas las filas. Sin errores reemplaza la nómina en una transacción y devuelve la copia importada (201).
// @Description  Con errores no modifica nada y devuelve la planilla anotada con una columna error (422).
// @Tags         roster
// @Accept       multipart/form-data
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id    path      string  true  "ID de la empresa"
// @Param        file  formData  file    true  "Planilla xlsx con columnas rut, name, card, active, type"
// @Success      201   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404
// @Failure      422   {file}    binary
// @Router       /api/companies/{id}/import [post]
func (h *RosterHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		// Sin campo file o cuerpo que no es multipart.
		return badRequest(c, "MISSING_FILE", "se espera el campo de archivo 'file'")
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return badRequest(c, "TOO_LARGE", "el archivo excede "+strconv.FormatInt(h.maxBytes, 10)+" bytes")
	}

	open := func() (io.ReadCloser, error) { return fh.Open() }
	out, err := h.importer.ImportRoster(c.UserContext(), GetPrincipal(c), c.Params("id"), open)
	if err != nil {
		return writeError(c, h.log, err)
	}

	c.Set(HeaderImportRows, strconv.Itoa(out.Rows))
	c.Set(HeaderImportErrors, strconv.Itoa(len(out.Errors)))
	status, name := fiber.StatusCreated, "persons-import.xlsx"
	if out.HadErrors {
		status, name = fiber.StatusUnprocessableEntity, "persons-import-errors.xlsx"
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, MIMEXLSX)
	return c.Status(status).Send(out.Report)
}

// Export godoc
// @Summary      Exportar la nómina
// @Description  xlsx por defecto (reimportable tal cual); format=pdf entrega un listado imprimible.
// @Tags         roster
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id      path   string  true   "ID de la empresa"
// @Param        format  query  string  false  "xlsx | pdf"  default(xlsx)
// @Success      200     {file}    binary
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/companies/{id}/export [get]
func (h *RosterHandler) Export(c *fiber.Ctx) error {
	var (
		body []byte
		err  error
		mime string
		ext  string
	)
	switch format := strings.ToLower(c.Query("format", "xlsx")); format {
	case "xlsx":
		body, err = h.exporter.ExportRoster(c.UserContext(), GetPrincipal(c), c.Params("id"))
		mime, ext = MIMEXLSX, ".xlsx"
	case "pdf":
		body, err = h.exporter.ExportRosterPDF(c.UserContext(), GetPrincipal(c), c.Params("id"))
		mime, ext = MIMEPDF, ".pdf"
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser xlsx o pdf"})
	}
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Attachment(exportFilename + ext)
	c.Set(fiber.HeaderContentType, mime)
	return c.Send(body)
}
