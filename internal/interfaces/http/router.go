package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Companies      CompanyService
	Sectors        SectorService
	Persons        PersonService
	Importer       RosterImporter
	Exporter       RosterExporter
	Statistics     StatisticsService
	Registers      RegisterService
	ImportMaxBytes int64
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API. Todas exigen Bearer Token con un rol conocido;
// la pertenencia a la empresa la decide cada caso de uso.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	api := app.Group("/api",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleViewer),
	)

	companyHandler := NewCompanyHandler(deps.Companies, log)
	personHandler := NewPersonHandler(deps.Persons, log)
	rosterHandler := NewRosterHandler(deps.Importer, deps.Exporter, deps.ImportMaxBytes, log)
	analyticsHandler := NewAnalyticsHandler(deps.Statistics, deps.Registers, log)

	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Get("/:id/logo", companyHandler.Logo)
	companies.Get("/:id/persons", personHandler.ListByCompany)
	companies.Post("/:id/persons", personHandler.Create)
	companies.Get("/:id/statistics", analyticsHandler.CompanyStatistics)
	companies.Get("/:id/registers", analyticsHandler.CompanyRegisters)
	companies.Get("/:id/export", rosterHandler.Export)
	companies.Post("/:id/import", rosterHandler.Import)

	sectors := api.Group("/sectors")
	sectorHandler := NewSectorHandler(deps.Sectors, log)
	sectors.Get("/", sectorHandler.List)
	sectors.Get("/:id", sectorHandler.GetByID)
	sectors.Get("/:id/statistics", analyticsHandler.SectorStatistics)
	sectors.Get("/:id/registers", analyticsHandler.SectorRegisters)

	persons := api.Group("/persons")
	persons.Get("/:id", personHandler.GetByID)
	persons.Patch("/:id", personHandler.Patch)
	persons.Delete("/:id", personHandler.Delete)
}
