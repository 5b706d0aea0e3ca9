package http_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/roster"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
	apphttp "github.com/jhoicas/Directorio-api/internal/interfaces/http"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

var errBoom = errors.New("pgx: conexión perdida")

func notFound(id string) error { return fmt.Errorf("%w: %s", domain.ErrNotFound, id) }

type stubCompanies struct {
	items map[string]dto.CompanyResponse
	logos map[string][]byte
	err   error
}

func (s *stubCompanies) GetByID(_ context.Context, id string) (*dto.CompanyResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.items[id]
	if !ok {
		return nil, notFound(id)
	}
	return &c, nil
}

func (s *stubCompanies) List(_ context.Context, limit, offset int) ([]dto.CompanyResponse, error) {
	out := []dto.CompanyResponse{}
	for _, c := range s.items {
		out = append(out, c)
	}
	return out, s.err
}

func (s *stubCompanies) Logo(_ context.Context, id string) ([]byte, error) {
	logo, ok := s.logos[id]
	if !ok {
		return nil, notFound(id)
	}
	return logo, nil
}

type stubSectors struct {
	items map[string]dto.SectorResponse
}

func (s *stubSectors) GetByID(_ context.Context, id string) (*dto.SectorResponse, error) {
	sec, ok := s.items[id]
	if !ok {
		return nil, notFound(id)
	}
	return &sec, nil
}

func (s *stubSectors) List(_ context.Context, limit, offset int) ([]dto.SectorResponse, error) {
	out := []dto.SectorResponse{}
	for _, sec := range s.items {
		out = append(out, sec)
	}
	return out, nil
}

type stubPersons struct {
	companies  map[string]bool
	persons    map[string]dto.PersonResponse
	lastFilter query.Filter
	lastPage   dto.PageRequest
	lastOps    []dto.PatchOperation
	listErr    error
}

func (s *stubPersons) List(_ context.Context, companyID string, f query.Filter, page dto.PageRequest) (*dto.PersonListResult, error) {
	s.lastFilter, s.lastPage = f, page
	if s.listErr != nil {
		return nil, s.listErr
	}
	if !s.companies[companyID] {
		return nil, notFound(companyID)
	}
	items := []dto.PersonResponse{}
	for _, p := range s.persons {
		if p.Company == companyID {
			items = append(items, p)
		}
	}
	out := &dto.PersonListResult{Items: items}
	if page.Enabled {
		out.Page = &dto.PageMeta{Total: len(items), PageSize: 10, Pages: 1, Page: 1}
	}
	return out, nil
}

func (s *stubPersons) GetByID(_ context.Context, id string) (*dto.PersonResponse, error) {
	p, ok := s.persons[id]
	if !ok {
		return nil, notFound(id)
	}
	return &p, nil
}

func (s *stubPersons) Create(_ context.Context, principal access.Principal, companyID string, in dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	if err := access.Require(principal, companyID); err != nil {
		return nil, err
	}
	if in.RUT == "" {
		return nil, fmt.Errorf("%w: rut requerido", domain.ErrInvalidInput)
	}
	return &dto.PersonResponse{ID: "p-new", RUT: in.RUT, Name: in.Name, Company: companyID, Type: in.Type, Active: true}, nil
}

func (s *stubPersons) Patch(_ context.Context, principal access.Principal, id string, ops []dto.PatchOperation) (*dto.PersonResponse, error) {
	p, ok := s.persons[id]
	if !ok {
		return nil, notFound(id)
	}
	if err := access.Require(principal, p.Company); err != nil {
		return nil, err
	}
	s.lastOps = ops
	return &p, nil
}

func (s *stubPersons) Delete(_ context.Context, principal access.Principal, id string) error {
	p, ok := s.persons[id]
	if !ok {
		return notFound(id)
	}
	if err := access.Require(principal, p.Company); err != nil {
		return err
	}
	delete(s.persons, id)
	return nil
}

type stubImporter struct {
	outcome  *dto.ImportOutcome
	err      error
	received []byte
	opened   bool
}

func (s *stubImporter) ImportRoster(_ context.Context, principal access.Principal, companyID string, open roster.Opener) (*dto.ImportOutcome, error) {
	if err := access.Require(principal, companyID); err != nil {
		return nil, err
	}
	f, err := open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s.opened = true
	if s.received, err = io.ReadAll(f); err != nil {
		return nil, err
	}
	return s.outcome, s.err
}

type stubExporter struct {
	xlsx, pdf []byte
}

func (s *stubExporter) ExportRoster(_ context.Context, principal access.Principal, companyID string) ([]byte, error) {
	if err := access.Require(principal, companyID); err != nil {
		return nil, err
	}
	return s.xlsx, nil
}

func (s *stubExporter) ExportRosterPDF(_ context.Context, principal access.Principal, companyID string) ([]byte, error) {
	if err := access.Require(principal, companyID); err != nil {
		return nil, err
	}
	return s.pdf, nil
}

type stubStatistics struct {
	company map[string]*dto.StatisticsResponse
	sector  map[string]*dto.StatisticsResponse
	err     error
}

func (s *stubStatistics) CompanyStatistics(_ context.Context, id string) (*dto.StatisticsResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	if out, ok := s.company[id]; ok {
		return out, nil
	}
	return nil, notFound(id)
}

func (s *stubStatistics) SectorStatistics(_ context.Context, id string) (*dto.StatisticsResponse, error) {
	if out, ok := s.sector[id]; ok {
		return out, nil
	}
	return nil, notFound(id)
}

type stubRegisters struct {
	items      []dto.RegisterResponse
	lastScope  string
	lastFilter query.Filter
}

func (s *stubRegisters) CompanyRegisters(_ context.Context, id string, f query.Filter) ([]dto.RegisterResponse, error) {
	s.lastScope, s.lastFilter = "company:"+id, f
	return s.items, nil
}

func (s *stubRegisters) SectorRegisters(_ context.Context, id string, f query.Filter) ([]dto.RegisterResponse, error) {
	s.lastScope, s.lastFilter = "sector:"+id, f
	return s.items, nil
}

// fixture agrupa los stubs detrás del router real.
type fixture struct {
	app        *fiber.App
	companies  *stubCompanies
	sectors    *stubSectors
	persons    *stubPersons
	importer   *stubImporter
	exporter   *stubExporter
	statistics *stubStatistics
	registers  *stubRegisters
}

func newFixture(t *testing.T, maxBytes int64) *fixture {
	t.Helper()
	f := &fixture{
		companies: &stubCompanies{
			items: map[string]dto.CompanyResponse{testCompanyID: {ID: testCompanyID, Name: "Acme"}},
			logos: map[string][]byte{testCompanyID: []byte("\x89PNG\r\n\x1a\n0000")},
		},
		sectors: &stubSectors{items: map[string]dto.SectorResponse{"s-1": {ID: "s-1", Name: "Portería"}}},
		persons: &stubPersons{
			companies: map[string]bool{testCompanyID: true},
			persons: map[string]dto.PersonResponse{
				"p-1": {ID: "p-1", RUT: "11111111-1", Name: "Ana", Company: testCompanyID, Type: "empleado", Active: true},
			},
		},
		importer:   &stubImporter{outcome: &dto.ImportOutcome{Report: []byte("xlsx-report"), Rows: 2}},
		exporter:   &stubExporter{xlsx: []byte("xlsx-bytes"), pdf: []byte("%PDF-1.4")},
		statistics: &stubStatistics{company: map[string]*dto.StatisticsResponse{}, sector: map[string]*dto.StatisticsResponse{}},
		registers:  &stubRegisters{items: []dto.RegisterResponse{}},
	}
	f.app = fiber.New()
	apphttp.Router(f.app, apphttp.RouterDeps{
		Companies:      f.companies,
		Sectors:        f.sectors,
		Persons:        f.persons,
		Importer:       f.importer,
		Exporter:       f.exporter,
		Statistics:     f.statistics,
		Registers:      f.registers,
		ImportMaxBytes: maxBytes,
		JWTSecret:      testJWTSecret,
		Log:            logger.Nop(),
	})
	return f
}
