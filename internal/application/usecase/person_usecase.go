package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/pagination"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// PersonUseCase listados filtrados y CRUD puntual de personas.
// Crear, modificar y borrar exigen que el principal pueda operar la empresa.
type PersonUseCase struct {
	companies       repository.CompanyRepository
	persons         repository.PersonRepository
	defaultPageSize int
	maxPageSize     int
	now             func() time.Time
}

// NewPersonUseCase construye el caso de uso. Tamaños <= 0 usan los de pagination.
func NewPersonUseCase(companies repository.CompanyRepository, persons repository.PersonRepository, defaultPageSize, maxPageSize int) *PersonUseCase {
	if defaultPageSize <= 0 {
		defaultPageSize = pagination.DefaultPageSize
	}
	if maxPageSize <= 0 || maxPageSize > pagination.MaxPageSize {
		maxPageSize = pagination.MaxPageSize
	}
	return &PersonUseCase{
		companies:       companies,
		persons:         persons,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// personSource adapta el repositorio a pagination.Source para un filtro fijo.
type personSource struct {
	repo      repository.PersonRepository
	companyID string
	filter    query.Filter
}

func (s personSource) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx, s.companyID, s.filter)
}

func (s personSource) Fetch(ctx context.Context, limit, offset int) ([]*entity.Person, error) {
	return s.repo.List(ctx, s.companyID, s.filter, limit, offset)
}

// List devuelve las personas de la empresa que cumplen el filtro, por id ascendente.
//
// Sin paginación, top limita el conjunto completo. Con paginación, top recorta
// los ítems de la página ya calculada; los metadatos describen el total filtrado.
func (uc *PersonUseCase) List(ctx context.Context, companyID string, f query.Filter, page dto.PageRequest) (*dto.PersonListResult, error) {
	ok, err := uc.companies.Exists(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("persons: verificar empresa: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}

	if !page.Enabled {
		list, err := uc.persons.List(ctx, companyID, f, f.Top, 0)
		if err != nil {
			return nil, fmt.Errorf("persons: listar: %w", err)
		}
		return &dto.PersonListResult{Items: toPersonResponses(list)}, nil
	}

	size := page.PageSize
	if size <= 0 {
		size = uc.defaultPageSize
	}
	if size > uc.maxPageSize {
		size = uc.maxPageSize
	}
	var factory pagination.Factory[*entity.Person] = func() pagination.Source[*entity.Person] {
		return personSource{repo: uc.persons, companyID: companyID, filter: f}
	}
	p, err := pagination.Paginate(ctx, factory, page.Page, size)
	if err != nil {
		return nil, fmt.Errorf("persons: %w", err)
	}
	items := p.Items
	if f.Top > 0 && len(items) > f.Top {
		items = items[:f.Top]
	}
	return &dto.PersonListResult{
		Items: toPersonResponses(items),
		Page:  &dto.PageMeta{Total: p.Total, PageSize: p.PageSize, Pages: p.Pages, Page: p.Current},
	}, nil
}

// GetByID devuelve la persona o domain.ErrNotFound.
func (uc *PersonUseCase) GetByID(ctx context.Context, id string) (*dto.PersonResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToPersonResponse(p), nil
}

// Create da de alta una persona en la empresa.
func (uc *PersonUseCase) Create(ctx context.Context, principal access.Principal, companyID string, in dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	if err := access.Require(principal, companyID); err != nil {
		return nil, err
	}
	ok, err := uc.companies.Exists(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("persons: verificar empresa: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := uc.now()
	p := &entity.Person{
		ID:        newID(),
		RUT:       in.RUT,
		Name:      in.Name,
		CompanyID: companyID,
		Card:      in.Card,
		Active:    active,
		Type:      in.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	normalizePerson(p)
	if err := validatePerson(p); err != nil {
		return nil, err
	}
	if err := uc.persons.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("persons: crear: %w", err)
	}
	return dto.ToPersonResponse(p), nil
}

// Patch aplica operaciones JSON Patch. Si alguna falla no se guarda ninguna.
func (uc *PersonUseCase) Patch(ctx context.Context, principal access.Principal, id string, ops []dto.PatchOperation) (*dto.PersonResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Require(principal, p.CompanyID); err != nil {
		return nil, err
	}

	patched, err := applyPatch(*p, ops)
	if err != nil {
		return nil, err
	}
	normalizePerson(&patched)
	if err := validatePerson(&patched); err != nil {
		return nil, err
	}
	patched.UpdatedAt = uc.now()
	if err := uc.persons.Update(ctx, &patched); err != nil {
		return nil, fmt.Errorf("persons: actualizar: %w", err)
	}
	return dto.ToPersonResponse(&patched), nil
}

// Delete elimina la persona si el principal opera su empresa.
func (uc *PersonUseCase) Delete(ctx context.Context, principal access.Principal, id string) error {
	p, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if err := access.Require(principal, p.CompanyID); err != nil {
		return err
	}
	if err := uc.persons.Delete(ctx, id); err != nil {
		return fmt.Errorf("persons: borrar: %w", err)
	}
	return nil
}

func (uc *PersonUseCase) load(ctx context.Context, id string) (*entity.Person, error) {
	p, err := uc.persons.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("persons: obtener: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: persona %s", domain.ErrNotFound, id)
	}
	return p, nil
}

func toPersonResponses(list []*entity.Person) []dto.PersonResponse {
	items := make([]dto.PersonResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToPersonResponse(p))
	}
	return items
}

func normalizePerson(p *entity.Person) {
	p.RUT = strings.ToUpper(norm.NFC.String(strings.TrimSpace(p.RUT)))
	p.Name = norm.NFC.String(strings.TrimSpace(p.Name))
	p.Type = norm.NFC.String(strings.TrimSpace(p.Type))
}

func validatePerson(p *entity.Person) error {
	switch {
	case p.RUT == "":
		return fmt.Errorf("%w: rut es obligatorio", domain.ErrInvalidInput)
	case p.Name == "":
		return fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	case p.Type == "":
		return fmt.Errorf("%w: type es obligatorio", domain.ErrInvalidInput)
	case p.Card < 0:
		return fmt.Errorf("%w: card debe ser un entero no negativo", domain.ErrInvalidInput)
	}
	return nil
}

// newID UUIDv7: el orden por id es el orden de alta.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
