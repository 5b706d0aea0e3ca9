package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/access"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// ImportUseCase reconcilia la nómina de una empresa contra una planilla subida.
// Con cero filas inválidas la nómina se reemplaza completa en una transacción;
// con al menos una, no se toca nada y se devuelve la planilla anotada.
type ImportUseCase struct {
	companies repository.CompanyRepository
	tx        TxRunner
	codec     SheetCodec
	log       *logger.Logger
	maxRows   int
	newID     func() string
	now       func() time.Time
}

// NewImportUseCase construye el caso de uso. maxRows <= 0 desactiva el límite.
func NewImportUseCase(companies repository.CompanyRepository, tx TxRunner, codec SheetCodec, log *logger.Logger, maxRows int) *ImportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ImportUseCase{
		companies: companies,
		tx:        tx,
		codec:     codec,
		log:       log.Component("roster_import"),
		maxRows:   maxRows,
		newID:     newPersonID,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// newPersonID usa UUIDv7: el orden por id coincide con el orden de alta.
func newPersonID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ImportRoster autoriza, verifica la empresa y recién entonces abre el archivo.
func (uc *ImportUseCase) ImportRoster(ctx context.Context, principal access.Principal, companyID string, open Opener) (*dto.ImportOutcome, error) {
	if err := access.Require(principal, companyID); err != nil {
		return nil, err
	}
	exists, err := uc.companies.Exists(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("roster: verificar empresa: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}

	f, err := open()
	if err != nil {
		return nil, fmt.Errorf("%w: archivo no recibido: %v", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	sheet, err := uc.codec.Decode(f)
	if err != nil {
		return nil, err
	}
	if uc.maxRows > 0 && len(sheet.Rows) > uc.maxRows {
		return nil, fmt.Errorf("%w: %d filas (máximo %d)", domain.ErrTooLarge, len(sheet.Rows), uc.maxRows)
	}

	persons, rowErrs, rows := validateSheet(sheet, companyID, uc.newID, uc.now())
	if len(rowErrs) > 0 {
		return uc.reject(companyID, sheet, rowErrs, rows)
	}
	if rows == 0 {
		if _, missing := indexHeader(sheet.Header); len(missing) > 0 {
			return nil, fmt.Errorf("%w: la planilla no tiene cabecera de nómina", domain.ErrInvalidInput)
		}
	}

	if err := uc.replace(ctx, companyID, persons); err != nil {
		return nil, err
	}

	report, err := uc.codec.Encode(RosterSheet(persons))
	if err != nil {
		return nil, fmt.Errorf("roster: generar copia importada: %w", err)
	}
	return &dto.ImportOutcome{Report: report, Rows: rows}, nil
}

func (uc *ImportUseCase) reject(companyID string, sheet *Sheet, rowErrs []dto.RowError, rows int) (*dto.ImportOutcome, error) {
	report, err := uc.codec.Encode(sheet)
	if err != nil {
		return nil, fmt.Errorf("roster: generar reporte de errores: %w", err)
	}
	uc.log.Info().
		Str("company_id", companyID).
		Int("rows", rows).
		Int("errors", len(rowErrs)).
		Msg("importación rechazada, nómina sin cambios")
	return &dto.ImportOutcome{
		HadErrors: true,
		Report:    report,
		Rows:      rows,
		Errors:    rowErrs,
	}, nil
}

// replace borra la nómina actual e inserta la nueva dentro de una sola tx.
func (uc *ImportUseCase) replace(ctx context.Context, companyID string, persons []*entity.Person) error {
	err := uc.tx.RunRoster(ctx, func(repo repository.PersonRepository) error {
		deleted, err := repo.DeleteByCompany(ctx, companyID)
		if err != nil {
			return fmt.Errorf("borrar nómina: %w", err)
		}
		inserted, err := repo.BulkInsert(ctx, persons)
		if err != nil {
			return fmt.Errorf("insertar nómina: %w", err)
		}
		if inserted != int64(len(persons)) {
			return fmt.Errorf("insertar nómina: %d de %d filas", inserted, len(persons))
		}
		uc.log.Info().
			Str("company_id", companyID).
			Int64("deleted", deleted).
			Int64("inserted", inserted).
			Msg("nómina reemplazada")
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("company_id", companyID).Int("rows", len(persons)).
			Msg("reemplazo de nómina falló, transacción revertida")
		return fmt.Errorf("roster: reemplazar nómina: %w", err)
	}
	return nil
}
