package roster_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/application/roster"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/xlsx"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

type fakePDF struct {
	company *entity.Company
	persons []*entity.Person
}

func (f *fakePDF) RenderRoster(_ context.Context, c *entity.Company, p []*entity.Person) ([]byte, error) {
	f.company, f.persons = c, p
	return []byte("%PDF-fake"), nil
}

func exportSetup() (*roster.ExportUseCase, *memStore, memCompanies, *fakePDF) {
	companies := memCompanies{"c-1": {ID: "c-1", Name: "Minera Andes"}}
	store := newMemStore()
	store.data["c-1"] = []*entity.Person{
		{ID: "01", RUT: "11111111-1", Name: "Ana", CompanyID: "c-1", Card: 7, Active: true, Type: "empleado"},
		{ID: "02", RUT: "22222222-2", Name: "Beto", CompanyID: "c-1", Card: 0, Active: false, Type: "visita"},
	}
	pdf := &fakePDF{}
	return roster.NewExportUseCase(companies, store.persons(), xlsx.NewCodec(), pdf), store, companies, pdf
}

func TestExportRoster_ColumnasFijas(t *testing.T) {
	uc, _, _, _ := exportSetup()

	out, err := uc.ExportRoster(context.Background(), owner, "c-1")
	require.NoError(t, err)

	rows := readXLSX(t, out)
	require.Len(t, rows, 3)
	assert.Equal(t, roster.Columns, rows[0])
	assert.Equal(t, []string{"11111111-1", "Ana", "7", "true", "empleado"}, rows[1])
	assert.Equal(t, []string{"22222222-2", "Beto", "0", "false", "visita"}, rows[2])
}

func TestExportRoster_ReimportarEsIdempotente(t *testing.T) {
	uc, store, companies, _ := exportSetup()
	exported, err := uc.ExportRoster(context.Background(), owner, "c-1")
	require.NoError(t, err)

	imp := roster.NewImportUseCase(companies, store, xlsx.NewCodec(), logger.Nop(), 0)
	out, err := imp.ImportRoster(context.Background(), owner, "c-1", opener(exported, nil))
	require.NoError(t, err)
	require.False(t, out.HadErrors)

	again, err := uc.ExportRoster(context.Background(), owner, "c-1")
	require.NoError(t, err)
	assert.Equal(t, readXLSX(t, exported), readXLSX(t, again))
}

func TestExportRoster_Autorizacion(t *testing.T) {
	uc, _, _, _ := exportSetup()

	_, err := uc.ExportRoster(context.Background(), stranger, "c-1")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	_, err = uc.ExportRoster(context.Background(), admin, "c-404")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestExportRosterPDF_PasaNominaCompleta(t *testing.T) {
	uc, _, _, pdf := exportSetup()

	out, err := uc.ExportRosterPDF(context.Background(), admin, "c-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, "Minera Andes", pdf.company.Name)
	assert.Len(t, pdf.persons, 2)
}
