package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var registerDetailCols = []string{
	"id", "time", "type", "person_type", "is_resolved", "person_id", "sector_id", "resolved_register_id",
	"p_id", "p_rut", "p_name", "p_company_id", "p_card", "p_active", "p_type", "p_created_at", "p_updated_at",
	"s_id", "s_name",
	"rr_id", "rr_time", "rr_type", "rr_person_type", "rr_is_resolved", "rr_person_id", "rr_sector_id",
}

func TestRegisterRepo_ListDetailed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	at := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	resolved := "r-1"
	ptrStr := func(s string) *string { return &s }
	ptrInt := func(n int64) *int64 { return &n }
	ptrBool := func(b bool) *bool { return &b }
	ptrTime := func(t time.Time) *time.Time { return &t }

	mock.ExpectQuery(regexp.QuoteMeta(
		`LEFT JOIN registers rr ON rr.id = r.resolved_register_id WHERE r.sector_id = $1 AND r.is_resolved = false ORDER BY r.id DESC LIMIT $2`)).
		WithArgs("s-1", 50).
		WillReturnRows(pgxmock.NewRows(registerDetailCols).
			AddRow("r-2", at.Add(time.Hour), "salida", "empleado", false, "p-1", "s-1", &resolved,
				ptrStr("p-1"), ptrStr("1-9"), ptrStr("Ana"), ptrStr("c-1"), ptrInt(7), ptrBool(true), ptrStr("empleado"), ptrTime(at), ptrTime(at),
				ptrStr("s-1"), ptrStr("Portería"),
				ptrStr("r-1"), ptrTime(at), ptrStr("entrada"), ptrStr("empleado"), ptrBool(true), ptrStr("p-1"), ptrStr("s-1")).
			AddRow("r-0", at, "entrada", "visita", false, "p-borrada", "s-1", (*string)(nil),
				(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*int64)(nil), (*bool)(nil), (*string)(nil), (*time.Time)(nil), (*time.Time)(nil),
				ptrStr("s-1"), ptrStr("Portería"),
				(*string)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil), (*bool)(nil), (*string)(nil), (*string)(nil)).
			AddRow("r-00", at, "entrada", "empleado", false, ptrStr("p-1"), (*string)(nil), (*string)(nil),
				ptrStr("p-1"), ptrStr("1-9"), ptrStr("Ana"), ptrStr("c-1"), ptrInt(7), ptrBool(true), ptrStr("empleado"), ptrTime(at), ptrTime(at),
				(*string)(nil), (*string)(nil),
				(*string)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil), (*bool)(nil), (*string)(nil), (*string)(nil)))

	list, err := NewRegisterRepository(mock).ListDetailed(context.Background(),
		repository.RegisterScope{SectorID: "s-1"}, query.Filter{Incomplete: true}, 50)
	require.NoError(t, err)
	require.Len(t, list, 3)

	first := list[0]
	assert.Equal(t, "r-2", first.ID)
	require.NotNil(t, first.Person)
	assert.Equal(t, "Ana", first.Person.Name)
	assert.Equal(t, int64(7), first.Person.Card)
	require.NotNil(t, first.Sector)
	assert.Equal(t, "Portería", first.Sector.Name)
	require.NotNil(t, first.ResolvedRegister)
	assert.Equal(t, "entrada", first.ResolvedRegister.Type)

	assert.Nil(t, list[1].Person, "persona eliminada por un reemplazo de nómina")
	assert.Nil(t, list[1].ResolvedRegister)
	assert.Equal(t, "p-borrada", list[1].PersonID, "la referencia cruda sobrevive")

	assert.Equal(t, "p-1", list[2].PersonID)
	assert.Empty(t, list[2].SectorID, "sector_id nulo tras eliminar el sector")
	assert.Nil(t, list[2].Sector)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRepo_ListDetailed_AlcanceInvalido(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRegisterRepository(mock)
	_, err = repo.ListDetailed(context.Background(), repository.RegisterScope{}, query.Filter{}, 0)
	assert.Error(t, err)
	_, err = repo.ListDetailed(context.Background(), repository.RegisterScope{SectorID: "s", CompanyID: "c"}, query.Filter{}, 0)
	assert.Error(t, err)
}
