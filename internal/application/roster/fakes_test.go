package roster_test

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// ── empresas ──────────────────────────────────────────────────────────────────

type memCompanies map[string]*entity.Company

func (m memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return m[id], nil
}

func (m memCompanies) GetLogo(_ context.Context, id string) ([]byte, error) {
	if c, ok := m[id]; ok {
		return c.Logo, nil
	}
	return nil, nil
}

func (m memCompanies) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m[id]
	return ok, nil
}

func (m memCompanies) List(context.Context, int, int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	return out, nil
}

// ── personas + transacción ────────────────────────────────────────────────────

// memStore guarda la nómina por empresa. RunRoster trabaja sobre una copia y
// solo la publica si fn no falla, igual que un commit/rollback.
type memStore struct {
	mu         sync.Mutex
	data       map[string][]*entity.Person
	failInsert error
	commits    int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]*entity.Person{}}
}

func (s *memStore) RunRoster(_ context.Context, fn func(repository.PersonRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := make(map[string][]*entity.Person, len(s.data))
	for k, v := range s.data {
		work[k] = append([]*entity.Person(nil), v...)
	}
	if err := fn(&memPersons{data: work, failInsert: s.failInsert}); err != nil {
		return err
	}
	// se publica en el mismo mapa para que las vistas de lectura vean el commit
	clear(s.data)
	for k, v := range work {
		s.data[k] = v
	}
	s.commits++
	return nil
}

func (s *memStore) roster(companyID string) []*entity.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.Person(nil), s.data[companyID]...)
}

func (s *memStore) persons() *memPersons { return &memPersons{data: s.data} }

type memPersons struct {
	data       map[string][]*entity.Person
	failInsert error
}

var _ repository.PersonRepository = (*memPersons)(nil)

func (m *memPersons) Create(_ context.Context, p *entity.Person) error {
	m.data[p.CompanyID] = append(m.data[p.CompanyID], p)
	return nil
}

func (m *memPersons) GetByID(_ context.Context, id string) (*entity.Person, error) {
	for _, list := range m.data {
		for _, p := range list {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return nil, nil
}

func (m *memPersons) Update(context.Context, *entity.Person) error { return nil }
func (m *memPersons) Delete(context.Context, string) error         { return nil }

func (m *memPersons) Count(ctx context.Context, companyID string, f query.Filter) (int, error) {
	list, _ := m.List(ctx, companyID, f, 0, 0)
	return len(list), nil
}

func (m *memPersons) List(_ context.Context, companyID string, f query.Filter, limit, offset int) ([]*entity.Person, error) {
	var out []*entity.Person
	for _, p := range m.data[companyID] {
		if f.MatchPerson(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memPersons) DeleteByCompany(_ context.Context, companyID string) (int64, error) {
	n := int64(len(m.data[companyID]))
	delete(m.data, companyID)
	return n, nil
}

func (m *memPersons) BulkInsert(_ context.Context, persons []*entity.Person) (int64, error) {
	if m.failInsert != nil {
		return 0, m.failInsert
	}
	for _, p := range persons {
		m.data[p.CompanyID] = append(m.data[p.CompanyID], p)
	}
	return int64(len(persons)), nil
}

// ── planillas ─────────────────────────────────────────────────────────────────

// buildXLSX escribe cada fila a partir de A1; una fila nil queda vacía.
func buildXLSX(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		if r == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func readXLSX(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	return rows
}

// opener devuelve un Opener sobre data y registra si fue invocado.
func opener(data []byte, called *bool) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		if called != nil {
			*called = true
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}

func header() []interface{} {
	return []interface{}{"rut", "name", "card", "active", "type"}
}
