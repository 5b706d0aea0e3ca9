package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
)

type fakeCompanies map[string]*entity.Company

func (f fakeCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return f[id], nil
}

func (f fakeCompanies) GetLogo(_ context.Context, id string) ([]byte, error) {
	if c, ok := f[id]; ok {
		return c.Logo, nil
	}
	return nil, nil
}

func (f fakeCompanies) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f[id]
	return ok, nil
}

func (f fakeCompanies) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range f {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return window(out, limit, offset), nil
}

type fakeSectors map[string]*entity.Sector

func (f fakeSectors) GetByID(_ context.Context, id string) (*entity.Sector, error) {
	return f[id], nil
}

func (f fakeSectors) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f[id]
	return ok, nil
}

func (f fakeSectors) List(_ context.Context, limit, offset int) ([]*entity.Sector, error) {
	var out []*entity.Sector
	for _, s := range f {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return window(out, limit, offset), nil
}

// fakePersons repositorio en memoria con la misma semántica de filtro y orden que el SQL.
type fakePersons struct {
	byID    map[string]*entity.Person
	updates int
	deletes []string
}

func newFakePersons(list ...*entity.Person) *fakePersons {
	f := &fakePersons{byID: map[string]*entity.Person{}}
	for _, p := range list {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakePersons) Create(_ context.Context, p *entity.Person) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakePersons) GetByID(_ context.Context, id string) (*entity.Person, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePersons) Update(_ context.Context, p *entity.Person) error {
	cp := *p
	f.byID[p.ID] = &cp
	f.updates++
	return nil
}

func (f *fakePersons) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakePersons) matching(companyID string, fl query.Filter) []*entity.Person {
	var out []*entity.Person
	for _, p := range f.byID {
		if p.CompanyID == companyID && fl.MatchPerson(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakePersons) Count(_ context.Context, companyID string, fl query.Filter) (int, error) {
	return len(f.matching(companyID, fl)), nil
}

func (f *fakePersons) List(_ context.Context, companyID string, fl query.Filter, limit, offset int) ([]*entity.Person, error) {
	return window(f.matching(companyID, fl), limit, offset), nil
}

func (f *fakePersons) DeleteByCompany(context.Context, string) (int64, error)      { return 0, nil }
func (f *fakePersons) BulkInsert(context.Context, []*entity.Person) (int64, error) { return 0, nil }

func window[T any](in []T, limit, offset int) []T {
	if offset > len(in) {
		offset = len(in)
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
