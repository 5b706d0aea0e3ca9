package analytics_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

type fakeExists map[string]bool

func (f fakeExists) Exists(_ context.Context, id string) (bool, error) { return f[id], nil }

type fakeCompanies struct{ fakeExists }

func (fakeCompanies) GetByID(context.Context, string) (*entity.Company, error)  { return nil, nil }
func (fakeCompanies) List(context.Context, int, int) ([]*entity.Company, error) { return nil, nil }
func (fakeCompanies) GetLogo(context.Context, string) ([]byte, error)           { return nil, nil }

type fakeSectors struct{ fakeExists }

func (fakeSectors) GetByID(context.Context, string) (*entity.Sector, error)  { return nil, nil }
func (fakeSectors) List(context.Context, int, int) ([]*entity.Sector, error) { return nil, nil }

type fakeStats struct {
	persons   map[string]*repository.PersonStats
	registers map[repository.RegisterScope]*repository.RegisterStats
	err       error
}

var errDB = errors.New("db caída")

func (f *fakeStats) PersonStats(_ context.Context, companyID string) (*repository.PersonStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.persons[companyID]; ok {
		return s, nil
	}
	return &repository.PersonStats{ByType: map[string]int64{}, ActivePct: decimal.Zero}, nil
}

func (f *fakeStats) RegisterStats(_ context.Context, scope repository.RegisterScope) (*repository.RegisterStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.registers[scope]; ok {
		return s, nil
	}
	return &repository.RegisterStats{ByType: map[string]int64{}, ByPersonType: map[string]int64{}}, nil
}

type fakeRegisters struct {
	rows      []*entity.RegisterDetail
	gotScope  repository.RegisterScope
	gotFilter query.Filter
	gotLimit  int
}

func (f *fakeRegisters) ListDetailed(_ context.Context, scope repository.RegisterScope, fl query.Filter, limit int) ([]*entity.RegisterDetail, error) {
	f.gotScope, f.gotFilter, f.gotLimit = scope, fl, limit
	return f.rows, nil
}
