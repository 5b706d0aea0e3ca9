// Package pdf genera el listado imprimible de la nómina de una empresa.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre empresa      │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: RUT | Nombre | Tarjeta | Tipo | Activo               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total / activos / inactivos                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Directorio-api/internal/application/roster"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoRosterGenerator implementa roster.PDFRenderer usando Maroto v2.
type MarotoRosterGenerator struct {
	now func() time.Time
}

var _ roster.PDFRenderer = (*MarotoRosterGenerator)(nil)

// NewMarotoRosterGenerator construye el generador.
func NewMarotoRosterGenerator() *MarotoRosterGenerator {
	return &MarotoRosterGenerator{now: time.Now}
}

// RenderRoster genera el PDF y devuelve sus bytes.
func (g *MarotoRosterGenerator) RenderRoster(ctx context.Context, company *entity.Company, persons []*entity.Person) ([]byte, error) {
	if company == nil {
		return nil, fmt.Errorf("pdf: empresa requerida")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nómina "+company.Name, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for i, p := range persons {
		// la generación puede ser larga con nóminas grandes
		if i%500 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		m.AddRows(personRow(p))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(persons))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company *entity.Company, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NÓMINA DE PERSONAL", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("RUT", 2, align.Left),
		h("Nombre", 5, align.Left),
		h("Tarjeta", 2, align.Right),
		h("Tipo", 2, align.Left),
		h("Activo", 1, align.Center),
	)
}

func personRow(p *entity.Person) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		cell(p.RUT, 2, align.Left),
		cell(p.Name, 5, align.Left),
		cell(strconv.FormatInt(p.Card, 10), 2, align.Right),
		cell(p.Type, 2, align.Left),
		cell(yesNo(p.Active), 1, align.Center),
	)
}

// summaryRow: totales de la nómina alineados a la derecha.
func summaryRow(persons []*entity.Person) core.Row {
	var active int
	for _, p := range persons {
		if p.Active {
			active++
		}
	}
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(n int, top float64) core.Component {
		return text.New(strconv.Itoa(n), props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(label("Personas:", 1), label("Activas:", 7), label("Inactivas:", 13)),
		col.New(3).Add(value(len(persons), 1), value(active, 7), value(len(persons)-active, 13)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
