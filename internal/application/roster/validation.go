package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/query"
)

// headerIndex posición de cada columna conocida en la cabecera recibida.
type headerIndex map[string]int

// indexHeader ubica las columnas sin distinguir mayúsculas ni espacios.
// Devuelve las columnas que faltan.
func indexHeader(header []string) (headerIndex, []string) {
	fold := cases.Fold()
	idx := make(headerIndex, len(Columns))
	for pos, h := range header {
		name := fold.String(strings.TrimSpace(h))
		for _, col := range Columns {
			if name == col {
				if _, dup := idx[col]; !dup {
					idx[col] = pos
				}
			}
		}
	}
	var missing []string
	for _, col := range Columns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return idx, missing
}

func (h headerIndex) cell(r Row, col string) string {
	pos, ok := h[col]
	if !ok || pos >= len(r.Cells) {
		return ""
	}
	return strings.TrimSpace(r.Cells[pos])
}

// validateSheet valida cada fila de forma independiente y anota el error en
// la propia fila. Una fila inválida nunca detiene la evaluación del resto.
// Las filas completamente vacías se ignoran.
func validateSheet(sheet *Sheet, companyID string, newID func() string, now time.Time) ([]*entity.Person, []dto.RowError, int) {
	idx, missing := indexHeader(sheet.Header)
	headerErr := ""
	if len(missing) > 0 {
		headerErr = "faltan columnas obligatorias: " + strings.Join(missing, ", ")
	}

	var (
		persons []*entity.Person
		errs    []dto.RowError
		seen    = make(map[string]int)
		rows    int
	)
	for i := range sheet.Rows {
		row := &sheet.Rows[i]
		if row.Blank() {
			continue
		}
		rows++

		var problems []string
		if headerErr != "" {
			problems = append(problems, headerErr)
		} else {
			p, rowProblems := parseRow(idx, *row)
			problems = rowProblems
			if p != nil {
				key := strings.ToUpper(p.RUT)
				if first, dup := seen[key]; dup {
					problems = append(problems, fmt.Sprintf("rut duplicado (ya aparece en la fila %d)", first))
				} else {
					seen[key] = row.Number
				}
			}
			if len(problems) == 0 {
				p.ID = newID()
				p.CompanyID = companyID
				p.CreatedAt = now
				p.UpdatedAt = now
				persons = append(persons, p)
			}
		}

		if len(problems) > 0 {
			row.Error = strings.Join(problems, "; ")
			errs = append(errs, dto.RowError{Row: row.Number, Message: row.Error})
		}
	}
	return persons, errs, rows
}

// parseRow convierte y valida las celdas de una fila. Devuelve la persona
// (aunque haya problemas, si el rut es legible) y la lista de problemas.
func parseRow(idx headerIndex, row Row) (*entity.Person, []string) {
	var problems []string
	p := &entity.Person{
		RUT:  strings.ToUpper(norm.NFC.String(idx.cell(row, ColRUT))),
		Name: norm.NFC.String(idx.cell(row, ColName)),
		Type: norm.NFC.String(idx.cell(row, ColType)),
	}
	if p.RUT == "" {
		problems = append(problems, "rut es obligatorio")
	}
	if p.Name == "" {
		problems = append(problems, "name es obligatorio")
	}
	if p.Type == "" {
		problems = append(problems, "type es obligatorio")
	}

	card, err := parseCard(idx.cell(row, ColCard))
	if err != nil {
		problems = append(problems, err.Error())
	}
	p.Card = card

	active := true
	if raw := idx.cell(row, ColActive); raw != "" {
		v, ok := query.ParseBool(raw)
		if !ok {
			problems = append(problems, fmt.Sprintf("active %q no es booleano (true/false)", raw))
		}
		active = v
	}
	p.Active = active

	if p.RUT == "" {
		return nil, problems
	}
	return p, problems
}

// parseCard acepta enteros no negativos; las celdas numéricas de Excel pueden
// llegar como "123.0". Vacío equivale a 0.
func parseCard(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("card %q debe ser un entero no negativo", raw)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxInt64 {
		return 0, fmt.Errorf("card %q debe ser un entero no negativo", raw)
	}
	return int64(f), nil
}
