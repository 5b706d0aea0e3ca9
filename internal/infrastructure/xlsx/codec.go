// Package xlsx lee y escribe planillas de nómina con excelize.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Directorio-api/internal/application/roster"
	"github.com/jhoicas/Directorio-api/internal/domain"
)

// SheetName hoja que se escribe en las planillas generadas. Al leer se usa
// siempre la primera hoja, se llame como se llame.
const SheetName = "roster"

// Codec implementa roster.SheetCodec.
type Codec struct{}

var _ roster.SheetCodec = (*Codec)(nil)

func NewCodec() *Codec { return &Codec{} }

// Decode lee la primera hoja: la fila 1 es la cabecera y el resto son datos.
// Las filas vacías intermedias se conservan para no desplazar la numeración.
func (c *Codec) Decode(r io.Reader) (*roster.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: no es una planilla xlsx: %v", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: la planilla no tiene hojas", domain.ErrInvalidInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: leer hoja %q: %v", domain.ErrInvalidInput, sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: la planilla está vacía", domain.ErrInvalidInput)
	}

	out := &roster.Sheet{Header: rows[0], Rows: make([]roster.Row, 0, len(rows)-1)}
	for i, cells := range rows[1:] {
		out.Rows = append(out.Rows, roster.Row{Number: i + 2, Cells: cells})
	}
	return out, nil
}

// Encode escribe la planilla. Si alguna fila tiene error se agrega la columna
// "error" y esas filas se resaltan.
func (c *Codec) Encode(s *roster.Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	annotated := s.HasErrors()
	width := len(s.Header)
	header := toRow(s.Header, width)
	if annotated {
		header = append(header, roster.ErrorColumn)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: escribir cabecera: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	lastCol := len(header)
	if lastCol > 0 {
		end, _ := excelize.CoordinatesToCellName(lastCol, 1)
		if err := f.SetCellStyle(SheetName, "A1", end, headerStyle); err != nil {
			return nil, fmt.Errorf("xlsx: aplicar estilo cabecera: %w", err)
		}
	}

	errorStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
		Font: &excelize.Font{Color: "9C0006"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de error: %w", err)
	}

	next := 2
	for _, r := range s.Rows {
		number := r.Number
		if number < next {
			number = next
		}
		next = number + 1

		values := toRow(r.Cells, width)
		if annotated {
			values = append(values, r.Error)
		}
		start, err := excelize.CoordinatesToCellName(1, number)
		if err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", number, err)
		}
		if err := f.SetSheetRow(SheetName, start, &values); err != nil {
			return nil, fmt.Errorf("xlsx: escribir fila %d: %w", number, err)
		}
		if r.Error != "" {
			end, _ := excelize.CoordinatesToCellName(lastCol, number)
			if err := f.SetCellStyle(SheetName, start, end, errorStyle); err != nil {
				return nil, fmt.Errorf("xlsx: resaltar fila %d: %w", number, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// toRow rellena con celdas vacías hasta width para que la columna de error
// quede alineada aunque la fila original sea más corta.
func toRow(cells []string, width int) []interface{} {
	n := max(len(cells), width)
	out := make([]interface{}, n)
	for i := range out {
		if i < len(cells) {
			out[i] = cells[i]
		} else {
			out[i] = ""
		}
	}
	return out
}
