package roster

import (
	"strconv"
	"strings"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// Columnas fijas de la planilla de nómina. El orden y los nombres son estables
// entre versiones: la exportación debe poder reimportarse sin cambios.
const (
	ColRUT    = "rut"
	ColName   = "name"
	ColCard   = "card"
	ColActive = "active"
	ColType   = "type"

	// ErrorColumn se agrega al reporte cuando alguna fila falló.
	ErrorColumn = "error"
)

// Columns en orden de escritura.
var Columns = []string{ColRUT, ColName, ColCard, ColActive, ColType}

// Sheet es una planilla en memoria: cabecera y filas de texto.
type Sheet struct {
	Header []string
	Rows   []Row
}

// Row es una fila de datos. Number es el número de fila en la planilla (la cabecera es la 1).
type Row struct {
	Number int
	Cells  []string
	Error  string
}

// HasErrors informa si alguna fila quedó anotada con error.
func (s *Sheet) HasErrors() bool {
	for _, r := range s.Rows {
		if r.Error != "" {
			return true
		}
	}
	return false
}

// Blank es verdadero si todas las celdas están vacías.
func (r Row) Blank() bool {
	for _, c := range r.Cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// RosterSheet arma la planilla de exportación de una nómina.
func RosterSheet(persons []*entity.Person) *Sheet {
	s := &Sheet{Header: append([]string(nil), Columns...)}
	for i, p := range persons {
		s.Rows = append(s.Rows, Row{
			Number: i + 2,
			Cells: []string{
				p.RUT,
				p.Name,
				strconv.FormatInt(p.Card, 10),
				strconv.FormatBool(p.Active),
				p.Type,
			},
		})
	}
	return s
}
