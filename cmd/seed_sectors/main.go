// seed_sectors genera la migración que siembra el catálogo de sectores a partir
// de un CSV exportado en ISO-8859-1 (una columna "nombre" o un nombre por línea).
//
// Uso: go run ./cmd/seed_sectors [ruta/sectores.csv]
// Por defecto busca sectores.csv en el directorio actual. SEED_CSV_SEP=";" cambia el separador.
// Escribe: internal/infrastructure/postgres/migrations/000002_seed_sectors.{up,down}.sql
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// sectorNamespace fija los UUID v5 de los sectores: el mismo nombre produce
// siempre el mismo id, así la semilla puede reaplicarse.
var sectorNamespace = uuid.MustParse("6f1c3c2e-4b8a-4d7e-9a51-0d9a1c7e5b21")

type sector struct {
	id   uuid.UUID
	name string
}

func main() {
	csvPath := "sectores.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	sectors, err := readSectors(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(sectors) == 0 {
		fmt.Fprintln(os.Stderr, "El CSV no contiene sectores")
		os.Exit(1)
	}

	dir := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations")
	up := filepath.Join(dir, "000002_seed_sectors.up.sql")
	down := filepath.Join(dir, "000002_seed_sectors.down.sql")
	if err := os.WriteFile(up, []byte(upSQL(sectors)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", up, err)
		os.Exit(1)
	}
	if err := os.WriteFile(down, []byte(downSQL(sectors)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", down, err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d sectores\n", up, len(sectors))
}

// readSectors decodifica Latin-1, normaliza a NFC y descarta vacíos y repetidos
// (sin distinguir mayúsculas). La salida queda ordenada por nombre.
func readSectors(r io.Reader) ([]sector, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.FieldsPerRecord = -1
	if sep := os.Getenv("SEED_CSV_SEP"); sep == ";" || sep == "\t" {
		cr.Comma = rune(sep[0])
	}

	fold := cases.Fold()
	seen := make(map[string]bool)
	var out []sector
	col := 0
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 0 {
			if i := headerColumn(rec); i >= 0 {
				col = i
				continue
			}
		}
		if col >= len(rec) {
			continue
		}
		name := norm.NFC.String(strings.TrimSpace(rec[col]))
		key := fold.String(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, sector{id: uuid.NewSHA1(sectorNamespace, []byte(key)), name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

func headerColumn(rec []string) int {
	for i, h := range rec {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "nombre", "name", "sector":
			return i
		}
	}
	return -1
}

func upSQL(sectors []sector) string {
	var b strings.Builder
	b.WriteString("-- Catálogo de sectores\n")
	b.WriteString("-- Generado por cmd/seed_sectors\n\n")
	b.WriteString("INSERT INTO sectors (id, name) VALUES\n")
	for i, s := range sectors {
		sep := ","
		if i == len(sectors)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  ('%s', '%s')%s\n", s.id, escapeSQL(s.name), sep)
	}
	b.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	return b.String()
}

func downSQL(sectors []sector) string {
	ids := make([]string, 0, len(sectors))
	for _, s := range sectors {
		ids = append(ids, "'"+s.id.String()+"'")
	}
	return "DELETE FROM sectors WHERE id IN (" + strings.Join(ids, ", ") + ");\n"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
