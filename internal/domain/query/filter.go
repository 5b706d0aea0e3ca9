// Package query traduce los parámetros de consulta de los listados a un filtro
// cerrado y declarativo. Construir un Filter no ejecuta nada; la capa de
// persistencia lo compila a SQL cada vez que lo necesita.
package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// Key es un parámetro de consulta reconocido.
type Key string

const (
	KeyName       Key = "name"
	KeyRUT        Key = "rut"
	KeyPersonType Key = "personType"
	KeyType       Key = "type"
	KeyStatus     Key = "status"
	KeyActive     Key = "active"
	KeyFrom       Key = "from"
	KeyTo         Key = "to"
	KeyTop        Key = "top"
	KeyIncomplete Key = "incomplete"
)

// Claves aceptadas por cada listado. Cualquier otra se ignora.
var (
	PersonKeys   = []Key{KeyName, KeyRUT, KeyPersonType, KeyStatus, KeyActive, KeyTop}
	RegisterKeys = []Key{KeyType, KeyTop, KeyFrom, KeyTo, KeyPersonType, KeyIncomplete}
)

// Filter es la conjunción de restricciones de un listado. Un campo nil (o cero)
// significa "sin restricción".
type Filter struct {
	NamePrefix *string
	RUTPrefix  *string
	PersonType *string
	Type       *string
	Active     *bool
	From       *time.Time // inclusivo
	To         *time.Time // inclusivo
	Top        int        // 0 = sin tope
	Incomplete bool       // true => is_resolved = false
}

// ParsePersonFilter construye el filtro de personas.
func ParsePersonFilter(raw map[string]string) (Filter, error) {
	return parse(raw, PersonKeys)
}

// ParseRegisterFilter construye el filtro de registros.
func ParseRegisterFilter(raw map[string]string) (Filter, error) {
	return parse(raw, RegisterKeys)
}

func parse(raw map[string]string, keys []Key) (Filter, error) {
	var f Filter
	for _, k := range keys {
		v := strings.TrimSpace(raw[string(k)])
		if v == "" {
			continue
		}
		switch k {
		case KeyName:
			f.NamePrefix = &v
		case KeyRUT:
			f.RUTPrefix = &v
		case KeyPersonType:
			f.PersonType = &v
		case KeyType:
			f.Type = &v
		case KeyStatus, KeyActive:
			b, ok := ParseBool(v)
			if !ok {
				return Filter{}, invalid(k, v)
			}
			if f.Active != nil && *f.Active != b {
				return Filter{}, fmt.Errorf("%w: status y active se contradicen", domain.ErrInvalidInput)
			}
			f.Active = &b
		case KeyFrom, KeyTo:
			ms, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return Filter{}, invalid(k, v)
			}
			t := time.UnixMilli(ms).UTC()
			if k == KeyFrom {
				f.From = &t
			} else {
				f.To = &t
			}
		case KeyTop:
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return Filter{}, invalid(k, v)
			}
			f.Top = n
		case KeyIncomplete:
			b, ok := ParseBool(v)
			if !ok {
				return Filter{}, invalid(k, v)
			}
			f.Incomplete = b
		}
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return Filter{}, fmt.Errorf("%w: from es posterior a to", domain.ErrInvalidInput)
	}
	return f, nil
}

func invalid(k Key, v string) error {
	return fmt.Errorf("%w: valor %q no válido para %s", domain.ErrInvalidInput, v, k)
}

// ParseBool acepta true/false, 1/0, yes/no y si/sí/no.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "si", "sí", "verdadero":
		return true, true
	case "false", "0", "no", "falso":
		return false, true
	}
	return false, false
}

// MatchPerson evalúa el filtro en memoria. Refleja exactamente la semántica del SQL
// generado por la capa de persistencia (Top no participa: es un límite, no un predicado).
func (f Filter) MatchPerson(p *entity.Person) bool {
	if f.NamePrefix != nil && !hasPrefixFold(p.Name, *f.NamePrefix) {
		return false
	}
	if f.RUTPrefix != nil && !hasPrefixFold(p.RUT, *f.RUTPrefix) {
		return false
	}
	if f.PersonType != nil && p.Type != *f.PersonType {
		return false
	}
	if f.Active != nil && p.Active != *f.Active {
		return false
	}
	return true
}

// MatchRegister evalúa el filtro sobre un registro en memoria.
func (f Filter) MatchRegister(r *entity.Register) bool {
	if f.Type != nil && r.Type != *f.Type {
		return false
	}
	if f.PersonType != nil && r.PersonType != *f.PersonType {
		return false
	}
	if f.From != nil && r.Time.Before(*f.From) {
		return false
	}
	if f.To != nil && r.Time.After(*f.To) {
		return false
	}
	if f.Incomplete && r.IsResolved {
		return false
	}
	return true
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
