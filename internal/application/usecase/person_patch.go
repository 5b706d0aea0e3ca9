package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// Operaciones JSON Patch aceptadas. move y copy no aplican a un registro plano.
const (
	opAdd     = "add"
	opRemove  = "remove"
	opReplace = "replace"
	opTest    = "test"
)

// applyPatch trabaja sobre una copia; el llamador decide si persistirla.
func applyPatch(p entity.Person, ops []dto.PatchOperation) (entity.Person, error) {
	if len(ops) == 0 {
		return p, fmt.Errorf("%w: patch vacío", domain.ErrInvalidInput)
	}
	for i, op := range ops {
		if err := applyOp(&p, op); err != nil {
			return p, fmt.Errorf("operación %d (%s %s): %w", i, op.Op, op.Path, err)
		}
	}
	return p, nil
}

func applyOp(p *entity.Person, op dto.PatchOperation) error {
	switch op.Op {
	case opAdd, opReplace:
		return setField(p, op.Path, op.Value)
	case opRemove:
		return resetField(p, op.Path)
	case opTest:
		return testField(p, op.Path, op.Value)
	default:
		return fmt.Errorf("%w: op %q no soportada", domain.ErrInvalidInput, op.Op)
	}
}

func setField(p *entity.Person, path string, raw json.RawMessage) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: falta value", domain.ErrInvalidInput)
	}
	switch path {
	case "/name":
		return decode(raw, &p.Name)
	case "/rut":
		return decode(raw, &p.RUT)
	case "/type":
		return decode(raw, &p.Type)
	case "/card":
		return decode(raw, &p.Card)
	case "/active":
		return decode(raw, &p.Active)
	default:
		return unknownPath(path)
	}
}

// resetField: los campos obligatorios no se pueden quitar; card y active
// vuelven a su valor por omisión (0 y true).
func resetField(p *entity.Person, path string) error {
	switch path {
	case "/card":
		p.Card = 0
	case "/active":
		p.Active = true
	case "/name", "/rut", "/type":
		return fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, path[1:])
	default:
		return unknownPath(path)
	}
	return nil
}

func testField(p *entity.Person, path string, raw json.RawMessage) error {
	switch path {
	case "/name":
		return testEqual(path, raw, p.Name)
	case "/rut":
		return testEqual(path, raw, p.RUT)
	case "/type":
		return testEqual(path, raw, p.Type)
	case "/card":
		return testEqual(path, raw, p.Card)
	case "/active":
		return testEqual(path, raw, p.Active)
	default:
		return unknownPath(path)
	}
}

func testEqual[T comparable](path string, raw json.RawMessage, current T) error {
	var want T
	if err := decode(raw, &want); err != nil {
		return err
	}
	if want != current {
		return fmt.Errorf("%w: %s no coincide", domain.ErrConflict, path)
	}
	return nil
}

func decode(raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: value de tipo incorrecto", domain.ErrInvalidInput)
	}
	return nil
}

func unknownPath(path string) error {
	return fmt.Errorf("%w: path %q no soportado", domain.ErrInvalidInput, path)
}
