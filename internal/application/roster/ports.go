package roster

import (
	"context"
	"io"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD, pasando un repositorio
// de personas atado a esa tx. El borrado y la inserción de la nómina se
// confirman juntos o no se confirman.
type TxRunner interface {
	RunRoster(ctx context.Context, fn func(persons repository.PersonRepository) error) error
}

// SheetCodec lee y escribe planillas. Decode devuelve errores envueltos en
// domain.ErrInvalidInput cuando el archivo no es una planilla legible.
type SheetCodec interface {
	Decode(r io.Reader) (*Sheet, error)
	Encode(sheet *Sheet) ([]byte, error)
}

// PDFRenderer genera el listado de nómina en PDF.
type PDFRenderer interface {
	RenderRoster(ctx context.Context, company *entity.Company, persons []*entity.Person) ([]byte, error)
}

// Opener abre el archivo subido. Se invoca solo después de autorizar.
type Opener func() (io.ReadCloser, error)
