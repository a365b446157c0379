package output

import (
	"context"

	"xcstringstool/internal/domain/entities"
)

// CatalogReader loads the raw bytes of a catalog document.
type CatalogReader interface {
	Read(ctx context.Context, path string) ([]byte, error)
}

// CatalogDecoder turns raw document bytes into a validated Catalog.
// Implementations must not return a catalog together with an error.
type CatalogDecoder interface {
	Decode(data []byte) (*entities.Catalog, error)
}
