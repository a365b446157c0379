package filesystem

import (
	"context"
	"os"

	"xcstringstool/internal/ports/output"
)

var _ output.CatalogReader = (*Reader)(nil)

// Reader loads catalogs from the local filesystem.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
