package input

import (
	"context"

	"xcstringstool/internal/domain"
)

// CompileRequest describes one compile run.
type CompileRequest struct {
	Input string
	// Languages restricts output to these locales. Empty means every locale
	// observed in the catalog.
	Languages []string
	DryRun    bool
}

// LocaleResult summarizes the output of one locale.
type LocaleResult struct {
	Locale      string
	Count       int
	Path        string
	Diagnostics []domain.Diagnostic
}

type CatalogUseCase interface {
	ListKeys(ctx context.Context, path string) ([]string, error)
	Compile(ctx context.Context, req CompileRequest) ([]LocaleResult, error)
	Sync(ctx context.Context) error
}
