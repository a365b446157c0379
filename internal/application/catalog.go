package application

import (
	"context"
	"fmt"
	"sort"

	"xcstringstool/internal/domain"
	"xcstringstool/internal/domain/entities"
	"xcstringstool/internal/ports/input"
	"xcstringstool/internal/ports/output"
)

var _ input.CatalogUseCase = (*CatalogService)(nil)

type CatalogService struct {
	reader   output.CatalogReader
	decoder  output.CatalogDecoder
	writer   output.StringsWriter
	reporter output.Reporter
	resolver *Resolver
}

// NewCatalogService wires the catalog use cases. writer may be nil when
// only dry runs and key listing are performed.
func NewCatalogService(
	reader output.CatalogReader,
	decoder output.CatalogDecoder,
	writer output.StringsWriter,
	reporter output.Reporter,
	resolver *Resolver,
) *CatalogService {
	if reporter == nil {
		reporter = output.ReporterFunc(func(domain.Diagnostic) {})
	}
	return &CatalogService{
		reader:   reader,
		decoder:  decoder,
		writer:   writer,
		reporter: reporter,
		resolver: resolver,
	}
}

// Load reads and parses the catalog at path.
func (s *CatalogService) Load(ctx context.Context, path string) (*entities.Catalog, error) {
	data, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := s.decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cat, nil
}

func (s *CatalogService) ListKeys(ctx context.Context, path string) ([]string, error) {
	cat, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return cat.Keys(), nil
}

// Compile resolves the requested locales and hands every table to the
// writer. Diagnostics are forwarded to the reporter as they are produced.
// The catalog is fully resolved before the first table is written.
func (s *CatalogService) Compile(ctx context.Context, req input.CompileRequest) ([]input.LocaleResult, error) {
	if !req.DryRun && s.writer == nil {
		return nil, domain.ErrMissingOutputDirectory
	}

	cat, err := s.Load(ctx, req.Input)
	if err != nil {
		return nil, err
	}

	tables := s.resolve(cat, req.Languages)
	locales := make([]string, 0, len(tables))
	for l := range tables {
		locales = append(locales, l)
	}
	sort.Strings(locales)

	results := make([]input.LocaleResult, 0, len(locales))
	for _, locale := range locales {
		t := tables[locale]
		for _, d := range t.Diagnostics {
			s.reporter.Report(d)
		}
		results = append(results, input.LocaleResult{
			Locale:      locale,
			Count:       len(t.Strings),
			Diagnostics: t.Diagnostics,
		})
	}

	if req.DryRun {
		return results, nil
	}

	for i := range results {
		if err := ctx.Err(); err != nil {
			return results[:i], err
		}
		path, err := s.writer.Write(ctx, results[i].Locale, tables[results[i].Locale].Strings)
		if err != nil {
			return results[:i], fmt.Errorf("write %s: %w", results[i].Locale, err)
		}
		results[i].Path = path
	}
	return results, nil
}

func (s *CatalogService) resolve(cat *entities.Catalog, languages []string) map[string]Table {
	if len(languages) == 0 {
		return s.resolver.ResolveAll(cat)
	}
	tables := make(map[string]Table, len(languages))
	for _, l := range languages {
		if _, done := tables[l]; done {
			continue
		}
		tables[l] = s.resolver.ResolveLocale(cat, l)
	}
	return tables
}

// Sync would update the catalog from compiler-emitted .stringsdata files.
func (s *CatalogService) Sync(ctx context.Context) error {
	return domain.ErrSyncNotSupported
}
