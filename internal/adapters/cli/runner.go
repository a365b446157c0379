package cli

import (
	"context"
	"fmt"
	"io"

	"xcstringstool/internal/config"
	"xcstringstool/internal/ports/input"
	"xcstringstool/internal/ports/output"
)

// Runner dispatches a parsed invocation to the catalog use cases.
type Runner struct {
	cfg        *config.Config
	catalogs   input.CatalogUseCase
	translator output.T
	out        io.Writer
}

func NewRunner(cfg *config.Config, catalogs input.CatalogUseCase, translator output.T, out io.Writer) *Runner {
	return &Runner{cfg: cfg, catalogs: catalogs, translator: translator, out: out}
}

func (r *Runner) Run(ctx context.Context, inv *Invocation) error {
	switch inv.Command {
	case CommandPrint:
		return r.print(ctx, inv.Input)
	case CommandCompile:
		return r.compile(ctx, inv.Input)
	case CommandSync:
		return r.catalogs.Sync(ctx)
	default:
		return fmt.Errorf("unknown command %q", inv.Command)
	}
}

func (r *Runner) print(ctx context.Context, path string) error {
	keys, err := r.catalogs.ListKeys(ctx, path)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintln(r.out, k)
	}
	return nil
}

func (r *Runner) compile(ctx context.Context, path string) error {
	results, err := r.catalogs.Compile(ctx, input.CompileRequest{
		Input:     path,
		Languages: r.cfg.Compile.Languages,
		DryRun:    r.cfg.Compile.DryRun,
	})
	if err != nil {
		return err
	}

	skipped := 0
	locale := r.cfg.UI.Locale
	for _, res := range results {
		skipped += len(res.Diagnostics)
		data := map[string]any{"Locale": res.Locale, "Count": res.Count, "Path": res.Path}
		key := "compile.written"
		if r.cfg.Compile.DryRun {
			key = "compile.dry_run"
		}
		fmt.Fprintln(r.out, r.translator.T(locale, key, data))
	}
	if skipped > 0 {
		fmt.Fprintln(r.out, r.translator.T(locale, "compile.skipped", map[string]any{"Count": skipped}))
	}
	return nil
}
