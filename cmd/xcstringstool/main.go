package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"xcstringstool/internal/adapters/cli"
	"xcstringstool/internal/application"
	"xcstringstool/internal/config"
	"xcstringstool/internal/infrastructure/filesystem"
	"xcstringstool/internal/infrastructure/i18n"
	"xcstringstool/internal/infrastructure/logging"
	"xcstringstool/internal/infrastructure/plist"
	"xcstringstool/internal/infrastructure/xcstrings"
	"xcstringstool/internal/ports/output"
)

// go build -ldflags "-X main.version={version}"
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run returns the process exit code: 0 on success, 1 when the command
// fails, 2 for usage and configuration errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	inv, err := cli.Parse(version, args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(inv.ConfigPath, inv.Overrides)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", cli.ErrorMessage(i18n.NewTranslator("en"), "", err))
		return 2
	}

	logger := logging.NewLogger(cfg.Log)
	translator := i18n.NewTranslator("en")
	if lang, ok := translator.Match(cfg.UI.Locale); !ok {
		logger.Warn("no messages for ui locale, using fallback",
			slog.String("locale", cfg.UI.Locale),
			slog.String("fallback", lang.String()),
			slog.Any("available", translator.Languages()),
		)
	}

	// The writer is validated before any catalog is read.
	var writer output.StringsWriter
	if inv.Command == cli.CommandCompile && !cfg.Compile.DryRun {
		w, err := plist.NewWriter(cfg.Compile.OutputDirectory, cfg.Compile.Serialization, cfg.Compile.Table)
		if err != nil {
			logger.Error(cli.ErrorMessage(translator, cfg.UI.Locale, err))
			return 2
		}
		writer = w
	}

	catalogs := application.NewCatalogService(
		filesystem.NewReader(),
		xcstrings.NewParser(),
		writer,
		cli.NewLogReporter(logger, translator, cfg.UI.Locale),
		application.NewResolver(cfg.Compile.Variants),
	)

	runner := cli.NewRunner(cfg, catalogs, translator, stdout)
	if err := runner.Run(ctx, inv); err != nil {
		logger.Error(cli.ErrorMessage(translator, cfg.UI.Locale, err))
		return 1
	}
	return 0
}
