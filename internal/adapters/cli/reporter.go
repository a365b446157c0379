package cli

import (
	"log/slog"

	"xcstringstool/internal/domain"
	"xcstringstool/internal/ports/output"
)

var _ output.Reporter = (*LogReporter)(nil)

// LogReporter writes one warning per diagnostic.
type LogReporter struct {
	logger     *slog.Logger
	translator output.T
	locale     string
}

func NewLogReporter(logger *slog.Logger, translator output.T, locale string) *LogReporter {
	return &LogReporter{logger: logger, translator: translator, locale: locale}
}

func (r *LogReporter) Report(d domain.Diagnostic) {
	msg := r.translator.T(r.locale, "diag."+string(d.Kind), map[string]any{
		"Key":    d.Key,
		"Locale": d.Locale,
		"Detail": d.Detail,
	})
	r.logger.Warn(msg,
		slog.String("kind", string(d.Kind)),
		slog.String("key", d.Key),
		slog.String("locale", d.Locale),
	)
}
