package output

import "xcstringstool/internal/domain"

// Reporter receives per-entry resolution diagnostics.
type Reporter interface {
	Report(d domain.Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d domain.Diagnostic)

func (f ReporterFunc) Report(d domain.Diagnostic) { f(d) }
