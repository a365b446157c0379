package domain

import "fmt"

// DiagnosticKind classifies a recoverable, per-entry resolution problem.
type DiagnosticKind string

const (
	// DiagMissingLocalization: the key has no localization for the locale.
	DiagMissingLocalization DiagnosticKind = "missing_localization"
	// DiagUntranslatedSkipped: a string unit exists but is not in the translated state.
	DiagUntranslatedSkipped DiagnosticKind = "untranslated_skipped"
	// DiagAmbiguousVariant: a plural/device variant was skipped instead of expanded.
	DiagAmbiguousVariant DiagnosticKind = "ambiguous_variant"
	// DiagEmptyLocalization: the localization node carries no usable shape.
	DiagEmptyLocalization DiagnosticKind = "empty_localization"
	// DiagKeyCollision: an expanded variant key clashes with an existing key.
	DiagKeyCollision DiagnosticKind = "key_collision"
)

// Diagnostic is a single skipped key/locale pair. Key is the output key the
// problem applies to, which for variant branches includes the category suffix.
type Diagnostic struct {
	Kind   DiagnosticKind
	Key    string
	Locale string
	Detail string
}

func (d Diagnostic) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: key=%q locale=%q", d.Kind, d.Key, d.Locale)
	}
	return fmt.Sprintf("%s: key=%q locale=%q (%s)", d.Kind, d.Key, d.Locale, d.Detail)
}
