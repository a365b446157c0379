package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrMalformedDocument        = errors.New("malformed catalog document")
	ErrUnsupportedVersion       = errors.New("unsupported catalog version")
	ErrUnsupportedOutputFormat  = errors.New("unsupported output format")
	ErrUnsupportedSerialization = errors.New("unsupported serialization format")
	ErrUnsupportedVariantPolicy = errors.New("unsupported variant policy")
	ErrInvalidLocale            = errors.New("invalid locale code")
	ErrMissingOutputDirectory   = errors.New("output directory is required")
	ErrSyncNotSupported         = errors.New("sync is not supported")
)

// MalformedError reports a catalog that is not valid JSON or does not match
// the catalog shape. Line and Column are 1-based and zero when unknown.
type MalformedError struct {
	Line   int
	Column int
	Path   string
	Err    error
}

func (e *MalformedError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMalformedDocument.Error())
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d, column %d", e.Line, e.Column)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformedDocument }

// UnsupportedVersionError is returned when a structurally valid catalog
// declares a schema version other than the supported one.
type UnsupportedVersionError struct {
	Expected string
	Found    string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%s (expected %q, found %q)", ErrUnsupportedVersion, e.Expected, e.Found)
}

func (e *UnsupportedVersionError) Is(target error) bool { return target == ErrUnsupportedVersion }

// Code returns a stable identifier for a domain error, used to look up
// user-facing messages. It returns "" for errors outside the domain.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedDocument):
		return "malformed_document"
	case errors.Is(err, ErrUnsupportedVersion):
		return "unsupported_version"
	case errors.Is(err, ErrUnsupportedOutputFormat):
		return "unsupported_output_format"
	case errors.Is(err, ErrUnsupportedSerialization):
		return "unsupported_serialization"
	case errors.Is(err, ErrUnsupportedVariantPolicy):
		return "unsupported_variant_policy"
	case errors.Is(err, ErrInvalidLocale):
		return "invalid_locale"
	case errors.Is(err, ErrMissingOutputDirectory):
		return "missing_output_directory"
	case errors.Is(err, ErrSyncNotSupported):
		return "sync_not_supported"
	default:
		return ""
	}
}
