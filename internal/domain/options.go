package domain

import (
	"fmt"
	"strings"
)

// OutputFormat selects the artifact produced by compile.
type OutputFormat string

// FormatStrings is the flat Localizable.strings property list. It is the
// only format implemented.
const FormatStrings OutputFormat = "strings"

// ParseOutputFormat validates s against the known output formats.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.TrimSpace(s)) {
	case FormatStrings:
		return FormatStrings, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOutputFormat, s)
	}
}

// Serialization selects the property list encoding.
type Serialization string

const (
	SerializationText   Serialization = "text"
	SerializationBinary Serialization = "binary"
)

// ParseSerialization validates s against the known encodings.
func ParseSerialization(s string) (Serialization, error) {
	switch Serialization(strings.ToLower(strings.TrimSpace(s))) {
	case SerializationText:
		return SerializationText, nil
	case SerializationBinary:
		return SerializationBinary, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSerialization, s)
	}
}

// VariantPolicy decides what the resolver does with plural and device
// variants, which have no single string value.
type VariantPolicy string

const (
	// VariantExpand emits one output key per category: key + "." + category.
	VariantExpand VariantPolicy = "expand"
	// VariantSkip drops the entry and reports an ambiguous_variant diagnostic.
	VariantSkip VariantPolicy = "skip"
)

// ParseVariantPolicy validates s against the known policies.
func ParseVariantPolicy(s string) (VariantPolicy, error) {
	switch VariantPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case VariantExpand:
		return VariantExpand, nil
	case VariantSkip:
		return VariantSkip, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVariantPolicy, s)
	}
}
