// Package plist writes flattened string tables as property lists inside
// <locale>.lproj directories.
package plist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"howett.net/plist"

	"xcstringstool/internal/domain"
	"xcstringstool/internal/ports/output"
)

// DefaultTable is the strings table name used when none is configured.
const DefaultTable = "Localizable"

var _ output.StringsWriter = (*Writer)(nil)

type Writer struct {
	dir    string
	table  string
	format int
}

// NewWriter validates the destination and encoding up front so that a bad
// configuration fails before any file is written.
func NewWriter(dir string, serialization domain.Serialization, table string) (*Writer, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, domain.ErrMissingOutputDirectory
	}

	var format int
	switch serialization {
	case domain.SerializationText:
		format = plist.XMLFormat
	case domain.SerializationBinary:
		format = plist.BinaryFormat
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSerialization, serialization)
	}

	if table == "" {
		table = DefaultTable
	}
	return &Writer{dir: dir, table: table, format: format}, nil
}

// Write creates <dir>/<locale>.lproj and encodes entries into <table>.strings.
// Locales come from the catalog, so anything that is not a plain BCP 47 tag
// is refused before touching the filesystem.
func (w *Writer) Write(ctx context.Context, locale string, entries map[string]string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkLocale(locale); err != nil {
		return "", err
	}

	lproj := filepath.Join(w.dir, locale+".lproj")
	if err := os.MkdirAll(lproj, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", lproj, err)
	}

	path := filepath.Join(lproj, w.table+".strings")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	enc := plist.NewEncoderForFormat(f, w.format)
	if w.format == plist.XMLFormat {
		enc.Indent("\t")
	}
	if err := enc.Encode(entries); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func checkLocale(locale string) error {
	if locale == "" || strings.ContainsAny(locale, `/\`) || strings.Contains(locale, "..") {
		return fmt.Errorf("%w: %q", domain.ErrInvalidLocale, locale)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidLocale, locale)
	}
	return nil
}
