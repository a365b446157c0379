// Package xcstrings decodes .xcstrings string catalogs.
package xcstrings

import (
	"bytes"
	"encoding/json"
	"errors"

	"xcstringstool/internal/domain"
	"xcstringstool/internal/domain/entities"
	"xcstringstool/internal/ports/output"
)

// SupportedVersion is the only catalog schema version accepted.
const SupportedVersion = "1.0"

// Ensure Parser implements the output.CatalogDecoder port.
var _ output.CatalogDecoder = (*Parser)(nil)

// Parser is the CatalogDecoder for .xcstrings documents.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Decode(data []byte) (*entities.Catalog, error) {
	return Parse(data)
}

// Parse decodes a whole catalog document and checks its schema version.
// Structural problems yield a *domain.MalformedError, a version mismatch a
// *domain.UnsupportedVersionError. No catalog is returned with an error.
func Parse(data []byte) (*entities.Catalog, error) {
	var doc documentDTO
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(data, err)
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, &domain.MalformedError{Line: 1, Column: 1, Err: errors.New("document is null")}
	}

	cat, err := catalogToDomain(doc)
	if err != nil {
		return nil, err
	}

	if cat.Version != SupportedVersion {
		return nil, &domain.UnsupportedVersionError{Expected: SupportedVersion, Found: cat.Version}
	}
	return cat, nil
}

func malformed(data []byte, err error) error {
	me := &domain.MalformedError{Err: err}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		me.Line, me.Column = position(data, syntaxErr.Offset)
	case errors.As(err, &typeErr):
		me.Line, me.Column = position(data, typeErr.Offset)
		me.Path = typeErr.Field
	}
	return me
}

// position converts a decoder offset, which points just past the offending
// byte, into a 1-based line and column.
func position(data []byte, offset int64) (line, column int) {
	idx := int(offset) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(data) {
		idx = len(data)
	}
	prefix := data[:idx]
	line = 1 + bytes.Count(prefix, []byte{'\n'})
	column = idx - bytes.LastIndexByte(prefix, '\n')
	return line, column
}
