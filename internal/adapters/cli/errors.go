package cli

import (
	"errors"

	"xcstringstool/internal/domain"
	"xcstringstool/internal/ports/output"
)

// ErrorMessage renders err as a user-facing message in locale. Errors
// outside the domain are returned verbatim.
func ErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	code := domain.Code(err)
	if code == "" {
		return err.Error()
	}

	data := map[string]any{"Detail": err.Error()}
	var versionErr *domain.UnsupportedVersionError
	if errors.As(err, &versionErr) {
		data["Expected"] = versionErr.Expected
		data["Found"] = versionErr.Found
	}
	var malformedErr *domain.MalformedError
	if errors.As(err, &malformedErr) {
		data["Detail"] = malformedErr.Error()
	}

	key := "error." + code
	msg := t.T(locale, key, data)
	if msg == key {
		return err.Error()
	}
	return msg
}
