package output

import "context"

// StringsWriter persists the flattened table of one locale and returns the
// location it was written to.
type StringsWriter interface {
	Write(ctx context.Context, locale string, strings map[string]string) (string, error)
}
