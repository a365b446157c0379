package cli

import "fmt"

// stubT renders "key|Field=value..." for the fields the tests care about.
type stubT struct{}

func (stubT) T(locale, key string, data map[string]any) string {
	s := key
	for _, f := range []string{"Key", "Locale", "Count", "Path", "Expected", "Found"} {
		if v, ok := data[f]; ok {
			s += fmt.Sprintf("|%s=%v", f, v)
		}
	}
	return s
}
