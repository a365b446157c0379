package entities

import "sort"

// Catalog is a parsed string catalog. It is not modified after parsing and
// may be shared between goroutines.
type Catalog struct {
	SourceLanguage string
	Version        string
	Strings        map[string]StringEntry
}

// ExtractionState records how a key entered the catalog.
type ExtractionState string

const (
	ExtractionManual             ExtractionState = "manual"
	ExtractionExtractedWithValue ExtractionState = "extracted_with_value"
	ExtractionStale              ExtractionState = "stale"
	ExtractionMigrated           ExtractionState = "migrated"
)

// StringEntry holds every localization of one translation key. Comment,
// ExtractionState and ShouldTranslate are kept as document metadata.
type StringEntry struct {
	Comment         string
	ExtractionState ExtractionState
	ShouldTranslate *bool
	Localizations   map[string]Localization
}

// Keys returns the translation keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Strings))
	for k := range c.Strings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Locales returns every locale that appears in at least one entry, sorted.
func (c *Catalog) Locales() []string {
	seen := make(map[string]struct{})
	for _, entry := range c.Strings {
		for locale := range entry.Localizations {
			seen[locale] = struct{}{}
		}
	}
	locales := make([]string, 0, len(seen))
	for l := range seen {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// Entry returns the entry for key.
func (c *Catalog) Entry(key string) (StringEntry, bool) {
	e, ok := c.Strings[key]
	return e, ok
}

// HasKey reports whether key is a literal translation key of the catalog.
func (c *Catalog) HasKey(key string) bool {
	_, ok := c.Strings[key]
	return ok
}
