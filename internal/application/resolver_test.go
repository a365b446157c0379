package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcstringstool/internal/domain"
	"xcstringstool/internal/domain/entities"
)

func translated(v string) entities.Fixed {
	return entities.Fixed{Unit: entities.StringUnit{Value: v, State: entities.StateTranslated}}
}

func withState(v string, s entities.TranslationState) entities.Fixed {
	return entities.Fixed{Unit: entities.StringUnit{Value: v, State: s}}
}

func newCatalog(entries map[string]map[string]entities.Localization) *entities.Catalog {
	cat := &entities.Catalog{SourceLanguage: "en", Version: "1.0", Strings: map[string]entities.StringEntry{}}
	for key, locs := range entries {
		cat.Strings[key] = entities.StringEntry{Localizations: locs}
	}
	return cat
}

func kinds(ds []domain.Diagnostic) []domain.DiagnosticKind {
	out := make([]domain.DiagnosticKind, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Kind)
	}
	return out
}

func TestResolveAll_Greeting(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"greeting": {"en": translated("hello"), "de": translated("hallo")},
	})

	tables := NewResolver(domain.VariantExpand).ResolveAll(cat)

	require.Len(t, tables, 2)
	assert.Equal(t, map[string]string{"greeting": "hello"}, tables["en"].Strings)
	assert.Equal(t, map[string]string{"greeting": "hallo"}, tables["de"].Strings)
	assert.Empty(t, tables["en"].Diagnostics)
	assert.Empty(t, tables["de"].Diagnostics)
}

func TestResolveLocale_MissingLocalization(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"greeting": {"en": translated("hello"), "de": translated("hallo")},
		"farewell": {"en": translated("goodbye")},
	})
	r := NewResolver(domain.VariantExpand)

	de := r.ResolveLocale(cat, "de")
	assert.Equal(t, map[string]string{"greeting": "hallo"}, de.Strings)
	require.Len(t, de.Diagnostics, 1)
	assert.Equal(t, domain.Diagnostic{Kind: domain.DiagMissingLocalization, Key: "farewell", Locale: "de"}, de.Diagnostics[0])

	en := r.ResolveLocale(cat, "en")
	assert.Equal(t, map[string]string{"greeting": "hello", "farewell": "goodbye"}, en.Strings)
	assert.Empty(t, en.Diagnostics)
}

func TestResolveLocale_UnknownLocale(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"a": {"en": translated("A")},
		"b": {"en": translated("B")},
	})

	table := NewResolver(domain.VariantExpand).ResolveLocale(cat, "ja")

	assert.Equal(t, "ja", table.Locale)
	assert.Empty(t, table.Strings)
	assert.Equal(t, []domain.DiagnosticKind{domain.DiagMissingLocalization, domain.DiagMissingLocalization}, kinds(table.Diagnostics))
}

func TestResolveLocale_UntranslatedExcluded(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"done":    {"de": translated("fertig")},
		"review":  {"de": withState("prüfen", entities.StateNeedsReview)},
		"new":     {"de": withState("", entities.StateNew)},
		"nostate": {"de": withState("ohne", "")},
	})

	table := NewResolver(domain.VariantExpand).ResolveLocale(cat, "de")

	assert.Equal(t, map[string]string{"done": "fertig"}, table.Strings)
	require.Len(t, table.Diagnostics, 3)
	for _, d := range table.Diagnostics {
		assert.Equal(t, domain.DiagUntranslatedSkipped, d.Kind)
		assert.Equal(t, "de", d.Locale)
	}
	assert.Equal(t, "state missing", table.Diagnostics[1].Detail)
}

func TestResolveLocale_ExpandsVariants(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"%lld books": {"de": &entities.PluralVariant{Cases: map[entities.PluralCategory]entities.Localization{
			entities.PluralOther: translated("%lld Bücher"),
			entities.PluralOne:   translated("%lld Buch"),
		}}},
		"device": {"de": &entities.DeviceVariant{Cases: map[entities.DeviceCategory]entities.Localization{
			entities.DeviceMac:   translated("Mac"),
			entities.DeviceOther: translated("Andere Geräte"),
		}}},
	})

	table := NewResolver(domain.VariantExpand).ResolveLocale(cat, "de")

	assert.Equal(t, map[string]string{
		"%lld books.one":   "%lld Buch",
		"%lld books.other": "%lld Bücher",
		"device.mac":       "Mac",
		"device.other":     "Andere Geräte",
	}, table.Strings)
	assert.Empty(t, table.Diagnostics)
}

func TestResolveLocale_NestedVariant(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"files": {"en": &entities.DeviceVariant{Cases: map[entities.DeviceCategory]entities.Localization{
			entities.DeviceMac: &entities.PluralVariant{Cases: map[entities.PluralCategory]entities.Localization{
				entities.PluralOne:   translated("%d file"),
				entities.PluralOther: translated("%d files"),
			}},
			entities.DeviceOther: translated("files"),
		}}},
	})

	table := NewResolver(domain.VariantExpand).ResolveLocale(cat, "en")

	assert.Equal(t, map[string]string{
		"files.mac.one":   "%d file",
		"files.mac.other": "%d files",
		"files.other":     "files",
	}, table.Strings)
}

func TestResolveLocale_UntranslatedBranchSkipped(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"apples": {"fr": &entities.PluralVariant{Cases: map[entities.PluralCategory]entities.Localization{
			entities.PluralOne:   translated("%d pomme"),
			entities.PluralOther: withState("%d pommes", entities.StateNeedsReview),
		}}},
	})

	table := NewResolver(domain.VariantExpand).ResolveLocale(cat, "fr")

	assert.Equal(t, map[string]string{"apples.one": "%d pomme"}, table.Strings)
	require.Len(t, table.Diagnostics, 1)
	assert.Equal(t, domain.DiagUntranslatedSkipped, table.Diagnostics[0].Kind)
	assert.Equal(t, "apples.other", table.Diagnostics[0].Key)
}

func TestResolveLocale_SkipPolicy(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"books": {"en": &entities.PluralVariant{Cases: map[entities.PluralCategory]entities.Localization{
			entities.PluralOther: translated("books"),
		}}},
		"title": {"en": translated("Title")},
	})

	table := NewResolver(domain.VariantSkip).ResolveLocale(cat, "en")

	assert.Equal(t, map[string]string{"title": "Title"}, table.Strings)
	require.Len(t, table.Diagnostics, 1)
	assert.Equal(t, domain.DiagAmbiguousVariant, table.Diagnostics[0].Kind)
	assert.Equal(t, "books", table.Diagnostics[0].Key)
	assert.Equal(t, "plural variation", table.Diagnostics[0].Detail)
}

func TestResolveLocale_CollisionWithLiteralKey(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"items.one": {"en": translated("literal")},
		"items": {"en": &entities.PluralVariant{Cases: map[entities.PluralCategory]entities.Localization{
			entities.PluralOne:   translated("%d item"),
			entities.PluralOther: translated("%d items"),
		}}},
	})

	table := NewResolver(domain.VariantExpand).ResolveLocale(cat, "en")

	assert.Equal(t, "literal", table.Strings["items.one"])
	assert.Equal(t, "%d items", table.Strings["items.other"])
	require.Len(t, table.Diagnostics, 1)
	assert.Equal(t, domain.DiagKeyCollision, table.Diagnostics[0].Kind)
	assert.Equal(t, "items.one", table.Diagnostics[0].Key)
}

func TestResolveLocale_CollisionWithUntranslatedLiteralKey(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"items.other": {"de": withState("x", entities.StateNew)},
		"items": {"de": &entities.PluralVariant{Cases: map[entities.PluralCategory]entities.Localization{
			entities.PluralOther: translated("%d Dinge"),
		}}},
	})

	table := NewResolver(domain.VariantExpand).ResolveLocale(cat, "de")

	assert.NotContains(t, table.Strings, "items.other")
	assert.Equal(t, []domain.DiagnosticKind{domain.DiagUntranslatedSkipped, domain.DiagKeyCollision}, kinds(table.Diagnostics))
}

func TestResolveLocale_CollisionBetweenExpansions(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"a": {"en": &entities.DeviceVariant{Cases: map[entities.DeviceCategory]entities.Localization{
			"b.c": translated("first"),
		}}},
		"a.b": {"en": &entities.DeviceVariant{Cases: map[entities.DeviceCategory]entities.Localization{
			"c": translated("second"),
		}}},
	})

	table := NewResolver(domain.VariantExpand).ResolveLocale(cat, "en")

	assert.Equal(t, map[string]string{"a.b.c": "first"}, table.Strings)
	assert.Equal(t, []domain.DiagnosticKind{domain.DiagKeyCollision}, kinds(table.Diagnostics))
}

func TestResolveLocale_EmptyLocalizations(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"blank":   {"en": entities.Empty{}},
		"nocases": {"en": &entities.PluralVariant{Cases: map[entities.PluralCategory]entities.Localization{}}},
	})

	table := NewResolver(domain.VariantExpand).ResolveLocale(cat, "en")

	assert.Empty(t, table.Strings)
	assert.Equal(t, []domain.DiagnosticKind{domain.DiagEmptyLocalization, domain.DiagEmptyLocalization}, kinds(table.Diagnostics))
}

func TestResolveAll_IncludesEmptyLocales(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"greeting": {"en": translated("hello"), "fr": withState("bonjour", entities.StateNeedsReview)},
	})

	tables := NewResolver(domain.VariantExpand).ResolveAll(cat)

	require.Contains(t, tables, "fr")
	assert.Empty(t, tables["fr"].Strings)
	assert.Equal(t, []domain.DiagnosticKind{domain.DiagUntranslatedSkipped}, kinds(tables["fr"].Diagnostics))
}

func TestResolveAll_ReportsMissingPerLocale(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"greeting": {"en": translated("hello"), "de": translated("hallo")},
		"farewell": {"en": translated("goodbye")},
	})

	tables := NewResolver(domain.VariantExpand).ResolveAll(cat)

	assert.Empty(t, tables["en"].Diagnostics)
	assert.Equal(t, []domain.Diagnostic{{Kind: domain.DiagMissingLocalization, Key: "farewell", Locale: "de"}}, tables["de"].Diagnostics)
}

func TestNewResolver_DefaultsToExpand(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"k": {"en": &entities.PluralVariant{Cases: map[entities.PluralCategory]entities.Localization{
			entities.PluralOther: translated("v"),
		}}},
	})

	table := NewResolver("").ResolveLocale(cat, "en")
	assert.Equal(t, map[string]string{"k.other": "v"}, table.Strings)
}

// Only keys with a translated Fixed localization, or expanded branches, appear.
func TestResolveLocale_KeyCoverage(t *testing.T) {
	cat := newCatalog(map[string]map[string]entities.Localization{
		"a": {"en": translated("A"), "de": translated("A-de")},
		"b": {"en": withState("B", entities.StateStale)},
		"c": {"de": translated("C-de")},
		"d": {"en": entities.Empty{}},
	})

	table := NewResolver(domain.VariantSkip).ResolveLocale(cat, "en")
	assert.Equal(t, map[string]string{"a": "A"}, table.Strings)
	assert.Len(t, table.Diagnostics, 3)
}
