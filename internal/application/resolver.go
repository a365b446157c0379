package application

import (
	"xcstringstool/internal/domain"
	"xcstringstool/internal/domain/entities"
)

// VariantSeparator joins a key and a variant category in expanded keys.
const VariantSeparator = "."

// Table is the flattened key->string mapping of one locale together with
// every entry that was skipped while building it.
type Table struct {
	Locale      string
	Strings     map[string]string
	Diagnostics []domain.Diagnostic
}

// Resolver flattens catalogs into per-locale tables. It holds no mutable
// state and may be used concurrently.
type Resolver struct {
	policy domain.VariantPolicy
}

func NewResolver(policy domain.VariantPolicy) *Resolver {
	if policy == "" {
		policy = domain.VariantExpand
	}
	return &Resolver{policy: policy}
}

// ResolveAll returns one table per locale observed in the catalog, including
// locales whose table ends up empty.
func (r *Resolver) ResolveAll(c *entities.Catalog) map[string]Table {
	tables := make(map[string]Table)
	for _, locale := range c.Locales() {
		tables[locale] = r.ResolveLocale(c, locale)
	}
	return tables
}

type pendingVariant struct {
	key     string
	variant entities.Variant
}

// ResolveLocale flattens the catalog for one locale. Literal keys are placed
// first so that an expanded variant key can never overwrite one.
func (r *Resolver) ResolveLocale(c *entities.Catalog, locale string) Table {
	t := Table{Locale: locale, Strings: make(map[string]string)}

	var variants []pendingVariant
	for _, key := range c.Keys() {
		loc, ok := c.Strings[key].Localizations[locale]
		if !ok {
			t.report(domain.DiagMissingLocalization, key, "")
			continue
		}

		switch l := loc.(type) {
		case entities.Fixed:
			if !l.Unit.Usable() {
				t.report(domain.DiagUntranslatedSkipped, key, stateDetail(l.Unit.State))
				continue
			}
			t.Strings[key] = l.Unit.Value
		case entities.Variant:
			if r.policy == domain.VariantSkip {
				t.report(domain.DiagAmbiguousVariant, key, l.Dimension()+" variation")
				continue
			}
			variants = append(variants, pendingVariant{key: key, variant: l})
		case entities.Empty:
			t.report(domain.DiagEmptyLocalization, key, "")
		default:
			t.report(domain.DiagEmptyLocalization, key, "unrecognized localization")
		}
	}

	for _, v := range variants {
		t.expand(c, v.key, v.variant)
	}
	return t
}

func (t *Table) expand(c *entities.Catalog, prefix string, v entities.Variant) {
	branches := v.Branches()
	if len(branches) == 0 {
		t.report(domain.DiagEmptyLocalization, prefix, "empty "+v.Dimension()+" variation")
		return
	}

	for _, b := range branches {
		key := prefix + VariantSeparator + b.Category

		switch l := b.Localization.(type) {
		case entities.Fixed:
			if !l.Unit.Usable() {
				t.report(domain.DiagUntranslatedSkipped, key, stateDetail(l.Unit.State))
				continue
			}
			if _, taken := t.Strings[key]; taken || c.HasKey(key) {
				t.report(domain.DiagKeyCollision, key, "expanded variant key already exists")
				continue
			}
			t.Strings[key] = l.Unit.Value
		case entities.Variant:
			t.expand(c, key, l)
		case entities.Empty:
			t.report(domain.DiagEmptyLocalization, key, "")
		default:
			t.report(domain.DiagEmptyLocalization, key, "unrecognized localization")
		}
	}
}

func (t *Table) report(kind domain.DiagnosticKind, key, detail string) {
	t.Diagnostics = append(t.Diagnostics, domain.Diagnostic{
		Kind:   kind,
		Key:    key,
		Locale: t.Locale,
		Detail: detail,
	})
}

func stateDetail(s entities.TranslationState) string {
	if s == "" {
		return "state missing"
	}
	return "state " + string(s)
}
