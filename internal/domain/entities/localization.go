package entities

import "sort"

// Localization is the translation of one key for one locale. It is one of
// Fixed, *PluralVariant, *DeviceVariant or Empty.
type Localization interface {
	isLocalization()
}

// TranslationState is the review state of a string unit.
type TranslationState string

const (
	StateTranslated  TranslationState = "translated"
	StateNeedsReview TranslationState = "needs_review"
	StateNew         TranslationState = "new"
	StateStale       TranslationState = "stale"
)

// StringUnit is one literal translated string.
type StringUnit struct {
	Value string
	State TranslationState
}

// Usable reports whether the unit may be shipped. Only fully translated
// content qualifies.
func (u StringUnit) Usable() bool {
	return u.State == StateTranslated
}

// Fixed is a localization with a single string unit.
type Fixed struct {
	Unit StringUnit
}

// Empty is a localization node that carries neither a string unit nor
// variations.
type Empty struct{}

// Branch is one category of a variant.
type Branch struct {
	Category     string
	Localization Localization
}

// Variant is a localization selected at runtime by a category.
type Variant interface {
	Localization
	// Dimension names the selector, "plural" or "device".
	Dimension() string
	// Branches returns the cases in canonical category order.
	Branches() []Branch
}

// PluralCategory is a CLDR plural category.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

var pluralOrder = []string{"zero", "one", "two", "few", "many", "other"}

// DeviceCategory is a device class used by device variations.
type DeviceCategory string

const (
	DeviceIPhone      DeviceCategory = "iphone"
	DeviceIPad        DeviceCategory = "ipad"
	DeviceIPod        DeviceCategory = "ipod"
	DeviceMac         DeviceCategory = "mac"
	DeviceAppleWatch  DeviceCategory = "applewatch"
	DeviceAppleTV     DeviceCategory = "appletv"
	DeviceAppleVision DeviceCategory = "applevision"
	DeviceOther       DeviceCategory = "other"
)

var deviceOrder = []string{"iphone", "ipad", "ipod", "mac", "applewatch", "appletv", "applevision", "other"}

// PluralVariant selects a sub-localization by plural category.
type PluralVariant struct {
	Cases map[PluralCategory]Localization
}

// DeviceVariant selects a sub-localization by device class.
type DeviceVariant struct {
	Cases map[DeviceCategory]Localization
}

func (Fixed) isLocalization()          {}
func (Empty) isLocalization()          {}
func (*PluralVariant) isLocalization() {}
func (*DeviceVariant) isLocalization() {}

func (*PluralVariant) Dimension() string { return "plural" }
func (*DeviceVariant) Dimension() string { return "device" }

func (v *PluralVariant) Branches() []Branch {
	cases := make(map[string]Localization, len(v.Cases))
	for k, l := range v.Cases {
		cases[string(k)] = l
	}
	return orderedBranches(cases, pluralOrder)
}

func (v *DeviceVariant) Branches() []Branch {
	cases := make(map[string]Localization, len(v.Cases))
	for k, l := range v.Cases {
		cases[string(k)] = l
	}
	return orderedBranches(cases, deviceOrder)
}

// orderedBranches lists known categories first in their canonical order,
// then unknown ones alphabetically.
func orderedBranches(cases map[string]Localization, order []string) []Branch {
	branches := make([]Branch, 0, len(cases))
	known := make(map[string]struct{}, len(order))
	for _, c := range order {
		known[c] = struct{}{}
		if l, ok := cases[c]; ok {
			branches = append(branches, Branch{Category: c, Localization: l})
		}
	}
	var rest []string
	for c := range cases {
		if _, ok := known[c]; !ok {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	for _, c := range rest {
		branches = append(branches, Branch{Category: c, Localization: cases[c]})
	}
	return branches
}
