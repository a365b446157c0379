package xcstrings

import (
	"errors"
	"fmt"
	"sort"

	"xcstringstool/internal/domain"
	"xcstringstool/internal/domain/entities"
)

var errMultipleShapes = errors.New("localization has more than one of stringUnit, variations.plural, variations.device")

func catalogToDomain(doc documentDTO) (*entities.Catalog, error) {
	cat := &entities.Catalog{
		SourceLanguage: doc.SourceLanguage,
		Version:        doc.Version,
		Strings:        make(map[string]entities.StringEntry, len(doc.Strings)),
	}
	for _, key := range sortedKeys(doc.Strings) {
		entry, err := entryToDomain(doc.Strings[key], fmt.Sprintf("strings[%q]", key))
		if err != nil {
			return nil, err
		}
		cat.Strings[key] = entry
	}
	return cat, nil
}

func entryToDomain(e entryDTO, path string) (entities.StringEntry, error) {
	entry := entities.StringEntry{
		Comment:         e.Comment,
		ExtractionState: entities.ExtractionState(e.ExtractionState),
		ShouldTranslate: e.ShouldTranslate,
		Localizations:   make(map[string]entities.Localization, len(e.Localizations)),
	}
	for _, locale := range sortedKeys(e.Localizations) {
		loc, err := localizationToDomain(e.Localizations[locale], fmt.Sprintf("%s.localizations[%q]", path, locale))
		if err != nil {
			return entities.StringEntry{}, err
		}
		entry.Localizations[locale] = loc
	}
	return entry, nil
}

func localizationToDomain(l localizationDTO, path string) (entities.Localization, error) {
	var plural, device map[string]localizationDTO
	if l.Variations != nil {
		plural, device = l.Variations.Plural, l.Variations.Device
	}

	shapes := 0
	for _, present := range []bool{l.StringUnit != nil, plural != nil, device != nil} {
		if present {
			shapes++
		}
	}
	if shapes > 1 {
		return nil, &domain.MalformedError{Path: path, Err: errMultipleShapes}
	}

	switch {
	case l.StringUnit != nil:
		return entities.Fixed{Unit: entities.StringUnit{
			Value: l.StringUnit.Value,
			State: entities.TranslationState(l.StringUnit.State),
		}}, nil
	case plural != nil:
		v := &entities.PluralVariant{Cases: make(map[entities.PluralCategory]entities.Localization, len(plural))}
		for _, category := range sortedKeys(plural) {
			sub, err := localizationToDomain(plural[category], fmt.Sprintf("%s.variations.plural[%q]", path, category))
			if err != nil {
				return nil, err
			}
			v.Cases[entities.PluralCategory(category)] = sub
		}
		return v, nil
	case device != nil:
		v := &entities.DeviceVariant{Cases: make(map[entities.DeviceCategory]entities.Localization, len(device))}
		for _, category := range sortedKeys(device) {
			sub, err := localizationToDomain(device[category], fmt.Sprintf("%s.variations.device[%q]", path, category))
			if err != nil {
				return nil, err
			}
			v.Cases[entities.DeviceCategory(category)] = sub
		}
		return v, nil
	default:
		return entities.Empty{}, nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
