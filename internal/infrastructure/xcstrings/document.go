package xcstrings

// The JSON shapes of an .xcstrings document. Fields the tool does not use
// (substitutions, isCommentAutoGenerated, ...) are ignored by the decoder.

type documentDTO struct {
	SourceLanguage string              `json:"sourceLanguage"`
	Version        string              `json:"version"`
	Strings        map[string]entryDTO `json:"strings"`
}

type entryDTO struct {
	Comment         string                     `json:"comment"`
	ExtractionState string                     `json:"extractionState"`
	ShouldTranslate *bool                      `json:"shouldTranslate"`
	Localizations   map[string]localizationDTO `json:"localizations"`
}

type localizationDTO struct {
	StringUnit *stringUnitDTO `json:"stringUnit"`
	Variations *variationsDTO `json:"variations"`
}

type variationsDTO struct {
	Plural map[string]localizationDTO `json:"plural"`
	Device map[string]localizationDTO `json:"device"`
}

type stringUnitDTO struct {
	State string `json:"state"`
	Value string `json:"value"`
}
