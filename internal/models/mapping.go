package models

// FieldKeywords is the fuzzy keyword spec for one target field
type FieldKeywords struct {
	Primary  []string `json:"primary"`
	Synonyms []string `json:"synonyms"`
}

// KeywordConfig is the persisted mapping configuration document.
// FuzzyKeywords drives automatic resolution; Mappings holds saved
// header→field templates keyed by source file name stem.
type KeywordConfig struct {
	Version       string                       `json:"version"`
	FuzzyKeywords map[string]FieldKeywords     `json:"fuzzy_keywords"`
	Mappings      map[string]map[string]string `json:"mappings"`
}

// MappingResult is the outcome of automatic column resolution.
// Mapping is source header → target field; Confidence is target
// field → match score.
type MappingResult struct {
	Mapping         map[string]string `json:"mapping"`
	Confidence      map[string]int    `json:"confidence"`
	UnmatchedSource []string          `json:"unmatched_source"`
	UnmatchedTarget []string          `json:"unmatched_target"`
}

// MappingValidation reports whether a mapping covers all critical fields
type MappingValidation struct {
	IsValid         bool     `json:"is_valid"`
	MissingCritical []string `json:"missing_critical,omitempty"`
}

// CriticalFields are the target fields a usable mapping must cover
var CriticalFields = []string{FieldCode, FieldBrand, FieldModel, FieldPrice}
