package mapping_test

import (
	"testing"

	"github.com/catalog-feed-api/internal/mapping"
	"github.com/catalog-feed-api/internal/models"
)

func stockKeywords() map[string]models.FieldKeywords {
	return map[string]models.FieldKeywords{
		models.FieldCode: {
			Primary:  []string{"Код предложения"},
			Synonyms: []string{"код", "id"},
		},
		models.FieldBrand: {
			Primary:  []string{"Марка"},
			Synonyms: []string{"бренд"},
		},
		models.FieldModel: {
			Primary:  []string{"Модель"},
			Synonyms: []string{"модификация модели"},
		},
		models.FieldPrice: {
			Primary:  []string{"СРС с переоценкой"},
			Synonyms: []string{"цена", "стоимость"},
		},
	}
}

func TestAutoMap_ExactHeaders(t *testing.T) {
	resolver := mapping.NewResolver()
	headers := []string{"Код предложения", "Марка", "Модель", "СРС с переоценкой"}
	fields := []string{models.FieldCode, models.FieldBrand, models.FieldModel, models.FieldPrice}

	result := resolver.AutoMap(headers, fields, stockKeywords())

	if len(result.Mapping) != 4 {
		t.Fatalf("Expected 4 mapped headers, got %d", len(result.Mapping))
	}
	for field, confidence := range result.Confidence {
		if confidence != 100 {
			t.Errorf("Expected confidence 100 for %s, got %d", field, confidence)
		}
	}
	if len(result.UnmatchedSource) != 0 {
		t.Errorf("Expected no unmatched headers, got %v", result.UnmatchedSource)
	}
	if len(result.UnmatchedTarget) != 0 {
		t.Errorf("Expected no unmatched fields, got %v", result.UnmatchedTarget)
	}

	validation := resolver.Validate(result.Mapping, nil)
	if !validation.IsValid {
		t.Errorf("Expected valid mapping, missing: %v", validation.MissingCritical)
	}
}

func TestAutoMap_Injective(t *testing.T) {
	resolver := mapping.NewResolver()
	headers := []string{"Код предложения", "Код", "Марка"}
	fields := []string{models.FieldCode, models.FieldBrand, models.FieldModel, models.FieldPrice}

	result := resolver.AutoMap(headers, fields, stockKeywords())

	// No header assigned to two fields
	seen := make(map[string]bool)
	for header := range result.Mapping {
		if seen[header] {
			t.Errorf("Header %q assigned twice", header)
		}
		seen[header] = true
	}
	if duplicates := mapping.DetectDuplicateTargets(result.Mapping); len(duplicates) != 0 {
		t.Errorf("Expected no duplicate targets, got %v", duplicates)
	}
}

func TestAutoMap_BelowThresholdStaysUnmapped(t *testing.T) {
	resolver := mapping.NewResolver()
	headers := []string{"Совершенно посторонний столбец"}
	fields := []string{models.FieldBrand}

	result := resolver.AutoMap(headers, fields, stockKeywords())

	if len(result.Mapping) != 0 {
		t.Errorf("Expected empty mapping, got %v", result.Mapping)
	}
	if len(result.UnmatchedSource) != 1 || len(result.UnmatchedTarget) != 1 {
		t.Errorf("Expected header and field unmatched, got %v / %v",
			result.UnmatchedSource, result.UnmatchedTarget)
	}
}

func TestAutoMap_GreedyOrderConsumesHeader(t *testing.T) {
	// An earlier field claims a header that would have been an exact
	// match for a later field. This ordering is part of the contract.
	resolver := mapping.NewResolver()
	keywords := map[string]models.FieldKeywords{
		models.FieldPriceOriginal: {Primary: []string{"цена без скидки"}},
		models.FieldPrice:         {Primary: []string{"цена"}},
	}
	headers := []string{"Цена"}
	fields := []string{models.FieldPriceOriginal, models.FieldPrice}

	result := resolver.AutoMap(headers, fields, keywords)

	if result.Mapping["Цена"] != models.FieldPriceOriginal {
		t.Errorf("Expected earlier field to consume the header, got %v", result.Mapping)
	}
	if len(result.UnmatchedTarget) != 1 || result.UnmatchedTarget[0] != models.FieldPrice {
		t.Errorf("Expected later field unmatched, got %v", result.UnmatchedTarget)
	}
}

func TestAutoMap_TieBreaksToFirstHeader(t *testing.T) {
	resolver := mapping.NewResolver()
	keywords := map[string]models.FieldKeywords{
		models.FieldPrice: {Primary: []string{"цена"}},
	}
	// Both headers contain the primary keyword and score 90
	headers := []string{"Цена продавца", "Цена покупателя"}

	result := resolver.AutoMap(headers, []string{models.FieldPrice}, keywords)

	if result.Mapping["Цена продавца"] != models.FieldPrice {
		t.Errorf("Expected first header to win the tie, got %v", result.Mapping)
	}
}

func TestAutoMap_FieldWithoutKeywordsSkipped(t *testing.T) {
	resolver := mapping.NewResolver()
	headers := []string{"Марка"}
	fields := []string{models.FieldKeys, models.FieldBrand}

	result := resolver.AutoMap(headers, fields, stockKeywords())

	if result.Mapping["Марка"] != models.FieldBrand {
		t.Errorf("Expected brand mapping, got %v", result.Mapping)
	}
	found := false
	for _, field := range result.UnmatchedTarget {
		if field == models.FieldKeys {
			found = true
		}
	}
	if !found {
		t.Error("Expected keys field among unmatched targets")
	}
}

func TestValidate_MissingCritical(t *testing.T) {
	resolver := mapping.NewResolver()
	mappingResult := map[string]string{
		"Код предложения": models.FieldCode,
		"Марка":           models.FieldBrand,
	}

	validation := resolver.Validate(mappingResult, nil)

	if validation.IsValid {
		t.Error("Expected invalid mapping")
	}
	if len(validation.MissingCritical) != 2 {
		t.Fatalf("Expected 2 missing critical fields, got %v", validation.MissingCritical)
	}
	expected := map[string]bool{models.FieldModel: true, models.FieldPrice: true}
	for _, field := range validation.MissingCritical {
		if !expected[field] {
			t.Errorf("Unexpected missing field %q", field)
		}
	}
}

func TestValidate_CustomCriticalFields(t *testing.T) {
	resolver := mapping.NewResolver()
	mappingResult := map[string]string{"VIN": models.FieldVIN}

	validation := resolver.Validate(mappingResult, []string{models.FieldVIN})
	if !validation.IsValid {
		t.Errorf("Expected valid mapping for custom critical set, missing: %v", validation.MissingCritical)
	}
}

func TestDetectDuplicateTargets(t *testing.T) {
	corrupted := map[string]string{
		"Цена":   models.FieldPrice,
		"Цена 2": models.FieldPrice,
		"Марка":  models.FieldBrand,
	}

	duplicates := mapping.DetectDuplicateTargets(corrupted)
	if len(duplicates) != 1 || duplicates[0] != models.FieldPrice {
		t.Errorf("Expected [price], got %v", duplicates)
	}
}
