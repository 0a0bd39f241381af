package mapping

import (
	"github.com/catalog-feed-api/internal/models"
)

// MinScore is the acceptance threshold: a field stays unmapped when its
// best-scoring header rates below this.
const MinScore = 40

// Resolver assigns raw spreadsheet headers to target fields. The
// default implementation is greedy and order-sensitive: fields are
// processed in priority order and each consumes its best remaining
// header, so an earlier field can claim a header that would have suited
// a later field better. This matches the documented resolution contract;
// a globally optimal matcher can be swapped in behind this interface.
type Resolver interface {
	AutoMap(headers []string, targetFields []string, keywords map[string]models.FieldKeywords) *models.MappingResult
	Validate(mapping map[string]string, criticalFields []string) models.MappingValidation
}

type greedyResolver struct{}

// NewResolver returns the greedy field-priority resolver
func NewResolver() Resolver {
	return greedyResolver{}
}

// AutoMap resolves each target field to its best-scoring unconsumed
// header. Ties go to the header that appears first in the input order.
func (greedyResolver) AutoMap(headers []string, targetFields []string, keywords map[string]models.FieldKeywords) *models.MappingResult {
	normalized := make(map[string]string, len(headers))
	for _, header := range headers {
		normalized[header] = NormalizeHeader(header)
	}

	result := &models.MappingResult{
		Mapping:    make(map[string]string),
		Confidence: make(map[string]int),
	}
	used := make(map[string]bool)

	for _, field := range targetFields {
		fieldKeywords, ok := keywords[field]
		if !ok {
			continue
		}

		bestHeader := ""
		bestScore := 0
		for _, header := range headers {
			if used[header] {
				continue
			}
			if score := Score(normalized[header], fieldKeywords); score > bestScore {
				bestScore = score
				bestHeader = header
			}
		}

		if bestHeader != "" && bestScore >= MinScore {
			result.Mapping[bestHeader] = field
			result.Confidence[field] = bestScore
			used[bestHeader] = true
		}
	}

	for _, header := range headers {
		if _, ok := result.Mapping[header]; !ok {
			result.UnmatchedSource = append(result.UnmatchedSource, header)
		}
	}
	for _, field := range targetFields {
		if _, ok := result.Confidence[field]; !ok {
			result.UnmatchedTarget = append(result.UnmatchedTarget, field)
		}
	}

	return result
}

// Validate checks that every critical field is covered by the mapping.
// A nil criticalFields falls back to the default critical set.
func (greedyResolver) Validate(mapping map[string]string, criticalFields []string) models.MappingValidation {
	if criticalFields == nil {
		criticalFields = models.CriticalFields
	}

	mapped := make(map[string]bool, len(mapping))
	for _, field := range mapping {
		mapped[field] = true
	}

	var missing []string
	for _, field := range criticalFields {
		if !mapped[field] {
			missing = append(missing, field)
		}
	}

	return models.MappingValidation{
		IsValid:         len(missing) == 0,
		MissingCritical: missing,
	}
}

// DetectDuplicateTargets returns target fields assigned to more than
// one header. The consume-on-assign rule makes duplicates structurally
// impossible for resolver output, so any hit indicates a corrupted
// hand-edited template.
func DetectDuplicateTargets(mapping map[string]string) []string {
	counts := make(map[string]int, len(mapping))
	for _, field := range mapping {
		counts[field]++
	}

	var duplicates []string
	for field, count := range counts {
		if count > 1 {
			duplicates = append(duplicates, field)
		}
	}
	return duplicates
}
