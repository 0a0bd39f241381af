package mapping

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/catalog-feed-api/internal/models"
)

// Match scores, by tier. An exact primary hit short-circuits; the
// remaining tiers compete and the best candidate wins.
const (
	scoreExactPrimary    = 100
	scorePartialPrimary  = 90
	scoreExactSynonym    = 70
	scorePartialSynonym  = 60
	similarityThreshold  = 0.7
	similarityScoreScale = 50
)

// NormalizeHeader prepares a column header for comparison
func NormalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Similarity returns an edit-distance ratio between two strings,
// 0 meaning nothing in common and 1 meaning identical.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(longest)
}

// Score rates a normalized header against one field's keyword spec and
// returns 0-100. Keywords are normalized before comparison; the header
// is expected to be normalized already.
func Score(header string, keywords models.FieldKeywords) int {
	if header == "" {
		return 0
	}

	// Exact primary match wins outright
	for _, keyword := range keywords.Primary {
		if header == NormalizeHeader(keyword) {
			return scoreExactPrimary
		}
	}

	best := 0

	for _, keyword := range keywords.Primary {
		normalized := NormalizeHeader(keyword)
		if normalized == "" {
			continue
		}
		if strings.Contains(header, normalized) || strings.Contains(normalized, header) {
			best = max(best, scorePartialPrimary)
		}
	}

	for _, keyword := range keywords.Synonyms {
		normalized := NormalizeHeader(keyword)
		if header == normalized {
			best = max(best, scoreExactSynonym)
			continue
		}
		if normalized == "" {
			continue
		}
		if strings.Contains(header, normalized) || strings.Contains(normalized, header) {
			best = max(best, scorePartialSynonym)
		}
	}

	// Similarity fallback for typos, only when nothing matched above
	if best == 0 {
		for _, keyword := range append(append([]string{}, keywords.Primary...), keywords.Synonyms...) {
			normalized := NormalizeHeader(keyword)
			if ratio := Similarity(header, normalized); ratio > similarityThreshold {
				best = max(best, int(ratio*similarityScoreScale))
			}
		}
	}

	return best
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
