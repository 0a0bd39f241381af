package importer

import (
	"sort"

	"github.com/catalog-feed-api/internal/models"
)

// MergeRows combines rows from two sources into one deduplicated set.
// Rows are ordered by origin tag descending so the higher-priority
// origin wins identifier ties, duplicates are dropped keeping the
// first survivor per code, and the result is sorted by code for
// deterministic output.
func MergeRows(first, second []models.CanonicalRow) []models.CanonicalRow {
	combined := make([]models.CanonicalRow, 0, len(first)+len(second))
	combined = append(combined, first...)
	combined = append(combined, second...)

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Source > combined[j].Source
	})

	seen := make(map[string]bool, len(combined))
	merged := combined[:0]
	for _, row := range combined {
		if seen[row.Code] {
			continue
		}
		seen[row.Code] = true
		merged = append(merged, row)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Code < merged[j].Code
	})

	return merged
}
