package importer_test

import (
	"testing"

	"github.com/catalog-feed-api/internal/importer"
	"github.com/catalog-feed-api/internal/models"
)

func stockRow(code string) models.CanonicalRow {
	return models.CanonicalRow{Code: code, Brand: "КАМАЗ", Source: models.OriginStock}
}

func winterRow(code string) models.CanonicalRow {
	return models.CanonicalRow{Code: code, Brand: "МАЗ", Source: models.OriginWinterSale}
}

func TestMergeRows_WinterSaleWinsTies(t *testing.T) {
	stock := []models.CanonicalRow{stockRow("A-1"), stockRow("A-2")}
	winter := []models.CanonicalRow{winterRow("A-2"), winterRow("A-3")}

	merged := importer.MergeRows(stock, winter)

	if len(merged) != 3 {
		t.Fatalf("Expected 3 rows after dedupe, got %d", len(merged))
	}
	for _, row := range merged {
		if row.Code == "A-2" && row.Source != models.OriginWinterSale {
			t.Errorf("Expected winter_sale row to win the A-2 tie, got %q", row.Source)
		}
	}
}

func TestMergeRows_SortedByCode(t *testing.T) {
	stock := []models.CanonicalRow{stockRow("C-3"), stockRow("A-1")}
	winter := []models.CanonicalRow{winterRow("B-2")}

	merged := importer.MergeRows(stock, winter)

	expected := []string{"A-1", "B-2", "C-3"}
	for i, code := range expected {
		if merged[i].Code != code {
			t.Errorf("Position %d: expected %q, got %q", i, code, merged[i].Code)
		}
	}
}

func TestMergeRows_NoDuplicateCodes(t *testing.T) {
	stock := []models.CanonicalRow{stockRow("A-1"), stockRow("A-1")}
	winter := []models.CanonicalRow{winterRow("A-1")}

	merged := importer.MergeRows(stock, winter)
	if len(merged) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(merged))
	}
}
