package importer_test

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/catalog-feed-api/internal/importer"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	file := excelize.NewFile()
	defer file.Close()

	if sheet != "Sheet1" {
		if _, err := file.NewSheet(sheet); err != nil {
			t.Fatal(err)
		}
		if err := file.DeleteSheet("Sheet1"); err != nil {
			t.Fatal(err)
		}
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "stock.xlsx")
	if err := file.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadWorkbook_DefaultOffset(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"Выгрузка стока"},
		{},
		{"Код предложения", "Марка", "Модель"},
		{"A-1", "КАМАЗ", "65115"},
		{"A-2", "МАЗ", "5440"},
	})

	sheet, err := importer.ReadWorkbook(path, "зимние скидки", 2)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if sheet.Name != "Sheet1" || sheet.HeaderOffset != 2 {
		t.Errorf("Expected Sheet1 at offset 2, got %q at %d", sheet.Name, sheet.HeaderOffset)
	}
	if len(sheet.Headers) != 3 || sheet.Headers[0] != "Код предложения" {
		t.Errorf("Unexpected headers %v", sheet.Headers)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("Expected 2 data rows, got %d", len(sheet.Rows))
	}
	if sheet.Rows[1]["Марка"] != "МАЗ" {
		t.Errorf("Unexpected row value %q", sheet.Rows[1]["Марка"])
	}
}

func TestReadWorkbook_SaleSheetDetected(t *testing.T) {
	path := writeWorkbook(t, "зимние скидки", [][]interface{}{
		{"Код предложения", "% скидки"},
		{"B-1", "0.15"},
	})

	sheet, err := importer.ReadWorkbook(path, "зимние скидки", 2)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if sheet.Name != "зимние скидки" || sheet.HeaderOffset != 0 {
		t.Errorf("Expected sale sheet at offset 0, got %q at %d", sheet.Name, sheet.HeaderOffset)
	}
	if len(sheet.Rows) != 1 {
		t.Fatalf("Expected 1 data row, got %d", len(sheet.Rows))
	}
}

func TestReadWorkbook_DuplicateHeadersSuffixed(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"Цена", "Цена", "Марка"},
		{"100", "200", "КАМАЗ"},
	})

	sheet, err := importer.ReadWorkbook(path, "зимние скидки", 0)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if sheet.Headers[0] != "Цена" || sheet.Headers[1] != "Цена_1" {
		t.Errorf("Expected duplicate suffixing, got %v", sheet.Headers)
	}
	if sheet.Rows[0]["Цена_1"] != "200" {
		t.Errorf("Expected suffixed column to keep its value, got %q", sheet.Rows[0]["Цена_1"])
	}
}

func TestReadWorkbook_MissingHeaderRow(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"только одна строка"},
	})

	if _, err := importer.ReadWorkbook(path, "зимние скидки", 2); err == nil {
		t.Error("Expected error for missing header row")
	}
}
