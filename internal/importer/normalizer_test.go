package importer_test

import (
	"testing"

	"github.com/catalog-feed-api/internal/importer"
	"github.com/catalog-feed-api/internal/models"
)

func TestNormalizeRows_StockCoercions(t *testing.T) {
	mapping := map[string]string{
		"Код предложения": models.FieldCode,
		"Марка":           models.FieldBrand,
		"Год выпуска":     models.FieldYear,
		"СРС":             models.FieldPriceOriginal,
		"СРС с переоценкой": models.FieldPrice,
		"Тип ТС":            models.FieldVehicleType,
	}
	rows := []map[string]string{
		{
			"Код предложения":   "  A-100  ",
			"Марка":             "КАМАЗ",
			"Год выпуска":       "2021",
			"СРС":               "1 500 000",
			"СРС с переоценкой": "1400000",
			"Тип ТС":            "Самосвал",
		},
		{
			"Код предложения":   "A-101",
			"Марка":             "ГАЗ",
			"Год выпуска":       "1850",
			"СРС":               "не оценено",
			"СРС с переоценкой": "",
			"Тип ТС":            "Легковой седан",
		},
	}

	normalized := importer.NormalizeRows(rows, mapping)
	if len(normalized) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(normalized))
	}

	first := normalized[0]
	if first.Code != "A-100" {
		t.Errorf("Expected trimmed code A-100, got %q", first.Code)
	}
	if first.Year == nil || *first.Year != 2021 {
		t.Errorf("Expected year 2021, got %v", first.Year)
	}
	if first.PriceOriginal == nil || *first.PriceOriginal != 1500000 {
		t.Errorf("Expected spaced price parsed to 1500000, got %v", first.PriceOriginal)
	}
	if first.Category != models.CategoryTruck {
		t.Errorf("Expected truck category, got %q", first.Category)
	}
	if first.Source != models.OriginStock {
		t.Errorf("Expected stock origin, got %q", first.Source)
	}

	second := normalized[1]
	if second.Year != nil {
		t.Errorf("Year outside [1900,2100] must be nil, got %v", second.Year)
	}
	if second.PriceOriginal != nil {
		t.Errorf("Unparseable price must be nil, got %v", second.PriceOriginal)
	}
	if second.Price != nil {
		t.Errorf("Blank price must be nil, got %v", second.Price)
	}
	if second.Category != models.CategoryPassenger {
		t.Errorf("Expected passenger category, got %q", second.Category)
	}
}

func TestNormalizeRows_WinterSaleDefaults(t *testing.T) {
	mapping := map[string]string{
		"Код предложения": models.FieldCode,
		"Марка":           models.FieldBrand,
		"% скидки":        models.FieldDiscountPct,
		"Минимальная цена со скидкой": models.FieldDiscountPrice,
	}
	rows := []map[string]string{
		{"Код предложения": "B-1", "Марка": "МАЗ", "% скидки": "0,15", "Минимальная цена со скидкой": "900000"},
	}

	normalized := importer.NormalizeRows(rows, mapping)
	if len(normalized) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(normalized))
	}

	row := normalized[0]
	if row.Source != models.OriginWinterSale {
		t.Errorf("Expected winter_sale origin, got %q", row.Source)
	}
	if row.Status != models.StatusWinterSale {
		t.Errorf("Expected default seasonal status, got %q", row.Status)
	}
	if row.DiscountPct == nil || *row.DiscountPct != 0.15 {
		t.Errorf("Expected discount 0.15 from comma decimal, got %v", row.DiscountPct)
	}
	if row.PriceOriginal != nil || row.PriceRevaluation != nil {
		t.Error("Original/revalued prices must stay nil for winter sale files")
	}
}

func TestNormalizeRows_AbsentFieldsAreNull(t *testing.T) {
	mapping := map[string]string{"Код предложения": models.FieldCode}
	rows := []map[string]string{{"Код предложения": "C-1"}}

	row := importer.NormalizeRows(rows, mapping)[0]
	if row.Year != nil || row.Price != nil || row.Brand != "" || row.Address != "" {
		t.Errorf("Unmapped fields must be null/empty, got %+v", row)
	}
	if row.Category != models.CategoryEquipment {
		t.Errorf("Empty vehicle type must default to equipment, got %q", row.Category)
	}
}

func TestCategoryFromVehicleType(t *testing.T) {
	cases := map[string]string{
		"Легковой седан":        models.CategoryPassenger,
		"LCV":                   models.CategoryPassenger,
		"Седельный тягач":       models.CategoryTruck,
		"Экскаватор-погрузчик":  models.CategorySpec,
		"Фрезерный станок":      models.CategoryEquipment,
		"":                      models.CategoryEquipment,
	}
	for input, expected := range cases {
		if got := importer.CategoryFromVehicleType(input); got != expected {
			t.Errorf("CategoryFromVehicleType(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"car":         models.CategoryPassenger,
		"Легковой":    models.CategoryPassenger,
		"спецтехника": models.CategorySpec,
		"truck":       models.CategoryTruck,
		"что-то ещё":  models.CategoryEquipment,
		"":            models.CategoryEquipment,
	}
	for input, expected := range cases {
		if got := importer.NormalizeCategory(input); got != expected {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestParsePriceToInt(t *testing.T) {
	cases := map[string]int64{
		"1500000":     1500000,
		"1 200 000":   1200000,
		"1 200 000 ₽": 1200000,
		"":            0,
		"договорная":  0,
	}
	for input, expected := range cases {
		if got := importer.ParsePriceToInt(input); got != expected {
			t.Errorf("ParsePriceToInt(%q) = %d, want %d", input, got, expected)
		}
	}
}

func TestOriginForMapping(t *testing.T) {
	stock := map[string]string{"Марка": models.FieldBrand}
	if got := importer.OriginForMapping(stock); got != models.OriginStock {
		t.Errorf("Expected stock, got %q", got)
	}
	winter := map[string]string{"% скидки": models.FieldDiscountPct}
	if got := importer.OriginForMapping(winter); got != models.OriginWinterSale {
		t.Errorf("Expected winter_sale, got %q", got)
	}
}
