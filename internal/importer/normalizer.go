package importer

import (
	"strconv"
	"strings"

	"github.com/catalog-feed-api/internal/models"
)

// Category keyword sets matched as substrings of the free-text vehicle
// type. Anything unmatched counts as equipment.
var (
	passengerMarkers = []string{"легков", "lcv", "седан", "хэтчбек", "внедорож"}
	truckMarkers     = []string{"груз", "тягач", "фургон", "самосвал", "прицеп"}
	specMarkers      = []string{"экскават", "бульдозер", "трактор", "каток", "погрузчик", "кран"}
)

// NormalizeRows applies a resolved mapping to raw rows and coerces
// every cell into the canonical schema. Coercions are total: malformed
// values degrade to nil or empty, never to an error. The row set is
// tagged winter_sale when the mapping covers the discount column,
// stock otherwise.
func NormalizeRows(rows []map[string]string, mapping map[string]string) []models.CanonicalRow {
	origin := OriginForMapping(mapping)

	normalized := make([]models.CanonicalRow, 0, len(rows))
	for _, raw := range rows {
		values := make(map[string]string, len(mapping))
		for header, field := range mapping {
			values[field] = raw[header]
		}

		row := models.CanonicalRow{
			Code:            strings.TrimSpace(values[models.FieldCode]),
			Category:        CategoryFromVehicleType(values[models.FieldVehicleType]),
			Status:          strings.TrimSpace(values[models.FieldStatus]),
			Brand:           strings.TrimSpace(values[models.FieldBrand]),
			Model:           strings.TrimSpace(values[models.FieldModel]),
			Modification:    strings.TrimSpace(values[models.FieldModification]),
			Color:           strings.TrimSpace(values[models.FieldColor]),
			Condition:       strings.TrimSpace(values[models.FieldCondition]),
			VIN:             strings.TrimSpace(values[models.FieldVIN]),
			VehicleType:     strings.TrimSpace(values[models.FieldVehicleType]),
			Year:            parseYear(values[models.FieldYear]),
			Mileage:         strings.TrimSpace(values[models.FieldMileage]),
			Price:           parsePrice(values[models.FieldPrice]),
			Keys:            strings.TrimSpace(values[models.FieldKeys]),
			PTSType:         strings.TrimSpace(values[models.FieldPTSType]),
			FederalDistrict: strings.TrimSpace(values[models.FieldFederalDistrict]),
			Address:         strings.TrimSpace(values[models.FieldAddress]),
			DaysOnSale:      strings.TrimSpace(values[models.FieldDaysOnSale]),
			PhotoURL:        strings.TrimSpace(values[models.FieldPhotoURL]),
			Comment:         strings.TrimSpace(values[models.FieldComment]),
			Source:          origin,
		}

		if origin == models.OriginWinterSale {
			row.DiscountPct = parsePrice(values[models.FieldDiscountPct])
			row.DiscountPrice = parsePrice(values[models.FieldDiscountPrice])
			if row.Status == "" {
				row.Status = models.StatusWinterSale
			}
		} else {
			row.PriceOriginal = parsePrice(values[models.FieldPriceOriginal])
			row.PriceRevaluation = parsePrice(values[models.FieldPriceRevaluation])
		}

		normalized = append(normalized, row)
	}

	return normalized
}

// OriginForMapping tags a row set by its source file kind: mappings
// covering the discount column come from a seasonal-sale file, the
// rest are plain stock.
func OriginForMapping(mapping map[string]string) string {
	for _, field := range mapping {
		if field == models.FieldDiscountPct {
			return models.OriginWinterSale
		}
	}
	return models.OriginStock
}

// CategoryFromVehicleType classifies free-text vehicle type into a
// feed category via substring heuristics.
func CategoryFromVehicleType(vehicleType string) string {
	text := strings.ToLower(vehicleType)
	for _, marker := range passengerMarkers {
		if strings.Contains(text, marker) {
			return models.CategoryPassenger
		}
	}
	for _, marker := range truckMarkers {
		if strings.Contains(text, marker) {
			return models.CategoryTruck
		}
	}
	for _, marker := range specMarkers {
		if strings.Contains(text, marker) {
			return models.CategorySpec
		}
	}
	return models.CategoryEquipment
}

// NormalizeCategory maps a manually submitted category label to the
// canonical category codes
func NormalizeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "car", "passenger", "легковой", "легковой автомобиль":
		return models.CategoryPassenger
	case "spec", "спецтехника":
		return models.CategorySpec
	case "truck", "грузовой", "грузовой транспорт":
		return models.CategoryTruck
	default:
		return models.CategoryEquipment
	}
}

// parseYear accepts a numeric year, rejecting anything outside
// [1900, 2100]
func parseYear(value string) *int {
	number := parsePrice(value)
	if number == nil {
		return nil
	}
	year := int(*number)
	if year < 1900 || year > 2100 {
		return nil
	}
	return &year
}

// parsePrice coerces free-form numeric text to a float, nil when blank
// or unparseable
func parsePrice(value string) *float64 {
	text := strings.TrimSpace(value)
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", ".")
	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &number
}

// ParsePriceToInt coerces price-like text to a whole number, dropping
// every non-digit character. Returns 0 when nothing numeric remains.
func ParsePriceToInt(value string) int64 {
	if number := parsePrice(value); number != nil {
		return int64(*number)
	}
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	parsed, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// ParseYearValue exposes the year coercion for manual payloads
func ParseYearValue(value string) *int {
	return parseYear(value)
}
