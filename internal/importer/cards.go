package importer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/catalog-feed-api/internal/models"
)

// Display placeholders of the generated catalog
const (
	PriceOnRequestLabel = "Цена по запросу"
	NoMileageLabel      = "Без пробега"
	NotAvailableLabel   = "н/д"
	currencySuffix      = " ₽"
	distanceSuffix      = " км"
)

// The locale printer groups digits with non-breaking spaces; the feed
// viewer expects plain ASCII spaces.
var groupPrinter = message.NewPrinter(language.Russian)

func groupDigits(value int64) string {
	grouped := groupPrinter.Sprintf("%d", value)
	grouped = strings.ReplaceAll(grouped, " ", " ")
	return strings.ReplaceAll(grouped, " ", " ")
}

// FormatPrice renders a price with thousands separators and the
// currency suffix. Absent or zero prices render as the
// price-on-request placeholder.
func FormatPrice(value *float64) string {
	if value == nil || *value == 0 {
		return PriceOnRequestLabel
	}
	return groupDigits(int64(*value)) + currencySuffix
}

// FormatMileage renders mileage text: zero becomes the no-mileage
// label, unparseable values degrade to n/a.
func FormatMileage(value string) string {
	number := parsePrice(value)
	if number == nil {
		return NotAvailableLabel
	}
	mileage := int64(*number)
	if mileage == 0 {
		return NoMileageLabel
	}
	return groupDigits(mileage) + distanceSuffix
}

// IsValidPhotoURL accepts only http(s) URLs whose host looks like a
// real domain. Junk like "https://." or "https://ТЕСТ" is rejected.
func IsValidPhotoURL(url string) bool {
	if url == "" {
		return false
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false
	}
	rest := url
	if idx := strings.Index(url, "//"); idx >= 0 {
		rest = url[idx+2:]
	}
	host := rest
	if idx := strings.Index(rest, "/"); idx >= 0 {
		host = rest[:idx]
	}
	return strings.Contains(host, ".") && len(host) > 3
}

// BuildCards turns normalized rows into display-ready catalog cards.
// Rows carrying neither brand nor model are dropped.
func BuildCards(rows []models.CanonicalRow) []models.CatalogCard {
	cards := make([]models.CatalogCard, 0, len(rows))
	for _, row := range rows {
		if row.Brand == "" && row.Model == "" {
			continue
		}
		cards = append(cards, buildCard(row))
	}
	return cards
}

func buildCard(row models.CanonicalRow) models.CatalogCard {
	title := strings.TrimSpace(row.Brand + " " + row.Model)
	year := ""
	if row.Year != nil {
		year = strconv.Itoa(*row.Year)
		title += " (" + year + ")"
	}

	hasPhoto := IsValidPhotoURL(row.PhotoURL)
	photo := ""
	if hasPhoto {
		photo = row.PhotoURL
	}

	price := FormatPrice(row.Price)

	hasDiscount := false
	discountPct := ""
	discountPrice := ""
	originalPrice := ""
	if row.DiscountPct != nil {
		if pct := *row.DiscountPct * 100; pct > 0 {
			hasDiscount = true
			discountPct = fmt.Sprintf("-%.0f%%", pct)
			discountPrice = FormatPrice(row.DiscountPrice)
			originalPrice = price
		}
	}

	return models.CatalogCard{
		Code:          row.Code,
		Title:         title,
		Brand:         row.Brand,
		Model:         row.Model,
		Year:          year,
		Color:         capitalize(row.Color),
		VehicleType:   row.VehicleType,
		Mileage:       FormatMileage(row.Mileage),
		Price:         price,
		HasDiscount:   hasDiscount,
		DiscountPct:   discountPct,
		DiscountPrice: discountPrice,
		OriginalPrice: originalPrice,
		PhotoURL:      photo,
		HasPhoto:      hasPhoto,
		Location:      deriveLocation(row.Address, row.FederalDistrict),
		Address:       row.Address,
		VIN:           row.VIN,
		Comment:       row.Comment,
		ShortDesc:     shortDescription(row),
		Status:        row.Status,
	}
}

// deriveLocation extracts a city-ish segment from a free-text parking
// address, falling back to the federal district, then to a truncated
// address prefix.
func deriveLocation(address, federalDistrict string) string {
	location := federalDistrict
	if address == "" {
		return location
	}
	parts := strings.Split(address, ",")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[1])
	}
	runes := []rune(address)
	if len(runes) > 60 {
		return string(runes[:60])
	}
	return address
}

func shortDescription(row models.CanonicalRow) string {
	var parts []string
	if row.Modification != "" {
		parts = append(parts, row.Modification)
	}
	if row.Condition != "" {
		parts = append(parts, "Состояние: "+strings.ToLower(row.Condition))
	}
	if row.Keys != "" {
		parts = append(parts, "Ключи: "+strings.ToLower(row.Keys))
	}
	return strings.Join(parts, ". ")
}

func capitalize(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(strings.ToLower(text))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
