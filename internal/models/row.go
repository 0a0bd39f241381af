package models

// Target field names of the canonical row schema
const (
	FieldCode             = "code"
	FieldCategory         = "category"
	FieldStatus           = "status"
	FieldBrand            = "brand"
	FieldModel            = "model"
	FieldModification     = "modification"
	FieldColor            = "color"
	FieldCondition        = "condition"
	FieldVIN              = "vin"
	FieldVehicleType      = "vehicle_type"
	FieldYear             = "year"
	FieldMileage          = "mileage"
	FieldPrice            = "price"
	FieldPriceOriginal    = "price_original"
	FieldPriceRevaluation = "price_revaluation"
	FieldKeys             = "keys"
	FieldPTSType          = "pts_type"
	FieldFederalDistrict  = "federal_district"
	FieldAddress          = "address"
	FieldDaysOnSale       = "days_on_sale"
	FieldPhotoURL         = "photo_url"
	FieldComment          = "comment"
	FieldDiscountPct      = "discount_pct"
	FieldDiscountPrice    = "discount_price"
)

// TargetFields lists every canonical field in resolution priority order.
// The resolver assigns headers field by field in this order.
var TargetFields = []string{
	FieldCode, FieldCategory, FieldStatus, FieldBrand, FieldModel,
	FieldModification, FieldColor, FieldCondition, FieldVIN,
	FieldVehicleType, FieldYear, FieldMileage, FieldPrice,
	FieldPriceOriginal, FieldPriceRevaluation, FieldKeys, FieldPTSType,
	FieldFederalDistrict, FieldAddress, FieldDaysOnSale, FieldPhotoURL,
	FieldComment, FieldDiscountPct, FieldDiscountPrice,
}

// Row origin tags assigned during normalization
const (
	OriginStock      = "stock"
	OriginWinterSale = "winter_sale"
)

// Vehicle categories derived from free-text vehicle type
const (
	CategoryPassenger = "passenger"
	CategoryTruck     = "truck"
	CategorySpec      = "spec"
	CategoryEquipment = "equipment"
)

// StatusWinterSale is the default status label for discount-file rows
// that carry no status of their own.
const StatusWinterSale = "Зимняя выгода"

// CanonicalRow is one spreadsheet row coerced into the fixed internal
// schema. Numeric fields are nil when the source cell was absent or
// unparseable; string fields are empty.
type CanonicalRow struct {
	Code             string   `json:"code"`
	Category         string   `json:"category"`
	Status           string   `json:"status"`
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	Modification     string   `json:"modification"`
	Color            string   `json:"color"`
	Condition        string   `json:"condition"`
	VIN              string   `json:"vin"`
	VehicleType      string   `json:"vehicle_type"`
	Year             *int     `json:"year"`
	Mileage          string   `json:"mileage"`
	Price            *float64 `json:"price"`
	PriceOriginal    *float64 `json:"price_original"`
	PriceRevaluation *float64 `json:"price_revaluation"`
	Keys             string   `json:"keys"`
	PTSType          string   `json:"pts_type"`
	FederalDistrict  string   `json:"federal_district"`
	Address          string   `json:"address"`
	DaysOnSale       string   `json:"days_on_sale"`
	PhotoURL         string   `json:"photo_url"`
	Comment          string   `json:"comment"`
	DiscountPct      *float64 `json:"discount_pct"`
	DiscountPrice    *float64 `json:"discount_price"`
	Source           string   `json:"source"`
}
