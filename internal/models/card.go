package models

// CatalogCard is the display projection of a CanonicalRow. All values
// are render-ready strings; it is derived, never mutated on its own.
type CatalogCard struct {
	Code          string `json:"code"`
	Title         string `json:"title"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Year          string `json:"year"`
	Color         string `json:"color"`
	VehicleType   string `json:"vehicle_type"`
	Mileage       string `json:"mileage"`
	Price         string `json:"price"`
	HasDiscount   bool   `json:"has_discount"`
	DiscountPct   string `json:"discount_pct"`
	DiscountPrice string `json:"discount_price"`
	OriginalPrice string `json:"original_price"`
	PhotoURL      string `json:"photo_url"`
	HasPhoto      bool   `json:"has_photo"`
	Location      string `json:"location"`
	Address       string `json:"address"`
	VIN           string `json:"vin"`
	Comment       string `json:"comment"`
	ShortDesc     string `json:"short_desc"`
	Status        string `json:"status"`
}
