package models

// Source types of a feed item
const (
	SourceTypeExcel  = "excel"
	SourceTypeManual = "manual"
)

// Feed item statuses
const (
	ItemStatusActive   = "active"
	ItemStatusInactive = "inactive"
	ItemStatusArchived = "archived"
)

// ValidItemStatuses defines allowed feed item statuses
var ValidItemStatuses = map[string]bool{
	ItemStatusActive:   true,
	ItemStatusInactive: true,
	ItemStatusArchived: true,
}

// Author identifies the user who submitted a manual item
type Author struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// CatalogItem is one entry of the unified feed. Imported items carry
// no author; manual items always do. The createdAt/updatedAt casing
// matches the persisted feed document contract.
type CatalogItem struct {
	ID         string  `json:"id"`
	SourceType string  `json:"source_type"`
	ExternalID string  `json:"external_id"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	Price      int64   `json:"price"`
	Year       *int    `json:"year"`
	Details    string  `json:"details"`
	Location   string  `json:"location"`
	Image      string  `json:"image"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
	Author     *Author `json:"author,omitempty"`
}

// CatalogFeed is the persisted feed document. Item IDs are unique
// within the feed.
type CatalogFeed struct {
	UpdatedAt string        `json:"updated_at"`
	Items     []CatalogItem `json:"items"`
}

// ManualSubmission is the payload of a manually submitted listing
type ManualSubmission struct {
	ID        string   `json:"id,omitempty"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Price     string   `json:"price"`
	Year      string   `json:"year"`
	Details   string   `json:"details"`
	Location  string   `json:"location"`
	Images    []string `json:"images,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// ItemUpdate is a partial update of a feed item. Nil fields were not
// supplied and must leave the stored value untouched.
type ItemUpdate struct {
	Title    *string  `json:"title,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *string  `json:"price,omitempty"`
	Year     *string  `json:"year,omitempty"`
	Details  *string  `json:"details,omitempty"`
	Location *string  `json:"location,omitempty"`
	Status   *string  `json:"status,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Images   []string `json:"images,omitempty"`
}
