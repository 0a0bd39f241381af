package models

import "strings"

// Actor roles governing mutation rights over feed items
const (
	RoleUser           = "user"
	RoleLeasingCompany = "leasing_company"
	RoleAdmin          = "admin"
)

// Actor identifies who is performing a feed mutation. The role is
// resolved by an external auth store and passed in as-is.
type Actor struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
}

// NormalizeRole maps free-form role text to a canonical role code.
// Unknown values degrade to the regular user role.
func NormalizeRole(role string) string {
	normalized := strings.ToLower(strings.TrimSpace(role))
	switch normalized {
	case "leasing", "leasing_company", "лизинговая", "лизинговая компания", "лизинговая_компания":
		return RoleLeasingCompany
	case RoleAdmin, RoleUser:
		return normalized
	default:
		return RoleUser
	}
}
