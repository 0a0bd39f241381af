package feed

import "github.com/catalog-feed-api/internal/models"

// Denial reasons returned by the permission gate
const (
	ReasonInsufficientPermissions = "insufficient permissions"
	ReasonNotOwnItem              = "can modify only own items"
)

// CanModify decides whether an actor may update or delete a feed item.
// Admins may mutate anything; a leasing company only its own items;
// every other role is denied. The same decision applies to both the
// local feed and the relational mirror.
func CanModify(actor models.Actor, item *models.CatalogItem) (bool, string) {
	if actor.Role == models.RoleAdmin {
		return true, ""
	}
	if actor.Role != models.RoleLeasingCompany {
		return false, ReasonInsufficientPermissions
	}
	if item.Author == nil || item.Author.ID != actor.ID {
		return false, ReasonNotOwnItem
	}
	return true, ""
}
