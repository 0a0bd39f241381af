package feed_test

import (
	"testing"

	"github.com/catalog-feed-api/internal/feed"
	"github.com/catalog-feed-api/internal/models"
)

func ownedItem(authorID int64) *models.CatalogItem {
	return &models.CatalogItem{
		ID:         "manual-1-7",
		SourceType: models.SourceTypeManual,
		Author:     &models.Author{ID: authorID},
	}
}

func TestCanModify_AdminAlwaysAllowed(t *testing.T) {
	actor := models.Actor{ID: 1, Role: models.RoleAdmin}

	if allowed, _ := feed.CanModify(actor, ownedItem(999)); !allowed {
		t.Error("Admin must be allowed on foreign items")
	}
	excel := &models.CatalogItem{ID: "excel-A1", SourceType: models.SourceTypeExcel}
	if allowed, _ := feed.CanModify(actor, excel); !allowed {
		t.Error("Admin must be allowed on imported items without author")
	}
}

func TestCanModify_LeasingCompanyOwnItems(t *testing.T) {
	actor := models.Actor{ID: 7, Role: models.RoleLeasingCompany}

	if allowed, reason := feed.CanModify(actor, ownedItem(7)); !allowed {
		t.Errorf("Owner must be allowed, got denial %q", reason)
	}

	allowed, reason := feed.CanModify(actor, ownedItem(8))
	if allowed {
		t.Error("Foreign item must be denied")
	}
	if reason != feed.ReasonNotOwnItem {
		t.Errorf("Expected own-items reason, got %q", reason)
	}

	// Imported items have no author, so even a leasing company is denied
	excel := &models.CatalogItem{ID: "excel-A1", SourceType: models.SourceTypeExcel}
	if allowed, _ := feed.CanModify(actor, excel); allowed {
		t.Error("Authorless item must be denied to a leasing company")
	}
}

func TestCanModify_UserAlwaysDenied(t *testing.T) {
	actor := models.Actor{ID: 7, Role: models.RoleUser}

	allowed, reason := feed.CanModify(actor, ownedItem(7))
	if allowed {
		t.Error("Plain user must be denied even on own items")
	}
	if reason != feed.ReasonInsufficientPermissions {
		t.Errorf("Expected insufficient-permissions reason, got %q", reason)
	}

	unknown := models.Actor{ID: 7, Role: "moderator"}
	if allowed, _ := feed.CanModify(unknown, ownedItem(7)); allowed {
		t.Error("Unknown role must be denied")
	}
}
