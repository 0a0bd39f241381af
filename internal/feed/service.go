package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/catalog-feed-api/internal/importer"
	"github.com/catalog-feed-api/internal/models"
)

// Domain rejection reasons beside the permission gate's
const (
	ReasonItemNotFound = "item not found"
	ReasonEmptyTitle   = "title must not be empty"
	ReasonNoUpdates    = "no fields to update"
)

const (
	detailsLimit    = 2000
	defaultLocation = "Не указано"
)

// Mirror replicates feed mutations to the external relational store.
// Implementations are best effort: they apply their own short timeout,
// log failures and never report them back, so the local mutation can
// never be blocked or failed by the mirror.
type Mirror interface {
	UpsertItem(ctx context.Context, item models.CatalogItem)
	UpsertItems(ctx context.Context, items []models.CatalogItem)
	UpdateItemWithActor(ctx context.Context, item models.CatalogItem, actor models.Actor)
	DeleteItemWithActor(ctx context.Context, id string, actor models.Actor)
}

// Service reconciles imported and manually submitted items into the
// single persisted feed. Every mutation is a read-modify-write of the
// whole document, serialized by a single writer lock.
type Service struct {
	store  Store
	mirror Mirror
	log    zerolog.Logger

	mu sync.Mutex
}

// NewService creates the feed reconciliation service
func NewService(store Store, mirror Mirror, log zerolog.Logger) *Service {
	return &Service{
		store:  store,
		mirror: mirror,
		log:    log.With().Str("service", "feed").Logger(),
	}
}

// Feed returns the current feed document
func (s *Service) Feed(ctx context.Context) (*models.CatalogFeed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load()
}

// Counts returns the number of feed items per source type and the
// document's last-updated stamp
func (s *Service) Counts(ctx context.Context) (map[string]int, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, err := s.store.Load()
	if err != nil {
		return nil, "", err
	}
	counts := map[string]int{
		models.SourceTypeExcel:  0,
		models.SourceTypeManual: 0,
	}
	for _, item := range feed.Items {
		counts[item.SourceType]++
	}
	return counts, feed.UpdatedAt, nil
}

// ReplaceImported atomically supersedes every excel-origin item with a
// fresh batch built from the latest parse. Manual items are untouched.
// Returns the number of imported items.
func (s *Service) ReplaceImported(ctx context.Context, cards []models.CatalogCard) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, err := s.store.Load()
	if err != nil {
		return 0, err
	}

	kept := make([]models.CatalogItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.SourceType != models.SourceTypeExcel {
			kept = append(kept, item)
		}
	}

	imported := make([]models.CatalogItem, 0, len(cards))
	for _, card := range cards {
		title := strings.TrimSpace(card.Title)
		if title == "" {
			continue
		}
		code := strings.TrimSpace(card.Code)
		id := "excel-" + code
		if code == "" {
			id = fmt.Sprintf("excel-%d", len(imported)+1)
		}

		details := card.ShortDesc
		if details == "" {
			details = card.Comment
		}
		location := card.Location
		if location == "" {
			location = card.Address
		}
		if location == "" {
			location = defaultLocation
		}

		imported = append(imported, models.CatalogItem{
			ID:         id,
			SourceType: models.SourceTypeExcel,
			ExternalID: code,
			Title:      title,
			Category:   importer.CategoryFromVehicleType(card.VehicleType),
			Price:      importer.ParsePriceToInt(card.Price),
			Year:       yearFromText(card.Year),
			Details:    truncate(details, detailsLimit),
			Location:   location,
			Image:      card.PhotoURL,
			Status:     models.ItemStatusActive,
			CreatedAt:  time.Now().Format(time.RFC3339),
		})
	}

	feed.Items = append(kept, imported...)
	if err := s.store.Save(feed); err != nil {
		return 0, err
	}

	s.log.Info().
		Int("imported", len(imported)).
		Int("manual_kept", len(kept)).
		Msg("Imported items replaced")

	if len(imported) > 0 {
		s.mirror.UpsertItems(ctx, imported)
	}
	return len(imported), nil
}

// SubmitManual adds or replaces a manually submitted item. An item
// without an id gets one derived from the submission time and the
// author; an existing item with the same id is superseded.
func (s *Service) SubmitManual(ctx context.Context, submission models.ManualSubmission, author models.Author) (*models.CatalogItem, string, error) {
	title := strings.TrimSpace(submission.Title)
	if title == "" {
		return nil, ReasonEmptyTitle, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	feed, err := s.store.Load()
	if err != nil {
		return nil, "", err
	}

	id := strings.TrimSpace(submission.ID)
	if id == "" {
		id = fmt.Sprintf("manual-%d-%d", time.Now().Unix(), author.ID)
	}

	createdAt := submission.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().Format(time.RFC3339)
	}

	image := ""
	if len(submission.Images) > 0 {
		image = submission.Images[0]
	}

	authorCopy := author
	item := models.CatalogItem{
		ID:         id,
		SourceType: models.SourceTypeManual,
		ExternalID: id,
		Title:      title,
		Category:   importer.NormalizeCategory(submission.Category),
		Price:      importer.ParsePriceToInt(submission.Price),
		Year:       importer.ParseYearValue(submission.Year),
		Details:    truncate(strings.TrimSpace(submission.Details), detailsLimit),
		Location:   defaultedLocation(submission.Location),
		Image:      image,
		Status:     models.ItemStatusActive,
		CreatedAt:  createdAt,
		Author:     &authorCopy,
	}

	items := make([]models.CatalogItem, 0, len(feed.Items)+1)
	for _, existing := range feed.Items {
		if existing.ID != id {
			items = append(items, existing)
		}
	}
	feed.Items = append(items, item)

	if err := s.store.Save(feed); err != nil {
		return nil, "", err
	}

	s.log.Info().Str("item_id", id).Int64("author_id", author.ID).Msg("Manual item submitted")
	s.mirror.UpsertItem(ctx, item)
	return &item, "", nil
}

// UpdateItem applies a partial update to one feed item. Only supplied
// fields change; each goes through the same normalization as import.
// The permission gate runs before any mutation, so a denial leaves the
// feed untouched.
func (s *Service) UpdateItem(ctx context.Context, id string, update models.ItemUpdate, actor models.Actor) (*models.CatalogItem, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, err := s.store.Load()
	if err != nil {
		return nil, "", err
	}

	index := findItem(feed, id)
	if index < 0 {
		return nil, ReasonItemNotFound, nil
	}
	item := &feed.Items[index]

	if allowed, reason := CanModify(actor, item); !allowed {
		s.log.Warn().
			Str("item_id", id).
			Int64("actor_id", actor.ID).
			Str("actor_role", actor.Role).
			Str("reason", reason).
			Msg("Item update denied")
		return nil, reason, nil
	}

	changed := false

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, ReasonEmptyTitle, nil
		}
		item.Title = title
		changed = true
	}
	if update.Category != nil {
		item.Category = importer.NormalizeCategory(*update.Category)
		changed = true
	}
	if update.Price != nil {
		item.Price = importer.ParsePriceToInt(*update.Price)
		changed = true
	}
	if update.Year != nil {
		item.Year = importer.ParseYearValue(*update.Year)
		changed = true
	}
	if update.Details != nil {
		item.Details = truncate(strings.TrimSpace(*update.Details), detailsLimit)
		changed = true
	}
	if update.Location != nil {
		item.Location = defaultedLocation(*update.Location)
		changed = true
	}
	if update.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*update.Status))
		if models.ValidItemStatuses[status] {
			item.Status = status
			changed = true
		}
	}
	if len(update.Images) > 0 {
		item.Image = update.Images[0]
		changed = true
	} else if update.Image != nil {
		item.Image = *update.Image
		changed = true
	}

	if !changed {
		return nil, ReasonNoUpdates, nil
	}

	item.UpdatedAt = time.Now().Format(time.RFC3339)
	if err := s.store.Save(feed); err != nil {
		return nil, "", err
	}

	s.log.Info().Str("item_id", id).Int64("actor_id", actor.ID).Msg("Item updated")
	s.mirror.UpdateItemWithActor(ctx, *item, actor)

	updated := *item
	return &updated, "", nil
}

// DeleteItem removes one feed item after consulting the permission
// gate. A denial or a missing item leaves the feed untouched.
func (s *Service) DeleteItem(ctx context.Context, id string, actor models.Actor) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, err := s.store.Load()
	if err != nil {
		return "", err
	}

	index := findItem(feed, id)
	if index < 0 {
		return ReasonItemNotFound, nil
	}

	if allowed, reason := CanModify(actor, &feed.Items[index]); !allowed {
		s.log.Warn().
			Str("item_id", id).
			Int64("actor_id", actor.ID).
			Str("actor_role", actor.Role).
			Str("reason", reason).
			Msg("Item delete denied")
		return reason, nil
	}

	feed.Items = append(feed.Items[:index], feed.Items[index+1:]...)
	if err := s.store.Save(feed); err != nil {
		return "", err
	}

	s.log.Info().Str("item_id", id).Int64("actor_id", actor.ID).Msg("Item deleted")
	s.mirror.DeleteItemWithActor(ctx, id, actor)
	return "", nil
}

func findItem(feed *models.CatalogFeed, id string) int {
	for i := range feed.Items {
		if feed.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func defaultedLocation(location string) string {
	if trimmed := strings.TrimSpace(location); trimmed != "" {
		return trimmed
	}
	return defaultLocation
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

func yearFromText(value string) *int {
	return importer.ParseYearValue(value)
}
