package mocks

import (
	"context"
	"time"

	"github.com/catalog-feed-api/internal/models"
)

// MockFeedStore is an in-memory implementation of feed.Store
type MockFeedStore struct {
	Feed      *models.CatalogFeed
	LoadError error
	SaveError error
	SaveCalls int
}

func NewMockFeedStore() *MockFeedStore {
	return &MockFeedStore{
		Feed: &models.CatalogFeed{
			UpdatedAt: time.Now().Format(time.RFC3339),
			Items:     []models.CatalogItem{},
		},
	}
}

func (m *MockFeedStore) Load() (*models.CatalogFeed, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	// Copy so callers mutate their own view until Save
	copied := &models.CatalogFeed{UpdatedAt: m.Feed.UpdatedAt}
	copied.Items = append([]models.CatalogItem{}, m.Feed.Items...)
	return copied, nil
}

func (m *MockFeedStore) Save(feed *models.CatalogFeed) error {
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	feed.UpdatedAt = time.Now().Format(time.RFC3339)
	m.Feed = &models.CatalogFeed{UpdatedAt: feed.UpdatedAt}
	m.Feed.Items = append([]models.CatalogItem{}, feed.Items...)
	return nil
}

// MirrorUpdate records one update replication call
type MirrorUpdate struct {
	Item  models.CatalogItem
	Actor models.Actor
}

// MirrorDelete records one delete replication call
type MirrorDelete struct {
	ID    string
	Actor models.Actor
}

// MockMirror is a recording implementation of feed.Mirror
type MockMirror struct {
	Upserts      []models.CatalogItem
	BatchUpserts [][]models.CatalogItem
	Updates      []MirrorUpdate
	Deletes      []MirrorDelete
}

func NewMockMirror() *MockMirror {
	return &MockMirror{}
}

func (m *MockMirror) UpsertItem(ctx context.Context, item models.CatalogItem) {
	m.Upserts = append(m.Upserts, item)
}

func (m *MockMirror) UpsertItems(ctx context.Context, items []models.CatalogItem) {
	m.BatchUpserts = append(m.BatchUpserts, items)
}

func (m *MockMirror) UpdateItemWithActor(ctx context.Context, item models.CatalogItem, actor models.Actor) {
	m.Updates = append(m.Updates, MirrorUpdate{Item: item, Actor: actor})
}

func (m *MockMirror) DeleteItemWithActor(ctx context.Context, id string, actor models.Actor) {
	m.Deletes = append(m.Deletes, MirrorDelete{ID: id, Actor: actor})
}
