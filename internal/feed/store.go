package feed

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/catalog-feed-api/internal/models"
	"github.com/rs/zerolog"
)

// Store persists the feed document. The feed is loaded wholesale,
// mutated in memory and written back wholesale; callers serialize
// their read-modify-write cycles.
type Store interface {
	Load() (*models.CatalogFeed, error)
	Save(feed *models.CatalogFeed) error
}

type fileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore creates a JSON file-backed feed store
func NewFileStore(path string, log zerolog.Logger) Store {
	return &fileStore{
		path: path,
		log:  log.With().Str("store", "feed").Logger(),
	}
}

// Load reads the feed document. A missing file yields an empty feed;
// a legacy bare item list is wrapped into the document form.
func (s *fileStore) Load() (*models.CatalogFeed, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emptyFeed(), nil
		}
		return nil, err
	}

	var feed models.CatalogFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		var items []models.CatalogItem
		if listErr := json.Unmarshal(data, &items); listErr == nil {
			return &models.CatalogFeed{
				UpdatedAt: time.Now().Format(time.RFC3339),
				Items:     items,
			}, nil
		}
		s.log.Error().Err(err).Str("path", s.path).Msg("Feed document unreadable")
		return emptyFeed(), nil
	}
	if feed.Items == nil {
		feed.Items = []models.CatalogItem{}
	}
	return &feed, nil
}

// Save stamps updated_at and writes the document atomically so a crash
// cannot leave a truncated feed behind.
func (s *fileStore) Save(feed *models.CatalogFeed) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	feed.UpdatedAt = time.Now().Format(time.RFC3339)
	data, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func emptyFeed() *models.CatalogFeed {
	return &models.CatalogFeed{
		UpdatedAt: time.Now().Format(time.RFC3339),
		Items:     []models.CatalogItem{},
	}
}
