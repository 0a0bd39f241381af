package mapstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/catalog-feed-api/internal/models"
	"github.com/rs/zerolog"
)

// Store persists the mapping configuration document: fuzzy keyword
// specs per target field plus named header→field templates. Templates
// are not validated here; the resolver owns validation.
type Store interface {
	Load() (*models.KeywordConfig, error)
	Save(cfg *models.KeywordConfig) error
	Keywords() (map[string]models.FieldKeywords, error)
	SaveTemplate(name string, mapping map[string]string) error
	Template(name string) (map[string]string, bool, error)
	ListTemplates() ([]string, error)
	DeleteTemplate(name string) (bool, error)
}

type fileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore creates a JSON file-backed mapping configuration store
func NewFileStore(path string, log zerolog.Logger) Store {
	return &fileStore{
		path: path,
		log:  log.With().Str("store", "mapping").Logger(),
	}
}

// Load reads the configuration document, falling back to the seeded
// default when the file does not exist or cannot be parsed.
func (s *fileStore) Load() (*models.KeywordConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg models.KeywordConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("Mapping config unreadable, using defaults")
		return DefaultConfig(), nil
	}
	if cfg.FuzzyKeywords == nil {
		cfg.FuzzyKeywords = make(map[string]models.FieldKeywords)
	}
	if cfg.Mappings == nil {
		cfg.Mappings = make(map[string]map[string]string)
	}
	return &cfg, nil
}

// Save writes the configuration document atomically
func (s *fileStore) Save(cfg *models.KeywordConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Keywords returns the fuzzy keyword specs for all target fields
func (s *fileStore) Keywords() (map[string]models.FieldKeywords, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return cfg.FuzzyKeywords, nil
}

// SaveTemplate adds or replaces a named mapping template
func (s *fileStore) SaveTemplate(name string, mapping map[string]string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.Mappings[name] = mapping
	return s.Save(cfg)
}

// Template returns a saved mapping template by name
func (s *fileStore) Template(name string) (map[string]string, bool, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, false, err
	}
	mapping, ok := cfg.Mappings[name]
	return mapping, ok, nil
}

// ListTemplates returns the names of all saved templates
func (s *fileStore) ListTemplates() ([]string, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cfg.Mappings))
	for name := range cfg.Mappings {
		names = append(names, name)
	}
	return names, nil
}

// DeleteTemplate removes a saved template, reporting whether it existed
func (s *fileStore) DeleteTemplate(name string) (bool, error) {
	cfg, err := s.Load()
	if err != nil {
		return false, err
	}
	if _, ok := cfg.Mappings[name]; !ok {
		return false, nil
	}
	delete(cfg.Mappings, name)
	if err := s.Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}
