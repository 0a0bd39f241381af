package importer

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/catalog-feed-api/internal/config"
	"github.com/catalog-feed-api/internal/mapping"
	"github.com/catalog-feed-api/internal/mapstore"
	"github.com/catalog-feed-api/internal/models"
)

// Service runs the import pipeline for one spreadsheet: read, resolve
// columns (template-seeded or automatic), normalize rows, build cards.
type Service struct {
	resolver mapping.Resolver
	maps     mapstore.Store
	cfg      *config.ImportConfig
	log      zerolog.Logger
}

// ParseResult is the outcome of parsing one spreadsheet
type ParseResult struct {
	SheetName    string                   `json:"sheet_name"`
	Origin       string                   `json:"origin"`
	UsedTemplate string                   `json:"used_template,omitempty"`
	Mapping      *models.MappingResult    `json:"mapping"`
	Validation   models.MappingValidation `json:"validation"`
	Rows         []models.CanonicalRow    `json:"-"`
	Cards        []models.CatalogCard     `json:"-"`
	RowCount     int                      `json:"row_count"`
	CardCount    int                      `json:"card_count"`
}

// NewService creates the import pipeline service
func NewService(resolver mapping.Resolver, maps mapstore.Store, cfg *config.ImportConfig, log zerolog.Logger) *Service {
	return &Service{
		resolver: resolver,
		maps:     maps,
		cfg:      cfg,
		log:      log.With().Str("service", "importer").Logger(),
	}
}

// ParseFile reads one workbook and resolves its columns. When
// templateName is empty the file name stem is tried as a template key.
// A template whose headers no longer all exist in the file is stale
// and falls back to automatic resolution.
func (s *Service) ParseFile(path, originalName, templateName string) (*ParseResult, error) {
	sheet, err := ReadWorkbook(path, s.cfg.SaleSheetName, s.cfg.HeaderOffset)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{SheetName: sheet.Name}

	columnMapping, usedTemplate := s.resolveMapping(sheet.Headers, originalName, templateName)
	result.UsedTemplate = usedTemplate
	if usedTemplate != "" {
		result.Mapping = &models.MappingResult{
			Mapping:    columnMapping,
			Confidence: map[string]int{},
		}
	} else {
		keywords, err := s.maps.Keywords()
		if err != nil {
			return nil, err
		}
		result.Mapping = s.resolver.AutoMap(sheet.Headers, models.TargetFields, keywords)
		columnMapping = result.Mapping.Mapping
	}

	result.Validation = s.resolver.Validate(columnMapping, nil)
	result.Origin = OriginForMapping(columnMapping)
	result.Rows = NormalizeRows(sheet.Rows, columnMapping)
	result.Cards = BuildCards(result.Rows)
	result.RowCount = len(result.Rows)
	result.CardCount = len(result.Cards)

	s.log.Info().
		Str("sheet", sheet.Name).
		Str("origin", result.Origin).
		Str("template", usedTemplate).
		Int("rows", result.RowCount).
		Int("cards", result.CardCount).
		Bool("mapping_valid", result.Validation.IsValid).
		Msg("Workbook parsed")

	return result, nil
}

// resolveMapping tries a saved template before automatic resolution.
// Returns the mapping and the template name when one was applied.
func (s *Service) resolveMapping(headers []string, originalName, templateName string) (map[string]string, string) {
	name := templateName
	if name == "" && originalName != "" {
		base := filepath.Base(originalName)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if name == "" {
		return nil, ""
	}

	template, ok, err := s.maps.Template(name)
	if err != nil {
		s.log.Warn().Err(err).Str("template", name).Msg("Template lookup failed")
		return nil, ""
	}
	if !ok {
		return nil, ""
	}
	if !coversHeaders(template, headers) {
		s.log.Warn().Str("template", name).Msg("Template stale for current headers, falling back to auto mapping")
		return nil, ""
	}
	return template, name
}

// coversHeaders reports whether every template header exists in the
// current file's header set.
func coversHeaders(template map[string]string, headers []string) bool {
	present := make(map[string]bool, len(headers))
	for _, header := range headers {
		present[header] = true
	}
	for header := range template {
		if !present[header] {
			return false
		}
	}
	return true
}
