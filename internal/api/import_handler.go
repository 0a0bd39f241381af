package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/catalog-feed-api/internal/config"
	"github.com/catalog-feed-api/internal/feed"
	"github.com/catalog-feed-api/internal/importer"
)

// ImportHandler handles spreadsheet upload endpoints
type ImportHandler struct {
	importSvc *importer.Service
	feedSvc   *feed.Service
	cfg       *config.Config
	log       zerolog.Logger
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(importSvc *importer.Service, feedSvc *feed.Service, cfg *config.Config, log zerolog.Logger) *ImportHandler {
	return &ImportHandler{
		importSvc: importSvc,
		feedSvc:   feedSvc,
		cfg:       cfg,
		log:       log.With().Str("handler", "import").Logger(),
	}
}

// fileSummary describes one parsed upload in the import response
type fileSummary struct {
	FileName string                `json:"file_name"`
	Result   *importer.ParseResult `json:"result"`
}

// CreateImport handles POST /v1/imports
// Accepts one or two uploaded workbooks (fields "file" and "file2"),
// parses and merges them, then replaces every imported feed item.
func (h *ImportHandler) CreateImport(c *gin.Context) {
	ctx := c.Request.Context()
	templateName := c.PostForm("template")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}
	defer file.Close()

	first, ok := h.parseUpload(c, file, header, templateName)
	if !ok {
		return
	}

	summaries := []fileSummary{{FileName: header.Filename, Result: first}}
	rows := first.Rows

	if second, secondHeader, err := c.Request.FormFile("file2"); err == nil {
		defer second.Close()
		result, ok := h.parseUpload(c, second, secondHeader, templateName)
		if !ok {
			return
		}
		summaries = append(summaries, fileSummary{FileName: secondHeader.Filename, Result: result})
		rows = importer.MergeRows(rows, result.Rows)
	}

	for _, summary := range summaries {
		if !summary.Result.Validation.IsValid {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":            "column mapping is incomplete",
				"file_name":        summary.FileName,
				"missing_critical": summary.Result.Validation.MissingCritical,
				"files":            summaries,
			})
			return
		}
	}

	cards := importer.BuildCards(rows)
	imported, err := h.feedSvc.ReplaceImported(ctx, cards)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to replace imported items")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update feed"})
		return
	}

	h.log.Info().
		Int("files", len(summaries)).
		Int("rows", len(rows)).
		Int("imported", imported).
		Msg("Import completed")

	c.JSON(http.StatusOK, gin.H{
		"imported_count": imported,
		"row_count":      len(rows),
		"files":          summaries,
	})
}

// PreviewMapping handles POST /v1/mappings/preview
// Parses an uploaded workbook and reports the resolved column mapping
// without touching the feed.
func (h *ImportHandler) PreviewMapping(c *gin.Context) {
	templateName := c.PostForm("template")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}
	defer file.Close()

	result, ok := h.parseUpload(c, file, header, templateName)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file_name": header.Filename,
		"result":    result,
	})
}

// parseUpload stores one uploaded workbook under a unique name and
// runs the import pipeline on it. Replies on the context and returns
// false when the upload cannot be processed.
func (h *ImportHandler) parseUpload(c *gin.Context, file multipart.File, header *multipart.FileHeader, templateName string) (*importer.ParseResult, bool) {
	if header.Size > h.cfg.Import.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file too large, max size is %d MB", h.cfg.Import.MaxUploadSize/(1024*1024)),
		})
		return nil, false
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xlsm" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "import requires an Excel workbook (.xlsx)"})
		return nil, false
	}

	path, err := h.saveUpload(file, ext)
	if err != nil {
		h.log.Error().Err(err).Str("file", header.Filename).Msg("Failed to save upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return nil, false
	}
	defer os.Remove(path)

	result, err := h.importSvc.ParseFile(path, header.Filename, templateName)
	if err != nil {
		h.log.Error().Err(err).Str("file", header.Filename).Msg("Failed to parse workbook")
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("cannot read workbook: %v", err)})
		return nil, false
	}
	return result, true
}

// saveUpload copies an uploaded file into the upload directory under a
// unique name
func (h *ImportHandler) saveUpload(file multipart.File, ext string) (string, error) {
	uploadDir := h.cfg.Import.UploadDir
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("upload_%s%s", uuid.New().String()[:8], ext)
	path := filepath.Join(uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
