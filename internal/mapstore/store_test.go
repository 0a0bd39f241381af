package mapstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/catalog-feed-api/internal/mapstore"
	"github.com/catalog-feed-api/internal/models"
	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) mapstore.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	return mapstore.NewFileStore(path, zerolog.Nop())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.FuzzyKeywords) != len(models.TargetFields) {
		t.Errorf("Expected keywords for all %d target fields, got %d",
			len(models.TargetFields), len(cfg.FuzzyKeywords))
	}
	if len(cfg.Mappings) != 0 {
		t.Errorf("Expected no templates in default config, got %d", len(cfg.Mappings))
	}
}

func TestLoad_CorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := mapstore.NewFileStore(path, zerolog.Nop())

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.FuzzyKeywords) == 0 {
		t.Error("Expected default keywords for corrupt config")
	}
}

func TestTemplateLifecycle(t *testing.T) {
	store := newTestStore(t)
	template := map[string]string{
		"Код предложения": models.FieldCode,
		"Марка":           models.FieldBrand,
	}

	if err := store.SaveTemplate("stock_2026", template); err != nil {
		t.Fatalf("SaveTemplate failed: %v", err)
	}

	loaded, ok, err := store.Template("stock_2026")
	if err != nil || !ok {
		t.Fatalf("Template lookup failed: ok=%v err=%v", ok, err)
	}
	if loaded["Марка"] != models.FieldBrand {
		t.Errorf("Expected brand mapping in template, got %v", loaded)
	}

	names, err := store.ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if len(names) != 1 || names[0] != "stock_2026" {
		t.Errorf("Expected [stock_2026], got %v", names)
	}

	deleted, err := store.DeleteTemplate("stock_2026")
	if err != nil || !deleted {
		t.Fatalf("DeleteTemplate failed: deleted=%v err=%v", deleted, err)
	}

	if _, ok, _ := store.Template("stock_2026"); ok {
		t.Error("Template should be gone after delete")
	}
}

func TestDeleteTemplate_Missing(t *testing.T) {
	store := newTestStore(t)

	deleted, err := store.DeleteTemplate("no_such_template")
	if err != nil {
		t.Fatalf("DeleteTemplate failed: %v", err)
	}
	if deleted {
		t.Error("Expected false for missing template")
	}
}

func TestSaveTemplate_OverwritesExisting(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveTemplate("stock", map[string]string{"Код": models.FieldCode}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveTemplate("stock", map[string]string{"Марка": models.FieldBrand}); err != nil {
		t.Fatal(err)
	}

	loaded, ok, _ := store.Template("stock")
	if !ok {
		t.Fatal("Template missing after overwrite")
	}
	if _, stale := loaded["Код"]; stale {
		t.Error("Old template contents survived the overwrite")
	}
	if loaded["Марка"] != models.FieldBrand {
		t.Errorf("Expected replaced template, got %v", loaded)
	}
}
