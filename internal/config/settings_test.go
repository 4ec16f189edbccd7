package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDataDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDataDirectory()
	if dir == "" {
		t.Error("Data directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/boards"
	settings.SetDataDirectory(customDir)

	retrievedDir := settings.GetDataDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected data directory %s, got %s", customDir, retrievedDir)
	}
}

func TestAutoSave(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoSave() != DefaultAutoSave {
		t.Errorf("Expected default auto-save %v, got %v", DefaultAutoSave, settings.GetAutoSave())
	}

	settings.SetAutoSave(false)
	if settings.GetAutoSave() {
		t.Error("Expected auto-save to be disabled")
	}
}

func TestSnapToGrid(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetSnapToGrid() != DefaultSnapToGrid {
		t.Errorf("Expected default snap-to-grid %v, got %v", DefaultSnapToGrid, settings.GetSnapToGrid())
	}

	settings.SetSnapToGrid(true)
	if !settings.GetSnapToGrid() {
		t.Error("Expected snap-to-grid to be enabled")
	}
}

func TestGridStep(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	step := settings.GetGridStep()
	if step != DefaultGridStep {
		t.Errorf("Expected default grid step %v, got %v", DefaultGridStep, step)
	}

	// Test setting custom value
	settings.SetGridStep(2.5)
	if settings.GetGridStep() != 2.5 {
		t.Errorf("Expected grid step 2.5, got %v", settings.GetGridStep())
	}

	// Test boundary values
	settings.SetGridStep(0) // Should be clamped to MinGridStep
	if settings.GetGridStep() != MinGridStep {
		t.Errorf("Grid step should be clamped to minimum %v, got %v", MinGridStep, settings.GetGridStep())
	}

	settings.SetGridStep(1000) // Should be clamped to MaxGridStep
	if settings.GetGridStep() != MaxGridStep {
		t.Errorf("Grid step should be clamped to maximum %v, got %v", MaxGridStep, settings.GetGridStep())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
