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

func TestDataFilePath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	path := settings.GetDataFilePath()
	if path != DefaultDataFile {
		t.Errorf("Expected default data file %s, got %s", DefaultDataFile, path)
	}

	// Test setting custom value
	customPath := "/custom/state.json"
	settings.SetDataFilePath(customPath)

	retrievedPath := settings.GetDataFilePath()
	if retrievedPath != customPath {
		t.Errorf("Expected data file %s, got %s", customPath, retrievedPath)
	}

	// Empty value falls back to default
	settings.SetDataFilePath("")
	if settings.GetDataFilePath() != DefaultDataFile {
		t.Errorf("Empty data file path should default to %s", DefaultDataFile)
	}
}

func TestSnapshotDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	dir := settings.GetSnapshotDirectory()
	if dir != DefaultSnapshotDir {
		t.Errorf("Expected default snapshot dir %s, got %s", DefaultSnapshotDir, dir)
	}

	settings.SetSnapshotDirectory("/tmp/snaps")
	if settings.GetSnapshotDirectory() != "/tmp/snaps" {
		t.Errorf("Expected snapshot dir /tmp/snaps, got %s", settings.GetSnapshotDirectory())
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

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestConfirmDelete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetConfirmDelete() {
		t.Error("Confirm delete should default to true")
	}

	settings.SetConfirmDelete(false)
	if settings.GetConfirmDelete() {
		t.Error("Expected confirm delete to be false after setting")
	}
}

func TestSaveOnSwitch(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetSaveOnSwitch() {
		t.Error("Save on switch should default to false")
	}

	settings.SetSaveOnSwitch(true)
	if !settings.GetSaveOnSwitch() {
		t.Error("Expected save on switch to be true after setting")
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
