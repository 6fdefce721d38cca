package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyDataFile      = "data_file_path"
	KeySnapshotDir   = "snapshot_directory"
	KeyLanguage      = "app_language"
	KeyConfirmDelete = "confirm_delete"
	KeySaveOnSwitch  = "save_on_context_switch"
)

// Default values
const (
	// DefaultDataFile matches the save location earlier releases used, so
	// existing data files keep loading.
	DefaultDataFile      = "counter/counter_data.json"
	DefaultSnapshotDir   = "counter/snapshots"
	DefaultLanguage      = "system"
	DefaultConfirmDelete = true
	DefaultSaveOnSwitch  = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataFilePath returns the path of the JSON save file
func (s *Settings) GetDataFilePath() string {
	path := s.app.Preferences().String(KeyDataFile)
	if path == "" {
		s.SetDataFilePath(DefaultDataFile)
		return DefaultDataFile
	}
	return path
}

// SetDataFilePath sets the path of the JSON save file
func (s *Settings) SetDataFilePath(path string) {
	if path == "" {
		path = DefaultDataFile
	}
	s.app.Preferences().SetString(KeyDataFile, path)
}

// GetSnapshotDirectory returns the directory snapshot exports are written to
func (s *Settings) GetSnapshotDirectory() string {
	dir := s.app.Preferences().String(KeySnapshotDir)
	if dir == "" {
		s.SetSnapshotDirectory(DefaultSnapshotDir)
		return DefaultSnapshotDir
	}
	return dir
}

// SetSnapshotDirectory sets the snapshot export directory
func (s *Settings) SetSnapshotDirectory(dir string) {
	if dir == "" {
		dir = DefaultSnapshotDir
	}
	s.app.Preferences().SetString(KeySnapshotDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetConfirmDelete returns whether deleting a context asks for confirmation
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether deleting a context asks for confirmation
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetSaveOnSwitch returns whether the store is flushed to disk on every
// context switch in addition to explicit save and exit
func (s *Settings) GetSaveOnSwitch() bool {
	return s.app.Preferences().BoolWithFallback(KeySaveOnSwitch, DefaultSaveOnSwitch)
}

// SetSaveOnSwitch sets whether the store is flushed to disk on context switch
func (s *Settings) SetSaveOnSwitch(save bool) {
	s.app.Preferences().SetBool(KeySaveOnSwitch, save)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
