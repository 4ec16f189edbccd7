package config

import (
	"fyne.io/fyne/v2"

	"github.com/qrank/quadrant-ranking/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDataDir    = "data_directory"
	KeyAutoSave   = "auto_save"
	KeySnapToGrid = "snap_to_grid"
	KeyGridStep   = "grid_step"
	KeyLanguage   = "app_language"
)

// Default values
const (
	DefaultAutoSave   = true
	DefaultSnapToGrid = false
	DefaultGridStep   = 5.0
	DefaultLanguage   = "system"

	MinGridStep = 0.1
	MaxGridStep = 100.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataDirectory returns the configured data directory where the board
// file and imported images live
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		defaultDir, err := platform.DefaultDataDir()
		if err != nil {
			defaultDir = "data"
		}
		s.SetDataDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDataDirectory sets the data directory
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetAutoSave returns whether the board is saved after every change
func (s *Settings) GetAutoSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoSave, DefaultAutoSave)
}

// SetAutoSave sets whether the board is saved after every change
func (s *Settings) SetAutoSave(autoSave bool) {
	s.app.Preferences().SetBool(KeyAutoSave, autoSave)
}

// GetSnapToGrid returns whether item positions snap to the grid
func (s *Settings) GetSnapToGrid() bool {
	return s.app.Preferences().BoolWithFallback(KeySnapToGrid, DefaultSnapToGrid)
}

// SetSnapToGrid sets whether item positions snap to the grid
func (s *Settings) SetSnapToGrid(snap bool) {
	s.app.Preferences().SetBool(KeySnapToGrid, snap)
}

// GetGridStep returns the snap grid step in axis units
func (s *Settings) GetGridStep() float64 {
	value := s.app.Preferences().Float(KeyGridStep)
	if value <= 0 {
		s.SetGridStep(DefaultGridStep)
		return DefaultGridStep
	}
	return value
}

// SetGridStep sets the snap grid step, clamped to a sane range
func (s *Settings) SetGridStep(step float64) {
	if step < MinGridStep {
		step = MinGridStep
	}
	if step > MaxGridStep {
		step = MaxGridStep
	}
	s.app.Preferences().SetFloat(KeyGridStep, step)
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
