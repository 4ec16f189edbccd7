package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/qrank/quadrant-ranking/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	dataDirEntry   *widget.Entry
	autoSaveCheck  *widget.Check
	snapCheck      *widget.Check
	gridStepEntry  *widget.Entry
	languageSelect *widget.Select

	onSaved func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Data directory selection
	sd.dataDirEntry = widget.NewEntry()
	sd.dataDirEntry.SetPlaceHolder(sd.localization.GetText(KeyDataDirectory))

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	dataDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.dataDirEntry)

	sd.autoSaveCheck = widget.NewCheck(sd.localization.GetText(KeyAutoSave), nil)
	sd.snapCheck = widget.NewCheck(sd.localization.GetText(KeySnapToGrid), nil)

	sd.gridStepEntry = widget.NewEntry()
	sd.gridStepEntry.SetPlaceHolder(strconv.FormatFloat(config.DefaultGridStep, 'f', -1, 64))

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDataDirectory)+":"),
		dataDirRow,

		widget.NewSeparator(),

		sd.autoSaveCheck,
		sd.snapCheck,

		widget.NewLabel(sd.localization.GetText(KeyGridStep)+":"),
		sd.gridStepEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataDirEntry.SetText(sd.settings.GetDataDirectory())
	sd.autoSaveCheck.SetChecked(sd.settings.GetAutoSave())
	sd.snapCheck.SetChecked(sd.settings.GetSnapToGrid())
	sd.gridStepEntry.SetText(strconv.FormatFloat(sd.settings.GetGridStep(), 'f', -1, 64))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.dataDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save data directory
	dataDir := sd.dataDirEntry.Text
	if dataDir != "" {
		sd.settings.SetDataDirectory(dataDir)
	}

	sd.settings.SetAutoSave(sd.autoSaveCheck.Checked)
	sd.settings.SetSnapToGrid(sd.snapCheck.Checked)

	// Validate and save grid step
	if sd.gridStepEntry.Text != "" {
		if step, err := strconv.ParseFloat(sd.gridStepEntry.Text, 64); err == nil && step > 0 {
			sd.settings.SetGridStep(step)
		}
	}

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
