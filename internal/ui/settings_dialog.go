package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/multicount/multi-counter/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	dataFileEntry    *widget.Entry
	snapshotDirEntry *widget.Entry
	languageSelect   *widget.Select
	confirmDeleteChk *widget.Check
	saveOnSwitchChk  *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved is called
// after the settings were written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Data file path
	sd.dataFileEntry = widget.NewEntry()
	sd.dataFileEntry.SetPlaceHolder(config.DefaultDataFile)

	// Snapshot directory with folder browser
	sd.snapshotDirEntry = widget.NewEntry()
	sd.snapshotDirEntry.SetPlaceHolder(config.DefaultSnapshotDir)

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseSnapshotDir)
	snapshotDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.snapshotDirEntry)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Behavior toggles
	sd.confirmDeleteChk = widget.NewCheck(sd.localization.GetText(KeyConfirmDelete), nil)
	sd.saveOnSwitchChk = widget.NewCheck(sd.localization.GetText(KeySaveOnSwitch), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDataFilePath)+":"),
		sd.dataFileEntry,

		widget.NewLabel(sd.localization.GetText(KeySnapshotDir)+":"),
		snapshotDirRow,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),

		sd.confirmDeleteChk,
		sd.saveOnSwitchChk,
	)

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
	sd.dataFileEntry.SetText(sd.settings.GetDataFilePath())
	sd.snapshotDirEntry.SetText(sd.settings.GetSnapshotDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.confirmDeleteChk.SetChecked(sd.settings.GetConfirmDelete())
	sd.saveOnSwitchChk.SetChecked(sd.settings.GetSaveOnSwitch())
}

// onBrowseSnapshotDir handles directory browsing
func (sd *SettingsDialog) onBrowseSnapshotDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.snapshotDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetDataFilePath(sd.dataFileEntry.Text)
	sd.settings.SetSnapshotDirectory(sd.snapshotDirEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetConfirmDelete(sd.confirmDeleteChk.Checked)
	sd.settings.SetSaveOnSwitch(sd.saveOnSwitchChk.Checked)

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
