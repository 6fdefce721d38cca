package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/multicount/multi-counter/internal/config"
	"github.com/multicount/multi-counter/internal/model"
	"github.com/multicount/multi-counter/internal/platform"
	"github.com/multicount/multi-counter/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	contexts     store.ContextStore
	settings     *config.Settings
	localization *Localization

	// UI components
	contextSelect *widget.Select
	counterRows   [model.NumCounters]*CounterRow
	noteEntry     *widget.Entry
	addBtn        *widget.Button
	renameBtn     *widget.Button
	deleteBtn     *widget.Button
	resetAllBtn   *widget.Button
	saveBtn       *widget.Button

	// rendering guards widget OnChanged handlers while render() pushes store
	// state into the widgets, so programmatic updates do not loop back as
	// user edits.
	rendering bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, contexts store.ContextStore) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		contexts:     contexts,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Every store mutation triggers an explicit re-render
	ui.contexts.SetUpdateCallback(ui.render)

	ui.setupUI()

	// Save before terminating when the user closes the window
	window.SetCloseIntercept(ui.onClose)

	ui.render()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Context selector row
	ui.contextSelect = widget.NewSelect(nil, ui.onContextSelected)
	contextLabel := widget.NewLabel(ui.localization.GetText(KeyContext))
	contextLabel.TextStyle = fyne.TextStyle{Bold: true}
	contextRow := container.NewBorder(nil, nil, contextLabel, nil, ui.contextSelect)

	// Context management buttons
	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddNew), ui.onAddContext)
	ui.renameBtn = widget.NewButton(ui.localization.GetText(KeyRename), ui.onRenameContext)
	ui.deleteBtn = widget.NewButton(ui.localization.GetText(KeyDelete), ui.onDeleteContext)
	contextButtonRow := container.NewGridWithColumns(3, ui.addBtn, ui.renameBtn, ui.deleteBtn)

	// Counter rows
	counterBox := container.NewVBox()
	for i := range ui.counterRows {
		row := NewCounterRow(i, ui.localization)
		row.SetCallbacks(ui.onIncrement, ui.onDecrement, ui.onResetCounter)
		ui.counterRows[i] = row
		counterBox.Add(row)
	}

	// Note editor, committing on every change
	ui.noteEntry = widget.NewMultiLineEntry()
	ui.noteEntry.SetPlaceHolder(ui.localization.GetText(KeyNotePlaceholder))
	ui.noteEntry.Wrapping = fyne.TextWrapWord
	ui.noteEntry.OnChanged = ui.onNoteChanged

	// Bottom action buttons
	ui.resetAllBtn = widget.NewButton(ui.localization.GetText(KeyResetAll), ui.onResetAll)
	ui.saveBtn = widget.NewButton(ui.localization.GetText(KeySaveNow), ui.onSaveNow)
	ui.saveBtn.Importance = widget.HighImportance
	bottomRow := container.NewGridWithColumns(2, ui.resetAllBtn, ui.saveBtn)

	topSection := container.NewVBox(
		contextRow,
		contextButtonRow,
		widget.NewSeparator(),
		counterBox,
	)

	bottomSection := container.NewVBox(
		widget.NewSeparator(),
		bottomRow,
	)

	// Note editor takes the remaining vertical space
	content := container.NewBorder(
		topSection,    // top
		bottomSection, // bottom
		nil,           // left
		nil,           // right
		ui.noteEntry,  // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	saveItem := fyne.NewMenuItem(ui.localization.GetText(KeySaveNow), ui.onSaveNow)
	snapshotItem := fyne.NewMenuItem(ui.localization.GetText(KeySnapshot), ui.onSnapshot)
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealDataFile), ui.onRevealDataFile)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), saveItem, snapshotItem, revealItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// render pushes the store state into all widgets. This is the single explicit
// re-render invoked after every mutation; widgets never hold their own draft
// of context state.
func (ui *RootUI) render() {
	ui.rendering = true
	defer func() { ui.rendering = false }()

	ui.contextSelect.Options = ui.contexts.Names()
	ui.contextSelect.SetSelected(ui.contexts.ActiveName())
	ui.contextSelect.Refresh()

	record := ui.contexts.Active()
	for i, row := range ui.counterRows {
		row.SetValue(record.Counters[i])
	}

	if ui.noteEntry.Text != record.Note {
		ui.noteEntry.SetText(record.Note)
	}
}

// onContextSelected fires when the user picks a context from the selector
func (ui *RootUI) onContextSelected(name string) {
	if ui.rendering || name == ui.contexts.ActiveName() {
		return
	}

	if err := ui.contexts.SwitchTo(name); err != nil {
		log.Printf("Error switching to context %q: %v", name, err)
		return
	}

	if ui.settings.GetSaveOnSwitch() {
		if err := ui.contexts.Save(); err != nil {
			log.Printf("Error saving on context switch: %v", err)
		}
	}
}

// onAddContext asks for a new context name and creates it
func (ui *RootUI) onAddContext() {
	showNameDialog(ui.window, ui.localization, KeyNewContextTitle, KeyNewContextLabel, KeyCreate, "", func(name string) {
		if err := ui.contexts.Add(name); err != nil {
			ui.showContextError(err)
		}
	})
}

// onRenameContext renames the currently active context
func (ui *RootUI) onRenameContext() {
	oldName := ui.contexts.ActiveName()
	if oldName == model.DefaultContextName {
		showWarning(ui.window, ui.localization, KeyCannotRename)
		return
	}

	showNameDialog(ui.window, ui.localization, KeyRenameTitle, KeyRenameLabel, KeyRename, oldName, func(name string) {
		if err := ui.contexts.Rename(name); err != nil {
			ui.showContextError(err)
		}
	})
}

// onDeleteContext deletes the currently active context after confirmation
func (ui *RootUI) onDeleteContext() {
	name := ui.contexts.ActiveName()
	if name == model.DefaultContextName {
		showWarning(ui.window, ui.localization, KeyCannotDelete)
		return
	}

	doDelete := func() {
		if err := ui.contexts.Delete(); err != nil {
			ui.showContextError(err)
		}
	}

	if !ui.settings.GetConfirmDelete() {
		doDelete()
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyDeleteTitle),
		fmt.Sprintf(ui.localization.GetText(KeyDeleteConfirm), name),
		func(confirmed bool) {
			if confirmed {
				doDelete()
			}
		},
		ui.window,
	)
}

// showContextError maps store validation errors to localized warnings
func (ui *RootUI) showContextError(err error) {
	switch {
	case errors.Is(err, store.ErrEmptyName):
		showWarning(ui.window, ui.localization, KeyNameEmpty)
	case errors.Is(err, store.ErrNameExists):
		showWarning(ui.window, ui.localization, KeyNameExists)
	case errors.Is(err, store.ErrReservedContext):
		showWarning(ui.window, ui.localization, KeyCannotRename)
	default:
		dialog.ShowError(err, ui.window)
	}
}

// onIncrement handles a + click on a counter row
func (ui *RootUI) onIncrement(index int) {
	ui.contexts.Increment(index)
}

// onDecrement handles a − click on a counter row
func (ui *RootUI) onDecrement(index int) {
	ui.contexts.Decrement(index)
}

// onResetCounter handles a reset click on a counter row
func (ui *RootUI) onResetCounter(index int) {
	ui.contexts.ResetCounter(index)
}

// onResetAll resets all counters of the active context
func (ui *RootUI) onResetAll() {
	ui.contexts.ResetAll()
}

// onNoteChanged commits the note text on every edit
func (ui *RootUI) onNoteChanged(text string) {
	if ui.rendering {
		return
	}
	ui.contexts.SetNote(text)
}

// onSaveNow flushes the store to disk
func (ui *RootUI) onSaveNow() {
	if err := ui.contexts.Save(); err != nil {
		log.Printf("Error saving contexts: %v", err)
		dialog.ShowInformation(ui.localization.GetText(KeySaveFailed), err.Error(), ui.window)
		return
	}

	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyContextsSaved)), ui.window.Canvas())
}

// onSnapshot writes a timestamped copy of the store to the snapshot directory
func (ui *RootUI) onSnapshot() {
	path, err := ui.contexts.Snapshot(ui.settings.GetSnapshotDirectory())
	if err != nil {
		log.Printf("Error writing snapshot: %v", err)
		dialog.ShowInformation(ui.localization.GetText(KeySnapshotFailed), err.Error(), ui.window)
		return
	}

	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySnapshotCreated)+": "+path), ui.window.Canvas())
}

// onRevealDataFile opens the save file location in the system file manager
func (ui *RootUI) onRevealDataFile() {
	if err := platform.RevealInFileManager(ui.contexts.Path()); err != nil {
		log.Printf("Error revealing data file: %v", err)
		dialog.ShowInformation(ui.localization.GetText(KeyErrorOpeningFile), err.Error(), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Re-apply language in case it changed; the data file path takes
		// effect on next launch.
		ui.onLanguageChange(ui.settings.GetLanguage())
	})
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.addBtn.SetText(ui.localization.GetText(KeyAddNew))
	ui.renameBtn.SetText(ui.localization.GetText(KeyRename))
	ui.deleteBtn.SetText(ui.localization.GetText(KeyDelete))
	ui.resetAllBtn.SetText(ui.localization.GetText(KeyResetAll))
	ui.saveBtn.SetText(ui.localization.GetText(KeySaveNow))
	ui.noteEntry.SetPlaceHolder(ui.localization.GetText(KeyNotePlaceholder))

	for _, row := range ui.counterRows {
		row.RefreshTexts()
	}
}

// onClose saves all contexts and closes the window
func (ui *RootUI) onClose() {
	log.Printf("Saving all contexts on close...")
	if err := ui.contexts.Save(); err != nil {
		// Never block shutdown on a failed save
		log.Printf("Error saving contexts on close: %v", err)
	}
	ui.window.Close()
}
