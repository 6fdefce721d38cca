package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showNameDialog asks the user for a context name and calls onConfirm with
// the trimmed result. Cancelling the dialog calls nothing, mirroring the
// cancel-is-silent behavior of the context operations.
func showNameDialog(window fyne.Window, localization *Localization, titleKey, labelKey, confirmKey, initial string, onConfirm func(name string)) {
	entry := widget.NewEntry()
	entry.SetText(initial)

	form := container.NewVBox(
		widget.NewLabel(localization.GetText(labelKey)),
		entry,
	)

	d := dialog.NewCustomConfirm(
		localization.GetText(titleKey),
		localization.GetText(confirmKey),
		localization.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			onConfirm(strings.TrimSpace(entry.Text))
		},
		window,
	)

	d.Resize(fyne.NewSize(NameDialogWidth, NameDialogHeight))
	d.Show()
	window.Canvas().Focus(entry)
}

// showWarning surfaces a validation error as a blocking dialog. No state is
// mutated by the time this is shown.
func showWarning(window fyne.Window, localization *Localization, messageKey string) {
	dialog.ShowInformation(
		localization.GetText(KeyWarningTitle),
		localization.GetText(messageKey),
		window,
	)
}
