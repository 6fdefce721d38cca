package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CounterRow is a compact row widget for a single counter: name on the left,
// decrement/value/increment in the middle, reset on the right.
type CounterRow struct {
	widget.BaseWidget

	index        int
	localization *Localization

	// UI components
	nameLabel  *widget.Label
	valueLabel *widget.Label
	decBtn     *widget.Button
	incBtn     *widget.Button
	resetBtn   *widget.Button

	// Callbacks
	onIncrement func(index int)
	onDecrement func(index int)
	onReset     func(index int)
}

// NewCounterRow creates a row for the counter at the given index.
func NewCounterRow(index int, localization *Localization) *CounterRow {
	cr := &CounterRow{
		index:        index,
		localization: localization,
	}
	cr.ExtendBaseWidget(cr)
	cr.createUI()
	return cr
}

// SetCallbacks sets the action callbacks
func (cr *CounterRow) SetCallbacks(
	onIncrement func(index int),
	onDecrement func(index int),
	onReset func(index int),
) {
	cr.onIncrement = onIncrement
	cr.onDecrement = onDecrement
	cr.onReset = onReset
}

// SetValue updates the displayed counter value.
func (cr *CounterRow) SetValue(value int) {
	cr.valueLabel.SetText(strconv.Itoa(value))
}

// RefreshTexts re-applies localized texts after a language change.
func (cr *CounterRow) RefreshTexts() {
	cr.nameLabel.SetText(fmt.Sprintf(cr.localization.GetText(KeyCounterName), cr.index+1))
	cr.resetBtn.SetText(cr.localization.GetText(KeyReset))
}

// createUI creates the UI components
func (cr *CounterRow) createUI() {
	cr.nameLabel = widget.NewLabel(fmt.Sprintf(cr.localization.GetText(KeyCounterName), cr.index+1))
	cr.nameLabel.Alignment = fyne.TextAlignLeading

	cr.valueLabel = widget.NewLabel("0")
	cr.valueLabel.Alignment = fyne.TextAlignCenter
	cr.valueLabel.TextStyle = fyne.TextStyle{Bold: true}

	cr.decBtn = widget.NewButton(IconDecrement, func() {
		if cr.onDecrement != nil {
			cr.onDecrement(cr.index)
		}
	})
	cr.decBtn.Importance = widget.MediumImportance

	cr.incBtn = widget.NewButton(IconIncrement, func() {
		if cr.onIncrement != nil {
			cr.onIncrement(cr.index)
		}
	})
	cr.incBtn.Importance = widget.MediumImportance

	cr.resetBtn = widget.NewButton(cr.localization.GetText(KeyReset), func() {
		if cr.onReset != nil {
			cr.onReset(cr.index)
		}
	})
	cr.resetBtn.Importance = widget.LowImportance
}

// CreateRenderer creates the widget renderer
func (cr *CounterRow) CreateRenderer() fyne.WidgetRenderer {
	return &counterRowRenderer{counterRow: cr}
}

// counterRowRenderer renders the counter row widget
type counterRowRenderer struct {
	counterRow *CounterRow
	layout     *fyne.Container
}

// Layout arranges the components
func (r *counterRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *counterRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *counterRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *counterRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *counterRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *counterRowRenderer) createLayout() {
	cr := r.counterRow

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// dec / value / reset cluster pinned to the right, name takes the rest
	actionCluster := container.NewHBox(
		cr.decBtn,
		fixedWidth(CounterValueWidth, cr.valueLabel),
		cr.incBtn,
		cr.resetBtn,
	)

	mainContent := container.NewBorder(nil, nil, fixedWidth(CounterNameWidth, cr.nameLabel), actionCluster)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
