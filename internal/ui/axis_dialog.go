package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/qrank/quadrant-ranking/internal/board"
	"github.com/qrank/quadrant-ranking/internal/model"
)

// axisForm holds the entries for a single axis
type axisForm struct {
	nameEntry *widget.Entry
	negEntry  *widget.Entry
	posEntry  *widget.Entry
	minEntry  *widget.Entry
	maxEntry  *widget.Entry
}

// AxisDialog edits both axes at once: names, side labels, and value ranges.
// Range changes rescale every item proportionally, so the dialog warns about
// nothing and simply refuses degenerate ranges.
type AxisDialog struct {
	window       fyne.Window
	localization *Localization
	store        board.Store
	dialog       *dialog.ConfirmDialog

	xForm axisForm
	yForm axisForm

	errorLabel *widget.Label

	onApplied func()
}

// NewAxisDialog creates the axis dialog pre-filled from the store
func NewAxisDialog(window fyne.Window, localization *Localization, store board.Store, onApplied func()) *AxisDialog {
	d := &AxisDialog{
		window:       window,
		localization: localization,
		store:        store,
		onApplied:    onApplied,
	}
	d.createUI()
	return d
}

// Show displays the axis dialog
func (d *AxisDialog) Show() {
	d.dialog.Show()
}

// createUI creates the dialog UI
func (d *AxisDialog) createUI() {
	xSection := d.buildAxisSection(&d.xForm, d.store.Axis(model.Horizontal), KeyXAxis)
	ySection := d.buildAxisSection(&d.yForm, d.store.Axis(model.Vertical), KeyYAxis)

	d.errorLabel = widget.NewLabel("")
	d.errorLabel.Importance = widget.DangerImportance
	d.errorLabel.Hide()

	content := container.NewVBox(
		xSection,
		widget.NewSeparator(),
		ySection,
		d.errorLabel,
	)

	d.dialog = dialog.NewCustomConfirm(
		d.localization.GetText(KeyAxisSettings),
		d.localization.GetText(KeySave),
		d.localization.GetText(KeyCancel),
		content,
		d.onConfirm,
		d.window,
	)
	d.dialog.Resize(fyne.NewSize(AxisDialogWidth, AxisDialogHeight))
}

// buildAxisSection fills one axis form and returns its layout
func (d *AxisDialog) buildAxisSection(form *axisForm, axis model.Axis, titleKey string) fyne.CanvasObject {
	form.nameEntry = widget.NewEntry()
	form.nameEntry.SetText(axis.Name)
	form.negEntry = widget.NewEntry()
	form.negEntry.SetText(axis.NegativeLabel)
	form.posEntry = widget.NewEntry()
	form.posEntry.SetText(axis.PositiveLabel)
	form.minEntry = widget.NewEntry()
	form.minEntry.SetText(strconv.FormatFloat(axis.Min, 'f', -1, 64))
	form.maxEntry = widget.NewEntry()
	form.maxEntry.SetText(strconv.FormatFloat(axis.Max, 'f', -1, 64))

	title := widget.NewLabel(d.localization.GetText(titleKey))
	title.TextStyle = fyne.TextStyle{Bold: true}

	grid := container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel(d.localization.GetText(KeyAxisName)), form.nameEntry,
			widget.NewLabel(d.localization.GetText(KeyNegativeLabel)), form.negEntry,
			widget.NewLabel(d.localization.GetText(KeyPositiveLabel)), form.posEntry,
			widget.NewLabel(d.localization.GetText(KeyRangeMin)), form.minEntry,
			widget.NewLabel(d.localization.GetText(KeyRangeMax)), form.maxEntry,
		),
	)

	return container.NewVBox(title, grid)
}

// onConfirm validates both axes before applying anything, so a bad Y range
// never leaves a half-applied X axis behind
func (d *AxisDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}

	xMin, xMax, errKey := parseRange(d.xForm)
	if errKey == "" {
		var yMin, yMax float64
		yMin, yMax, errKey = parseRange(d.yForm)
		if errKey == "" {
			d.applyAxis(model.Horizontal, d.xForm, xMin, xMax)
			d.applyAxis(model.Vertical, d.yForm, yMin, yMax)
			if d.onApplied != nil {
				d.onApplied()
			}
			return
		}
	}

	d.errorLabel.SetText(d.localization.GetText(errKey))
	d.errorLabel.Show()
	d.dialog.Show()
}

// applyAxis writes one axis form back to the store
func (d *AxisDialog) applyAxis(orientation model.Orientation, form axisForm, min, max float64) {
	d.store.SetAxisName(orientation, form.nameEntry.Text)
	d.store.SetAxisLabels(orientation, form.negEntry.Text, form.posEntry.Text)
	if err := d.store.SetAxisRange(orientation, min, max); err != nil {
		// Already validated, but log-worthy if it ever happens
		d.errorLabel.SetText(d.localization.GetText(KeyDegenerateRange))
		d.errorLabel.Show()
	}
}

// parseRange reads one form's min/max; returns a localization key on failure.
// "NaN" and "Inf" parse fine but make no range, so they are rejected before
// the ordering check, which NaN would sneak past.
func parseRange(form axisForm) (min, max float64, errKey string) {
	min, err := strconv.ParseFloat(form.minEntry.Text, 64)
	if err != nil || !model.IsFinite(min) {
		return 0, 0, KeyInvalidNumber
	}
	max, err = strconv.ParseFloat(form.maxEntry.Text, 64)
	if err != nil || !model.IsFinite(max) {
		return 0, 0, KeyInvalidNumber
	}
	if min >= max {
		return 0, 0, KeyDegenerateRange
	}
	return min, max, ""
}
