package ui

import (
	"errors"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/qrank/quadrant-ranking/internal/model"
)

// ItemDialogResult carries the values collected by the item dialog
type ItemDialogResult struct {
	Label     string
	X, Y      float64
	ImagePath string
}

// ItemDialog edits one item's label, position, and optional marker image.
// The same dialog serves both the add and the edit flow.
type ItemDialog struct {
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	// UI components
	labelEntry *widget.Entry
	xEntry     *widget.Entry
	yEntry     *widget.Entry
	imageEntry *widget.Entry
	errorLabel *widget.Label

	onSave func(ItemDialogResult) error
}

// NewItemDialog creates an item dialog pre-filled from the given item
func NewItemDialog(window fyne.Window, localization *Localization, item model.Item, onSave func(ItemDialogResult) error) *ItemDialog {
	d := &ItemDialog{
		window:       window,
		localization: localization,
		onSave:       onSave,
	}
	d.createUI(item)
	return d
}

// Show displays the item dialog
func (d *ItemDialog) Show() {
	d.dialog.Show()
}

// createUI creates the dialog UI
func (d *ItemDialog) createUI(item model.Item) {
	d.labelEntry = widget.NewEntry()
	d.labelEntry.SetText(item.Label)
	d.labelEntry.SetPlaceHolder(d.localization.GetText(KeyItemLabel))

	d.xEntry = widget.NewEntry()
	d.xEntry.SetText(strconv.FormatFloat(item.X, 'f', -1, 64))
	d.yEntry = widget.NewEntry()
	d.yEntry.SetText(strconv.FormatFloat(item.Y, 'f', -1, 64))

	d.imageEntry = widget.NewEntry()
	d.imageEntry.SetText(item.ImagePath)
	browseBtn := widget.NewButton(d.localization.GetText(KeyBrowse), d.onBrowseImage)
	imageRow := container.NewBorder(nil, nil, nil, browseBtn, d.imageEntry)

	d.errorLabel = widget.NewLabel("")
	d.errorLabel.Importance = widget.DangerImportance
	d.errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabel(d.localization.GetText(KeyItemLabel)+":"),
		d.labelEntry,

		widget.NewLabel("X:"),
		d.xEntry,

		widget.NewLabel("Y:"),
		d.yEntry,

		widget.NewLabel(d.localization.GetText(KeyItemImage)+":"),
		imageRow,

		d.errorLabel,
	)

	d.dialog = dialog.NewCustomConfirm(
		d.localization.GetText(KeyEditItem),
		d.localization.GetText(KeySave),
		d.localization.GetText(KeyCancel),
		form,
		d.onConfirm,
		d.window,
	)
	d.dialog.Resize(fyne.NewSize(ItemDialogWidth, ItemDialogHeight))
}

// onBrowseImage handles marker image selection
func (d *ItemDialog) onBrowseImage() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		d.imageEntry.SetText(reader.URI().Path())
	}, d.window)
}

// onConfirm validates and hands the values to the save callback. Validation
// failures reopen the dialog with an inline message instead of losing input.
func (d *ItemDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}

	result, errKey := d.collect()
	if errKey == "" && d.onSave != nil {
		if err := d.onSave(result); err != nil {
			errKey = messageKeyForError(err)
		}
	}

	if errKey != "" {
		d.errorLabel.SetText(d.localization.GetText(errKey))
		d.errorLabel.Show()
		d.dialog.Show()
	}
}

// collect reads the form; on failure it returns the localization key of the
// validation message
func (d *ItemDialog) collect() (ItemDialogResult, string) {
	var result ItemDialogResult

	result.Label = d.labelEntry.Text
	if result.Label == "" {
		return result, KeyEmptyLabel
	}

	// ParseFloat accepts "NaN" and "Inf"; neither is a position
	x, err := strconv.ParseFloat(d.xEntry.Text, 64)
	if err != nil || !model.IsFinite(x) {
		return result, KeyInvalidNumber
	}
	y, err := strconv.ParseFloat(d.yEntry.Text, 64)
	if err != nil || !model.IsFinite(y) {
		return result, KeyInvalidNumber
	}

	result.X = x
	result.Y = y
	result.ImagePath = d.imageEntry.Text
	return result, ""
}

// messageKeyForError maps service errors to localized inline messages
func messageKeyForError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrEmptyLabel):
		return KeyEmptyLabel
	case errors.Is(err, model.ErrDegenerateRange):
		return KeyDegenerateRange
	default:
		return KeyInvalidNumber
	}
}
