package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/qrank/quadrant-ranking/internal/model"
)

// ItemRow represents a compact sidebar row for one board item
type ItemRow struct {
	widget.BaseWidget

	item model.Item

	// UI components
	labelLabel    *widget.Label
	positionLabel *widget.Label

	// Action buttons
	editBtn   *widget.Button
	deleteBtn *widget.Button

	// Callbacks
	onEdit   func(itemID string)
	onRemove func(itemID string)
}

// NewItemRow creates a new item row widget
func NewItemRow(item model.Item, localization *Localization) *ItemRow {
	row := &ItemRow{item: item}
	row.ExtendBaseWidget(row)
	row.createUI(localization)
	row.updateFromItem()
	return row
}

// SetCallbacks sets the action callbacks
func (row *ItemRow) SetCallbacks(onEdit, onRemove func(itemID string)) {
	row.onEdit = onEdit
	row.onRemove = onRemove
}

// UpdateItem updates the row with new item data
func (row *ItemRow) UpdateItem(item model.Item) {
	row.item = item
	row.updateFromItem()
	row.Refresh()
}

// createUI creates the UI components
func (row *ItemRow) createUI(localization *Localization) {
	row.labelLabel = widget.NewLabel("")
	row.labelLabel.TextStyle = fyne.TextStyle{Bold: true}
	row.labelLabel.Truncation = fyne.TextTruncateEllipsis

	row.positionLabel = widget.NewLabel("")
	row.positionLabel.TextStyle = fyne.TextStyle{Monospace: true}

	row.editBtn = widget.NewButton(IconEdit, func() {
		if row.onEdit != nil {
			row.onEdit(row.item.ID)
		}
	})
	row.editBtn.Importance = widget.LowImportance

	row.deleteBtn = widget.NewButton(IconDelete, func() {
		if row.onRemove != nil {
			row.onRemove(row.item.ID)
		}
	})
	row.deleteBtn.Importance = widget.LowImportance
}

// updateFromItem updates UI components based on item state
func (row *ItemRow) updateFromItem() {
	row.labelLabel.SetText(row.item.GetDisplayLabel())
	row.positionLabel.SetText(row.item.Summary())
}

// CreateRenderer creates the widget renderer
func (row *ItemRow) CreateRenderer() fyne.WidgetRenderer {
	buttons := container.NewHBox(row.editBtn, row.deleteBtn)
	texts := container.NewVBox(row.labelLabel, row.positionLabel)
	layout := container.NewBorder(nil, nil, nil, buttons, texts)
	return widget.NewSimpleRenderer(layout)
}

// MinSize ensures rows keep a readable height inside the list
func (row *ItemRow) MinSize() fyne.Size {
	min := row.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
