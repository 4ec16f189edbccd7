package board

import (
	"github.com/qrank/quadrant-ranking/internal/model"
)

// Store defines the interface for the board service.
type Store interface {
	SetUpdateCallback(func())

	AddItem(label string, x, y float64) (*model.Item, error)
	GetItem(id string) (*model.Item, bool)
	Items() []*model.Item
	RenameItem(id, label string) error
	MoveItem(id string, x, y float64) error
	SetItemImage(id, path string) error
	RemoveItem(id string) error

	Axis(orientation model.Orientation) model.Axis
	SetAxisName(orientation model.Orientation, name string)
	SetAxisLabels(orientation model.Orientation, negative, positive string)
	SetAxisRange(orientation model.Orientation, min, max float64) error

	// SetGridStep configures optional snap-to-grid for Add/Move; 0 disables it
	SetGridStep(step float64)

	// Board returns a deep-copied snapshot for rendering or persistence
	Board() model.Board

	// ReplaceBoard swaps in a loaded board wholesale
	ReplaceBoard(b model.Board) error
}
