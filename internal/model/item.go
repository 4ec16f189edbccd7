package model

import (
	"fmt"
	"strings"
)

// Item represents a single labeled entity placed on the board
type Item struct {
	ID        string  `json:"id"`         // stable across renames and moves
	Label     string  `json:"label"`      // display text next to the marker
	X         float64 `json:"x"`          // position on the horizontal axis, in axis units
	Y         float64 `json:"y"`          // position on the vertical axis, in axis units
	ImagePath string  `json:"image_path"` // optional marker image, empty for plain marker
}

// GetDisplayLabel returns the label, or the ID as a fallback for items that
// somehow lost their label (e.g. loaded from a hand-edited board file)
func (it *Item) GetDisplayLabel() string {
	label := strings.TrimSpace(it.Label)
	if label != "" {
		return label
	}
	return it.ID
}

// Summary returns a compact one-line description for list rows,
// e.g. "Sword (x=5.0, y=-3.5)"
func (it *Item) Summary() string {
	return fmt.Sprintf("%s (x=%.1f, y=%.1f)", it.GetDisplayLabel(), it.X, it.Y)
}

// HasImage reports whether the item has a marker image configured
func (it *Item) HasImage() bool {
	return it.ImagePath != ""
}
