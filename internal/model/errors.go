package model

import "errors"

// Sentinel errors shared by the board service and the UI layer.
var (
	// ErrNotFound is returned when an operation references an unknown item ID,
	// e.g. a stale drag on an item that was deleted meanwhile.
	ErrNotFound = errors.New("item not found")

	// ErrEmptyLabel is returned when an item is created or renamed with a
	// blank label.
	ErrEmptyLabel = errors.New("item label is empty")

	// ErrDegenerateRange is returned when an axis range would collapse
	// (min >= max), which cannot be rendered or mapped.
	ErrDegenerateRange = errors.New("axis range is degenerate")

	// ErrNonFinite is returned when a position is NaN or infinite. Such
	// values defeat clamping and cannot be stored as JSON.
	ErrNonFinite = errors.New("value is not a finite number")
)
