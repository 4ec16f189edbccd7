package board

// Package board implements the item store and axis configuration for one
// board. It owns all mutations (add/rename/move/remove, axis edits), enforces
// the clamp and rescale policies, and notifies the UI through a single update
// callback after every successful change.
