package storage

// Package storage persists one board as a human-readable JSON file and watches
// it for external edits. Saves go through a temp-file rename so a crash never
// leaves a truncated board behind.
