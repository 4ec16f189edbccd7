package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the board service and renders the quadrant
// canvas, the item sidebar, dialogs, and notifications. All UI strings are
// localized via Localization.
