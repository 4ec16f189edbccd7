package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAxes     = "✛"
	IconEdit     = "✎"
	IconDelete   = "🗑"
	IconSave     = "💾"
	IconFolder   = "📁"
	IconClose    = "×"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Canvas geometry
const (
	// CanvasMargin keeps markers and labels away from the viewport edge,
	// in pixels, matching the original margin of 40.
	CanvasMargin float32 = 40

	CanvasMinWidth  float32 = 480
	CanvasMinHeight float32 = 360

	AxisLineWidth float32 = 1
)

// Marker sizing
const (
	MarkerDiameter   float32 = 14
	MarkerImageSize  float32 = 48
	MarkerLabelGap   float32 = 2
	MarkerTextSize   float32 = 11
	AxisLabelPadding float32 = 6
)

// Sidebar sizing
const (
	// SidebarSplitOffset is the initial sidebar share of the split layout
	SidebarSplitOffset = 0.28

	RowMinWidth  float32 = 240
	RowMinHeight float32 = 44
)

// Dialog sizing
const (
	ItemDialogWidth  float32 = 420
	ItemDialogHeight float32 = 340

	AxisDialogWidth  float32 = 480
	AxisDialogHeight float32 = 460

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 380
)

// Debounce durations
const (
	AutoSaveDebounce = 400 * time.Millisecond
)
