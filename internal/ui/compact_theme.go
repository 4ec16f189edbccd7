package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme trades chrome for canvas: tighter paddings and smaller text
// keep the sidebar narrow so the quadrant plot gets the window.
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Palette shared between the theme and the quadrant background tints, so the
// canvas and the widgets read as one surface.
var (
	paletteIndigo = color.RGBA{R: 92, G: 107, B: 192, A: 255} // markers, primary actions
	paletteGreen  = color.RGBA{R: 67, G: 160, B: 71, A: 255}
	paletteAmber  = color.RGBA{R: 255, G: 179, B: 0, A: 255}
	paletteRed    = color.RGBA{R: 198, G: 40, B: 40, A: 255}
)

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return paletteIndigo
	case theme.ColorNameSuccess:
		return paletteGreen
	case theme.ColorNameWarning:
		return paletteAmber
	case theme.ColorNameError:
		return paletteRed
	case theme.ColorNameBackground:
		// Near-neutral backgrounds so the quadrant tints stay visible
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 24, B: 27, A: 255}
		}
		return color.RGBA{R: 252, G: 252, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 235, G: 235, B: 235, A: 255}
		}
		return color.RGBA{R: 38, G: 38, B: 38, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes. Sidebar rows carry two text lines plus buttons,
// so the vertical paddings shrink the most.
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameInnerPadding:
		return 5
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameHeadingText:
		return 15
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

// Quadrant background tints, derived from the palette at low alpha so
// markers and captions stay readable on top
var (
	QuadrantTintI   = color.NRGBA{R: paletteGreen.R, G: paletteGreen.G, B: paletteGreen.B, A: 18}    // top-right
	QuadrantTintII  = color.NRGBA{R: paletteIndigo.R, G: paletteIndigo.G, B: paletteIndigo.B, A: 18} // top-left
	QuadrantTintIII = color.NRGBA{R: paletteAmber.R, G: paletteAmber.G, B: paletteAmber.B, A: 18}    // bottom-left
	QuadrantTintIV  = color.NRGBA{R: paletteRed.R, G: paletteRed.G, B: paletteRed.B, A: 18}          // bottom-right
)
