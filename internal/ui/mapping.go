package ui

import (
	"fyne.io/fyne/v2"

	"github.com/qrank/quadrant-ranking/internal/model"
)

// Pure value<->pixel mapping for the quadrant canvas. Kept free of widget
// state so the math is testable headless. Pixel Y grows downwards while axis
// Y grows upwards, hence the flip on the vertical axis.

// ValueToPixel maps an item position in axis units to a pixel position
// inside a canvas of the given size, honoring the canvas margin.
func ValueToPixel(xAxis, yAxis model.Axis, size fyne.Size, x, y float64) fyne.Position {
	plotW := float64(size.Width - 2*CanvasMargin)
	plotH := float64(size.Height - 2*CanvasMargin)

	px := float64(CanvasMargin) + xAxis.Normalize(x)*plotW
	py := float64(CanvasMargin) + (1-yAxis.Normalize(y))*plotH
	return fyne.NewPos(float32(px), float32(py))
}

// PixelToValue maps a pixel position back to axis units. Positions outside
// the plot area clamp to the nearest range edge.
func PixelToValue(xAxis, yAxis model.Axis, size fyne.Size, pos fyne.Position) (float64, float64) {
	plotW := float64(size.Width - 2*CanvasMargin)
	plotH := float64(size.Height - 2*CanvasMargin)
	if plotW <= 0 || plotH <= 0 {
		return xAxis.Center(), yAxis.Center()
	}

	tx := (float64(pos.X) - float64(CanvasMargin)) / plotW
	ty := 1 - (float64(pos.Y)-float64(CanvasMargin))/plotH

	return xAxis.Denormalize(clampUnit(tx)), yAxis.Denormalize(clampUnit(ty))
}

// OriginPixel returns the pixel position where the two axes cross
func OriginPixel(xAxis, yAxis model.Axis, size fyne.Size) fyne.Position {
	return ValueToPixel(xAxis, yAxis, size, xAxis.Center(), yAxis.Center())
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
