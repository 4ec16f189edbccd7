package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"

	"github.com/qrank/quadrant-ranking/internal/model"
)

func testAxes() (model.Axis, model.Axis) {
	b := model.DefaultBoard()
	return b.XAxis, b.YAxis
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestValueToPixel(t *testing.T) {
	xAxis, yAxis := testAxes()
	size := fyne.NewSize(2*CanvasMargin+200, 2*CanvasMargin+100)

	tests := []struct {
		x, y   float64
		px, py float32
	}{
		{0, 0, CanvasMargin + 100, CanvasMargin + 50},       // origin at plot center
		{-100, -100, CanvasMargin, CanvasMargin + 100},      // bottom-left corner
		{100, 100, CanvasMargin + 200, CanvasMargin},        // top-right corner
		{100, -100, CanvasMargin + 200, CanvasMargin + 100}, // bottom-right corner
	}

	for _, test := range tests {
		pos := ValueToPixel(xAxis, yAxis, size, test.x, test.y)
		if pos.X != test.px || pos.Y != test.py {
			t.Errorf("ValueToPixel(%v, %v) = (%v, %v), expected (%v, %v)",
				test.x, test.y, pos.X, pos.Y, test.px, test.py)
		}
	}
}

func TestPixelToValue(t *testing.T) {
	xAxis, yAxis := testAxes()
	size := fyne.NewSize(2*CanvasMargin+200, 2*CanvasMargin+100)

	tests := []struct {
		px, py float32
		x, y   float64
	}{
		{CanvasMargin + 100, CanvasMargin + 50, 0, 0},
		{CanvasMargin, CanvasMargin + 100, -100, -100},
		{CanvasMargin + 200, CanvasMargin, 100, 100},
		{CanvasMargin + 150, CanvasMargin + 25, 50, 50},
	}

	for _, test := range tests {
		x, y := PixelToValue(xAxis, yAxis, size, fyne.NewPos(test.px, test.py))
		if !approxEqual(x, test.x) || !approxEqual(y, test.y) {
			t.Errorf("PixelToValue(%v, %v) = (%v, %v), expected (%v, %v)",
				test.px, test.py, x, y, test.x, test.y)
		}
	}
}

func TestPixelToValue_ClampsOutsidePlot(t *testing.T) {
	xAxis, yAxis := testAxes()
	size := fyne.NewSize(2*CanvasMargin+200, 2*CanvasMargin+100)

	// Pointer dragged past the right edge clamps to the axis max
	x, y := PixelToValue(xAxis, yAxis, size, fyne.NewPos(size.Width+50, CanvasMargin+50))
	if !approxEqual(x, 100) || !approxEqual(y, 0) {
		t.Errorf("Expected clamped (100, 0), got (%v, %v)", x, y)
	}

	// And past the top edge clamps to the axis max on Y
	x, y = PixelToValue(xAxis, yAxis, size, fyne.NewPos(CanvasMargin+100, -30))
	if !approxEqual(x, 0) || !approxEqual(y, 100) {
		t.Errorf("Expected clamped (0, 100), got (%v, %v)", x, y)
	}
}

func TestMappingRoundTrip(t *testing.T) {
	xAxis, yAxis := testAxes()
	size := fyne.NewSize(640, 480)

	values := []struct{ x, y float64 }{
		{0, 0},
		{-100, 100},
		{37.5, -62.5},
		{100, -100},
	}

	for _, v := range values {
		pos := ValueToPixel(xAxis, yAxis, size, v.x, v.y)
		x, y := PixelToValue(xAxis, yAxis, size, pos)
		if math.Abs(x-v.x) > 0.01 || math.Abs(y-v.y) > 0.01 {
			t.Errorf("Round trip (%v, %v) -> (%v, %v)", v.x, v.y, x, y)
		}
	}
}

func TestOriginPixel(t *testing.T) {
	xAxis, yAxis := testAxes()
	size := fyne.NewSize(2*CanvasMargin+200, 2*CanvasMargin+100)

	origin := OriginPixel(xAxis, yAxis, size)
	if origin.X != CanvasMargin+100 || origin.Y != CanvasMargin+50 {
		t.Errorf("OriginPixel() = (%v, %v), expected plot center", origin.X, origin.Y)
	}

	// Asymmetric ranges shift the crossing point accordingly
	xShifted := xAxis
	xShifted.Min, xShifted.Max = 0, 100
	origin = OriginPixel(xShifted, yAxis, size)
	if origin.X != CanvasMargin+100 {
		t.Errorf("Expected crossing at the range center, got X=%v", origin.X)
	}
}

func TestDegenerateCanvasSize(t *testing.T) {
	xAxis, yAxis := testAxes()

	// A canvas smaller than its margins must not divide by zero
	x, y := PixelToValue(xAxis, yAxis, fyne.NewSize(10, 10), fyne.NewPos(5, 5))
	if !approxEqual(x, xAxis.Center()) || !approxEqual(y, yAxis.Center()) {
		t.Errorf("Expected center fallback, got (%v, %v)", x, y)
	}
}
