package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/qrank/quadrant-ranking/internal/model"
)

// QuadrantCanvas renders the board: two axis lines crossing at the range
// centers, four tinted quadrants, axis captions, and one draggable marker per
// item. Pointer input is translated to axis units and fed to the interaction
// controller; the canvas itself never mutates the board.
type QuadrantCanvas struct {
	widget.BaseWidget

	controller *InteractionController
	boardData  model.Board

	onMarkerTapped func(itemID string)

	markers map[string]*ItemMarker
}

// NewQuadrantCanvas creates the canvas bound to an interaction controller
func NewQuadrantCanvas(controller *InteractionController, boardData model.Board) *QuadrantCanvas {
	qc := &QuadrantCanvas{
		controller: controller,
		boardData:  boardData,
		markers:    make(map[string]*ItemMarker),
	}
	qc.ExtendBaseWidget(qc)
	return qc
}

// SetMarkerTappedCallback sets the callback fired when a marker is tapped,
// used by the root UI to select the item in the sidebar
func (qc *QuadrantCanvas) SetMarkerTappedCallback(callback func(itemID string)) {
	qc.onMarkerTapped = callback
}

// SetBoard replaces the rendered board snapshot and redraws
func (qc *QuadrantCanvas) SetBoard(boardData model.Board) {
	qc.boardData = boardData
	qc.Refresh()
}

// Tapped implements fyne.Tappable. A tap on empty canvas starts the placing
// flow for a new item at the tapped position; marker taps never reach here
// because markers are tappable themselves.
func (qc *QuadrantCanvas) Tapped(e *fyne.PointEvent) {
	x, y := PixelToValue(qc.boardData.XAxis, qc.boardData.YAxis, qc.Size(), e.Position)
	qc.controller.PointerDown("", x, y)
}

// handleMarkerDragged feeds live drag positions into the controller. The
// first drag event of a gesture doubles as the pointer-down.
func (qc *QuadrantCanvas) handleMarkerDragged(itemID string, center fyne.Position) {
	x, y := PixelToValue(qc.boardData.XAxis, qc.boardData.YAxis, qc.Size(), center)
	if qc.controller.State() != StateDragging {
		qc.controller.PointerDown(itemID, x, y)
	}
	qc.controller.PointerMove(x, y)
}

// handleMarkerDragEnd commits the final position
func (qc *QuadrantCanvas) handleMarkerDragEnd(_ string, center fyne.Position) {
	x, y := PixelToValue(qc.boardData.XAxis, qc.boardData.YAxis, qc.Size(), center)
	qc.controller.PointerUp(x, y)
}

func (qc *QuadrantCanvas) handleMarkerTapped(itemID string) {
	if qc.onMarkerTapped != nil {
		qc.onMarkerTapped(itemID)
	}
}

// CreateRenderer creates the widget renderer
func (qc *QuadrantCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &quadrantCanvasRenderer{qc: qc}

	for i := range r.quadrants {
		r.quadrants[i] = canvas.NewRectangle(nil)
	}
	r.quadrants[0].FillColor = QuadrantTintI
	r.quadrants[1].FillColor = QuadrantTintII
	r.quadrants[2].FillColor = QuadrantTintIII
	r.quadrants[3].FillColor = QuadrantTintIV

	lineColor := theme.Color(theme.ColorNameForeground)
	r.xLine = canvas.NewLine(lineColor)
	r.xLine.StrokeWidth = AxisLineWidth
	r.yLine = canvas.NewLine(lineColor)
	r.yLine.StrokeWidth = AxisLineWidth

	textColor := theme.Color(theme.ColorNameForeground)
	newCaption := func(bold bool) *canvas.Text {
		t := canvas.NewText("", textColor)
		t.TextSize = theme.Size(theme.SizeNameCaptionText)
		t.TextStyle = fyne.TextStyle{Bold: bold}
		return t
	}
	r.xName = newCaption(true)
	r.yName = newCaption(true)
	r.xNeg = newCaption(false)
	r.xPos = newCaption(false)
	r.yNeg = newCaption(false)
	r.yPos = newCaption(false)

	r.syncMarkers()
	return r
}

// quadrantCanvasRenderer renders the quadrant canvas
type quadrantCanvasRenderer struct {
	qc *QuadrantCanvas

	quadrants [4]*canvas.Rectangle // I: top-right, II: top-left, III: bottom-left, IV: bottom-right
	xLine     *canvas.Line
	yLine     *canvas.Line

	xName, xNeg, xPos *canvas.Text
	yName, yNeg, yPos *canvas.Text

	size fyne.Size
}

func (r *quadrantCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CanvasMinWidth, CanvasMinHeight)
}

func (r *quadrantCanvasRenderer) Layout(size fyne.Size) {
	r.size = size

	xAxis := r.qc.boardData.XAxis
	yAxis := r.qc.boardData.YAxis
	origin := OriginPixel(xAxis, yAxis, size)

	left := CanvasMargin
	right := size.Width - CanvasMargin
	top := CanvasMargin
	bottom := size.Height - CanvasMargin

	// Quadrant tints
	r.quadrants[0].Move(fyne.NewPos(origin.X, top))
	r.quadrants[0].Resize(fyne.NewSize(right-origin.X, origin.Y-top))
	r.quadrants[1].Move(fyne.NewPos(left, top))
	r.quadrants[1].Resize(fyne.NewSize(origin.X-left, origin.Y-top))
	r.quadrants[2].Move(fyne.NewPos(left, origin.Y))
	r.quadrants[2].Resize(fyne.NewSize(origin.X-left, bottom-origin.Y))
	r.quadrants[3].Move(fyne.NewPos(origin.X, origin.Y))
	r.quadrants[3].Resize(fyne.NewSize(right-origin.X, bottom-origin.Y))

	// Axis lines crossing at the origin
	r.xLine.Position1 = fyne.NewPos(left, origin.Y)
	r.xLine.Position2 = fyne.NewPos(right, origin.Y)
	r.yLine.Position1 = fyne.NewPos(origin.X, top)
	r.yLine.Position2 = fyne.NewPos(origin.X, bottom)

	// Captions: axis names in the corners, side labels at the line ends
	r.xName.Move(fyne.NewPos(right-textWidth(r.xName), bottom+AxisLabelPadding))
	r.xNeg.Move(fyne.NewPos(left, origin.Y+AxisLabelPadding))
	r.xPos.Move(fyne.NewPos(right-textWidth(r.xPos), origin.Y+AxisLabelPadding))
	r.yName.Move(fyne.NewPos(AxisLabelPadding, top-textHeight(r.yName)-AxisLabelPadding))
	r.yPos.Move(fyne.NewPos(origin.X+AxisLabelPadding, top))
	r.yNeg.Move(fyne.NewPos(origin.X+AxisLabelPadding, bottom-textHeight(r.yNeg)))

	// Markers at their mapped positions, dot center on the value point
	for _, item := range r.qc.boardData.Items {
		marker, exists := r.qc.markers[item.ID]
		if !exists {
			continue
		}
		marker.Resize(marker.MinSize())
		center := ValueToPixel(xAxis, yAxis, size, item.X, item.Y)
		marker.Move(center.Subtract(marker.MarkerCenter()))
	}
}

func (r *quadrantCanvasRenderer) Refresh() {
	r.syncMarkers()

	xAxis := r.qc.boardData.XAxis
	yAxis := r.qc.boardData.YAxis
	r.xName.Text = xAxis.Name
	r.xNeg.Text = xAxis.NegativeLabel
	r.xPos.Text = xAxis.PositiveLabel
	r.yName.Text = yAxis.Name
	r.yNeg.Text = yAxis.NegativeLabel
	r.yPos.Text = yAxis.PositiveLabel

	if !r.size.IsZero() {
		r.Layout(r.size)
	}

	for _, obj := range r.Objects() {
		obj.Refresh()
	}
}

func (r *quadrantCanvasRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 12+len(r.qc.markers))
	for _, q := range r.quadrants {
		objects = append(objects, q)
	}
	objects = append(objects, r.xLine, r.yLine, r.xName, r.xNeg, r.xPos, r.yName, r.yNeg, r.yPos)

	// Stable draw order: board order, so overlaps resolve predictably
	for _, item := range r.qc.boardData.Items {
		if marker, exists := r.qc.markers[item.ID]; exists {
			objects = append(objects, marker)
		}
	}
	return objects
}

func (r *quadrantCanvasRenderer) Destroy() {}

// syncMarkers diffs the marker widgets against the board snapshot. Existing
// markers are updated in place so an in-flight drag keeps its event target.
func (r *quadrantCanvasRenderer) syncMarkers() {
	seen := make(map[string]bool, len(r.qc.boardData.Items))
	for _, item := range r.qc.boardData.Items {
		seen[item.ID] = true
		if marker, exists := r.qc.markers[item.ID]; exists {
			marker.UpdateItem(*item)
			continue
		}

		marker := NewItemMarker(*item)
		marker.SetCallbacks(
			r.qc.handleMarkerDragged,
			r.qc.handleMarkerDragEnd,
			r.qc.handleMarkerTapped,
		)
		r.qc.markers[item.ID] = marker
	}

	for id := range r.qc.markers {
		if !seen[id] {
			delete(r.qc.markers, id)
		}
	}
}

func textWidth(t *canvas.Text) float32 {
	return fyne.MeasureText(t.Text, t.TextSize, t.TextStyle).Width
}

func textHeight(t *canvas.Text) float32 {
	return fyne.MeasureText(t.Text, t.TextSize, t.TextStyle).Height
}
