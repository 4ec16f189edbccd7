package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/qrank/quadrant-ranking/internal/model"
)

// ItemMarker is the draggable representation of one item on the quadrant
// canvas: a dot (or the item's image) with the label underneath. Pointer
// geometry is reported in canvas pixels; the canvas converts to axis units.
type ItemMarker struct {
	widget.BaseWidget

	item model.Item

	// Callbacks, all receiving the item ID
	onDragged func(id string, center fyne.Position)
	onDragEnd func(id string, center fyne.Position)
	onTapped  func(id string)

	lastCenter fyne.Position
}

// NewItemMarker creates a marker for the given item snapshot
func NewItemMarker(item model.Item) *ItemMarker {
	m := &ItemMarker{item: item}
	m.ExtendBaseWidget(m)
	return m
}

// SetCallbacks sets drag and tap callbacks
func (m *ItemMarker) SetCallbacks(
	onDragged func(id string, center fyne.Position),
	onDragEnd func(id string, center fyne.Position),
	onTapped func(id string),
) {
	m.onDragged = onDragged
	m.onDragEnd = onDragEnd
	m.onTapped = onTapped
}

// UpdateItem refreshes the marker with new item data
func (m *ItemMarker) UpdateItem(item model.Item) {
	m.item = item
	m.Refresh()
}

// ItemID returns the ID of the represented item
func (m *ItemMarker) ItemID() string {
	return m.item.ID
}

// MarkerCenter returns the pixel position of the dot center relative to the
// marker's own top-left corner
func (m *ItemMarker) MarkerCenter() fyne.Position {
	return fyne.NewPos(m.Size().Width/2, m.markerHeight()/2)
}

// markerHeight is the height of the dot or image part above the label
func (m *ItemMarker) markerHeight() float32 {
	if m.item.HasImage() {
		return MarkerImageSize
	}
	return MarkerDiameter
}

// Tapped implements fyne.Tappable; a tap selects the item in the sidebar
func (m *ItemMarker) Tapped(_ *fyne.PointEvent) {
	if m.onTapped != nil {
		m.onTapped(m.item.ID)
	}
}

// Dragged implements fyne.Draggable; reports the live dot center in the
// coordinate space of the parent canvas
func (m *ItemMarker) Dragged(e *fyne.DragEvent) {
	center := m.Position().Add(m.MarkerCenter()).Add(fyne.NewPos(e.Dragged.DX, e.Dragged.DY))
	m.lastCenter = center
	if m.onDragged != nil {
		m.onDragged(m.item.ID, center)
	}
}

// DragEnd implements fyne.Draggable; commits the final position
func (m *ItemMarker) DragEnd() {
	if m.onDragEnd != nil {
		m.onDragEnd(m.item.ID, m.lastCenter)
	}
}

// CreateRenderer creates the widget renderer
func (m *ItemMarker) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(theme.Color(theme.ColorNamePrimary))
	dot.StrokeColor = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	dot.StrokeWidth = 1

	image := canvas.NewImageFromFile(m.item.ImagePath)
	image.FillMode = canvas.ImageFillContain

	label := canvas.NewText(m.item.GetDisplayLabel(), theme.Color(theme.ColorNameForeground))
	label.TextSize = MarkerTextSize
	label.Alignment = fyne.TextAlignCenter

	return &itemMarkerRenderer{marker: m, dot: dot, image: image, label: label}
}

// itemMarkerRenderer renders the marker widget
type itemMarkerRenderer struct {
	marker *ItemMarker
	dot    *canvas.Circle
	image  *canvas.Image
	label  *canvas.Text
}

func (r *itemMarkerRenderer) MinSize() fyne.Size {
	labelSize := fyne.MeasureText(r.marker.item.GetDisplayLabel(), MarkerTextSize, fyne.TextStyle{})
	width := labelSize.Width
	if width < r.markerSize() {
		width = r.markerSize()
	}
	return fyne.NewSize(width, r.markerSize()+MarkerLabelGap+labelSize.Height)
}

func (r *itemMarkerRenderer) markerSize() float32 {
	if r.marker.item.HasImage() {
		return MarkerImageSize
	}
	return MarkerDiameter
}

func (r *itemMarkerRenderer) Layout(size fyne.Size) {
	markerSize := r.markerSize()
	left := (size.Width - markerSize) / 2

	r.dot.Resize(fyne.NewSize(markerSize, markerSize))
	r.dot.Move(fyne.NewPos(left, 0))
	r.image.Resize(fyne.NewSize(markerSize, markerSize))
	r.image.Move(fyne.NewPos(left, 0))

	labelHeight := fyne.MeasureText(r.marker.item.GetDisplayLabel(), MarkerTextSize, fyne.TextStyle{}).Height
	r.label.Resize(fyne.NewSize(size.Width, labelHeight))
	r.label.Move(fyne.NewPos(0, markerSize+MarkerLabelGap))
}

func (r *itemMarkerRenderer) Refresh() {
	r.label.Text = r.marker.item.GetDisplayLabel()

	if r.marker.item.HasImage() {
		r.image.File = r.marker.item.ImagePath
		r.image.Show()
		r.dot.Hide()
		r.image.Refresh()
	} else {
		r.image.Hide()
		r.dot.Show()
		r.dot.Refresh()
	}
	r.label.Refresh()
}

func (r *itemMarkerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.dot, r.image, r.label}
}

func (r *itemMarkerRenderer) Destroy() {}
