package board

import (
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/qrank/quadrant-ranking/internal/model"
)

// Service handles board operations
type Service struct {
	board      model.Board
	boardMutex sync.RWMutex
	gridStep   float64
	onUpdate   func() // callback for UI updates and autosave
}

// NewService creates a new board service starting from the given board.
// An invalid board (degenerate axis range) falls back to the default board,
// so the service is always usable.
func NewService(b model.Board) *Service {
	if err := b.Validate(); err != nil {
		log.Printf("Invalid initial board (%v), falling back to default", err)
		b = model.DefaultBoard()
	}
	return &Service{board: b}
}

// SetUpdateCallback sets the callback function fired after every mutation
func (s *Service) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// AddItem adds a new item at the given position. The position is clamped
// into the current axis ranges; an empty label or a non-finite position is
// rejected.
func (s *Service) AddItem(label string, x, y float64) (*model.Item, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, model.ErrEmptyLabel
	}
	if !model.IsFinite(x) || !model.IsFinite(y) {
		return nil, fmt.Errorf("add %q at (%v, %v): %w", label, x, y, model.ErrNonFinite)
	}

	s.boardMutex.Lock()
	item := &model.Item{
		ID:    generateItemID(),
		Label: label,
		X:     s.place(s.board.XAxis, x),
		Y:     s.place(s.board.YAxis, y),
	}
	s.board.Items = append(s.board.Items, item)
	snapshot := *item
	s.boardMutex.Unlock()

	s.notifyUpdate()
	return &snapshot, nil
}

// GetItem returns a copy of the item by ID
func (s *Service) GetItem(id string) (*model.Item, bool) {
	s.boardMutex.RLock()
	defer s.boardMutex.RUnlock()

	item, exists := s.board.FindItem(id)
	if !exists {
		return nil, false
	}
	copied := *item
	return &copied, true
}

// Items returns all items in insertion order
func (s *Service) Items() []*model.Item {
	s.boardMutex.RLock()
	defer s.boardMutex.RUnlock()

	items := make([]*model.Item, 0, len(s.board.Items))
	for _, item := range s.board.Items {
		copied := *item
		items = append(items, &copied)
	}
	return items
}

// RenameItem changes an item's label; the ID stays stable
func (s *Service) RenameItem(id, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return model.ErrEmptyLabel
	}

	s.boardMutex.Lock()
	item, exists := s.board.FindItem(id)
	if !exists {
		s.boardMutex.Unlock()
		return fmt.Errorf("rename %s: %w", id, model.ErrNotFound)
	}
	item.Label = label
	s.boardMutex.Unlock()

	s.notifyUpdate()
	return nil
}

// MoveItem updates an item's position, clamping into the current axis ranges.
// Repeating the same move is idempotent: the final position is the clamped
// target regardless of how often it is applied. Non-finite targets are
// rejected and leave the item where it was.
func (s *Service) MoveItem(id string, x, y float64) error {
	if !model.IsFinite(x) || !model.IsFinite(y) {
		return fmt.Errorf("move %s to (%v, %v): %w", id, x, y, model.ErrNonFinite)
	}

	s.boardMutex.Lock()
	item, exists := s.board.FindItem(id)
	if !exists {
		s.boardMutex.Unlock()
		return fmt.Errorf("move %s: %w", id, model.ErrNotFound)
	}
	item.X = s.place(s.board.XAxis, x)
	item.Y = s.place(s.board.YAxis, y)
	s.boardMutex.Unlock()

	s.notifyUpdate()
	return nil
}

// SetItemImage attaches a marker image path to an item
func (s *Service) SetItemImage(id, path string) error {
	s.boardMutex.Lock()
	item, exists := s.board.FindItem(id)
	if !exists {
		s.boardMutex.Unlock()
		return fmt.Errorf("set image %s: %w", id, model.ErrNotFound)
	}
	item.ImagePath = path
	s.boardMutex.Unlock()

	s.notifyUpdate()
	return nil
}

// RemoveItem deletes an item; later operations on the same ID fail with
// ErrNotFound
func (s *Service) RemoveItem(id string) error {
	s.boardMutex.Lock()
	index := -1
	for i, item := range s.board.Items {
		if item.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.boardMutex.Unlock()
		return fmt.Errorf("remove %s: %w", id, model.ErrNotFound)
	}
	s.board.Items = append(s.board.Items[:index], s.board.Items[index+1:]...)
	s.boardMutex.Unlock()

	s.notifyUpdate()
	return nil
}

// Axis returns the axis for the given orientation
func (s *Service) Axis(orientation model.Orientation) model.Axis {
	s.boardMutex.RLock()
	defer s.boardMutex.RUnlock()
	return *s.axisFor(orientation)
}

// SetAxisName sets the display name of one axis
func (s *Service) SetAxisName(orientation model.Orientation, name string) {
	s.boardMutex.Lock()
	s.axisFor(orientation).Name = name
	s.boardMutex.Unlock()

	s.notifyUpdate()
}

// SetAxisLabels sets the labels shown at the negative and positive ends
func (s *Service) SetAxisLabels(orientation model.Orientation, negative, positive string) {
	s.boardMutex.Lock()
	axis := s.axisFor(orientation)
	axis.NegativeLabel = negative
	axis.PositiveLabel = positive
	s.boardMutex.Unlock()

	s.notifyUpdate()
}

// SetAxisRange changes the numeric range of one axis. Existing item positions
// on that axis are rescaled linearly from the old range into the new one, so
// relative ordering is preserved. A degenerate range is rejected.
func (s *Service) SetAxisRange(orientation model.Orientation, min, max float64) error {
	s.boardMutex.Lock()
	axis := s.axisFor(orientation)
	updated := *axis
	updated.Min = min
	updated.Max = max
	if err := updated.Validate(); err != nil {
		s.boardMutex.Unlock()
		return err
	}

	old := *axis
	for _, item := range s.board.Items {
		if orientation == model.Horizontal {
			item.X = updated.Rescale(item.X, old)
		} else {
			item.Y = updated.Rescale(item.Y, old)
		}
	}
	*axis = updated
	s.boardMutex.Unlock()

	s.notifyUpdate()
	return nil
}

// SetGridStep configures snap-to-grid for Add/Move; 0 or negative disables it
func (s *Service) SetGridStep(step float64) {
	s.boardMutex.Lock()
	if step < 0 {
		step = 0
	}
	s.gridStep = step
	s.boardMutex.Unlock()
}

// Board returns a deep-copied snapshot of the whole board
func (s *Service) Board() model.Board {
	s.boardMutex.RLock()
	defer s.boardMutex.RUnlock()
	return s.board.Clone()
}

// ReplaceBoard swaps in a loaded board. Positions outside the board's own
// axis ranges are clamped so the invariant holds even for hand-edited files.
func (s *Service) ReplaceBoard(b model.Board) error {
	if err := b.Validate(); err != nil {
		return err
	}

	s.boardMutex.Lock()
	b = b.Clone()
	for _, item := range b.Items {
		item.X = b.XAxis.Clamp(item.X)
		item.Y = b.YAxis.Clamp(item.Y)
	}
	s.board = b
	s.boardMutex.Unlock()

	s.notifyUpdate()
	return nil
}

// axisFor returns a pointer into the board; callers must hold boardMutex
func (s *Service) axisFor(orientation model.Orientation) *model.Axis {
	if orientation == model.Horizontal {
		return &s.board.XAxis
	}
	return &s.board.YAxis
}

// place clamps v into the axis range and applies the optional grid snap.
// Snapping can round past the range edge, so it clamps again afterwards.
// Callers must hold boardMutex.
func (s *Service) place(axis model.Axis, v float64) float64 {
	v = axis.Clamp(v)
	if s.gridStep > 0 {
		v = axis.Clamp(math.Round(v/s.gridStep) * s.gridStep)
	}
	return v
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

// generateItemID generates a unique item ID
func generateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Extremely unlikely; fall back to random v4
		return "item-" + uuid.NewString()
	}
	return "item-" + id.String()
}
