package ui

import (
	"errors"
	"log"

	"github.com/qrank/quadrant-ranking/internal/board"
	"github.com/qrank/quadrant-ranking/internal/model"
)

// DragState represents the pointer interaction state of the canvas
type DragState int

const (
	// StateIdle means no interaction is in progress
	StateIdle DragState = iota

	// StateDragging means an existing item follows the pointer
	StateDragging

	// StatePlacing means a press on empty canvas awaits a label for the
	// new item
	StatePlacing
)

// String returns the string representation of DragState
func (ds DragState) String() string {
	switch ds {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	case StatePlacing:
		return "Placing"
	default:
		return "Unknown"
	}
}

// IsActive returns true if an interaction is in progress
func (ds DragState) IsActive() bool {
	return ds == StateDragging || ds == StatePlacing
}

// InteractionController translates pointer input into board mutations.
// All transitions run synchronously on the UI event loop; the controller
// itself holds no locks.
type InteractionController struct {
	store board.Store
	state DragState

	// Dragging
	activeItemID string

	// Placing
	pendingX, pendingY float64

	// onPlaceRequest asks the UI to collect a label for a new item at the
	// given position; the UI answers via ConfirmPlacement or CancelPlacement
	onPlaceRequest func(x, y float64)
}

// NewInteractionController creates a controller bound to the board store
func NewInteractionController(store board.Store) *InteractionController {
	return &InteractionController{store: store, state: StateIdle}
}

// SetPlaceRequestCallback sets the callback that prompts for a new item label
func (c *InteractionController) SetPlaceRequestCallback(callback func(x, y float64)) {
	c.onPlaceRequest = callback
}

// State returns the current interaction state
func (c *InteractionController) State() DragState {
	return c.state
}

// ActiveItemID returns the item being dragged, or "" outside StateDragging
func (c *InteractionController) ActiveItemID() string {
	return c.activeItemID
}

// PointerDown starts an interaction. A press on a marker (itemID != "")
// begins a drag; a press on empty canvas begins placement of a new item.
// Presses during an active interaction are ignored.
func (c *InteractionController) PointerDown(itemID string, x, y float64) {
	if c.state != StateIdle {
		return
	}

	if itemID != "" {
		if _, exists := c.store.GetItem(itemID); !exists {
			// Stale marker reference, e.g. item deleted from the sidebar
			log.Printf("Pointer down on unknown item %s, ignoring", itemID)
			return
		}
		c.state = StateDragging
		c.activeItemID = itemID
		return
	}

	c.state = StatePlacing
	c.pendingX = x
	c.pendingY = y
	if c.onPlaceRequest != nil {
		c.onPlaceRequest(x, y)
	}
}

// PointerMove updates the dragged item with the live pointer position.
// Outside StateDragging it is a no-op.
func (c *InteractionController) PointerMove(x, y float64) {
	if c.state != StateDragging {
		return
	}

	if err := c.store.MoveItem(c.activeItemID, x, y); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Item vanished mid-drag; drop the drag silently
			log.Printf("Dragged item %s no longer exists, cancelling drag", c.activeItemID)
			c.reset()
			return
		}
		log.Printf("Error moving item %s: %v", c.activeItemID, err)
	}
}

// PointerUp commits the final position and returns to Idle. Placement stays
// pending: the label prompt resolves it via ConfirmPlacement/CancelPlacement.
func (c *InteractionController) PointerUp(x, y float64) {
	if c.state != StateDragging {
		return
	}

	if err := c.store.MoveItem(c.activeItemID, x, y); err != nil && !errors.Is(err, model.ErrNotFound) {
		log.Printf("Error committing item %s position: %v", c.activeItemID, err)
	}
	c.reset()
}

// ConfirmPlacement creates the pending item with the given label
func (c *InteractionController) ConfirmPlacement(label string) (*model.Item, error) {
	if c.state != StatePlacing {
		return nil, nil
	}

	item, err := c.store.AddItem(label, c.pendingX, c.pendingY)
	if err != nil {
		// Keep StatePlacing so the prompt can retry with a fixed label
		return nil, err
	}
	c.reset()
	return item, nil
}

// CancelPlacement abandons the pending new item
func (c *InteractionController) CancelPlacement() {
	if c.state == StatePlacing {
		c.reset()
	}
}

func (c *InteractionController) reset() {
	c.state = StateIdle
	c.activeItemID = ""
}
