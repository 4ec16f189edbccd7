package model

// Board is the aggregate of one pair of axes plus the ordered set of items.
// It is the unit that is saved to and loaded from the board file.
type Board struct {
	Name  string  `json:"name"`
	XAxis Axis    `json:"x_axis"`
	YAxis Axis    `json:"y_axis"`
	Items []*Item `json:"items"`
}

// Default axis range, matching the classic -100..100 quadrant layout
const (
	DefaultAxisMin = -100
	DefaultAxisMax = 100
)

// DefaultBoard returns an empty board with symmetric -100..100 axes
func DefaultBoard() Board {
	return Board{
		Name: "New Board",
		XAxis: Axis{
			Name:          "X Axis",
			NegativeLabel: "Left",
			PositiveLabel: "Right",
			Min:           DefaultAxisMin,
			Max:           DefaultAxisMax,
			Orientation:   Horizontal,
		},
		YAxis: Axis{
			Name:          "Y Axis",
			NegativeLabel: "Bottom",
			PositiveLabel: "Top",
			Min:           DefaultAxisMin,
			Max:           DefaultAxisMax,
			Orientation:   Vertical,
		},
	}
}

// Validate checks both axis ranges
func (b Board) Validate() error {
	if err := b.XAxis.Validate(); err != nil {
		return err
	}
	return b.YAxis.Validate()
}

// Clone returns a deep copy, so snapshots handed to persistence or the UI
// cannot be mutated behind the service's back
func (b Board) Clone() Board {
	out := b
	out.Items = make([]*Item, len(b.Items))
	for i, it := range b.Items {
		copied := *it
		out.Items[i] = &copied
	}
	return out
}

// FindItem returns the item with the given id, preserving list order semantics
func (b Board) FindItem(id string) (*Item, bool) {
	for _, it := range b.Items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}
