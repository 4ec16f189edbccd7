package model

import "testing"

func TestItem_GetDisplayLabel(t *testing.T) {
	tests := []struct {
		label    string
		id       string
		expected string
	}{
		{"Sword", "id-1", "Sword"},
		{"  Shield  ", "id-2", "Shield"},
		{"", "id-3", "id-3"},
		{"   ", "id-4", "id-4"},
	}

	for _, test := range tests {
		item := &Item{ID: test.id, Label: test.label}
		result := item.GetDisplayLabel()
		if result != test.expected {
			t.Errorf("GetDisplayLabel() with label='%s', id='%s' = '%s', expected '%s'",
				test.label, test.id, result, test.expected)
		}
	}
}

func TestItem_Summary(t *testing.T) {
	item := &Item{ID: "id-1", Label: "Sword", X: 5, Y: -3.25}
	expected := "Sword (x=5.0, y=-3.2)"

	if result := item.Summary(); result != expected {
		t.Errorf("Summary() = '%s', expected '%s'", result, expected)
	}
}

func TestBoard_Clone(t *testing.T) {
	board := DefaultBoard()
	board.Items = []*Item{{ID: "a", Label: "A", X: 1, Y: 2}}

	clone := board.Clone()
	clone.Items[0].X = 99

	if board.Items[0].X != 1 {
		t.Error("Clone() must deep-copy items, original was mutated")
	}
}

func TestBoard_FindItem(t *testing.T) {
	board := DefaultBoard()
	board.Items = []*Item{
		{ID: "a", Label: "A"},
		{ID: "b", Label: "B"},
	}

	item, found := board.FindItem("b")
	if !found {
		t.Fatal("Expected item 'b' to be found")
	}
	if item.Label != "B" {
		t.Errorf("Expected label 'B', got '%s'", item.Label)
	}

	if _, found := board.FindItem("missing"); found {
		t.Error("Expected item 'missing' to not be found")
	}
}

func TestDefaultBoard(t *testing.T) {
	board := DefaultBoard()

	if err := board.Validate(); err != nil {
		t.Fatalf("DefaultBoard() should validate, got %v", err)
	}

	if board.XAxis.Orientation != Horizontal {
		t.Errorf("Expected X axis orientation %s, got %s", Horizontal, board.XAxis.Orientation)
	}
	if board.YAxis.Orientation != Vertical {
		t.Errorf("Expected Y axis orientation %s, got %s", Vertical, board.YAxis.Orientation)
	}

	if board.XAxis.Min != DefaultAxisMin || board.XAxis.Max != DefaultAxisMax {
		t.Errorf("Expected default X range [%v, %v], got [%v, %v]",
			DefaultAxisMin, DefaultAxisMax, board.XAxis.Min, board.XAxis.Max)
	}

	if len(board.Items) != 0 {
		t.Errorf("Expected empty board, got %d items", len(board.Items))
	}
}
