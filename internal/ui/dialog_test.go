package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/qrank/quadrant-ranking/internal/model"
)

func TestParseRange(t *testing.T) {
	test.NewApp()

	tests := []struct {
		min, max string
		wantKey  string
	}{
		{"-10", "10", ""},
		{"0.5", "99", ""},
		{"abc", "10", KeyInvalidNumber},
		{"10", "", KeyInvalidNumber},
		{"10", "-10", KeyDegenerateRange},
		{"5", "5", KeyDegenerateRange},
		// ParseFloat happily reads these, but no axis can host them
		{"NaN", "10", KeyInvalidNumber},
		{"-10", "nan", KeyInvalidNumber},
		{"Inf", "10", KeyInvalidNumber},
		{"-10", "+Inf", KeyInvalidNumber},
		{"-Inf", "Inf", KeyInvalidNumber},
	}

	form := axisForm{minEntry: widget.NewEntry(), maxEntry: widget.NewEntry()}
	for _, tc := range tests {
		form.minEntry.SetText(tc.min)
		form.maxEntry.SetText(tc.max)

		_, _, errKey := parseRange(form)
		if errKey != tc.wantKey {
			t.Errorf("parseRange(%q, %q) key = %q, expected %q", tc.min, tc.max, errKey, tc.wantKey)
		}
	}
}

func TestItemDialog_Collect(t *testing.T) {
	test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	d := NewItemDialog(window, NewLocalization(), model.Item{}, nil)

	tests := []struct {
		label, x, y string
		wantKey     string
	}{
		{"Sword", "5", "-3.5", ""},
		{"", "0", "0", KeyEmptyLabel},
		{"Sword", "abc", "0", KeyInvalidNumber},
		{"Sword", "0", "", KeyInvalidNumber},
		// Non-finite numbers parse but poison clamping and persistence
		{"Sword", "NaN", "0", KeyInvalidNumber},
		{"Sword", "0", "NaN", KeyInvalidNumber},
		{"Sword", "Inf", "0", KeyInvalidNumber},
		{"Sword", "0", "-Inf", KeyInvalidNumber},
	}

	for _, tc := range tests {
		d.labelEntry.SetText(tc.label)
		d.xEntry.SetText(tc.x)
		d.yEntry.SetText(tc.y)

		result, errKey := d.collect()
		if errKey != tc.wantKey {
			t.Errorf("collect(%q, %q, %q) key = %q, expected %q", tc.label, tc.x, tc.y, errKey, tc.wantKey)
			continue
		}
		if tc.wantKey == "" && (result.Label != tc.label || result.X != 5 || result.Y != -3.5) {
			t.Errorf("collect() = %+v, expected Sword at (5, -3.5)", result)
		}
	}
}
