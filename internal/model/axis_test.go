package model

import (
	"math"
	"testing"
)

func TestAxis_Validate(t *testing.T) {
	tests := []struct {
		min, max float64
		wantErr  bool
	}{
		{-100, 100, false},
		{0, 1, false},
		{-10, 10, false},
		{5, 5, true},
		{10, -10, true},
		// NaN compares false against everything, so min >= max alone
		// would accept these
		{math.NaN(), 10, true},
		{-10, math.NaN(), true},
		{math.Inf(-1), math.Inf(1), true},
	}

	for _, test := range tests {
		axis := Axis{Min: test.min, Max: test.max}
		err := axis.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("Axis{Min: %v, Max: %v}.Validate() = %v, wantErr %v", test.min, test.max, err, test.wantErr)
		}
	}
}

func TestAxis_Clamp(t *testing.T) {
	axis := Axis{Min: -10, Max: 10}

	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{-10, -10},
		{10, 10},
		{15, 10},
		{-42, -10},
		{9.99, 9.99},
	}

	for _, test := range tests {
		result := axis.Clamp(test.in)
		if result != test.expected {
			t.Errorf("Clamp(%v) = %v, expected %v", test.in, result, test.expected)
		}
	}
}

func TestAxis_ClampNonFinite(t *testing.T) {
	axis := Axis{Min: -10, Max: 10}

	// NaN escapes both range comparisons; it must land inside the range
	if result := axis.Clamp(math.NaN()); result != axis.Center() {
		t.Errorf("Clamp(NaN) = %v, expected center %v", result, axis.Center())
	}
	if result := axis.Clamp(math.Inf(1)); result != 10 {
		t.Errorf("Clamp(+Inf) = %v, expected 10", result)
	}
	if result := axis.Clamp(math.Inf(-1)); result != -10 {
		t.Errorf("Clamp(-Inf) = %v, expected -10", result)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		in       float64
		expected bool
	}{
		{0, true},
		{-100.5, true},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}

	for _, test := range tests {
		if result := IsFinite(test.in); result != test.expected {
			t.Errorf("IsFinite(%v) = %v, expected %v", test.in, result, test.expected)
		}
	}
}

func TestAxis_NormalizeDenormalize(t *testing.T) {
	axis := Axis{Min: -100, Max: 100}

	tests := []struct {
		value, normalized float64
	}{
		{-100, 0},
		{0, 0.5},
		{100, 1},
		{50, 0.75},
	}

	for _, test := range tests {
		n := axis.Normalize(test.value)
		if n != test.normalized {
			t.Errorf("Normalize(%v) = %v, expected %v", test.value, n, test.normalized)
		}

		back := axis.Denormalize(n)
		if back != test.value {
			t.Errorf("Denormalize(Normalize(%v)) = %v, expected round-trip", test.value, back)
		}
	}

	// Out-of-range inputs are clamped before normalizing
	if n := axis.Normalize(250); n != 1 {
		t.Errorf("Normalize(250) = %v, expected 1", n)
	}
}

func TestAxis_Rescale(t *testing.T) {
	old := Axis{Min: -100, Max: 100}
	axis := Axis{Min: 0, Max: 10}

	tests := []struct {
		value, expected float64
	}{
		{-100, 0},
		{0, 5},
		{100, 10},
		{50, 7.5},
	}

	for _, test := range tests {
		result := axis.Rescale(test.value, old)
		if result != test.expected {
			t.Errorf("Rescale(%v) = %v, expected %v", test.value, result, test.expected)
		}
	}
}

func TestAxis_RescalePreservesOrdering(t *testing.T) {
	old := Axis{Min: -10, Max: 10}
	axis := Axis{Min: -3, Max: 7}

	values := []float64{-10, -4.2, 0, 1, 9.9}
	prev := axis.Rescale(values[0], old)
	for _, v := range values[1:] {
		cur := axis.Rescale(v, old)
		if cur <= prev {
			t.Errorf("Rescale broke ordering: Rescale(%v) = %v <= %v", v, cur, prev)
		}
		prev = cur
	}
}

func TestAxis_Center(t *testing.T) {
	tests := []struct {
		min, max, expected float64
	}{
		{-100, 100, 0},
		{0, 10, 5},
		{-4, 10, 3},
	}

	for _, test := range tests {
		axis := Axis{Min: test.min, Max: test.max}
		if c := axis.Center(); c != test.expected {
			t.Errorf("Axis{%v, %v}.Center() = %v, expected %v", test.min, test.max, c, test.expected)
		}
	}
}
