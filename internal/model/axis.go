package model

import "math"

// Orientation identifies which of the two board axes a value refers to
type Orientation string

const (
	// Horizontal is the X axis, increasing to the right
	Horizontal Orientation = "horizontal"

	// Vertical is the Y axis, increasing upwards
	Vertical Orientation = "vertical"
)

// String returns the string representation of Orientation
func (o Orientation) String() string {
	return string(o)
}

// Axis describes one ranking criterion: its name, the labels shown at the
// negative and positive ends, and the numeric range items may occupy.
type Axis struct {
	Name          string      `json:"name"`
	NegativeLabel string      `json:"negative_label"` // left or bottom end
	PositiveLabel string      `json:"positive_label"` // right or top end
	Min           float64     `json:"min"`
	Max           float64     `json:"max"`
	Orientation   Orientation `json:"orientation"`
}

// Validate returns ErrDegenerateRange when the range cannot host items.
// NaN bounds fail here too: NaN compares false against everything, so the
// plain min >= max check alone would wave them through.
func (a Axis) Validate() error {
	if !IsFinite(a.Min) || !IsFinite(a.Max) {
		return ErrDegenerateRange
	}
	if a.Min >= a.Max {
		return ErrDegenerateRange
	}
	return nil
}

// Span returns the width of the axis range
func (a Axis) Span() float64 {
	return a.Max - a.Min
}

// Clamp forces v into [Min, Max]. NaN would fall through both comparisons,
// so it maps to the range center instead of escaping the range.
func (a Axis) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return a.Center()
	}
	if v < a.Min {
		return a.Min
	}
	if v > a.Max {
		return a.Max
	}
	return v
}

// Normalize maps v from axis units to [0, 1], where 0 is Min and 1 is Max.
// The input is clamped first, so the result is always within [0, 1].
func (a Axis) Normalize(v float64) float64 {
	return (a.Clamp(v) - a.Min) / a.Span()
}

// Denormalize maps t from [0, 1] back to axis units
func (a Axis) Denormalize(t float64) float64 {
	return a.Clamp(a.Min + t*a.Span())
}

// Rescale maps a value expressed in the units of the previous axis range into
// this axis's range, keeping its relative position. Used when the user edits
// a range so that existing items keep their ordering along the axis.
func (a Axis) Rescale(v float64, from Axis) float64 {
	return a.Denormalize(from.Normalize(v))
}

// Center returns the value at the middle of the range, where the
// perpendicular axis crosses
func (a Axis) Center() float64 {
	return a.Min + a.Span()/2
}

// IsFinite reports whether v is a usable coordinate: not NaN, not infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
