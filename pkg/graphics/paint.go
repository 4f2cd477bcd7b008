package graphics

import (
	"fmt"
	"math"
)

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt  StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                  // Semicircle at endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// DashPattern defines a stroke dash pattern as alternating on/off lengths.
//
// The pattern repeats along the stroke. For example, Intervals of [10, 5]
// draws 10 pixels on, 5 pixels off, repeating. Phase shifts where along the
// pattern the stroke begins; advancing it over time makes the dashes travel
// backwards along the path.
type DashPattern struct {
	Intervals []float64 // Alternating on/off lengths; must have even count >= 2, all > 0
	Phase     float64   // Starting offset into the pattern in pixels
}

// Valid reports whether the pattern can be applied. Invalid patterns are
// drawn as a solid stroke.
func (d *DashPattern) Valid() bool {
	if d == nil || len(d.Intervals) < 2 || len(d.Intervals)%2 != 0 {
		return false
	}
	for _, v := range d.Intervals {
		if !(v > 0) || math.IsInf(v, 0) { // false for NaN, zero, and negative
			return false
		}
	}
	return !math.IsNaN(d.Phase) && !math.IsInf(d.Phase, 0)
}

// Period returns the total length of one repetition of the pattern.
func (d *DashPattern) Period() float64 {
	var total float64
	for _, v := range d.Intervals {
		total += v
	}
	return total
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Style       PaintStyle   // Fill or stroke
	StrokeWidth float64      // Width of stroke in pixels; 0 draws a hairline
	StrokeCap   StrokeCap    // How endpoints are drawn; 0 = CapButt
	Dash        *DashPattern // Dash pattern; nil = solid stroke
	AntiAlias   bool
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		StrokeCap:   CapButt,
		AntiAlias:   true,
	}
}
