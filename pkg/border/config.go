// Package border implements an animated dashed outline: its configuration,
// the animator that advances the dash phase, the renderer that strokes the
// outline, and the bridge that ties animation to host visibility.
package border

import (
	"fmt"
	"math"

	"github.com/go-drift/dashed/pkg/graphics"
)

// Shape selects the outline traced by the border.
type Shape int

const (
	// ShapeCircle strokes an oval inscribed in the widget bounds.
	ShapeCircle Shape = iota
	// ShapeRoundedRect strokes a rectangle with rounded corners.
	ShapeRoundedRect
)

// String returns a human-readable representation of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRoundedRect:
		return "rounded_rect"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Direction is the apparent rotation of the dash pattern.
type Direction int

const (
	// DirectionNone keeps the dashes still.
	DirectionNone Direction = iota
	// DirectionClockwise moves the dashes clockwise around the outline.
	DirectionClockwise
	// DirectionCounterClockwise moves the dashes counterclockwise.
	DirectionCounterClockwise
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionClockwise:
		return "clockwise"
	case DirectionCounterClockwise:
		return "counterclockwise"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Sign returns the factor applied to the step size: 0 for none, -1 for
// clockwise, +1 for counterclockwise. Unknown values do not move.
func (d Direction) Sign() float64 {
	switch d {
	case DirectionClockwise:
		return -1
	case DirectionCounterClockwise:
		return 1
	default:
		return 0
	}
}

// Reverse returns the opposite rotation; none stays none.
func (d Direction) Reverse() Direction {
	switch d {
	case DirectionClockwise:
		return DirectionCounterClockwise
	case DirectionCounterClockwise:
		return DirectionClockwise
	default:
		return d
	}
}

// Speed selects how far the pattern moves per tick.
type Speed int

const (
	SpeedLow Speed = iota
	SpeedNormal
	SpeedFast
)

// String returns a human-readable representation of the speed.
func (s Speed) String() string {
	switch s {
	case SpeedLow:
		return "low"
	case SpeedNormal:
		return "normal"
	case SpeedFast:
		return "fast"
	default:
		return fmt.Sprintf("Speed(%d)", int(s))
	}
}

// divisor maps a speed to the fraction of (dash+stroke) moved per tick.
func (s Speed) divisor() float64 {
	switch s {
	case SpeedLow:
		return 8
	case SpeedFast:
		return 2
	default:
		return 4
	}
}

// Config describes a dashed border. It is built once per widget; only
// Direction may change afterwards.
type Config struct {
	Shape        Shape
	CornerRadius float64
	DashLength   float64
	GapLength    float64
	StrokeWidth  float64
	Color        graphics.Color
	Direction    Direction
	Speed        Speed
}

// Default attribute values.
const (
	DefaultCornerRadius = 0
	DefaultDashLength   = 20
	DefaultGapLength    = 10
	DefaultStrokeWidth  = 4
)

// DefaultConfig returns a red, still, rounded-rect border with 20px dashes,
// 10px gaps and a 4px stroke.
func DefaultConfig() Config {
	return Config{
		Shape:        ShapeRoundedRect,
		CornerRadius: DefaultCornerRadius,
		DashLength:   DefaultDashLength,
		GapLength:    DefaultGapLength,
		StrokeWidth:  DefaultStrokeWidth,
		Color:        graphics.ColorRed,
		Direction:    DirectionNone,
		Speed:        SpeedNormal,
	}
}

// strokeWidth returns the stroke width with NaN and negatives mapped to 0.
func (c *Config) strokeWidth() float64 {
	return nonNegative(c.StrokeWidth)
}

// dashIntervals returns the [dash, gap] pattern, or nil when either length
// is not positive and the stroke should be solid.
func (c *Config) dashIntervals() []float64 {
	if !(c.DashLength > 0) || !(c.GapLength > 0) ||
		math.IsInf(c.DashLength, 0) || math.IsInf(c.GapLength, 0) {
		return nil
	}
	return []float64{c.DashLength, c.GapLength}
}

func nonNegative(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
