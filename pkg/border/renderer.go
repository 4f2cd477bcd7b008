package border

import (
	"math"

	"github.com/go-drift/dashed/pkg/graphics"
)

// Renderer strokes a border outline onto a canvas.
//
// The drawable rect (bounds inset by half the stroke width, so the stroke
// is not clipped at the edge) is cached and recomputed only when the
// bounds size changes.
type Renderer struct {
	cfg *Config

	bounds    graphics.Size
	inset     graphics.Rect
	hasInset  bool
	insetRuns int
}

// NewRenderer creates a renderer for cfg.
func NewRenderer(cfg *Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// DrawableRect returns the rect the outline is traced along for bounds.
func (r *Renderer) DrawableRect(bounds graphics.Size) graphics.Rect {
	if !r.hasInset || r.bounds != bounds {
		r.bounds = bounds
		half := r.cfg.strokeWidth() / 2
		r.inset = graphics.RectFromLTWH(0, 0, bounds.Width, bounds.Height).Deflate(half)
		r.hasInset = true
		r.insetRuns++
	}
	return r.inset
}

// Paint draws the outline for bounds with the dash pattern offset by phase.
// Bounds too small to hold the stroke draw nothing.
func (r *Renderer) Paint(canvas graphics.Canvas, bounds graphics.Size, phase float64) {
	rect := r.DrawableRect(bounds)
	if rect.IsEmpty() {
		return
	}
	paint := StrokePaint(r.cfg, phase)
	switch r.cfg.Shape {
	case ShapeCircle:
		canvas.DrawOval(rect, paint)
	default:
		radius := ClampRadius(r.cfg.CornerRadius, rect)
		canvas.DrawRRect(graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(radius)), paint)
	}
}

// StrokePaint builds the anti-aliased stroke paint for cfg at phase. A
// pattern with a non-positive dash or gap length yields a solid stroke.
func StrokePaint(cfg *Config, phase float64) graphics.Paint {
	paint := graphics.Paint{
		Color:       cfg.Color,
		Style:       graphics.PaintStyleStroke,
		StrokeWidth: cfg.strokeWidth(),
		StrokeCap:   graphics.CapButt,
		AntiAlias:   true,
	}
	if intervals := cfg.dashIntervals(); intervals != nil {
		if math.IsNaN(phase) || math.IsInf(phase, 0) {
			phase = 0
		}
		paint.Dash = &graphics.DashPattern{Intervals: intervals, Phase: phase}
	}
	return paint
}

// ClampRadius limits radius to [0, half the shorter side of rect].
func ClampRadius(radius float64, rect graphics.Rect) float64 {
	limit := math.Min(rect.Width(), rect.Height()) / 2
	if !(radius > 0) || limit <= 0 {
		return 0
	}
	return math.Min(radius, limit)
}
