package widgets

import (
	"github.com/go-drift/dashed/pkg/border"
	"github.com/go-drift/dashed/pkg/graphics"
	"github.com/go-drift/dashed/pkg/layout"
)

// DashedBorder is a render box that strokes an animated dashed outline
// around its own bounds.
//
// The dash pattern advances one step per tick while the animator runs.
// Each tick marks the box dirty; the pipeline owner folds any number of
// ticks between two frames into one paint that uses the newest phase.
//
//	b := widgets.NewDashedBorder(cfg, looper)
//	b.BindLifecycle(platform.Lifecycle)
//	engine.SetRoot(b)
//
// All methods must be called on the scheduler's goroutine.
type DashedBorder struct {
	layout.RenderBoxBase

	cfg      border.Config
	animator *border.Animator
	renderer *border.Renderer
	bridge   *border.Bridge
}

// NewDashedBorder creates a stopped border with its own copy of cfg. Ticks
// are scheduled on scheduler.
func NewDashedBorder(cfg border.Config, scheduler border.Scheduler) *DashedBorder {
	b := &DashedBorder{cfg: cfg}
	b.SetSelf(b)
	b.animator = border.NewAnimator(&b.cfg, scheduler)
	b.animator.OnInvalidate(b.MarkNeedsPaint)
	b.renderer = border.NewRenderer(&b.cfg)
	b.bridge = border.NewBridge(b.animator)
	return b
}

// Paint strokes the outline at the current phase.
func (b *DashedBorder) Paint(ctx *layout.PaintContext) {
	b.renderer.Paint(ctx.Canvas, b.Size(), b.animator.Phase())
}

// SetAnimateDirection changes the rotation from the next tick on.
func (b *DashedBorder) SetAnimateDirection(d border.Direction) {
	b.animator.SetDirection(d)
}

// AnimateDirection returns the current rotation.
func (b *DashedBorder) AnimateDirection() border.Direction {
	return b.animator.Direction()
}

// BindLifecycle ties the animation to source: it runs while source is
// resumed and stops when it is paused or detached. Binding again detaches
// from the previous source; nil only detaches.
func (b *DashedBorder) BindLifecycle(source border.LifecycleSource) {
	b.bridge.Bind(source)
}

// Dispose detaches from the lifecycle source and stops the animation.
func (b *DashedBorder) Dispose() {
	b.bridge.Unbind()
	b.animator.Stop()
}

// Config returns the border's configuration.
func (b *DashedBorder) Config() border.Config {
	return b.cfg
}

// Animator returns the animator driving the dash phase.
func (b *DashedBorder) Animator() *border.Animator {
	return b.animator
}

// Renderer returns the renderer used by Paint.
func (b *DashedBorder) Renderer() *border.Renderer {
	return b.renderer
}

// DrawableRect returns the rect the outline is traced along at the
// current size.
func (b *DashedBorder) DrawableRect() graphics.Rect {
	return b.renderer.DrawableRect(b.Size())
}

// DescribeProperties reports the border's visible state for snapshots.
func (b *DashedBorder) DescribeProperties() map[string]any {
	return map[string]any{
		"shape":     b.cfg.Shape.String(),
		"direction": b.animator.Direction().String(),
		"speed":     b.cfg.Speed.String(),
		"phase":     b.animator.Phase(),
		"running":   b.animator.Running(),
	}
}
