// Package engine hosts a render tree on a looper: it coalesces paint
// requests into frames, records each frame into a display list, and hands
// the result to a frame sink.
package engine

import (
	"time"

	"github.com/go-drift/dashed/pkg/animation"
	"github.com/go-drift/dashed/pkg/errors"
	"github.com/go-drift/dashed/pkg/graphics"
	"github.com/go-drift/dashed/pkg/layout"
	"github.com/go-drift/dashed/pkg/platform"
)

// Frame is one recorded frame.
type Frame struct {
	// Number counts frames from 1.
	Number int
	// Size is the viewport size the frame was recorded at.
	Size graphics.Size
	// DisplayList holds the recorded drawing commands.
	DisplayList *graphics.DisplayList
	// Sample carries timing and workload figures for the frame.
	Sample FrameSample
}

// FrameSink receives frames on the looper goroutine.
type FrameSink func(frame Frame)

// Engine owns the render tree and draws it when something changes.
//
// Every method except Post must run on the looper goroutine; code on other
// goroutines hands work over with Post or platform.Dispatch.
type Engine struct {
	looper     *animation.Looper
	owner      layout.PipelineOwner
	root       layout.RenderObject
	size       graphics.Size
	background graphics.Color
	sink       FrameSink
	recorder   graphics.PictureRecorder
	frameTask  *animation.Task
	frames     int
	trace      *frameTrace
}

// New creates an engine that runs on looper and delivers frames to sink.
func New(looper *animation.Looper, sink FrameSink) *Engine {
	e := &Engine{
		looper:     looper,
		sink:       sink,
		background: graphics.ColorTransparent,
		trace:      newFrameTrace(frameTraceSamplesDefault),
	}
	e.owner.OnNeedVisualUpdate = e.RequestFrame
	return e
}

// Looper returns the looper the engine runs on.
func (e *Engine) Looper() *animation.Looper {
	return e.looper
}

// Post runs fn on the looper goroutine. It is safe to call from any
// goroutine.
func (e *Engine) Post(fn func()) {
	e.looper.Post(fn)
}

// RegisterDispatch routes platform.Dispatch onto this engine's looper.
func (e *Engine) RegisterDispatch() {
	platform.RegisterDispatch(e.Post)
}

// SetBackground sets the color each frame is cleared to.
func (e *Engine) SetBackground(c graphics.Color) {
	e.background = c
	e.RequestFrame()
}

// SetRoot replaces the root render object. The previous root is detached.
func (e *Engine) SetRoot(root layout.RenderObject) {
	if e.root != nil {
		layout.Detach(e.root)
	}
	e.root = root
	if root == nil {
		e.RequestFrame()
		return
	}
	e.applySize()
	layout.Attach(root, &e.owner)
}

// Root returns the current root render object.
func (e *Engine) Root() layout.RenderObject {
	return e.root
}

// Resize sets the viewport size and gives it to the root.
func (e *Engine) Resize(size graphics.Size) {
	if e.size == size {
		return
	}
	e.size = size
	e.applySize()
	e.RequestFrame()
}

// Size returns the viewport size.
func (e *Engine) Size() graphics.Size {
	return e.size
}

func (e *Engine) applySize() {
	if sizer, ok := e.root.(interface{ SetSize(graphics.Size) }); ok {
		sizer.SetSize(e.size)
	}
}

// RequestFrame schedules a frame unless one is already pending.
func (e *Engine) RequestFrame() {
	if e.frameTask != nil && e.frameTask.Pending() {
		return
	}
	e.frameTask = e.looper.Post(e.drawFrame)
}

// FrameCount returns how many frames have been drawn.
func (e *Engine) FrameCount() int {
	return e.frames
}

// Samples returns the recorded frame samples, oldest first.
func (e *Engine) Samples() []FrameSample {
	return e.trace.snapshot()
}

func (e *Engine) drawFrame() {
	defer errors.Recover("engine.drawFrame")

	start := time.Now()
	dirty := e.owner.FlushPaint()

	canvas := e.recorder.BeginRecording(e.size)
	canvas.Clear(e.background)
	if e.root != nil {
		ctx := &layout.PaintContext{Canvas: canvas}
		ctx.PaintChild(e.root, graphics.Offset{})
	}
	dl := e.recorder.EndRecording()

	e.frames++
	sample := FrameSample{
		Timestamp:  animation.Now().UnixMilli(),
		FrameMs:    float64(time.Since(start).Microseconds()) / 1000,
		DirtyPaint: len(dirty),
		Ops:        dl.Len(),
	}
	e.trace.add(sample)
	if e.sink != nil {
		e.sink(Frame{Number: e.frames, Size: e.size, DisplayList: dl, Sample: sample})
	}
}
