package border

import (
	"time"

	"github.com/go-drift/dashed/pkg/animation"
)

// TickPeriod is the time between animation ticks.
const TickPeriod = 200 * time.Millisecond

// Scheduler creates repeating tasks on the UI execution context.
// *animation.Looper satisfies it.
type Scheduler interface {
	Every(initialDelay, period time.Duration, fn func()) *animation.Interval
}

// StepSize returns how far the dash pattern moves per tick, before the
// direction is applied: (dash + stroke) / 8, 4 or 2 for low, normal and
// fast. Unlike the raw formula, non-positive, NaN or infinite lengths
// count as zero, so a bad length never reverses the rotation.
func StepSize(speed Speed, dashLength, strokeWidth float64) float64 {
	return (nonNegative(dashLength) + nonNegative(strokeWidth)) / speed.divisor()
}

// Animator advances the dash phase of a border while it is running.
//
// All methods must be called on the scheduler's execution context; the
// animator has no locks.
type Animator struct {
	cfg        *Config
	scheduler  Scheduler
	interval   *animation.Interval
	phase      float64
	ticks      int
	invalidate func()
}

// NewAnimator creates a stopped animator reading speed, direction and
// lengths from cfg.
func NewAnimator(cfg *Config, scheduler Scheduler) *Animator {
	return &Animator{cfg: cfg, scheduler: scheduler}
}

// OnInvalidate sets the callback run after each tick to request a redraw.
func (a *Animator) OnInvalidate(fn func()) {
	a.invalidate = fn
}

// Start begins ticking every TickPeriod, with the first tick posted
// immediately. It does nothing if already running.
func (a *Animator) Start() {
	if a.interval != nil {
		return
	}
	a.interval = a.scheduler.Every(0, TickPeriod, a.onTick)
}

// Stop cancels the tick loop. The phase is kept so a later Start resumes
// from it. It does nothing if not running.
func (a *Animator) Stop() {
	if a.interval == nil {
		return
	}
	a.interval.Cancel()
	a.interval = nil
}

// Running reports whether the tick loop is active.
func (a *Animator) Running() bool {
	return a.interval != nil
}

// SetDirection changes the rotation; it applies from the next tick and
// does not start or stop the loop.
func (a *Animator) SetDirection(d Direction) {
	a.cfg.Direction = d
}

// Direction returns the current rotation.
func (a *Animator) Direction() Direction {
	return a.cfg.Direction
}

// Delta returns the phase change the next tick will apply.
func (a *Animator) Delta() float64 {
	sign := a.cfg.Direction.Sign()
	if sign == 0 {
		return 0
	}
	return StepSize(a.cfg.Speed, a.cfg.DashLength, a.cfg.StrokeWidth) * sign
}

// Phase returns the accumulated dash offset.
func (a *Animator) Phase() float64 {
	return a.phase
}

// Ticks returns how many ticks have run since the animator was created.
func (a *Animator) Ticks() int {
	return a.ticks
}

func (a *Animator) onTick() {
	a.phase += a.Delta()
	a.ticks++
	if a.invalidate != nil {
		a.invalidate()
	}
}
