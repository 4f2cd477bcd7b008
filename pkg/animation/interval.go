package animation

import "time"

// minPeriod bounds how often an Interval can fire.
const minPeriod = time.Millisecond

// Interval is a cancellable repeating task on a Looper.
//
// The callback runs on the looper. Each firing schedules the next one
// before invoking the callback, so a panicking callback does not end the
// interval. Cancel must be called from the looper goroutine (typically from
// another task); once it returns the callback never runs again.
type Interval struct {
	looper    *Looper
	period    time.Duration
	fn        func()
	task      *Task
	cancelled bool
	fired     int
}

// Every schedules fn to run after initialDelay and then once per period.
// Periods below one millisecond are raised to one millisecond.
func (l *Looper) Every(initialDelay, period time.Duration, fn func()) *Interval {
	if period < minPeriod {
		period = minPeriod
	}
	iv := &Interval{looper: l, period: period, fn: fn}
	iv.task = l.PostDelayed(initialDelay, iv.fire)
	return iv
}

func (iv *Interval) fire() {
	if iv.cancelled {
		return
	}
	iv.task = iv.looper.PostDelayed(iv.period, iv.fire)
	iv.fired++
	if iv.fn != nil {
		iv.fn()
	}
}

// Cancel stops the interval. Calling it more than once is a no-op.
func (iv *Interval) Cancel() {
	if iv.cancelled {
		return
	}
	iv.cancelled = true
	iv.task.Cancel()
}

// Active reports whether the interval has not been cancelled.
func (iv *Interval) Active() bool {
	return !iv.cancelled
}

// Period returns the time between firings.
func (iv *Interval) Period() time.Duration {
	return iv.period
}

// Fired returns how many times the callback has been invoked.
func (iv *Interval) Fired() int {
	return iv.fired
}
