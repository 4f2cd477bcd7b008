// Package animation provides the timing primitives that drive dashed
// border animations.
//
// # Core Components
//
//   - [Looper]: a single-threaded task queue standing in for the host's UI
//     thread. Every callback posted to a Looper runs on whichever goroutine
//     calls [Looper.RunPending] or [Looper.Run], one at a time, so state
//     touched only from tasks needs no locking.
//
//   - [Task]: a handle to one posted callback that can be cancelled until
//     it runs.
//
//   - [Interval]: a repeating task with an explicit [Interval.Cancel].
//
//   - [Clock]: the time source. Tests swap in a fake clock with [SetClock]
//     and advance it by hand.
//
// # Basic Usage
//
//	looper := animation.NewLooper()
//	tick := looper.Every(0, 200*time.Millisecond, func() {
//	    phase += step
//	    view.MarkNeedsPaint()
//	})
//	go looper.Run(ctx)
//
//	// Later, from a looper task:
//	tick.Cancel()
package animation

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/go-drift/dashed/pkg/errors"
)

// Looper runs posted callbacks in due-time order on a single goroutine.
//
// Post and PostDelayed are safe to call from any goroutine. Callbacks are
// only ever invoked from RunPending, which must not be called concurrently
// with itself (Run calls it in a loop).
type Looper struct {
	mu    sync.Mutex
	queue taskQueue
	seq   uint64
	wake  chan struct{}
}

// NewLooper creates an empty looper.
func NewLooper() *Looper {
	return &Looper{wake: make(chan struct{}, 1)}
}

// Task is a callback scheduled on a Looper.
type Task struct {
	looper *Looper
	fn     func()
	when   time.Time
	seq    uint64
	index  int // position in the heap, -1 once dequeued
}

// Post schedules fn to run as soon as possible.
func (l *Looper) Post(fn func()) *Task {
	return l.PostDelayed(0, fn)
}

// PostDelayed schedules fn to run once delay has elapsed on the animation
// clock. Negative delays are treated as zero.
func (l *Looper) PostDelayed(delay time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	t := &Task{looper: l, fn: fn, index: -1}
	l.mu.Lock()
	t.when = Now().Add(delay)
	l.seq++
	t.seq = l.seq
	heap.Push(&l.queue, t)
	l.mu.Unlock()
	l.signal()
	return t
}

// Cancel removes the task from the queue. It returns false if the task
// already ran or was cancelled before.
func (t *Task) Cancel() bool {
	l := t.looper
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.index < 0 {
		return false
	}
	heap.Remove(&l.queue, t.index)
	return true
}

// Pending reports whether the task is still waiting to run.
func (t *Task) Pending() bool {
	t.looper.mu.Lock()
	defer t.looper.mu.Unlock()
	return t.index >= 0
}

// Pending returns the number of queued tasks.
func (l *Looper) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queue.Len()
}

// NextDeadline returns when the earliest queued task becomes due.
func (l *Looper) NextDeadline() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.queue.Len() == 0 {
		return time.Time{}, false
	}
	return l.queue[0].when, true
}

// RunPending runs every task that is due at the current clock time and
// returns how many ran. Tasks posted while it runs wait for the next call,
// so a task that reposts itself with no delay cannot starve the caller.
func (l *Looper) RunPending() int {
	now := Now()
	l.mu.Lock()
	limit := l.seq
	l.mu.Unlock()

	ran := 0
	for {
		l.mu.Lock()
		if l.queue.Len() == 0 {
			l.mu.Unlock()
			return ran
		}
		next := l.queue[0]
		if next.when.After(now) || next.seq > limit {
			l.mu.Unlock()
			return ran
		}
		heap.Pop(&l.queue)
		l.mu.Unlock()

		runTask(next.fn)
		ran++
	}
}

func runTask(fn func()) {
	if fn == nil {
		return
	}
	defer errors.Recover("animation.Looper.RunPending")
	fn()
}

// Run services the queue in real time until ctx is done. It is the
// looper's event loop; callers typically run it on the goroutine that owns
// the UI.
func (l *Looper) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		l.RunPending()

		if next, ok := l.NextDeadline(); ok {
			timer.Reset(max(next.Sub(Now()), 0))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		case <-timer.C:
		}
		timer.Stop()
	}
}

func (l *Looper) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// taskQueue is a min-heap ordered by due time, then post order.
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].when.Equal(q[j].when) {
		return q[i].seq < q[j].seq
	}
	return q[i].when.Before(q[j].when)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
