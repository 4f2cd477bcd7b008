package testing

import (
	"sync"
	"time"

	"github.com/go-drift/dashed/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Install makes c the animation clock and returns a func restoring the
// previous one. Typical use is defer clk.Install()().
func (c *FakeClock) Install() func() {
	prev := animation.SetClock(c)
	return func() { animation.SetClock(prev) }
}

// Step advances the clock by d and runs every looper task that became
// due, returning how many ran.
func (c *FakeClock) Step(looper *animation.Looper, d time.Duration) int {
	c.Advance(d)
	return looper.RunPending()
}
