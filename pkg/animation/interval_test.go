package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/dashed/pkg/animation"
	"github.com/go-drift/dashed/pkg/errors"
	drifttest "github.com/go-drift/dashed/pkg/testing"
)

func TestInterval_FiresEveryPeriod(t *testing.T) {
	clk := drifttest.NewFakeClock()
	defer clk.Install()()

	looper := animation.NewLooper()
	count := 0
	iv := looper.Every(0, 200*time.Millisecond, func() { count++ })

	looper.RunPending()
	if count != 1 {
		t.Fatalf("after start count = %d, want 1", count)
	}
	for i := 2; i <= 5; i++ {
		clk.Step(looper, 200*time.Millisecond)
		if count != i {
			t.Fatalf("after %d periods count = %d, want %d", i-1, count, i)
		}
	}
	clk.Step(looper, 100*time.Millisecond)
	if count != 5 {
		t.Errorf("half period fired early: count = %d", count)
	}
	if iv.Fired() != 5 {
		t.Errorf("Fired() = %d, want 5", iv.Fired())
	}
	if looper.Pending() != 1 {
		t.Errorf("Pending() = %d, want exactly one scheduled tick", looper.Pending())
	}
}

func TestInterval_CancelStopsFiring(t *testing.T) {
	clk := drifttest.NewFakeClock()
	defer clk.Install()()

	looper := animation.NewLooper()
	count := 0
	iv := looper.Every(0, 200*time.Millisecond, func() { count++ })
	looper.RunPending()

	iv.Cancel()
	iv.Cancel()

	if iv.Active() {
		t.Error("Active() = true after Cancel")
	}
	clk.Step(looper, time.Second)
	if count != 1 {
		t.Errorf("count = %d after cancel, want 1", count)
	}
	if looper.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", looper.Pending())
	}
}

func TestInterval_CancelFromCallback(t *testing.T) {
	clk := drifttest.NewFakeClock()
	defer clk.Install()()

	looper := animation.NewLooper()
	count := 0
	var iv *animation.Interval
	iv = looper.Every(0, 10*time.Millisecond, func() {
		count++
		if count == 3 {
			iv.Cancel()
		}
	})

	for i := 0; i < 10; i++ {
		clk.Step(looper, 10*time.Millisecond)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestInterval_SurvivesPanics(t *testing.T) {
	clk := drifttest.NewFakeClock()
	defer clk.Install()()
	prev := errors.SetHandler(panicRecorder(func(*errors.PanicError) {}))
	defer errors.SetHandler(prev)

	looper := animation.NewLooper()
	count := 0
	looper.Every(0, 10*time.Millisecond, func() {
		count++
		panic("boom")
	})

	looper.RunPending()
	clk.Step(looper, 10*time.Millisecond)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestInterval_MinimumPeriod(t *testing.T) {
	looper := animation.NewLooper()
	iv := looper.Every(0, 0, func() {})
	if iv.Period() != time.Millisecond {
		t.Errorf("Period() = %v, want 1ms", iv.Period())
	}
	iv.Cancel()
}
