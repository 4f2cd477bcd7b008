package border_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/dashed/pkg/border"
	"github.com/go-drift/dashed/pkg/platform"
)

type recordingRunner struct {
	calls []string
}

func (r *recordingRunner) Start() { r.calls = append(r.calls, "start") }
func (r *recordingRunner) Stop()  { r.calls = append(r.calls, "stop") }

func TestBridge_VisibilitySequence(t *testing.T) {
	source := platform.NewLifecycleService(platform.LifecycleStateInactive)
	runner := &recordingRunner{}
	bridge := border.NewBridge(runner)
	bridge.Bind(source)

	source.SetState(platform.LifecycleStateResumed)
	source.SetState(platform.LifecycleStatePaused)
	source.SetState(platform.LifecycleStateResumed)

	if diff := cmp.Diff([]string{"start", "stop", "start"}, runner.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestBridge_StateMapping(t *testing.T) {
	tests := []struct {
		state platform.LifecycleState
		want  []string
	}{
		{platform.LifecycleStateResumed, []string{"start"}},
		{platform.LifecycleStatePaused, []string{"stop"}},
		{platform.LifecycleStateDetached, []string{"stop"}},
		{platform.LifecycleStateInactive, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			initial := platform.LifecycleStateInactive
			if tt.state == initial {
				initial = platform.LifecycleStatePaused
			}
			source := platform.NewLifecycleService(initial)
			runner := &recordingRunner{}
			border.NewBridge(runner).Bind(source)

			source.SetState(tt.state)

			if diff := cmp.Diff(tt.want, runner.calls); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBridge_BindToResumedSourceStarts(t *testing.T) {
	runner := &recordingRunner{}
	border.NewBridge(runner).Bind(platform.NewLifecycleService(platform.LifecycleStateResumed))

	if diff := cmp.Diff([]string{"start"}, runner.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestBridge_BindToPausedSourceDoesNothing(t *testing.T) {
	runner := &recordingRunner{}
	border.NewBridge(runner).Bind(platform.NewLifecycleService(platform.LifecycleStatePaused))

	if len(runner.calls) != 0 {
		t.Errorf("calls = %v, want none", runner.calls)
	}
}

func TestBridge_RebindDetachesPrevious(t *testing.T) {
	first := platform.NewLifecycleService(platform.LifecycleStatePaused)
	second := platform.NewLifecycleService(platform.LifecycleStatePaused)
	runner := &recordingRunner{}
	bridge := border.NewBridge(runner)

	bridge.Bind(first)
	bridge.Bind(second)

	if first.HandlerCount() != 0 {
		t.Errorf("first.HandlerCount() = %d, want 0", first.HandlerCount())
	}
	if second.HandlerCount() != 1 {
		t.Errorf("second.HandlerCount() = %d, want 1", second.HandlerCount())
	}
	first.SetState(platform.LifecycleStateResumed)
	if len(runner.calls) != 0 {
		t.Fatalf("old source still drives the runner: %v", runner.calls)
	}
	second.SetState(platform.LifecycleStateResumed)
	if diff := cmp.Diff([]string{"start"}, runner.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if bridge.Source() != second {
		t.Error("Source() is not the second source")
	}
}

func TestBridge_Unbind(t *testing.T) {
	source := platform.NewLifecycleService(platform.LifecycleStatePaused)
	runner := &recordingRunner{}
	bridge := border.NewBridge(runner)
	bridge.Bind(source)

	bridge.Unbind()
	bridge.Unbind()
	source.SetState(platform.LifecycleStateResumed)

	if len(runner.calls) != 0 {
		t.Errorf("calls = %v after unbind, want none", runner.calls)
	}
	if bridge.Source() != nil {
		t.Error("Source() != nil after unbind")
	}
	bridge.Bind(nil)
	if source.HandlerCount() != 0 {
		t.Errorf("HandlerCount() = %d, want 0", source.HandlerCount())
	}
}

func TestBridge_NoTicksWhileHidden(t *testing.T) {
	cfg := border.DefaultConfig()
	cfg.Direction = border.DirectionClockwise
	a, looper, clk := newTestAnimator(t, cfg)
	source := platform.NewLifecycleService(platform.LifecycleStateResumed)
	border.NewBridge(a).Bind(source)

	looper.RunPending()
	clk.Step(looper, border.TickPeriod)
	if a.Ticks() != 2 {
		t.Fatalf("Ticks() = %d while visible, want 2", a.Ticks())
	}

	source.SetState(platform.LifecycleStatePaused)
	clk.Step(looper, 5*border.TickPeriod)
	if a.Ticks() != 2 || a.Running() {
		t.Fatalf("ticks=%d running=%v while hidden, want 2 and false", a.Ticks(), a.Running())
	}
	phase := a.Phase()

	source.SetState(platform.LifecycleStateResumed)
	looper.RunPending()
	if a.Ticks() != 3 {
		t.Errorf("Ticks() = %d after resume, want 3", a.Ticks())
	}
	if a.Phase() != phase-6 {
		t.Errorf("Phase() = %v after resume, want %v", a.Phase(), phase-6)
	}
}
