package cmd

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/dashed/pkg/border"
	"github.com/go-drift/dashed/pkg/graphics"
	"github.com/go-drift/dashed/pkg/platform"
)

func newSimPreview(t *testing.T, cfg border.Config) (*preview, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 11)

	p := newPreview(screen, cfg, 1, graphics.ColorBlack)
	p.cancel = func() {}
	p.resize()
	p.engine.SetRoot(p.border)
	return p, screen
}

func cellAt(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.SimCell {
	t.Helper()
	cells, w, _ := screen.GetContents()
	return cells[y*w+x]
}

func statusLine(screen tcell.SimulationScreen) string {
	cells, w, h := screen.GetContents()
	var sb strings.Builder
	for _, c := range cells[(h-1)*w:] {
		sb.WriteString(string(c.Runes))
	}
	return sb.String()
}

func TestPreview_DrawsHalfBlocks(t *testing.T) {
	cfg := border.DefaultConfig()
	cfg.DashLength = 0
	p, screen := newSimPreview(t, cfg)

	p.looper.RunPending()

	if p.engine.FrameCount() != 1 {
		t.Fatalf("FrameCount() = %d, want 1", p.engine.FrameCount())
	}
	edge := cellAt(t, screen, 20, 1)
	if len(edge.Runes) == 0 || edge.Runes[0] != '▀' {
		t.Fatalf("edge cell runes = %q, want upper half block", edge.Runes)
	}
	fg, bg, _ := edge.Style.Decompose()
	red := tcell.NewRGBColor(255, 0, 0)
	if fg != red || bg != red {
		t.Errorf("edge cell colors fg=%v bg=%v, want red on red", fg, bg)
	}
	fg, _, _ = cellAt(t, screen, 20, 5).Style.Decompose()
	if fg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("center cell fg = %v, want black", fg)
	}
}

func TestPreview_Keys(t *testing.T) {
	p, screen := newSimPreview(t, border.DefaultConfig())
	p.border.BindLifecycle(p.lifecycle)
	p.looper.RunPending()

	p.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if got := p.border.AnimateDirection(); got != border.DirectionClockwise {
		t.Errorf("after c direction = %v", got)
	}
	p.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if got := p.border.AnimateDirection(); got != border.DirectionCounterClockwise {
		t.Errorf("after r direction = %v", got)
	}
	if !strings.Contains(statusLine(screen), "counterclockwise") {
		t.Errorf("status line %q does not show the direction", statusLine(screen))
	}

	p.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if p.lifecycle.State() != platform.LifecycleStatePaused || p.border.Animator().Running() {
		t.Errorf("after p state=%v running=%v, want paused and stopped", p.lifecycle.State(), p.border.Animator().Running())
	}

	quit := false
	p.cancel = func() { quit = true }
	p.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !quit {
		t.Error("q did not quit")
	}
}

func TestPreview_FocusDrivesLifecycle(t *testing.T) {
	p, _ := newSimPreview(t, border.DefaultConfig())
	p.border.BindLifecycle(p.lifecycle)
	p.looper.RunPending()
	if !p.border.Animator().Running() {
		t.Fatal("animator not running while focused")
	}

	p.handleEvent(tcell.NewEventFocus(false))
	if p.border.Animator().Running() {
		t.Error("animator running after focus loss")
	}
	p.handleEvent(tcell.NewEventFocus(true))
	if !p.border.Animator().Running() {
		t.Error("animator not running after focus returned")
	}
}

func TestPreview_Resize(t *testing.T) {
	p, screen := newSimPreview(t, border.DefaultConfig())
	p.zoom = 0.5

	screen.SetSize(20, 6)
	p.handleEvent(tcell.NewEventResize(20, 6))

	want := graphics.Size{Width: 40, Height: 20}
	if got := p.engine.Size(); got != want {
		t.Errorf("engine size = %+v, want %+v", got, want)
	}
}
