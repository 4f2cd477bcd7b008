package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/dashed/pkg/animation"
	"github.com/go-drift/dashed/pkg/border"
	"github.com/go-drift/dashed/pkg/engine"
	"github.com/go-drift/dashed/pkg/graphics"
	"github.com/go-drift/dashed/pkg/platform"
	"github.com/go-drift/dashed/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Animate the border in the terminal",
		Long: `Animate the border live in the terminal, two pixels per cell.

The animation runs while the terminal window has focus and stops when it
loses focus, the same way a host screen pauses it when hidden.

Keys:
  c   rotate clockwise
  a   rotate counterclockwise
  n   stop rotating
  r   reverse the rotation
  p   pause or resume
  q   quit (also Esc, Ctrl-C)

Flags:
  --attrs FILE        Attribute file (.yaml, .yml, .toml or .hcl)
  --shape S           circle or rect
  --direction D       none, cw or ccw
  --speed S           low, normal or fast
  --color C           Color name, #RRGGBB or #AARRGGBB
  --zoom F            Terminal pixels per border pixel (default 0.25)
  --background C      Background color (default black)`,
		Usage: "dashed preview [flags]",
		Run:   runPreview,
	})
}

type previewOptions struct {
	borderOptions
	zoom       float64
	background string
}

func runPreview(args []string) error {
	opts := previewOptions{zoom: 0.25}
	for i := 0; i < len(args); i++ {
		next, ok, err := opts.parseBorderFlag(args, i)
		if err != nil {
			return err
		}
		if ok {
			i = next
			continue
		}
		name, _, _ := strings.Cut(args[i], "=")
		switch name {
		case "--zoom", "--background":
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
		var value string
		value, i, err = flagValue(args, i)
		if err != nil {
			return err
		}
		switch name {
		case "--zoom":
			opts.zoom, err = strconv.ParseFloat(value, 64)
			if err == nil && !(opts.zoom > 0) {
				err = fmt.Errorf("--zoom must be positive")
			}
		case "--background":
			opts.background = value
		}
		if err != nil {
			return err
		}
	}

	done, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer done()

	res, err := opts.resolve()
	if err != nil {
		return err
	}
	background := graphics.ColorBlack
	if opts.background != "" {
		if background, err = graphics.ParseColor(opts.background); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableFocus()
	screen.HideCursor()

	p := newPreview(screen, res.Config, opts.zoom, background)
	return p.run()
}

// preview renders a border into a tcell screen using upper half blocks:
// each cell shows two vertically stacked pixels.
type preview struct {
	screen    tcell.Screen
	looper    *animation.Looper
	engine    *engine.Engine
	lifecycle *platform.LifecycleService
	border    *widgets.DashedBorder
	zoom      float64
	canvas    *graphics.ImageCanvas
	cancel    context.CancelFunc
}

func newPreview(screen tcell.Screen, cfg border.Config, zoom float64, background graphics.Color) *preview {
	p := &preview{
		screen:    screen,
		looper:    animation.NewLooper(),
		lifecycle: platform.NewLifecycleService(platform.LifecycleStateResumed),
		zoom:      zoom,
	}
	p.engine = engine.New(p.looper, p.drawFrame)
	p.engine.SetBackground(background)
	p.border = widgets.NewDashedBorder(cfg, p.looper)
	return p
}

func (p *preview) run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.cancel = cancel

	p.engine.RegisterDispatch()
	defer platform.RegisterDispatch(nil)

	p.resize()
	p.engine.SetRoot(p.border)
	p.border.BindLifecycle(p.lifecycle)
	defer p.border.Dispose()

	slog.Info("preview started",
		slog.String("shape", p.border.Config().Shape.String()),
		slog.String("direction", p.border.AnimateDirection().String()),
	)
	go p.pollEvents()

	err := p.looper.Run(ctx)
	if stderrors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents forwards terminal events to the looper until the screen is
// finalized.
func (p *preview) pollEvents() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		platform.Dispatch(func() { p.handleEvent(ev) })
	}
}

func (p *preview) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
		p.resize()
	case *tcell.EventFocus:
		if ev.Focused {
			p.lifecycle.SetState(platform.LifecycleStateResumed)
		} else {
			p.lifecycle.SetState(platform.LifecycleStatePaused)
		}
		slog.Debug("focus changed", slog.Bool("focused", ev.Focused))
	case *tcell.EventKey:
		p.handleKey(ev)
	}
	p.drawStatus()
	p.screen.Show()
}

func (p *preview) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.cancel()
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case 'q':
		p.cancel()
	case 'c':
		p.border.SetAnimateDirection(border.DirectionClockwise)
	case 'a':
		p.border.SetAnimateDirection(border.DirectionCounterClockwise)
	case 'n':
		p.border.SetAnimateDirection(border.DirectionNone)
	case 'r':
		p.border.SetAnimateDirection(p.border.AnimateDirection().Reverse())
	case 'p':
		if p.lifecycle.IsResumed() {
			p.lifecycle.SetState(platform.LifecycleStatePaused)
		} else {
			p.lifecycle.SetState(platform.LifecycleStateResumed)
		}
	}
}

// resize gives the engine a viewport matching the terminal, minus the
// status line.
func (p *preview) resize() {
	cols, rows := p.screen.Size()
	w, h := cols, max(rows-1, 0)*2
	p.engine.Resize(graphics.Size{Width: float64(w) / p.zoom, Height: float64(h) / p.zoom})
}

func (p *preview) drawFrame(f engine.Frame) {
	cols, rows := p.screen.Size()
	w, h := cols, max(rows-1, 0)*2
	if w == 0 || h == 0 {
		return
	}
	if p.canvas == nil || p.canvas.Size() != (graphics.Size{Width: float64(w), Height: float64(h)}) {
		p.canvas = graphics.NewImageCanvas(w, h)
	}
	p.canvas.Save()
	p.canvas.Scale(p.zoom, p.zoom)
	f.DisplayList.Paint(p.canvas)
	p.canvas.Restore()

	img := p.canvas.Image()
	for y := 0; y < h/2; y++ {
		for x := 0; x < w; x++ {
			top := img.RGBAAt(x, 2*y)
			bottom := img.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			p.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	p.drawStatus()
	p.screen.Show()
}

func (p *preview) drawStatus() {
	cols, rows := p.screen.Size()
	if rows == 0 {
		return
	}
	a := p.border.Animator()
	status := fmt.Sprintf(" %s  speed=%s  phase=%.0f  %s  [c]w [a]nti [n]one [r]everse [p]ause [q]uit",
		a.Direction(), p.border.Config().Speed, a.Phase(), p.lifecycle.State())
	style := tcell.StyleDefault.Reverse(true)
	runes := []rune(status)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		p.screen.SetContent(x, rows-1, r, nil, style)
	}
}
