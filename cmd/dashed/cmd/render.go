package cmd

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/dashed/pkg/animation"
	"github.com/go-drift/dashed/pkg/border"
	"github.com/go-drift/dashed/pkg/engine"
	"github.com/go-drift/dashed/pkg/graphics"
	"github.com/go-drift/dashed/pkg/platform"
	"github.com/go-drift/dashed/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render animation frames to PNG files",
		Long: `Render the border animation tick by tick and write each frame as a
PNG file. Time is simulated, so rendering does not wait for the tick
period.

Flags:
  --attrs FILE        Attribute file (.yaml, .yml, .toml or .hcl)
  --shape S           circle or rect
  --direction D       none, cw or ccw
  --speed S           low, normal or fast
  --color C           Color name, #RRGGBB or #AARRGGBB
  --size WxH          Border size in pixels (default 200x120)
  --frames N          Number of frames to write (default 8)
  --scale F           Scale the written images by F (default 1)
  --background C      Background color (default transparent)
  --out DIR           Output directory (default .)`,
		Usage: "dashed render [flags]",
		Run:   runRender,
	})
}

type renderOptions struct {
	borderOptions
	width, height int
	frames        int
	scale         float64
	background    string
	out           string
}

func runRender(args []string) error {
	opts := renderOptions{width: 200, height: 120, frames: 8, scale: 1, out: "."}
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
		case "--size", "--frames", "--scale", "--background", "--out":
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
		var value string
		value, i, err = flagValue(args, i)
		if err != nil {
			return err
		}
		switch name {
		case "--size":
			opts.width, opts.height, err = parseSize(value)
		case "--frames":
			opts.frames, err = strconv.Atoi(value)
			if err == nil && opts.frames <= 0 {
				err = fmt.Errorf("--frames must be positive")
			}
		case "--scale":
			opts.scale, err = strconv.ParseFloat(value, 64)
			if err == nil && !(opts.scale > 0) {
				err = fmt.Errorf("--scale must be positive")
			}
		case "--background":
			opts.background = value
		case "--out":
			opts.out = value
		}
		if err != nil {
			return err
		}
	}

	done, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer done()

	res, err := opts.resolve()
	if err != nil {
		return err
	}
	background := graphics.ColorTransparent
	if opts.background != "" {
		if background, err = graphics.ParseColor(opts.background); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	slog.Info("rendering",
		slog.String("source", res.Source),
		slog.String("shape", res.Config.Shape.String()),
		slog.String("direction", res.Config.Direction.String()),
		slog.String("speed", res.Config.Speed.String()),
		slog.Int("frames", opts.frames),
	)
	written, err := renderFrames(res.Config, opts, background)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Println(path)
	}
	return nil
}

// stepClock is an animation clock advanced by hand, so frames are produced
// as fast as they can be encoded.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// renderFrames drives a border through opts.frames frames and writes each
// one as a PNG. It returns the written paths.
func renderFrames(cfg border.Config, opts renderOptions, background graphics.Color) ([]string, error) {
	clk := &stepClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	var (
		written  []string
		writeErr error
	)
	looper := animation.NewLooper()
	eng := engine.New(looper, func(f engine.Frame) {
		if writeErr != nil || len(written) >= opts.frames {
			return
		}
		path := filepath.Join(opts.out, fmt.Sprintf("frame_%03d.png", f.Number))
		if err := writeFrame(path, f, opts.scale); err != nil {
			writeErr = err
			return
		}
		slog.Debug("frame written", slog.String("path", path), slog.Float64("frameMs", f.Sample.FrameMs))
		written = append(written, path)
	})
	eng.SetBackground(background)
	eng.Resize(graphics.Size{Width: float64(opts.width), Height: float64(opts.height)})

	b := widgets.NewDashedBorder(cfg, looper)
	eng.SetRoot(b)
	b.BindLifecycle(platform.NewLifecycleService(platform.LifecycleStateResumed))
	defer b.Dispose()

	for len(written) < opts.frames && writeErr == nil {
		if looper.RunPending() == 0 {
			clk.advance(border.TickPeriod)
		}
	}
	return written, writeErr
}

func writeFrame(path string, f engine.Frame, scale float64) error {
	canvas := graphics.NewImageCanvas(int(f.Size.Width), int(f.Size.Height))
	f.DisplayList.Paint(canvas)
	var img image.Image = canvas.Image()
	if scale != 1 {
		src := canvas.Image()
		w := max(int(float64(src.Bounds().Dx())*scale), 1)
		h := max(int(float64(src.Bounds().Dy())*scale), 1)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		img = dst
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
