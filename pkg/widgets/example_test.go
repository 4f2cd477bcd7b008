package widgets_test

import (
	"fmt"

	"github.com/go-drift/dashed/pkg/animation"
	"github.com/go-drift/dashed/pkg/border"
	"github.com/go-drift/dashed/pkg/engine"
	"github.com/go-drift/dashed/pkg/graphics"
	"github.com/go-drift/dashed/pkg/platform"
	"github.com/go-drift/dashed/pkg/widgets"
)

// This example shows a border that rotates clockwise while its screen is
// visible.
func ExampleDashedBorder() {
	looper := animation.NewLooper()
	eng := engine.New(looper, func(f engine.Frame) {
		fmt.Printf("frame %d: %d ops\n", f.Number, f.DisplayList.Len())
	})

	cfg := border.DefaultConfig()
	cfg.Shape = border.ShapeCircle
	cfg.Direction = border.DirectionClockwise

	b := widgets.NewDashedBorder(cfg, looper)
	eng.Resize(graphics.Size{Width: 120, Height: 120})
	eng.SetRoot(b)
	b.BindLifecycle(platform.NewLifecycleService(platform.LifecycleStateResumed))

	looper.RunPending()
	looper.RunPending()
	fmt.Println("phase:", b.Animator().Phase())

	b.Dispose()
	// Output:
	// frame 1: 5 ops
	// frame 2: 5 ops
	// phase: -6
}
