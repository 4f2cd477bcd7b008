// Package widgets provides render boxes built from the border package.
//
// [DashedBorder] strokes an animated dashed outline around its bounds. It
// ties together a [border.Animator] for the dash phase, a
// [border.Renderer] for drawing and a [border.Bridge] that starts and
// stops the animation with the host lifecycle:
//
//	looper := animation.NewLooper()
//	eng := engine.New(looper, sink)
//
//	b := widgets.NewDashedBorder(cfg, looper)
//	eng.Resize(graphics.Size{Width: 200, Height: 120})
//	eng.SetRoot(b)
//	b.BindLifecycle(platform.Lifecycle)
//
// Each animation tick marks the box as needing paint. The engine folds
// every tick that lands between two frames into a single frame.
package widgets
