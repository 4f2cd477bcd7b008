// Package testing provides helpers for testing dashed border widgets.
//
// # Fake Time
//
// Swap the animation clock for a [FakeClock] so looper tasks fire only
// when the test advances time:
//
//	clk := drifttest.NewFakeClock()
//	prev := animation.SetClock(clk)
//	defer animation.SetClock(prev)
//
//	looper := animation.NewLooper()
//	animator := border.NewAnimator(&cfg, looper)
//	animator.Start()
//	clk.Advance(200 * time.Millisecond)
//	looper.RunPending()
//
// # Display Lists
//
// [CaptureOps] replays a recorded [graphics.DisplayList] into plain
// [DisplayOp] values so tests can assert on geometry and paint without a
// raster backend:
//
//	ops := drifttest.CaptureOps(frame)
//	ovals := drifttest.FilterOps(ops, "drawOval")
//
// # Snapshots
//
// [CaptureSnapshot] serializes a render tree and its paint ops. Compare
// against a golden file with [Snapshot.MatchesFile]; run the tests with
// DASHED_UPDATE_SNAPSHOTS=1 to rewrite the files:
//
//	snap := drifttest.CaptureSnapshot(border)
//	snap.MatchesFile(t, "testdata/border.snapshot.json")
package testing
