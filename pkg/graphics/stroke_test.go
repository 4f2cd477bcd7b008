package graphics

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func polylineLength(pl polyline) float64 {
	var total float64
	for i := 0; i+1 < len(pl.points); i++ {
		total += dist(pl.points[i], pl.points[i+1])
	}
	return total
}

func onLength(polys []polyline) float64 {
	var total float64
	for _, pl := range polys {
		total += polylineLength(pl)
	}
	return total
}

// dashStarts returns the X coordinate where each dash of a horizontal line
// begins.
func dashStarts(polys []polyline) []float64 {
	out := make([]float64, len(polys))
	for i, pl := range polys {
		out[i] = pl.points[0].X
	}
	return out
}

func horizontalLine(length float64) polyline {
	return polyline{points: []Offset{{X: 0, Y: 0}, {X: length, Y: 0}}}
}

func square(side float64) polyline {
	return polyline{
		points: []Offset{{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}},
		closed: true,
	}
}

func equalStarts(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !approx(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestDashPolyline_Line(t *testing.T) {
	dashes := dashPolyline(horizontalLine(100), []float64{10, 5}, 0)

	want := []float64{0, 15, 30, 45, 60, 75, 90}
	if got := dashStarts(dashes); !equalStarts(got, want) {
		t.Fatalf("dash starts = %v, want %v", got, want)
	}
	for i, d := range dashes {
		if !approx(polylineLength(d), 10) {
			t.Errorf("dash %d length = %v, want 10", i, polylineLength(d))
		}
	}
}

func TestDashPolyline_PhaseWrapsByPeriod(t *testing.T) {
	intervals := []float64{10, 5}
	tests := []struct {
		name   string
		phase  float64
		sameAs float64
	}{
		{"one period", 15, 0},
		{"many periods", 15 * 40, 0},
		{"negative", -5, 10},
		{"negative many periods", -5 - 15*7, 10},
		{"fractional", 3.5 + 15*2, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dashStarts(dashPolyline(horizontalLine(100), intervals, tt.phase))
			want := dashStarts(dashPolyline(horizontalLine(100), intervals, tt.sameAs))
			if !equalStarts(got, want) {
				t.Errorf("phase %v starts = %v, want %v (phase %v)", tt.phase, got, want, tt.sameAs)
			}
		})
	}
}

func TestDashPolyline_NegativePhase(t *testing.T) {
	dashes := dashPolyline(horizontalLine(100), []float64{10, 5}, -5)

	want := []float64{5, 20, 35, 50, 65, 80, 95}
	if got := dashStarts(dashes); !equalStarts(got, want) {
		t.Errorf("dash starts = %v, want %v", got, want)
	}
}

func TestDashPolyline_OppositePhasesMoveOppositeWays(t *testing.T) {
	intervals := []float64{10, 20}
	line := horizontalLine(100)

	still := dashStarts(dashPolyline(line, intervals, 0))
	forward := dashStarts(dashPolyline(line, intervals, 2))
	backward := dashStarts(dashPolyline(line, intervals, -2))

	if len(still) < 2 || len(forward) < 2 || len(backward) < 2 {
		t.Fatalf("starts = %v / %v / %v, want at least two dashes each", still, forward, backward)
	}
	if !approx(still[1], 30) || !approx(forward[1], 28) || !approx(backward[1], 32) {
		t.Errorf("second dash at %v (phase 0), %v (phase 2), %v (phase -2); want 30, 28, 32",
			still[1], forward[1], backward[1])
	}
}

func TestDashPolyline_DashAcrossClosingPoint(t *testing.T) {
	dashes := dashPolyline(square(10), []float64{6, 4}, 3)

	if len(dashes) != 5 {
		t.Fatalf("got %d dashes, want 5", len(dashes))
	}
	origin := Offset{}
	if first := dashes[0]; first.points[0] != origin || !approx(polylineLength(first), 3) {
		t.Errorf("first dash = %v, want 3 units from the origin", first.points)
	}
	last := dashes[len(dashes)-1]
	if end := last.points[len(last.points)-1]; dist(end, origin) > 1e-9 || !approx(polylineLength(last), 3) {
		t.Errorf("last dash = %v, want 3 units ending at the origin", last.points)
	}
	for _, d := range dashes {
		if d.closed {
			t.Errorf("dash %v is closed, want open runs", d.points)
		}
	}
}

func TestDashPolyline_OnLengthIndependentOfPhase(t *testing.T) {
	// Perimeter 40 is four periods of 10, so every phase keeps 24 units on.
	for _, phase := range []float64{0, 1.5, 3, 6, 7.25, 9.999, -4, -123.4, 1e6} {
		got := onLength(dashPolyline(square(10), []float64{6, 4}, phase))
		if math.Abs(got-24) > 1e-6 {
			t.Errorf("phase %v: on length = %v, want 24", phase, got)
		}
	}
}

func TestDashPolyline_ShortPeriodIsSolid(t *testing.T) {
	pl := square(100)
	for _, intervals := range [][]float64{{1e-7, 1e-7}, {0.4, 0.5}, {math.Inf(1), 1}} {
		got := dashPolyline(pl, intervals, 0)
		if len(got) != 1 || !got[0].closed || len(got[0].points) != len(pl.points) {
			t.Errorf("intervals %v: got %d polylines, want the input unchanged", intervals, len(got))
		}
	}
}

func TestFlattenPath_RectIsClosed(t *testing.T) {
	p := NewPath()
	p.AddRect(RectFromLTWH(1, 2, 10, 5))

	polys := flattenPath(p, affine{sx: 2, sy: 2, tx: 3, ty: 0})

	if len(polys) != 1 || !polys[0].closed {
		t.Fatalf("polys = %+v, want one closed polyline", polys)
	}
	if got := polylineLength(polys[0]) + dist(polys[0].points[len(polys[0].points)-1], polys[0].points[0]); !approx(got, 60) {
		t.Errorf("perimeter = %v, want 60", got)
	}
	if polys[0].points[0] != (Offset{X: 5, Y: 4}) {
		t.Errorf("first point = %v, want transformed (5, 4)", polys[0].points[0])
	}
}

func TestFlattenPath_OvalApproximatesCircle(t *testing.T) {
	p := NewPath()
	p.AddOval(RectFromLTWH(0, 0, 100, 100))

	polys := flattenPath(p, identity)
	if len(polys) != 1 || !polys[0].closed {
		t.Fatalf("polys = %+v, want one closed polyline", polys)
	}
	center := Offset{X: 50, Y: 50}
	for _, pt := range polys[0].points {
		if r := dist(pt, center); math.Abs(r-50) > 0.1 {
			t.Fatalf("point %v at radius %v, want 50", pt, r)
		}
	}
}

func TestImageCanvas_DashedLine(t *testing.T) {
	c := NewImageCanvas(40, 5)
	paint := Paint{
		Color:       ColorBlack,
		Style:       PaintStyleStroke,
		StrokeWidth: 3,
		Dash:        &DashPattern{Intervals: []float64{10, 10}},
	}

	c.DrawLine(Offset{X: 0, Y: 2.5}, Offset{X: 40, Y: 2.5}, paint)
	img := c.Image()

	for _, x := range []int{2, 5, 22, 25} {
		if a := img.RGBAAt(x, 2).A; a != 0xFF {
			t.Errorf("x=%d alpha = %d, want a dash", x, a)
		}
	}
	for _, x := range []int{12, 15, 32, 35} {
		if a := img.RGBAAt(x, 2).A; a != 0 {
			t.Errorf("x=%d alpha = %d, want a gap", x, a)
		}
	}
}

func TestImageCanvas_DashScalesWithTransform(t *testing.T) {
	c := NewImageCanvas(40, 10)
	c.Scale(4, 4)
	paint := Paint{
		Color:       ColorBlack,
		Style:       PaintStyleStroke,
		StrokeWidth: 1,
		Dash:        &DashPattern{Intervals: []float64{0.5, 0.5}},
	}

	// 0.5 local units are 2 device pixels, long enough to stay dashed.
	c.DrawLine(Offset{X: 0, Y: 1}, Offset{X: 10, Y: 1}, paint)
	img := c.Image()

	if a := img.RGBAAt(1, 4).A; a != 0xFF {
		t.Errorf("x=1 alpha = %d, want a dash", a)
	}
	if a := img.RGBAAt(3, 4).A; a != 0 {
		t.Errorf("x=3 alpha = %d, want a gap", a)
	}
}

func TestImageCanvas_TinyDashStrokesSolid(t *testing.T) {
	c := NewImageCanvas(40, 5)
	paint := Paint{
		Color:       ColorBlack,
		Style:       PaintStyleStroke,
		StrokeWidth: 3,
		Dash:        &DashPattern{Intervals: []float64{1e-7, 1e-7}},
	}

	c.DrawLine(Offset{X: 0, Y: 2.5}, Offset{X: 40, Y: 2.5}, paint)

	for x := 1; x < 39; x++ {
		if a := c.Image().RGBAAt(x, 2).A; a != 0xFF {
			t.Fatalf("x=%d alpha = %d, want a solid stroke", x, a)
		}
	}
}
