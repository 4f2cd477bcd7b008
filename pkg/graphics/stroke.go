package graphics

import "math"

// joinThreshold is the cosine above which two consecutive stroke segments
// are treated as collinear and no join geometry is emitted.
const joinThreshold = 0.9995

// minDashPeriod is the shortest device-space pattern period that is
// dashed. Shorter patterns are stroked solid.
const minDashPeriod = 1.0

// polyline is a flattened subpath in device coordinates.
type polyline struct {
	points []Offset
	closed bool
}

// affine is a scale+translate transform. The canvas does not support
// rotation, so this is enough to map local coordinates to pixels.
type affine struct {
	sx, sy float64
	tx, ty float64
}

var identity = affine{sx: 1, sy: 1}

func (a affine) apply(x, y float64) Offset {
	return Offset{X: x*a.sx + a.tx, Y: y*a.sy + a.ty}
}

// scale returns the mean absolute scale factor, used for stroke widths
// and dash lengths.
func (a affine) scale() float64 {
	return (math.Abs(a.sx) + math.Abs(a.sy)) / 2
}

// flattenPath converts path commands into device space polylines.
func flattenPath(p *Path, xf affine) []polyline {
	if p == nil {
		return nil
	}
	var (
		out   []polyline
		cur   []Offset
		start Offset
	)
	flush := func(closed bool) {
		if len(cur) >= 2 {
			out = append(out, polyline{points: cur, closed: closed})
		}
		cur = nil
	}
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			flush(false)
			start = xf.apply(cmd.Args[0], cmd.Args[1])
			cur = []Offset{start}
		case PathOpLineTo:
			pt := xf.apply(cmd.Args[0], cmd.Args[1])
			if len(cur) == 0 {
				cur = []Offset{start}
			}
			cur = appendDistinct(cur, pt)
		case PathOpCubicTo:
			if len(cur) == 0 {
				cur = []Offset{start}
			}
			p0 := cur[len(cur)-1]
			p1 := xf.apply(cmd.Args[0], cmd.Args[1])
			p2 := xf.apply(cmd.Args[2], cmd.Args[3])
			p3 := xf.apply(cmd.Args[4], cmd.Args[5])
			cur = flattenCubic(cur, p0, p1, p2, p3)
		case PathOpClose:
			if len(cur) > 1 && dist(cur[len(cur)-1], start) < epsilon {
				cur = cur[:len(cur)-1]
			}
			flush(true)
			cur = []Offset{start}
		}
	}
	flush(false)
	return out
}

func flattenCubic(dst []Offset, p0, p1, p2, p3 Offset) []Offset {
	hull := dist(p0, p1) + dist(p1, p2) + dist(p2, p3)
	steps := int(math.Ceil(hull / 3))
	steps = max(4, min(steps, 96))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		dst = appendDistinct(dst, Offset{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return dst
}

func appendDistinct(pts []Offset, p Offset) []Offset {
	if len(pts) > 0 && dist(pts[len(pts)-1], p) < epsilon {
		return pts
	}
	return append(pts, p)
}

func dist(a, b Offset) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func lerp(a, b Offset, t float64) Offset {
	return Offset{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// dashPolyline splits pl into the "on" runs of the pattern. The pattern
// starts phase units in, so a growing phase moves dashes toward the start
// of the path. A pattern with a period below minDashPeriod returns pl
// unchanged.
func dashPolyline(pl polyline, intervals []float64, phase float64) []polyline {
	var period float64
	for _, v := range intervals {
		period += v
	}
	if !(period >= minDashPeriod) || math.IsInf(period, 0) {
		return []polyline{pl}
	}
	offset := math.Mod(phase, period)
	if offset < 0 {
		offset += period
	}
	if offset >= period {
		offset = 0
	}

	idx := 0
	for offset >= intervals[idx] {
		offset -= intervals[idx]
		idx = (idx + 1) % len(intervals)
	}
	remaining := intervals[idx] - offset
	on := idx%2 == 0

	pts := pl.points
	if pl.closed {
		pts = append(append([]Offset(nil), pts...), pts[0])
	}

	var (
		out []polyline
		cur []Offset
	)
	if on {
		cur = []Offset{pts[0]}
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := dist(a, b)
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			p := lerp(a, b, pos/segLen)
			if on {
				cur = append(cur, p)
				out = append(out, polyline{points: cur})
				cur = nil
			} else {
				cur = []Offset{p}
			}
			on = !on
			idx = (idx + 1) % len(intervals)
			remaining = intervals[idx]
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) >= 2 {
		out = append(out, polyline{points: cur})
	}
	return out
}

// pathSink receives polygon outlines. It is satisfied by
// *vector.Rasterizer.
type pathSink interface {
	MoveTo(ax, ay float32)
	LineTo(bx, by float32)
	ClosePath()
}

// strokePolyline emits stroke coverage for pl with the given half width.
// Every emitted polygon has the same winding so overlaps accumulate
// instead of cancelling.
func strokePolyline(sink pathSink, pl polyline, halfWidth float64, cap StrokeCap) {
	pts := pl.points
	n := len(pts)
	if n < 2 {
		return
	}
	segs := n - 1
	if pl.closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		emitQuad(sink, a, b, halfWidth)
	}

	// Round joins where the direction changes noticeably.
	for i := 0; i < n; i++ {
		if !pl.closed && (i == 0 || i == n-1) {
			continue
		}
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		if turnCosine(prev, pts[i], next) < joinThreshold {
			emitDisc(sink, pts[i], halfWidth)
		}
	}

	if !pl.closed && cap == CapRound {
		emitDisc(sink, pts[0], halfWidth)
		emitDisc(sink, pts[n-1], halfWidth)
	}
}

func emitQuad(sink pathSink, a, b Offset, hw float64) {
	l := dist(a, b)
	if l < epsilon {
		return
	}
	nx := -(b.Y - a.Y) / l * hw
	ny := (b.X - a.X) / l * hw
	sink.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	sink.LineTo(float32(b.X+nx), float32(b.Y+ny))
	sink.LineTo(float32(b.X-nx), float32(b.Y-ny))
	sink.LineTo(float32(a.X-nx), float32(a.Y-ny))
	sink.ClosePath()
}

// emitDisc approximates a circle, wound the same way as emitQuad.
func emitDisc(sink pathSink, c Offset, r float64) {
	const segments = 12
	for i := 0; i <= segments; i++ {
		theta := -2 * math.Pi * float64(i) / segments
		x := float32(c.X + r*math.Cos(theta))
		y := float32(c.Y + r*math.Sin(theta))
		if i == 0 {
			sink.MoveTo(x, y)
		} else {
			sink.LineTo(x, y)
		}
	}
	sink.ClosePath()
}

func turnCosine(prev, at, next Offset) float64 {
	ax, ay := at.X-prev.X, at.Y-prev.Y
	bx, by := next.X-at.X, next.Y-at.Y
	la, lb := math.Hypot(ax, ay), math.Hypot(bx, by)
	if la < epsilon || lb < epsilon {
		return 1
	}
	return (ax*bx + ay*by) / (la * lb)
}

// fillPolyline emits a closed polygon for filling.
func fillPolyline(sink pathSink, pl polyline) {
	for i, p := range pl.points {
		if i == 0 {
			sink.MoveTo(float32(p.X), float32(p.Y))
		} else {
			sink.LineTo(float32(p.X), float32(p.Y))
		}
	}
	sink.ClosePath()
}
