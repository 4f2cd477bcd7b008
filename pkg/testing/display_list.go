package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/dashed/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: paramMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Scale(sx, sy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "scale",
		Params: paramMap("sx", round2(sx), "sy", round2(sy)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: paramMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: withPaint(paramMap("rect", serializeRect(rect)), paint),
	})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: withPaint(paramMap(
			"rect", serializeRect(rrect.Rect),
			"radius", serializeRadius(rrect),
		), paint),
	})
}

func (c *serializingCanvas) DrawOval(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawOval",
		Params: withPaint(paramMap("rect", serializeRect(rect)), paint),
	})
}

func (c *serializingCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: withPaint(paramMap(
			"x1", round2(start.X), "y1", round2(start.Y),
			"x2", round2(end.X), "y2", round2(end.Y),
		), paint),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	n := 0
	if path != nil {
		n = len(path.Commands)
	}
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawPath",
		Params: withPaint(paramMap("commands", n), paint),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// CaptureOps replays a DisplayList through a serializing canvas.
func CaptureOps(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// RecordOps runs paint against a serializing canvas of the given size.
func RecordOps(size graphics.Size, paint func(canvas graphics.Canvas)) []DisplayOp {
	canvas := &serializingCanvas{size: size}
	paint(canvas)
	return canvas.ops
}

// FilterOps returns the ops whose name matches op.
func FilterOps(ops []DisplayOp, op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// --- Serialization helpers ---

func withPaint(params map[string]any, paint graphics.Paint) map[string]any {
	params["color"] = serializeColor(paint.Color)
	params["style"] = paint.Style.String()
	params["strokeWidth"] = round2(paint.StrokeWidth)
	if paint.Dash != nil {
		intervals := make([]float64, len(paint.Dash.Intervals))
		for i, v := range paint.Dash.Intervals {
			intervals[i] = round2(v)
		}
		params["dash"] = intervals
		params["phase"] = round2(paint.Dash.Phase)
	}
	return params
}

func serializeRect(r graphics.Rect) map[string]any {
	return paramMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return paramMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return paramMap(
		"topLeft", paramMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", paramMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", paramMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", paramMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// paramMap creates a map from alternating key-value pairs.
func paramMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
