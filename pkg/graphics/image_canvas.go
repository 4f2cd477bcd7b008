package graphics

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ImageCanvas is a software Canvas that rasterizes into an *image.RGBA.
//
// Coverage is computed with golang.org/x/image/vector, so edges are
// anti-aliased unless the paint asks otherwise. Only scale and translate
// transforms are supported.
type ImageCanvas struct {
	img    *image.RGBA
	xf     affine
	stack  []affine
	mask   *image.Alpha
	raster *vector.Rasterizer
}

// NewImageCanvas allocates a transparent canvas of the given pixel size.
func NewImageCanvas(width, height int) *ImageCanvas {
	return NewImageCanvasFor(image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))))
}

// NewImageCanvasFor draws into an existing image.
func NewImageCanvasFor(img *image.RGBA) *ImageCanvas {
	return &ImageCanvas{img: img, xf: identity}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Save pushes the current transform.
func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.xf)
}

// Restore pops the most recent transform. Unbalanced calls are ignored.
func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.xf = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by the given offset.
func (c *ImageCanvas) Translate(dx, dy float64) {
	c.xf.tx += dx * c.xf.sx
	c.xf.ty += dy * c.xf.sy
}

// Scale scales the coordinate system by the given factors.
func (c *ImageCanvas) Scale(sx, sy float64) {
	c.xf.sx *= sx
	c.xf.sy *= sy
}

// Clear replaces every pixel with color.
func (c *ImageCanvas) Clear(color Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

// DrawRect draws a rectangle with the provided paint.
func (c *ImageCanvas) DrawRect(rect Rect, paint Paint) {
	p := NewPath()
	p.AddRect(rect)
	c.DrawPath(p, paint)
}

// DrawRRect draws a rounded rectangle with the provided paint.
func (c *ImageCanvas) DrawRRect(rrect RRect, paint Paint) {
	p := NewPath()
	p.AddRRect(rrect)
	c.DrawPath(p, paint)
}

// DrawOval draws an oval inscribed in rect with the provided paint.
func (c *ImageCanvas) DrawOval(rect Rect, paint Paint) {
	p := NewPath()
	p.AddOval(rect)
	c.DrawPath(p, paint)
}

// DrawLine strokes a line segment; the paint style is ignored.
func (c *ImageCanvas) DrawLine(start, end Offset, paint Paint) {
	p := NewPath()
	p.MoveTo(start.X, start.Y)
	p.LineTo(end.X, end.Y)
	paint.Style = PaintStyleStroke
	c.DrawPath(p, paint)
}

// DrawPath fills or strokes path with paint.
func (c *ImageCanvas) DrawPath(path *Path, paint Paint) {
	b := c.img.Bounds()
	if b.Empty() || path == nil || path.IsEmpty() {
		return
	}
	polys := flattenPath(path, c.xf)
	if len(polys) == 0 {
		return
	}

	w, h := b.Dx(), b.Dy()
	if c.raster == nil {
		c.raster = vector.NewRasterizer(w, h)
	} else {
		c.raster.Reset(w, h)
	}
	if c.mask == nil || c.mask.Bounds() != b {
		c.mask = image.NewAlpha(b)
	} else {
		clear(c.mask.Pix)
	}

	switch paint.Style {
	case PaintStyleStroke:
		c.stroke(polys, paint)
	default:
		for _, pl := range polys {
			fillPolyline(c.raster, pl)
		}
	}

	c.raster.Draw(c.mask, b, image.Opaque, b.Min)
	if !paint.AntiAlias {
		for i, v := range c.mask.Pix {
			if v >= 0x80 {
				c.mask.Pix[i] = 0xFF
			} else {
				c.mask.Pix[i] = 0
			}
		}
	}
	draw.DrawMask(c.img, b, image.NewUniform(paint.Color.NRGBA()), image.Point{}, c.mask, b.Min, draw.Over)
}

func (c *ImageCanvas) stroke(polys []polyline, paint Paint) {
	scale := c.xf.scale()
	width := paint.StrokeWidth * scale
	if !(width > 0) {
		width = 1
	}
	halfWidth := width / 2

	if paint.Dash.Valid() {
		intervals := make([]float64, len(paint.Dash.Intervals))
		for i, v := range paint.Dash.Intervals {
			intervals[i] = v * scale
		}
		phase := paint.Dash.Phase * scale
		var dashed []polyline
		for _, pl := range polys {
			dashed = append(dashed, dashPolyline(pl, intervals, phase)...)
		}
		polys = dashed
	}
	for _, pl := range polys {
		strokePolyline(c.raster, pl, halfWidth, paint.StrokeCap)
	}
}

// Size returns the size of the canvas in pixels.
func (c *ImageCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}
