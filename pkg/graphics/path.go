package graphics

import "fmt"

// kappa is the control point distance for approximating a quarter circle
// with a cubic bezier.
const kappa = 0.5522847498307936

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, CubicTo, and Close, or the AddOval and
// AddRRect helpers. Closed shapes added by the helpers run clockwise on
// screen (y grows downward).
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// AddOval appends a closed oval inscribed in rect, starting at the top
// center.
func (p *Path) AddOval(rect Rect) {
	c := rect.Center()
	rx, ry := rect.Width()/2, rect.Height()/2
	kx, ky := rx*kappa, ry*kappa

	p.MoveTo(c.X, rect.Top)
	p.CubicTo(c.X+kx, rect.Top, rect.Right, c.Y-ky, rect.Right, c.Y)
	p.CubicTo(rect.Right, c.Y+ky, c.X+kx, rect.Bottom, c.X, rect.Bottom)
	p.CubicTo(c.X-kx, rect.Bottom, rect.Left, c.Y+ky, rect.Left, c.Y)
	p.CubicTo(rect.Left, c.Y-ky, c.X-kx, rect.Top, c.X, rect.Top)
	p.Close()
}

// AddRRect appends a closed rounded rectangle, starting where the top
// edge leaves the top-left corner.
func (p *Path) AddRRect(rrect RRect) {
	r := rrect.Rect
	tl, tr, br, bl := rrect.TopLeft, rrect.TopRight, rrect.BottomRight, rrect.BottomLeft

	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	if tr.X > 0 || tr.Y > 0 {
		p.CubicTo(r.Right-tr.X+tr.X*kappa, r.Top, r.Right, r.Top+tr.Y-tr.Y*kappa, r.Right, r.Top+tr.Y)
	}
	p.LineTo(r.Right, r.Bottom-br.Y)
	if br.X > 0 || br.Y > 0 {
		p.CubicTo(r.Right, r.Bottom-br.Y+br.Y*kappa, r.Right-br.X+br.X*kappa, r.Bottom, r.Right-br.X, r.Bottom)
	}
	p.LineTo(r.Left+bl.X, r.Bottom)
	if bl.X > 0 || bl.Y > 0 {
		p.CubicTo(r.Left+bl.X-bl.X*kappa, r.Bottom, r.Left, r.Bottom-bl.Y+bl.Y*kappa, r.Left, r.Bottom-bl.Y)
	}
	p.LineTo(r.Left, r.Top+tl.Y)
	if tl.X > 0 || tl.Y > 0 {
		p.CubicTo(r.Left, r.Top+tl.Y-tl.Y*kappa, r.Left+tl.X-tl.X*kappa, r.Top, r.Left+tl.X, r.Top)
	}
	p.Close()
}

// AddRect appends a closed rectangle running clockwise from the top-left.
func (p *Path) AddRect(rect Rect) {
	p.MoveTo(rect.Left, rect.Top)
	p.LineTo(rect.Right, rect.Top)
	p.LineTo(rect.Right, rect.Bottom)
	p.LineTo(rect.Left, rect.Bottom)
	p.Close()
}
