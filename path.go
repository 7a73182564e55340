package sevenseg

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a closed polygon outline. Segment geometry is purely
// polygonal, so the element set is limited to MoveTo, LineTo, and Close.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 8),
	}
}

// Polygon creates a closed path from a list of vertices.
// A trailing vertex equal to the first is dropped before closing.
func Polygon(pts ...Point) *Path {
	p := NewPath()
	if len(pts) == 0 {
		return p
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Vertices returns the polygon vertices in order, one entry per MoveTo or
// LineTo element. Close elements contribute nothing; the polygon is
// implicitly closed back to its first vertex.
func (p *Path) Vertices() []Point {
	pts := make([]Point, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// Transform returns a copy of the path with a transformation matrix
// applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Bounds returns the axis-aligned bounding box of the path.
// An empty path yields a zero rectangle.
func (p *Path) Bounds() Rect {
	pts := p.Vertices()
	if len(pts) == 0 {
		return Rect{}
	}
	b := Rect{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		b.Min.X = math.Min(b.Min.X, pt.X)
		b.Min.Y = math.Min(b.Min.Y, pt.Y)
		b.Max.X = math.Max(b.Max.X, pt.X)
		b.Max.Y = math.Max(b.Max.Y, pt.Y)
	}
	return b
}

// Contains reports whether a point lies strictly inside the polygon,
// using the non-zero winding rule. Points on edges are not guaranteed to
// be classified consistently.
func (p *Path) Contains(pt Point) bool {
	pts := p.Vertices()
	if len(pts) < 3 {
		return false
	}
	winding := 0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		if a.Y <= pt.Y {
			if b.Y > pt.Y && cross(a, b, pt) > 0 {
				winding++
			}
		} else {
			if b.Y <= pt.Y && cross(a, b, pt) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// cross returns the z component of (b-a) x (p-a).
func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Paths is an ordered collection of closed outlines treated as one
// composite shape.
type Paths []*Path

// Transform returns a copy of the collection with the matrix applied to
// every outline.
func (ps Paths) Transform(m Matrix) Paths {
	out := make(Paths, len(ps))
	for i, p := range ps {
		out[i] = p.Transform(m)
	}
	return out
}

// Bounds returns the bounding box of all outlines combined.
func (ps Paths) Bounds() Rect {
	if len(ps) == 0 {
		return Rect{}
	}
	b := ps[0].Bounds()
	for _, p := range ps[1:] {
		b = b.Union(p.Bounds())
	}
	return b
}

// Contains reports whether any outline in the collection contains the point.
func (ps Paths) Contains(pt Point) bool {
	for _, p := range ps {
		if p.Contains(pt) {
			return true
		}
	}
	return false
}
