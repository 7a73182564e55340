package raster

// Point represents a 2D point (local copy to avoid an import cycle with
// the root package).
type Point struct {
	X, Y float64
}

// edge is a non-horizontal line segment prepared for scanline sweeps,
// stored with y0 < y1 and the original direction kept for the non-zero
// winding rule.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    int // +1 or -1
}

// newEdge creates an edge from two points. Horizontal segments must be
// filtered out by the caller.
func newEdge(p0, p1 Point) edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	dy := p1.Y - p0.Y
	var dxdy float64
	if dy != 0 {
		dxdy = (p1.X - p0.X) / dy
	}

	return edge{
		x0:   p0.X,
		y0:   p0.Y,
		x1:   p1.X,
		y1:   p1.Y,
		dxdy: dxdy,
		dir:  dir,
	}
}

// xAt returns the x coordinate where the edge crosses the given y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// crossing is an edge intersection with one sub-scanline.
type crossing struct {
	x   float64
	dir int
}

// sortCrossings orders crossings by x. Insertion sort; crossing counts
// per scanline are tiny.
func sortCrossings(cs []crossing) {
	for i := 1; i < len(cs); i++ {
		key := cs[i]
		j := i - 1
		for j >= 0 && cs[j].x > key.x {
			cs[j+1] = cs[j]
			j--
		}
		cs[j+1] = key
	}
}
