// Package raster provides scanline polygon rasterization with
// supersampled antialiasing for the sevenseg software renderer.
package raster

import "math"

// subSamples is the number of sub-scanlines accumulated per pixel row.
const subSamples = 4

// RGBA represents a color (local copy to avoid an import cycle).
type RGBA struct {
	R, G, B, A float64
}

// Canvas is the pixel sink the rasterizer writes into.
type Canvas interface {
	Width() int
	Height() int
	BlendPixel(x, y int, c RGBA, coverage float64)
}

// Shader returns the fill color at a point. It is sampled once per
// covered pixel, at the pixel center.
type Shader func(x, y float64) RGBA

// Rasterizer fills polygon sets onto a Canvas. It keeps per-row scratch
// buffers, so a single Rasterizer should not be shared across
// goroutines.
type Rasterizer struct {
	width     int
	height    int
	cov       []float64
	crossings []crossing
}

// NewRasterizer creates a rasterizer for the given target dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:     width,
		height:    height,
		cov:       make([]float64, width),
		crossings: make([]crossing, 0, 32),
	}
}

// FillPolygons rasterizes a set of closed polygons as one shape under
// the non-zero winding rule, blending shader output onto the canvas
// weighted by coverage. Each polygon is a vertex list implicitly closed
// back to its first vertex.
func (r *Rasterizer) FillPolygons(dst Canvas, polys [][]Point, shader Shader) {
	edges := buildEdges(polys)
	if len(edges) == 0 {
		return
	}

	yMin, yMax := math.MaxFloat64, -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}
	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > r.height {
		y1 = r.height
	}

	for y := y0; y < y1; y++ {
		for i := range r.cov {
			r.cov[i] = 0
		}
		covered := false
		for s := 0; s < subSamples; s++ {
			scanY := float64(y) + (float64(s)+0.5)/subSamples
			if r.accumulate(edges, scanY) {
				covered = true
			}
		}
		if !covered {
			continue
		}
		for x := 0; x < r.width; x++ {
			c := r.cov[x]
			if c <= 0 {
				continue
			}
			if c > 1 {
				c = 1
			}
			dst.BlendPixel(x, y, shader(float64(x)+0.5, float64(y)+0.5), c)
		}
	}
}

// buildEdges collects the non-horizontal edges of every polygon.
func buildEdges(polys [][]Point) []edge {
	var edges []edge
	for _, pts := range polys {
		if len(pts) < 3 {
			continue
		}
		for i := range pts {
			p0 := pts[i]
			p1 := pts[(i+1)%len(pts)]
			if math.Abs(p1.Y-p0.Y) < 1e-9 {
				continue
			}
			edges = append(edges, newEdge(p0, p1))
		}
	}
	return edges
}

// accumulate adds one sub-scanline's span coverage into r.cov, returning
// whether anything was covered.
func (r *Rasterizer) accumulate(edges []edge, scanY float64) bool {
	r.crossings = r.crossings[:0]
	for i := range edges {
		e := &edges[i]
		if e.y0 <= scanY && scanY < e.y1 {
			r.crossings = append(r.crossings, crossing{x: e.xAt(scanY), dir: e.dir})
		}
	}
	if len(r.crossings) == 0 {
		return false
	}
	sortCrossings(r.crossings)

	covered := false
	winding := 0
	var spanStart float64
	for _, c := range r.crossings {
		if winding == 0 {
			spanStart = c.x
		}
		winding += c.dir
		if winding == 0 {
			if r.addSpan(spanStart, c.x) {
				covered = true
			}
		}
	}
	return covered
}

// addSpan accumulates coverage for one horizontal span, splitting the
// fractional end pixels.
func (r *Rasterizer) addSpan(x0, x1 float64) bool {
	const weight = 1.0 / subSamples
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float64(r.width) {
		x1 = float64(r.width)
	}
	if x1 <= x0 {
		return false
	}

	i0 := int(x0)
	i1 := int(x1)
	if i1 >= r.width {
		i1 = r.width - 1
	}
	if i0 == i1 {
		r.cov[i0] += (x1 - x0) * weight
		return true
	}

	r.cov[i0] += (float64(i0+1) - x0) * weight
	for i := i0 + 1; i < i1; i++ {
		r.cov[i] += weight
	}
	r.cov[i1] += (x1 - float64(i1)) * weight
	return true
}
