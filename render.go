package sevenseg

import (
	"math"

	"github.com/gogpu/sevenseg/internal/raster"
)

// Renderer draws a Display into a Pixmap with the CPU rasterizer. It is
// the reference presentation layer; hosts with their own compositor can
// ignore it and consume the Display's path sets directly.
type Renderer struct {
	width  int
	height int

	// Margin is the fraction of the target left empty on each side,
	// in [0, 0.5). Defaults to 0.04.
	Margin float64

	rast *raster.Rasterizer
}

// NewRenderer creates a renderer targeting the given pixel dimensions.
func NewRenderer(width, height int) *Renderer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Renderer{
		width:  width,
		height: height,
		Margin: 0.04,
		rast:   raster.NewRasterizer(width, height),
	}
}

// Render draws the display into a fresh pixmap: background first, then
// the unlit segments with the off brush, then the lit segments with the
// on brush. The skewed geometry is uniformly scaled and centered to fit.
func (r *Renderer) Render(d *Display) *Pixmap {
	pm := NewPixmap(r.width, r.height)
	r.RenderInto(d, pm)
	return pm
}

// RenderInto draws the display into an existing pixmap. The pixmap must
// match the renderer's dimensions; a mismatched pixmap is cleared to the
// background only.
func (r *Renderer) RenderInto(d *Display, pm *Pixmap) {
	pm.Clear(d.Background())
	if pm.Width() != r.width || pm.Height() != r.height {
		Logger().Debug("pixmap size mismatch, skipping segment render",
			"pixmap_w", pm.Width(), "pixmap_h", pm.Height(),
			"renderer_w", r.width, "renderer_h", r.height)
		return
	}

	bounds := d.Bounds()
	if bounds.Size().IsEmpty() {
		return
	}
	m := r.fitMatrix(bounds)
	inv := m.Invert()

	r.fill(pm, d.InactiveSegments().Transform(m), d.OffBrush(), inv)
	r.fill(pm, d.ActiveSegments().Transform(m), d.OnBrush(), inv)
}

// fitMatrix maps the display's logical bounds onto the target surface
// with uniform scale, centered, honoring the margin.
func (r *Renderer) fitMatrix(bounds Rect) Matrix {
	margin := r.Margin
	if margin < 0 || margin >= 0.5 {
		margin = 0
	}
	availW := float64(r.width) * (1 - 2*margin)
	availH := float64(r.height) * (1 - 2*margin)

	scale := math.Min(availW/bounds.Width(), availH/bounds.Height())
	tx := (float64(r.width) - bounds.Width()*scale) / 2
	ty := (float64(r.height) - bounds.Height()*scale) / 2

	return Translate(tx, ty).
		Multiply(Scale(scale, scale)).
		Multiply(Translate(-bounds.Min.X, -bounds.Min.Y))
}

// fill rasterizes device-space outlines, sampling the brush in the
// display's logical space so brush coordinates stay resolution-independent.
func (r *Renderer) fill(pm *Pixmap, device Paths, brush Brush, inv Matrix) {
	if len(device) == 0 {
		return
	}
	polys := make([][]raster.Point, 0, len(device))
	for _, p := range device {
		verts := p.Vertices()
		poly := make([]raster.Point, len(verts))
		for i, v := range verts {
			poly[i] = raster.Point{X: v.X, Y: v.Y}
		}
		polys = append(polys, poly)
	}
	shader := func(x, y float64) raster.RGBA {
		lp := inv.TransformPoint(Pt(x, y))
		c := brush.ColorAt(lp.X, lp.Y)
		return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	r.rast.FillPolygons(canvas{pm}, polys, shader)
}

// canvas adapts Pixmap to the rasterizer's Canvas interface.
type canvas struct {
	pm *Pixmap
}

func (c canvas) Width() int  { return c.pm.Width() }
func (c canvas) Height() int { return c.pm.Height() }

func (c canvas) BlendPixel(x, y int, col raster.RGBA, coverage float64) {
	c.pm.BlendPixel(x, y, RGBA{R: col.R, G: col.G, B: col.B, A: col.A}, coverage)
}
