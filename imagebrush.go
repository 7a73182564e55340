package sevenseg

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ImageBrush fills segments by sampling a source image stretched over a
// target rectangle in the display's logical space. The source is
// resampled once at construction with bilinear filtering; ColorAt then
// reads single pixels, keeping per-sample cost constant.
type ImageBrush struct {
	scaled *image.NRGBA
	rect   Rect
}

// NewImageBrush creates a brush that maps src onto the given logical
// rectangle. Points outside the rectangle sample transparent.
func NewImageBrush(src image.Image, rect Rect) *ImageBrush {
	w := int(rect.Width())
	h := int(rect.Height())
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return &ImageBrush{scaled: scaled, rect: rect}
}

// brushMarker implements the sealed Brush interface.
func (*ImageBrush) brushMarker() {}

// ColorAt implements Brush.
func (b *ImageBrush) ColorAt(x, y float64) RGBA {
	if !b.rect.Contains(Pt(x, y)) {
		return Transparent
	}
	px := int(x - b.rect.Min.X)
	py := int(y - b.rect.Min.Y)
	bounds := b.scaled.Bounds()
	if px >= bounds.Max.X {
		px = bounds.Max.X - 1
	}
	if py >= bounds.Max.Y {
		py = bounds.Max.Y - 1
	}
	c := b.scaled.NRGBAAt(px, py)
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
