package sevenseg

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // NRGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// Non-positive dimensions yield an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel, or Transparent out of
// bounds.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// BlendPixel composites c over the existing pixel with the given
// coverage in [0, 1].
func (p *Pixmap) BlendPixel(x, y int, c RGBA, coverage float64) {
	if coverage <= 0 {
		return
	}
	if coverage >= 1 && c.A >= 1 {
		p.SetPixel(x, y, c)
		return
	}
	existing := p.GetPixel(x, y)
	srcA := c.A * coverage
	invA := 1 - srcA
	p.SetPixel(x, y, RGBA{
		R: c.R*srcA + existing.R*invA,
		G: c.G*srcA + existing.G*invA,
		B: c.B*srcA + existing.B*invA,
		A: srcA + existing.A*invA,
	})
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Image returns the pixel buffer as an *image.NRGBA sharing the
// underlying storage.
func (p *Pixmap) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	defer f.Close()

	if err := p.EncodePNG(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
