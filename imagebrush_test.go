package sevenseg

import (
	"image"
	"image/color"
	"testing"
)

// quadImage builds a 2x2 image with a distinct solid color per quadrant.
func quadImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})           // red
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})           // green
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})           // blue
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, A: 255})   // yellow
	return img
}

func TestImageBrush_QuadrantSampling(t *testing.T) {
	b := NewImageBrush(quadImage(), RectXYWH(0, 0, 100, 100))

	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{"top left", 10, 10, RGBA{R: 1, A: 1}},
		{"top right", 90, 10, RGBA{G: 1, A: 1}},
		{"bottom left", 10, 90, RGBA{B: 1, A: 1}},
		{"bottom right", 90, 90, RGBA{R: 1, G: 1, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ColorAt(tt.x, tt.y); !approxRGBA(got, tt.want, 1e-9) {
				t.Errorf("ColorAt(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestImageBrush_OutsideRect(t *testing.T) {
	b := NewImageBrush(quadImage(), RectXYWH(10, 10, 50, 50))

	for _, p := range []Point{Pt(0, 0), Pt(9.9, 30), Pt(30, 60), Pt(100, 100)} {
		if got := b.ColorAt(p.X, p.Y); got != Transparent {
			t.Errorf("ColorAt(%v, %v) = %+v, want transparent", p.X, p.Y, got)
		}
	}
	// Just inside the rect samples the image.
	if got := b.ColorAt(11, 11); got == Transparent {
		t.Error("ColorAt inside rect returned transparent")
	}
}

func TestImageBrush_OffsetRect(t *testing.T) {
	b := NewImageBrush(quadImage(), RectXYWH(100, 200, 40, 40))

	if got := b.ColorAt(105, 205); !approxRGBA(got, RGBA{R: 1, A: 1}, 1e-9) {
		t.Errorf("ColorAt near rect min = %+v, want red", got)
	}
	if got := b.ColorAt(135, 235); !approxRGBA(got, RGBA{R: 1, G: 1, A: 1}, 1e-9) {
		t.Errorf("ColorAt near rect max = %+v, want yellow", got)
	}
}

func TestImageBrush_DegenerateRect(t *testing.T) {
	b := NewImageBrush(quadImage(), RectXYWH(0, 0, 0, 0))
	if got := b.ColorAt(0, 0); got != Transparent {
		t.Errorf("empty rect: ColorAt = %+v, want transparent", got)
	}
}
