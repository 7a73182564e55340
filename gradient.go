package sevenseg

import (
	"math"
	"sort"

	"github.com/gogpu/sevenseg/internal/colorspace"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradientBrush represents a linear color transition between two
// points. It supports multiple color stops, interpolation in linear sRGB,
// and configurable extend modes.
//
// Example:
//
//	grad := sevenseg.NewLinearGradientBrush(0, 0, 0, 492).
//	    AddColorStop(0, sevenseg.Hex("#FF6A00")).
//	    AddColorStop(1, sevenseg.Hex("#C80000"))
//	display.SetOnBrush(grad)
type LinearGradientBrush struct {
	Start  Point       // Start point of the gradient
	End    Point       // End point of the gradient
	Stops  []ColorStop // Color stops defining the gradient
	Extend ExtendMode  // How gradient extends beyond bounds

	// sorted mirrors Stops ordered by offset. ColorAt is called once per
	// covered pixel, so the sort must not happen per sample.
	sorted []ColorStop
}

// NewLinearGradientBrush creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start:  Pt(x0, y0),
		End:    Pt(x1, y1),
		Extend: ExtendPad,
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	g.sorted = sortStops(g.Stops)
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) SetExtend(mode ExtendMode) *LinearGradientBrush {
	g.Extend = mode
	return g
}

// brushMarker implements the sealed Brush interface.
func (*LinearGradientBrush) brushMarker() {}

// ColorAt implements Brush. The point is projected onto the gradient axis
// and the projection parameter is resolved through the color stops.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	// Stops set directly on the struct rather than through AddColorStop
	// get sorted on first sample.
	if len(g.sorted) != len(g.Stops) {
		g.sorted = sortStops(g.Stops)
	}
	d := g.End.Sub(g.Start)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return colorAtOffset(g.sorted, 0, g.Extend)
	}
	v := Pt(x, y).Sub(g.Start)
	t := (v.X*d.X + v.Y*d.Y) / lenSq
	return colorAtOffset(g.sorted, t, g.Extend)
}

// sortStops returns the stops sorted by offset without modifying the input.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// interpolateColorLinear blends two colors in linear sRGB space.
// Alpha stays linear and is never gamma-corrected.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: colorspace.LerpLinear(c1.R, c2.R, t),
		G: colorspace.LerpLinear(c1.G, c2.G, t),
		B: colorspace.LerpLinear(c1.B, c2.B, t),
		A: c1.A + t*(c2.A-c1.A),
	}
}

// colorAtOffset returns the interpolated color at a given offset. The
// stops must already be ordered by offset. Handles edge cases: empty
// stops, single stop, out-of-bounds t.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = applyExtendMode(t, mode)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	stop1 := stops[idx-1]
	stop2 := stops[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}
