package sevenseg

// Brush represents what to fill segments with.
// This is a sealed interface - only types in this package implement it.
//
// The active ("on") and inactive ("off") segment sets of a Display are
// each filled with their own Brush, so a display can pair, say, a bright
// gradient for lit segments with a dim solid for unlit ones.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - LinearGradientBrush: a multi-stop linear gradient (see gradient.go)
//   - ImageBrush: an image stretched over the display (see imagebrush.go)
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// ColorAt returns the color at the given coordinates in the
	// display's logical space. Solid brushes ignore the position.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidRGB creates an opaque SolidBrush from RGB components (0-1 range).
func SolidRGB(r, g, b float64) SolidBrush {
	return SolidBrush{Color: RGB(r, g, b)}
}

// SolidHex creates a SolidBrush from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// WithAlpha returns a new SolidBrush with the specified alpha value.
// The RGB components are preserved.
func (b SolidBrush) WithAlpha(alpha float64) SolidBrush {
	return SolidBrush{
		Color: RGBA{
			R: b.Color.R,
			G: b.Color.G,
			B: b.Color.B,
			A: alpha,
		},
	}
}
