// Package sevenseg models and renders classic seven-segment "LED" digit
// displays as vector geometry.
//
// # Overview
//
// sevenseg is a pure Go display-widget core. It converts an integer value
// plus a numeric radix and digit count into discrete per-segment on/off
// states, generates closed polygon outlines for each of the seven segments
// of every digit cell, and composes the cells into one addressable shape.
// A small software renderer turns the resulting path sets into pixels with
// solid, gradient, or image fills; host toolkits can instead consume the
// raw geometry and draw it themselves.
//
// # Quick Start
//
//	import "github.com/gogpu/sevenseg"
//
//	d := sevenseg.NewDisplay(4)
//	d.SetRadix(16)
//	d.SetValue(0xBEEF)
//
//	r := sevenseg.NewRenderer(512, 256)
//	pm := r.Render(d)
//	pm.SavePNG("beef.png")
//
// # Geometry Model
//
// Each digit cell occupies a fixed 250x492 logical space. The six outer
// segments share one canonical chevron outline, rotated by a multiple of
// 90 degrees and translated per segment role; the center segment uses a
// distinct hexagonal diamond. A DigitGroup lays cells out left to right
// with a configurable gap and reports the composite drawing size and
// ideal aspect ratio so hosts can size the widget without distortion.
//
// # Value Semantics
//
// Digit values live in [-2, radix-1]: -2 is blank, -1 is a minus sign,
// 0..radix-1 are numerals. Supported radixes are 2, 8, 10, and 16. The
// core never fails a render: out-of-range values are clamped and invalid
// radixes are ignored, keeping every operation total.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package sevenseg

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
