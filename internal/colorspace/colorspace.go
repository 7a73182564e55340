// Package colorspace provides sRGB transfer-function conversions used for
// perceptually correct gradient interpolation.
package colorspace

import "math"

// SRGBToLinear converts an sRGB component to linear light (EOTF).
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component to sRGB (OETF).
// Input and output are in range [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// LerpLinear interpolates between two sRGB components through linear
// space. Alpha components must not be passed through this; alpha is never
// gamma-encoded.
func LerpLinear(a, b, t float64) float64 {
	la := SRGBToLinear(a)
	lb := SRGBToLinear(b)
	return LinearToSRGB(la + t*(lb-la))
}
