package sevenseg

import "math"

// Defaults applied by NewDigitGroup.
const (
	// DefaultRadix is hexadecimal, the widest supported digit range.
	DefaultRadix = 16
	// DefaultGap is the logical spacing between digit cells.
	DefaultGap = 10.0
)

// DigitGroup composes an ordered row of Digits (most significant first)
// into one addressable shape. It converts between an integer value and
// per-digit numerals under the active radix and leading-zero policy, and
// lays the cells out horizontally with a configurable gap.
//
// The group exclusively owns its digits; callers mutate the display only
// through the group. Like Digit, it assumes a single mutating goroutine.
type DigitGroup struct {
	digits        []*Digit
	radix         int
	gap           float64
	leadingZeroes bool
}

// NewDigitGroup creates a group of numberOfDigits cells showing value in
// radix 16 with the default gap and no leading zeroes. A non-positive
// digit count yields an empty group that displays nothing.
func NewDigitGroup(value, numberOfDigits int) *DigitGroup {
	g := &DigitGroup{
		radix: DefaultRadix,
		gap:   DefaultGap,
	}
	if numberOfDigits > 0 {
		g.digits = make([]*Digit, numberOfDigits)
		for i := range g.digits {
			g.digits[i] = NewDigit(g.radix)
		}
	}
	g.SetValue(value)
	return g
}

// NumberOfDigits returns how many cells the group holds.
func (g *DigitGroup) NumberOfDigits() int {
	return len(g.digits)
}

// Digits returns the owned cells, most significant first. The slice is
// shared; callers must not mutate it.
func (g *DigitGroup) Digits() []*Digit {
	return g.digits
}

// Radix returns the numeral base shared by every digit.
func (g *DigitGroup) Radix() int {
	return g.radix
}

// SetRadix sets the numeral base, propagating it to every owned digit.
// Unsupported bases are silently ignored. Digits holding numerals above
// the new base clamp individually; the composed value is not
// re-decomposed.
func (g *DigitGroup) SetRadix(r int) {
	if !validRadix(r) {
		return
	}
	g.radix = r
	for _, d := range g.digits {
		d.SetRadix(r)
	}
}

// Gap returns the spacing between digit cells in logical units.
func (g *DigitGroup) Gap() float64 {
	return g.gap
}

// SetGap sets the spacing between digit cells. Negative gaps are treated
// as zero.
func (g *DigitGroup) SetGap(gap float64) {
	if gap < 0 {
		gap = 0
	}
	g.gap = gap
}

// HasLeadingZeroes returns whether unused high-order cells display zero
// instead of staying blank.
func (g *DigitGroup) HasLeadingZeroes() bool {
	return g.leadingZeroes
}

// SetHasLeadingZeroes sets the leading-zero policy and re-applies the
// current value so the high-order cells pick up the new baseline.
func (g *DigitGroup) SetHasLeadingZeroes(on bool) {
	if g.leadingZeroes == on {
		return
	}
	g.leadingZeroes = on
	g.SetValue(g.Value())
}

// MaxValue returns radix^numberOfDigits - 1, saturating at the largest
// representable int.
func (g *DigitGroup) MaxValue() int {
	mv := 1
	for range g.digits {
		if mv > math.MaxInt/g.radix {
			return math.MaxInt
		}
		mv *= g.radix
	}
	return mv - 1
}

// SetValue displays v across the digits. v is clamped into
// [-2, MaxValue()]. Negative values broadcast to every cell, so -1 shows
// a full line of minus signs and -2 blanks the display. Non-negative
// values are decomposed into base-radix numerals assigned to the
// rightmost cells; higher-order cells show the leading-zero baseline.
func (g *DigitGroup) SetValue(v int) {
	if v < DigitBlank {
		v = DigitBlank
	}
	if mv := g.MaxValue(); v > mv {
		v = mv
	}

	if v < 0 {
		for _, d := range g.digits {
			d.SetValue(v)
		}
		return
	}

	baseline := DigitBlank
	if g.leadingZeroes {
		baseline = 0
	}
	for _, d := range g.digits {
		d.SetValue(baseline)
	}

	for i := len(g.digits) - 1; i >= 0; i-- {
		g.digits[i].SetValue(v % g.radix)
		v /= g.radix
		if v == 0 {
			break
		}
	}
}

// Value reconstructs the displayed value from the digit states. Blank and
// minus cells are skipped while accumulating; if no cell holds a numeral
// the getter falls back to -1 when any cell shows a minus and -2 when the
// display is entirely blank.
func (g *DigitGroup) Value() int {
	sum := 0
	sawNumeral := false
	sawMinus := false
	for _, d := range g.digits {
		switch v := d.Value(); v {
		case DigitBlank:
		case DigitMinus:
			sawMinus = true
		default:
			sum = sum*g.radix + v
			sawNumeral = true
		}
	}
	if sawNumeral {
		return sum
	}
	if sawMinus {
		return DigitMinus
	}
	return DigitBlank
}

// cellOffset returns the x translation of the i-th digit cell.
func (g *DigitGroup) cellOffset(i int) float64 {
	return float64(i) * (CellWidth + g.gap)
}

// AllSegments returns every cell's outlines translated into the group's
// coordinate space.
func (g *DigitGroup) AllSegments() Paths {
	return g.compose(func(d *Digit) Paths { return d.AllSegments() })
}

// ActiveSegments returns the lit outlines of every cell, translated into
// the group's coordinate space.
func (g *DigitGroup) ActiveSegments() Paths {
	return g.compose(func(d *Digit) Paths { return d.ActiveSegments() })
}

// InactiveSegments returns the unlit outlines of every cell, translated
// into the group's coordinate space.
func (g *DigitGroup) InactiveSegments() Paths {
	return g.compose(func(d *Digit) Paths { return d.InactiveSegments() })
}

func (g *DigitGroup) compose(sel func(*Digit) Paths) Paths {
	var out Paths
	for i, d := range g.digits {
		m := Translate(g.cellOffset(i), 0)
		for _, p := range sel(d) {
			out = append(out, p.Transform(m))
		}
	}
	return out
}

// DrawingSize returns the composed logical size: all cell widths plus the
// gaps between them, by the cell height. An empty group is zero-sized.
func (g *DigitGroup) DrawingSize() Size {
	n := len(g.digits)
	if n == 0 {
		return Size{}
	}
	return Size{
		Width:  float64(n)*CellWidth + float64(n-1)*g.gap,
		Height: CellHeight,
	}
}

// IdealAspect returns the width-to-height ratio a host should reserve to
// show the group without distortion.
func (g *DigitGroup) IdealAspect() float64 {
	return g.DrawingSize().Aspect()
}
