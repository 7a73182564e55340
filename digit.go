package sevenseg

// Digit value sentinels. Values below DigitBlank clamp to DigitBlank;
// values at or above the radix clamp to radix-1.
const (
	// DigitBlank displays no segments.
	DigitBlank = -2
	// DigitMinus displays only the center segment.
	DigitMinus = -1
)

// roleSet is a bitmask over SegmentRole.
type roleSet uint8

func (s roleSet) has(r SegmentRole) bool {
	return s&(1<<uint(r)) != 0
}

func roles(rs ...SegmentRole) roleSet {
	var s roleSet
	for _, r := range rs {
		s |= 1 << uint(r)
	}
	return s
}

// activeRoles maps value+2 to the set of lit segments: blank, minus,
// then the sixteen hex numerals. Radix never exceeds 16, so 18 entries
// cover every reachable digit state.
var activeRoles = [18]roleSet{
	roles(), // blank
	roles(SegmentCenter),
	roles(SegmentTop, SegmentTopLeft, SegmentTopRight, SegmentBottomLeft, SegmentBottomRight, SegmentBottom), // 0
	roles(SegmentTopRight, SegmentBottomRight),                                                               // 1
	roles(SegmentTop, SegmentTopRight, SegmentCenter, SegmentBottomLeft, SegmentBottom),                      // 2
	roles(SegmentTop, SegmentTopRight, SegmentCenter, SegmentBottomRight, SegmentBottom),                     // 3
	roles(SegmentTopLeft, SegmentTopRight, SegmentCenter, SegmentBottomRight),                                // 4
	roles(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomRight, SegmentBottom),                      // 5
	roles(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomLeft, SegmentBottomRight, SegmentBottom),   // 6
	roles(SegmentTop, SegmentTopRight, SegmentBottomRight),                                                   // 7
	roles(SegmentTop, SegmentTopLeft, SegmentTopRight, SegmentCenter, SegmentBottomLeft, SegmentBottomRight, SegmentBottom), // 8
	roles(SegmentTop, SegmentTopLeft, SegmentTopRight, SegmentCenter, SegmentBottomRight, SegmentBottom),                    // 9
	roles(SegmentTop, SegmentTopLeft, SegmentTopRight, SegmentCenter, SegmentBottomLeft, SegmentBottomRight),                // A
	roles(SegmentTopLeft, SegmentCenter, SegmentBottomLeft, SegmentBottomRight, SegmentBottom),                              // b
	roles(SegmentTop, SegmentTopLeft, SegmentBottomLeft, SegmentBottom),                                                     // C
	roles(SegmentTopRight, SegmentCenter, SegmentBottomLeft, SegmentBottomRight, SegmentBottom),                             // d
	roles(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomLeft, SegmentBottom),                                      // E
	roles(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomLeft),                                                     // F
}

// validRadix reports whether r is a supported numeral base.
func validRadix(r int) bool {
	return r == 2 || r == 8 || r == 10 || r == 16
}

// Digit is a single seven-segment display cell. Its outlines are computed
// once at construction and never change; only value and radix mutate.
//
// A Digit is not safe for concurrent mutation; the owning display is
// expected to drive it from a single goroutine.
type Digit struct {
	segments [numSegmentRoles]*Path
	value    int
	radix    int
}

// NewDigit creates a blank digit for the given radix. An unsupported
// radix falls back to 16.
func NewDigit(radix int) *Digit {
	if !validRadix(radix) {
		radix = 16
	}
	d := &Digit{value: DigitBlank, radix: radix}
	for r := SegmentRole(0); r < numSegmentRoles; r++ {
		d.segments[r] = SegmentPath(r)
	}
	return d
}

// Value returns the current digit value.
func (d *Digit) Value() int {
	return d.value
}

// SetValue sets the digit value, clamping into [-2, radix-1].
// It never fails; out-of-range input is silently clamped.
func (d *Digit) SetValue(v int) {
	if v < DigitBlank {
		v = DigitBlank
	}
	if v > d.radix-1 {
		v = d.radix - 1
	}
	d.value = v
}

// Radix returns the current numeral base.
func (d *Digit) Radix() int {
	return d.radix
}

// SetRadix sets the numeral base. Only 2, 8, 10, and 16 are accepted;
// anything else leaves the radix unchanged. A narrowing radix re-clamps
// the current value.
func (d *Digit) SetRadix(r int) {
	if !validRadix(r) {
		return
	}
	d.radix = r
	d.SetValue(d.value)
}

// NumberOfDigits returns 1; a Digit is a single cell.
func (d *Digit) NumberOfDigits() int {
	return 1
}

// MaxValue returns the largest numeral this cell can show, radix-1.
func (d *Digit) MaxValue() int {
	return d.radix - 1
}

// active returns the role set lit for the current value.
func (d *Digit) active() roleSet {
	return activeRoles[d.value+2]
}

// ActiveSegments returns the outlines of the currently lit segments.
// The paths are copies; mutating them cannot corrupt the digit.
func (d *Digit) ActiveSegments() Paths {
	return d.collect(true)
}

// InactiveSegments returns the outlines of the currently unlit segments.
// The paths are copies; mutating them cannot corrupt the digit.
func (d *Digit) InactiveSegments() Paths {
	return d.collect(false)
}

// AllSegments returns all seven outlines regardless of value. The paths
// are copies; mutating them cannot corrupt the digit.
func (d *Digit) AllSegments() Paths {
	ps := make(Paths, numSegmentRoles)
	for r := SegmentRole(0); r < numSegmentRoles; r++ {
		ps[r] = d.segments[r].Clone()
	}
	return ps
}

func (d *Digit) collect(lit bool) Paths {
	set := d.active()
	ps := make(Paths, 0, numSegmentRoles)
	for r := SegmentRole(0); r < numSegmentRoles; r++ {
		if set.has(r) == lit {
			ps = append(ps, d.segments[r].Clone())
		}
	}
	return ps
}

// DrawingSize returns the fixed logical size of the digit cell.
func (d *Digit) DrawingSize() Size {
	return Size{Width: CellWidth, Height: CellHeight}
}

// IdealAspect returns the width-to-height ratio of the cell.
func (d *Digit) IdealAspect() float64 {
	return d.DrawingSize().Aspect()
}
