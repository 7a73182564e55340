package sevenseg

// Display is the top-level model a host embeds: a DigitGroup plus the
// presentation state the geometry core itself does not own (skew, fills,
// background). It memoizes the computed path sets and recomputes them
// lazily after any mutation.
//
// Every setter follows the core's never-fail policy: invalid input is
// clamped or ignored, never reported.
type Display struct {
	group *DigitGroup
	skew  float64

	onBrush    Brush
	offBrush   Brush
	background RGBA

	cache struct {
		valid    bool
		active   Paths
		inactive Paths
		all      Paths
	}
}

// NewDisplay creates a blank display with the given number of digit
// cells, hexadecimal radix, and the traditional red LED fills.
func NewDisplay(numberOfDigits int) *Display {
	return &Display{
		group:      NewDigitGroup(DigitBlank, numberOfDigits),
		onBrush:    Solid(LEDRed),
		offBrush:   Solid(LEDDim),
		background: Black,
	}
}

func (d *Display) invalidate() {
	d.cache.valid = false
}

func (d *Display) refresh() {
	if d.cache.valid {
		return
	}
	m := d.skewMatrix()
	d.cache.active = d.group.ActiveSegments().Transform(m)
	d.cache.inactive = d.group.InactiveSegments().Transform(m)
	d.cache.all = d.group.AllSegments().Transform(m)
	d.cache.valid = true
}

// skewMatrix shears about the bottom edge so the digits lean while the
// baseline stays put.
func (d *Display) skewMatrix() Matrix {
	if d.skew == 0 {
		return Identity()
	}
	return SkewAbout(d.skew, CellHeight)
}

// Value returns the displayed value reconstructed from the digit states.
func (d *Display) Value() int {
	return d.group.Value()
}

// SetValue displays v, clamped into [-2, MaxValue()].
func (d *Display) SetValue(v int) {
	d.group.SetValue(v)
	d.invalidate()
}

// Radix returns the numeral base.
func (d *Display) Radix() int {
	return d.group.Radix()
}

// SetRadix sets the numeral base; unsupported bases are ignored.
func (d *Display) SetRadix(r int) {
	d.group.SetRadix(r)
	d.invalidate()
}

// NumberOfDigits returns the digit cell count.
func (d *Display) NumberOfDigits() int {
	return d.group.NumberOfDigits()
}

// SetNumberOfDigits rebuilds the digit row with a new cell count,
// preserving the current value, radix, gap, and leading-zero policy
// where the new width can represent them.
func (d *Display) SetNumberOfDigits(n int) {
	if n == d.group.NumberOfDigits() {
		return
	}
	old := d.group
	g := NewDigitGroup(DigitBlank, n)
	g.SetRadix(old.Radix())
	g.SetGap(old.Gap())
	g.SetHasLeadingZeroes(old.HasLeadingZeroes())
	g.SetValue(old.Value())
	d.group = g
	d.invalidate()
	Logger().Debug("rebuilt digit group",
		"digits", n, "radix", g.Radix(), "value", g.Value())
}

// HasLeadingZeroes returns the leading-zero policy.
func (d *Display) HasLeadingZeroes() bool {
	return d.group.HasLeadingZeroes()
}

// SetHasLeadingZeroes sets whether unused high-order cells display zero.
func (d *Display) SetHasLeadingZeroes(on bool) {
	d.group.SetHasLeadingZeroes(on)
	d.invalidate()
}

// Gap returns the logical spacing between digit cells.
func (d *Display) Gap() float64 {
	return d.group.Gap()
}

// SetGap sets the spacing between digit cells.
func (d *Display) SetGap(gap float64) {
	d.group.SetGap(gap)
	d.invalidate()
}

// MaxValue returns the largest value the display can show.
func (d *Display) MaxValue() int {
	return d.group.MaxValue()
}

// Skew returns the current shear factor.
func (d *Display) Skew() float64 {
	return d.skew
}

// SetSkew sets the shear factor applied to the exposed geometry.
// 0 is upright; positive values lean the digits to the right.
func (d *Display) SetSkew(skew float64) {
	d.skew = skew
	d.invalidate()
}

// OnBrush returns the fill for lit segments.
func (d *Display) OnBrush() Brush {
	return d.onBrush
}

// SetOnBrush sets the fill for lit segments; nil is ignored.
func (d *Display) SetOnBrush(b Brush) {
	if b == nil {
		return
	}
	d.onBrush = b
}

// OffBrush returns the fill for unlit segments.
func (d *Display) OffBrush() Brush {
	return d.offBrush
}

// SetOffBrush sets the fill for unlit segments; nil is ignored.
func (d *Display) SetOffBrush(b Brush) {
	if b == nil {
		return
	}
	d.offBrush = b
}

// Background returns the backdrop color behind the segments.
func (d *Display) Background() RGBA {
	return d.background
}

// SetBackground sets the backdrop color.
func (d *Display) SetBackground(c RGBA) {
	d.background = c
}

// ActiveSegments returns the lit outlines with skew applied.
func (d *Display) ActiveSegments() Paths {
	d.refresh()
	return d.cache.active
}

// InactiveSegments returns the unlit outlines with skew applied.
func (d *Display) InactiveSegments() Paths {
	d.refresh()
	return d.cache.inactive
}

// AllSegments returns every outline with skew applied.
func (d *Display) AllSegments() Paths {
	d.refresh()
	return d.cache.all
}

// DrawingSize returns the unskewed logical size of the digit row.
func (d *Display) DrawingSize() Size {
	return d.group.DrawingSize()
}

// Bounds returns the bounding box of the skewed geometry. This is what a
// renderer should fit to the target surface; for zero skew it matches
// DrawingSize.
func (d *Display) Bounds() Rect {
	d.refresh()
	return d.cache.all.Bounds()
}

// IdealAspect returns the unskewed width-to-height ratio for host layout.
func (d *Display) IdealAspect() float64 {
	return d.group.IdealAspect()
}
