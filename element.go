package sevenseg

// Element is the capability shared by a single digit cell and a composed
// group of cells: a value shown as segment geometry. Digit is the leaf
// implementation and DigitGroup the composite; hosts that only mask and
// fill paths can treat the two uniformly.
type Element interface {
	// AllSegments returns every segment outline, lit or not.
	AllSegments() Paths
	// ActiveSegments returns the outlines of lit segments.
	ActiveSegments() Paths
	// InactiveSegments returns the outlines of unlit segments.
	InactiveSegments() Paths

	// DrawingSize returns the logical size the outlines occupy.
	DrawingSize() Size
	// IdealAspect returns DrawingSize width over height.
	IdealAspect() float64

	// Value returns the displayed value; SetValue clamps silently.
	Value() int
	SetValue(v int)

	// Radix returns the numeral base; SetRadix ignores unsupported bases.
	Radix() int
	SetRadix(r int)

	// NumberOfDigits returns how many cells the element spans.
	NumberOfDigits() int
	// MaxValue returns the largest value the element can display.
	MaxValue() int
}

var (
	_ Element = (*Digit)(nil)
	_ Element = (*DigitGroup)(nil)
)
