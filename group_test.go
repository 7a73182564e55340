package sevenseg

import (
	"math"
	"testing"
)

func digitValues(g *DigitGroup) []int {
	vals := make([]int, 0, g.NumberOfDigits())
	for _, d := range g.Digits() {
		vals = append(vals, d.Value())
	}
	return vals
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDigitGroup_RoundTrip(t *testing.T) {
	const n = 3
	for _, radix := range []int{2, 8, 10, 16} {
		g := NewDigitGroup(0, n)
		g.SetRadix(radix)
		maxVal := 1
		for i := 0; i < n; i++ {
			maxVal *= radix
		}
		maxVal--
		for v := 0; v <= maxVal; v++ {
			g.SetValue(v)
			if got := g.Value(); got != v {
				t.Fatalf("radix %d: SetValue(%d) then Value() = %d", radix, v, got)
			}
		}
	}
}

func TestDigitGroup_ClampsBeforeDecomposition(t *testing.T) {
	tests := []struct {
		name   string
		radix  int
		digits int
		set    int
		want   int
	}{
		{"hex 2 digits clamps 300 to 255", 16, 2, 300, 255},
		{"binary 1 digit clamps 5 to 1", 2, 1, 5, 1},
		{"decimal 3 digits clamps 1234 to 999", 10, 3, 1234, 999},
		{"below blank clamps to blank", 10, 3, -9, -2},
		{"exactly max kept", 8, 2, 63, 63},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewDigitGroup(0, tt.digits)
			g.SetRadix(tt.radix)
			g.SetValue(tt.set)
			if got := g.Value(); got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDigitGroup_LeadingZeroes(t *testing.T) {
	g := NewDigitGroup(0, 3)
	g.SetRadix(10)
	g.SetHasLeadingZeroes(true)
	g.SetValue(7)

	if got := g.Value(); got != 7 {
		t.Errorf("Value() = %d, want 7", got)
	}
	if got := digitValues(g); !equalInts(got, []int{0, 0, 7}) {
		t.Errorf("digit values = %v, want [0 0 7]", got)
	}

	g.SetHasLeadingZeroes(false)
	if got := digitValues(g); !equalInts(got, []int{-2, -2, 7}) {
		t.Errorf("digit values = %v, want [-2 -2 7]", got)
	}
	if got := g.Value(); got != 7 {
		t.Errorf("Value() with blank leaders = %d, want 7", got)
	}
}

func TestDigitGroup_MinusLine(t *testing.T) {
	g := NewDigitGroup(0, 4)
	g.SetValue(-1)

	if got := g.Value(); got != -1 {
		t.Errorf("Value() = %d, want -1", got)
	}
	for i, d := range g.Digits() {
		if d.Value() != -1 {
			t.Errorf("digit %d value = %d, want -1", i, d.Value())
		}
		active := d.ActiveSegments()
		if len(active) != 1 {
			t.Errorf("digit %d has %d active segments, want 1 (center)", i, len(active))
		}
	}
}

func TestDigitGroup_AllBlank(t *testing.T) {
	g := NewDigitGroup(-2, 4)
	if got := g.Value(); got != -2 {
		t.Errorf("Value() = %d, want -2", got)
	}
	if got := len(g.ActiveSegments()); got != 0 {
		t.Errorf("blank group has %d active outlines, want 0", got)
	}
	if got := len(g.InactiveSegments()); got != 28 {
		t.Errorf("blank group has %d inactive outlines, want 28", got)
	}
}

func TestDigitGroup_ValuePrecedence(t *testing.T) {
	// Mixed states assigned directly to the digits: minus beats blank,
	// numerals beat both, blanks and minuses are skipped in the sum.
	tests := []struct {
		name   string
		states []int
		radix  int
		want   int
	}{
		{"all blank", []int{-2, -2, -2}, 10, -2},
		{"minus among blanks", []int{-2, -1, -2}, 10, -1},
		{"numeral wins over minus", []int{-1, -2, 7}, 10, 7},
		{"blanks skipped in accumulation", []int{3, -2, 5}, 10, 35},
		{"minus skipped in accumulation", []int{3, -1, 5}, 10, 35},
		{"plain accumulation", []int{1, 2, 3}, 10, 123},
		{"hex accumulation", []int{10, 15, 0}, 16, 0xAF0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewDigitGroup(0, len(tt.states))
			g.SetRadix(tt.radix)
			for i, v := range tt.states {
				g.Digits()[i].SetValue(v)
			}
			if got := g.Value(); got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDigitGroup_MaxValue(t *testing.T) {
	tests := []struct {
		radix  int
		digits int
		want   int
	}{
		{16, 2, 255},
		{10, 3, 999},
		{2, 1, 1},
		{8, 4, 4095},
	}
	for _, tt := range tests {
		g := NewDigitGroup(0, tt.digits)
		g.SetRadix(tt.radix)
		if got := g.MaxValue(); got != tt.want {
			t.Errorf("radix %d digits %d: MaxValue = %d, want %d",
				tt.radix, tt.digits, got, tt.want)
		}
	}
}

func TestDigitGroup_MaxValueSaturates(t *testing.T) {
	g := NewDigitGroup(0, 64)
	if got := g.MaxValue(); got != math.MaxInt {
		t.Errorf("MaxValue for 64 hex digits = %d, want MaxInt", got)
	}
}

func TestDigitGroup_DrawingSizeAndAspect(t *testing.T) {
	tests := []struct {
		name   string
		digits int
		gap    float64
		wantW  float64
	}{
		{"single digit", 1, 10, 250},
		{"four digits default gap", 4, 10, 4*250 + 3*10},
		{"two digits wide gap", 2, 40, 2*250 + 40},
		{"zero gap", 3, 0, 750},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewDigitGroup(0, tt.digits)
			g.SetGap(tt.gap)
			size := g.DrawingSize()
			if size.Width != tt.wantW || size.Height != 492 {
				t.Errorf("DrawingSize = %+v, want %vx492", size, tt.wantW)
			}
			wantAspect := tt.wantW / 492
			if got := g.IdealAspect(); math.Abs(got-wantAspect) > 1e-12 {
				t.Errorf("IdealAspect = %v, want %v", got, wantAspect)
			}
		})
	}
}

func TestDigitGroup_CellTranslation(t *testing.T) {
	g := NewDigitGroup(0, 3)
	g.SetGap(10)
	g.SetHasLeadingZeroes(true)
	g.SetValue(0)

	all := g.AllSegments()
	if len(all) != 21 {
		t.Fatalf("composed outline count = %d, want 21", len(all))
	}
	// Outlines arrive cell by cell; each cell's 7 outlines must sit in
	// that cell's x band.
	for i := 0; i < 3; i++ {
		offset := float64(i) * 260
		cell := all[i*7 : (i+1)*7]
		b := cell.Bounds()
		want := RectXYWH(offset, 0, 250, 492)
		if b != want {
			t.Errorf("cell %d bounds = %+v, want %+v", i, b, want)
		}
	}
}

func TestDigitGroup_EmptyGroup(t *testing.T) {
	g := NewDigitGroup(5, 0)
	if got := g.NumberOfDigits(); got != 0 {
		t.Fatalf("NumberOfDigits = %d, want 0", got)
	}
	if got := g.Value(); got != -2 {
		t.Errorf("Value() = %d, want -2", got)
	}
	if size := g.DrawingSize(); size != (Size{}) {
		t.Errorf("DrawingSize = %+v, want zero", size)
	}
	if got := g.IdealAspect(); got != 0 {
		t.Errorf("IdealAspect = %v, want 0", got)
	}
	if got := len(g.AllSegments()); got != 0 {
		t.Errorf("AllSegments count = %d, want 0", got)
	}
}

func TestDigitGroup_SetRadixPropagates(t *testing.T) {
	g := NewDigitGroup(0, 3)
	g.SetRadix(10)
	for i, d := range g.Digits() {
		if d.Radix() != 10 {
			t.Errorf("digit %d radix = %d, want 10", i, d.Radix())
		}
	}

	g.SetRadix(7)
	if got := g.Radix(); got != 10 {
		t.Errorf("radix after SetRadix(7) = %d, want 10 (unchanged)", got)
	}
	for i, d := range g.Digits() {
		if d.Radix() != 10 {
			t.Errorf("digit %d radix after invalid set = %d, want 10", i, d.Radix())
		}
	}
}

func TestDigitGroup_NegativeGapTreatedAsZero(t *testing.T) {
	g := NewDigitGroup(0, 2)
	g.SetGap(-5)
	if got := g.Gap(); got != 0 {
		t.Errorf("Gap() = %v, want 0", got)
	}
	if got := g.DrawingSize().Width; got != 500 {
		t.Errorf("width = %v, want 500", got)
	}
}
