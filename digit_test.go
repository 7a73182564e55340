package sevenseg

import "testing"

func TestDigit_SetValueClamps(t *testing.T) {
	tests := []struct {
		name  string
		radix int
		set   int
		want  int
	}{
		{"in range", 16, 11, 11},
		{"blank", 16, -2, -2},
		{"minus", 16, -1, -1},
		{"below blank", 16, -7, -2},
		{"above max hex", 16, 16, 15},
		{"above max decimal", 10, 12, 9},
		{"above max binary", 2, 5, 1},
		{"octal max", 8, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDigit(tt.radix)
			d.SetValue(tt.set)
			if got := d.Value(); got != tt.want {
				t.Errorf("SetValue(%d) with radix %d: value = %d, want %d",
					tt.set, tt.radix, got, tt.want)
			}
		})
	}
}

func TestDigit_SetRadixValidation(t *testing.T) {
	d := NewDigit(16)
	for _, invalid := range []int{0, 1, 3, 7, 9, 11, 15, 17, -16} {
		d.SetRadix(invalid)
		if got := d.Radix(); got != 16 {
			t.Errorf("SetRadix(%d): radix = %d, want 16 (unchanged)", invalid, got)
		}
	}
	for _, valid := range []int{2, 8, 10, 16} {
		d.SetRadix(valid)
		if got := d.Radix(); got != valid {
			t.Errorf("SetRadix(%d): radix = %d", valid, got)
		}
	}
}

func TestDigit_NarrowingRadixReclampsValue(t *testing.T) {
	d := NewDigit(16)
	d.SetValue(15)
	d.SetRadix(10)
	if got := d.Value(); got != 9 {
		t.Errorf("value after narrowing to radix 10 = %d, want 9", got)
	}
}

func TestDigit_SegmentPartition(t *testing.T) {
	d := NewDigit(16)
	for v := -2; v <= 15; v++ {
		d.SetValue(v)
		active := d.ActiveSegments()
		inactive := d.InactiveSegments()
		all := d.AllSegments()

		if len(all) != 7 {
			t.Fatalf("value %d: AllSegments has %d outlines, want 7", v, len(all))
		}
		if len(active)+len(inactive) != 7 {
			t.Errorf("value %d: active(%d) + inactive(%d) != 7",
				v, len(active), len(inactive))
		}
		// Each role has a unique bounding box, so bounds identify outlines.
		seen := map[Rect]bool{}
		for _, p := range active {
			seen[p.Bounds()] = true
		}
		for _, p := range inactive {
			b := p.Bounds()
			if seen[b] {
				t.Errorf("value %d: outline in both active and inactive sets", v)
			}
			seen[b] = true
		}
		for _, p := range all {
			if !seen[p.Bounds()] {
				t.Errorf("value %d: outline missing from active+inactive union", v)
			}
		}
	}
}

func TestDigit_AccessorsReturnCopies(t *testing.T) {
	d := NewDigit(16)
	d.SetValue(8)

	want := make([]Rect, 0, 7)
	for _, p := range d.AllSegments() {
		want = append(want, p.Bounds())
	}

	// Scribbling on the returned paths must not reach the digit's stored
	// outlines.
	for _, p := range d.ActiveSegments() {
		p.LineTo(-9999, -9999)
	}
	for _, p := range d.AllSegments() {
		p.MoveTo(-9999, -9999)
	}

	for i, p := range d.AllSegments() {
		if got := p.Bounds(); got != want[i] {
			t.Errorf("outline %d bounds changed to %+v after caller mutation, want %+v",
				i, got, want[i])
		}
	}
}

func TestDigit_ActiveSegmentCounts(t *testing.T) {
	counts := map[int]int{
		-2: 0, -1: 1,
		0: 6, 1: 2, 2: 5, 3: 5, 4: 4, 5: 5, 6: 6, 7: 3, 8: 7, 9: 6,
		10: 6, 11: 5, 12: 4, 13: 5, 14: 5, 15: 4,
	}
	d := NewDigit(16)
	for v := -2; v <= 15; v++ {
		d.SetValue(v)
		if got := len(d.ActiveSegments()); got != counts[v] {
			t.Errorf("value %d: %d active segments, want %d", v, got, counts[v])
		}
	}
}

func TestDigit_BlankAndMinus(t *testing.T) {
	d := NewDigit(16)

	d.SetValue(DigitBlank)
	if got := len(d.ActiveSegments()); got != 0 {
		t.Errorf("blank digit has %d active segments, want 0", got)
	}
	if got := len(d.InactiveSegments()); got != 7 {
		t.Errorf("blank digit has %d inactive segments, want 7", got)
	}

	d.SetValue(DigitMinus)
	active := d.ActiveSegments()
	if len(active) != 1 {
		t.Fatalf("minus digit has %d active segments, want 1", len(active))
	}
	if got, want := active[0].Bounds(), SegmentPath(SegmentCenter).Bounds(); got != want {
		t.Errorf("minus digit active segment bounds = %+v, want center %+v", got, want)
	}
}

func TestDigit_DrawingSize(t *testing.T) {
	d := NewDigit(16)
	if got := d.DrawingSize(); got != (Size{Width: 250, Height: 492}) {
		t.Errorf("DrawingSize = %+v, want 250x492", got)
	}
	want := 250.0 / 492.0
	if got := d.IdealAspect(); got != want {
		t.Errorf("IdealAspect = %v, want %v", got, want)
	}
	// Geometry is independent of value.
	d.SetValue(8)
	if got := d.DrawingSize(); got != (Size{Width: 250, Height: 492}) {
		t.Errorf("DrawingSize after SetValue = %+v, want 250x492", got)
	}
}

func TestDigit_NewDigitInvalidRadixDefaults(t *testing.T) {
	d := NewDigit(7)
	if got := d.Radix(); got != 16 {
		t.Errorf("NewDigit(7) radix = %d, want 16", got)
	}
	if got := d.Value(); got != DigitBlank {
		t.Errorf("new digit value = %d, want blank", got)
	}
}
