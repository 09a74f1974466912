package core

import "testing"

func TestColorGRB(t *testing.T) {
	testCases := []struct {
		c    Color
		want uint32
	}{
		{Color{R: 255}, 0x00FF00},
		{Color{G: 255}, 0xFF0000},
		{Color{B: 255}, 0x0000FF},
		{Color{R: 0x12, G: 0x34, B: 0x56}, 0x341256},
		{ColorOff, 0},
	}
	for _, tc := range testCases {
		if got := tc.c.GRB(); got != tc.want {
			t.Errorf("%+v.GRB(): expected %06X, got %06X", tc.c, tc.want, got)
		}
	}
}

func TestColorScale(t *testing.T) {
	c := Color{R: 255, G: 100, B: 0}
	if got := c.Scale(255); got != c {
		t.Errorf("Full brightness changed color: %+v", got)
	}
	if got := c.Scale(0); got != ColorOff {
		t.Errorf("Zero brightness: expected off, got %+v", got)
	}
	if got := c.Scale(51); got.R != 51 || got.G != 20 {
		t.Errorf("Scale(51): got %+v", got)
	}
}

func TestRenderEmitsEveryCell(t *testing.T) {
	_, pixels := setupCore(t)
	m := NewMapper(ColorEven, ColorOdd)

	for v := uint8(0); v < CounterModulus; v++ {
		pixels.pixels = nil
		m.Render(v)
		if len(pixels.pixels) != CellCount {
			t.Fatalf("Digit %d: expected %d pixels, got %d", v, CellCount, len(pixels.pixels))
		}

		on := ColorEven.GRB()
		if v%2 == 1 {
			on = ColorOdd.GRB()
		}
		for i, px := range pixels.pixels {
			want := uint32(0)
			if DigitGlyphs[v][i] {
				want = on
			}
			if px != want {
				t.Errorf("Digit %d cell %d: expected %06X, got %06X", v, i, want, px)
			}
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	_, pixels := setupCore(t)
	m := NewMapper(ColorEven, ColorOdd)

	m.Render(7)
	m.Render(7)
	a, b := pixels.frame(0), pixels.frame(1)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Cell %d differs between identical renders: %06X vs %06X", i, a[i], b[i])
		}
	}
}

func TestMapperColors(t *testing.T) {
	m := NewMapper(ColorEven, ColorOdd)
	for v := uint8(0); v < CounterModulus; v++ {
		want := ColorEven
		if v%2 == 1 {
			want = ColorOdd
		}
		if got := m.ColorFor(v); got != want {
			t.Errorf("ColorFor(%d): expected %+v, got %+v", v, want, got)
		}
	}
}

func TestGlyphsDistinct(t *testing.T) {
	for a := 0; a < CounterModulus; a++ {
		for b := a + 1; b < CounterModulus; b++ {
			if DigitGlyphs[a] == DigitGlyphs[b] {
				t.Errorf("Digits %d and %d share a glyph", a, b)
			}
		}
	}
}

func TestCellPosition(t *testing.T) {
	testCases := []struct {
		index    int
		col, row int
	}{
		{0, 4, 4},  // chain starts bottom-right
		{4, 0, 4},  // runs left along the bottom row
		{5, 0, 3},  // turns up and runs right
		{9, 4, 3},
		{12, 2, 2}, // centre
		{20, 4, 0},
		{24, 0, 0}, // ends top-left
	}
	for _, tc := range testCases {
		col, row := CellPosition(tc.index)
		if col != tc.col || row != tc.row {
			t.Errorf("CellPosition(%d): expected (%d,%d), got (%d,%d)", tc.index, tc.col, tc.row, col, row)
		}
	}

	seen := make(map[[2]int]bool)
	for i := 0; i < CellCount; i++ {
		col, row := CellPosition(i)
		seen[[2]int{col, row}] = true
	}
	if len(seen) != CellCount {
		t.Errorf("CellPosition is not a bijection: %d distinct cells", len(seen))
	}
}
