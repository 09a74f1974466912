package core

// Matrix geometry
const (
	MatrixWidth  = 5
	MatrixHeight = 5
	CellCount    = MatrixWidth * MatrixHeight
)

// Glyph is a per-cell on/off mask in the order pixels are shifted out to the
// matrix. The chain starts at the bottom-right LED and snakes upward, so rows
// alternate direction; the tables below are already in wire order.
type Glyph [CellCount]bool

const (
	o = false
	x = true
)

// DigitGlyphs holds the bitmap for each digit 0-9
var DigitGlyphs = [CounterModulus]Glyph{
	0: {
		o, x, x, x, x,
		x, o, o, x, o,
		o, x, o, o, x,
		x, o, o, x, o,
		o, x, x, x, x,
	},
	1: {
		o, o, x, o, o,
		o, o, x, o, o,
		o, o, x, o, x,
		o, x, x, o, o,
		o, o, x, o, o,
	},
	2: {
		o, x, x, x, x,
		x, o, o, o, o,
		o, x, x, x, x,
		o, o, o, x, o,
		o, x, x, x, x,
	},
	3: {
		o, x, x, x, x,
		o, o, o, x, o,
		o, x, x, x, x,
		o, o, o, x, o,
		o, x, x, x, x,
	},
	4: {
		o, x, o, o, o,
		o, o, o, x, o,
		o, x, x, x, x,
		x, o, o, x, o,
		o, x, o, o, x,
	},
	5: {
		o, x, x, x, x,
		o, o, o, x, o,
		o, x, x, x, x,
		x, o, o, o, o,
		o, x, x, x, x,
	},
	6: {
		o, x, x, x, x,
		x, o, o, x, o,
		o, x, x, x, x,
		x, o, o, o, o,
		o, x, x, x, x,
	},
	7: {
		o, x, o, o, o,
		o, o, o, x, o,
		o, x, o, o, x,
		x, o, o, x, o,
		o, x, x, x, x,
	},
	8: {
		o, x, x, x, x,
		x, o, o, x, o,
		o, x, x, x, x,
		x, o, o, x, o,
		o, x, x, x, x,
	},
	9: {
		o, x, o, o, o,
		o, o, o, x, o,
		o, x, x, x, x,
		x, o, o, x, o,
		o, x, x, x, x,
	},
}

// CellPosition maps a wire-order cell index to screen coordinates with (0,0)
// at the top-left. Even rows counted from the bottom run right to left.
func CellPosition(i int) (col, row int) {
	chainRow := i / MatrixWidth
	col = i % MatrixWidth
	if chainRow%2 == 0 {
		col = MatrixWidth - 1 - col
	}
	return col, MatrixHeight - 1 - chainRow
}
