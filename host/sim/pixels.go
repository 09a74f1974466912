package sim

import (
	"sync"

	"digitmatrix/core"
)

// Frame is one latched matrix image in wire order
type Frame [core.CellCount]uint32

// FrameBuffer is a core.PixelDriver that latches a frame every
// core.CellCount pixels, as the LED chain does after its reset gap.
type FrameBuffer struct {
	mu      sync.Mutex
	pending Frame
	n       int
	latched Frame
	frames  uint32
}

// NewFrameBuffer creates an all-dark buffer
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

func (f *FrameBuffer) EmitPixel(grb uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending[f.n] = grb
	f.n++
	if f.n == core.CellCount {
		f.latched = f.pending
		f.n = 0
		f.frames++
	}
}

// Snapshot returns the last complete frame and the number of frames latched
func (f *FrameBuffer) Snapshot() (Frame, uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latched, f.frames
}

// Grid maps a wire-order frame onto screen rows (row 0 at the top)
func (fr Frame) Grid() [core.MatrixHeight][core.MatrixWidth]core.Color {
	var g [core.MatrixHeight][core.MatrixWidth]core.Color
	for i, grb := range fr {
		col, row := core.CellPosition(i)
		g[row][col] = colorFromGRB(grb)
	}
	return g
}

func colorFromGRB(grb uint32) core.Color {
	return core.Color{
		G: uint8(grb >> 16),
		R: uint8(grb >> 8),
		B: uint8(grb),
	}
}
