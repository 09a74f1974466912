package core

// Color is an 8-bit-per-channel RGB color
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Default digit colors: even digits red, odd digits blue
var (
	ColorEven = Color{R: 255}
	ColorOdd  = Color{B: 255}
	ColorOff  = Color{}
)

// GRB packs the color in WS2812 wire order: green in bits 16-23, red in
// bits 8-15, blue in bits 0-7
func (c Color) GRB() uint32 {
	return uint32(c.G)<<16 | uint32(c.R)<<8 | uint32(c.B)
}

// Scale multiplies every channel by brightness/255
func (c Color) Scale(brightness uint8) Color {
	if brightness == 255 {
		return c
	}
	scale := func(v uint8) uint8 {
		return uint8(uint16(v) * uint16(brightness) / 255)
	}
	return Color{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// Mapper draws a counter value on the LED matrix
type Mapper struct {
	even Color
	odd  Color
}

// NewMapper creates a mapper with the colors for even and odd digits
func NewMapper(even, odd Color) *Mapper {
	return &Mapper{even: even, odd: odd}
}

// ColorFor returns the color a value is drawn in
func (m *Mapper) ColorFor(value uint8) Color {
	if value%2 == 0 {
		return m.even
	}
	return m.odd
}

// Render emits one full frame for value: exactly CellCount pixels in wire
// order. Unlit cells are sent as an explicit zero so every LED is rewritten
// each frame.
func (m *Mapper) Render(value uint8) {
	pixels := MustPixels()
	glyph := &DigitGlyphs[value%CounterModulus]
	on := m.ColorFor(value).GRB()
	off := ColorOff.GRB()

	for i := 0; i < CellCount; i++ {
		if glyph[i] {
			pixels.EmitPixel(on)
		} else {
			pixels.EmitPixel(off)
		}
	}
}
