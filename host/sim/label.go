package sim

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var labelFont = &proggy.TinySZ8pt7b

// Label is a small RGBA surface that tinyfont can draw on
type Label struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*Label)(nil)

// NewLabel creates a transparent label of the given size
func NewLabel(width, height int) *Label {
	return &Label{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (l *Label) Size() (x, y int16) {
	b := l.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (l *Label) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{int(x), int(y)}.In(l.img.Bounds())) {
		return
	}
	l.img.SetRGBA(int(x), int(y), c)
}

func (l *Label) Display() error {
	return nil
}

// SetText clears the label and writes s on its baseline
func (l *Label) SetText(s string, c color.RGBA) {
	clear(l.img.Pix)
	_, h := l.Size()
	tinyfont.WriteLine(l, labelFont, 2, h-4, s, c)
}

// Pix returns the RGBA bytes for upload
func (l *Label) Pix() []byte {
	return l.img.Pix
}

// TextWidth returns the width of s in pixels
func TextWidth(s string) int {
	w, _ := tinyfont.LineWidth(labelFont, s)
	return int(w)
}
