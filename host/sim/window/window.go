//go:build !tinygo

// Package window shows a sim.Machine in a desktop window.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"digitmatrix/core"
	"digitmatrix/host/sim"
)

const (
	cellPitch   = 20
	ledRadius   = 7
	margin      = 10
	labelHeight = 14

	matrixPx = core.MatrixWidth * cellPitch
	width    = matrixPx + 2*margin
	height   = matrixPx + 2*margin + labelHeight
)

var (
	background = color.RGBA{0x10, 0x10, 0x14, 0xFF}
	ledOff     = color.RGBA{0x28, 0x28, 0x2C, 0xFF}
	statusOn   = color.RGBA{0x30, 0xE0, 0x30, 0xFF}
	labelInk   = color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}
)

// Keys the window maps onto the board buttons
var buttonKeys = []struct {
	key ebiten.Key
	ch  core.InputChannel
}{
	{ebiten.KeyA, core.IncrementButton},
	{ebiten.KeyB, core.DecrementButton},
	{ebiten.KeyJ, core.ResetButton},
}

// Run opens the window and blocks until it closes, Escape is pressed or
// the machine's reset button fires.
func Run(m *sim.Machine, scale int) error {
	if scale < 1 {
		scale = 1
	}
	g := &game{
		m:     m,
		label: sim.NewLabel(width, labelHeight),
	}
	ebiten.SetWindowTitle("digitmatrix")
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetTPS(100)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	m        *sim.Machine
	label    *sim.Label
	labelImg *ebiten.Image
	text     string
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, b := range buttonKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			if err := g.m.Press(b.ch); err != nil {
				return err
			}
		}
	}
	if g.m.ResetRequested() {
		return ebiten.Termination
	}
	g.m.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	frame, _ := g.m.Pixels.Snapshot()
	for row, cells := range frame.Grid() {
		for col, c := range cells {
			clr := color.RGBA{c.R, c.G, c.B, 0xFF}
			if c == core.ColorOff {
				clr = ledOff
			}
			cx := float32(margin + col*cellPitch + cellPitch/2)
			cy := float32(margin + row*cellPitch + cellPitch/2)
			vector.DrawFilledCircle(screen, cx, cy, ledRadius, clr, true)
		}
	}

	status := ledOff
	if g.m.StatusLED() {
		status = statusOn
	}
	vector.DrawFilledCircle(screen, float32(width-margin/2), float32(margin/2), 3, status, true)

	g.drawLabel(screen)
}

func (g *game) drawLabel(screen *ebiten.Image) {
	text := fmt.Sprintf("value %d", g.m.Value())
	if g.labelImg == nil {
		g.labelImg = ebiten.NewImage(width, labelHeight)
	}
	if text != g.text {
		g.label.SetText(text, labelInk)
		g.labelImg.WritePixels(g.label.Pix())
		g.text = text
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(width-sim.TextWidth(text))/2, float64(height-labelHeight))
	screen.DrawImage(g.labelImg, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return width, height
}
