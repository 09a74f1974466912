//go:build rp2040

package main

import (
	"machine"

	"digitmatrix/config"
	"digitmatrix/core"
)

// matrixBackend is a pixel driver that needs hardware setup first
type matrixBackend interface {
	core.PixelDriver
	Init() error
}

// selectMatrixBackend returns the matrix driver named by the config.
// The PIO backend is the default; "bitbang" keeps both PIO blocks free.
func selectMatrixBackend(cfg *config.Config) matrixBackend {
	pin := machine.Pin(cfg.MatrixPin)
	switch cfg.MatrixBackend {
	case config.BackendBitbang:
		return NewBitbangMatrix(pin)
	default:
		return NewPIOMatrix(pin)
	}
}
