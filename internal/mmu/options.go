package mmu

import "github.com/thelolagemann/gomeboy-core/pkg/log"

// Opt is a function that modifies an MMU
// instance.
type Opt func(m *MMU)

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// WithImage loads the given image into the ROM window
// when the MMU is created.
func WithImage(data []byte) Opt {
	return func(m *MMU) {
		m.LoadImage(data)
	}
}
