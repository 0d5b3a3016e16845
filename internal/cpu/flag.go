package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// Flag is the bit index of a condition flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// flagMask covers the only meaningful bits of the F register.
// The lower nibble always reads back as zero.
const flagMask = 0xF0

// Flags is the F register. Only the upper nibble carries
// state; the value can only be changed through SetUint8 or
// Set, so the lower nibble never holds a set bit.
type Flags struct {
	v uint8
}

// Has returns true if the given flag is set.
func (f Flags) Has(flag Flag) bool {
	return bits.Test(f.v, flag)
}

// Set sets or clears the given flag, leaving the others untouched.
func (f *Flags) Set(flag Flag, v bool) {
	f.v = bits.Assign(f.v, flag, v) & flagMask
}

// Uint8 returns the raw value of the F register.
func (f Flags) Uint8() uint8 {
	return f.v
}

// SetUint8 writes v to the F register, discarding the lower nibble.
func (f *Flags) SetUint8(v uint8) {
	f.v = v & flagMask
}

// String returns the flags as "ZNHC", with a dash for each clear flag.
func (f Flags) String() string {
	out := []byte("----")
	for i, c := range []byte("ZNHC") {
		if f.Has(FlagZero - Flag(i)) {
			out[i] = c
		}
	}
	return string(out)
}
