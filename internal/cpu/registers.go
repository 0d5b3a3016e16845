// Package cpu provides the programmer-visible state of the Game Boy
// CPU: the eight 8-bit registers, the stack pointer and the program
// counter. Instruction execution is left to the owner of a Registers
// instance, which mutates it between steps.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

// Register represents a GB Register which is used to hold an 8-bit value.
type Register = uint8

// Pair names one of the four 16-bit views over two 8-bit registers.
// The first register of the pair is the high byte.
type Pair uint8

const (
	AF Pair = iota
	BC
	DE
	HL
)

var pairNames = [...]string{
	AF: "AF",
	BC: "BC",
	DE: "DE",
	HL: "HL",
}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Registers represents the GB CPU registers. The zero value is the
// power-on state, with every register cleared.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	// F is the flags register. It can only be written
	// through SetF, SetAF or its own methods.
	F Flags
	H Register
	L Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
}

// NewRegisters returns a new set of registers with all fields zeroed.
func NewRegisters() *Registers {
	return &Registers{}
}

// Reset clears every register.
func (r *Registers) Reset() {
	*r = Registers{}
}

// Pair returns the 16-bit value of the given register pair.
func (r *Registers) Pair(p Pair) uint16 {
	switch p {
	case AF:
		return utils.BytesToUint16(r.A, r.F.Uint8())
	case BC:
		return utils.BytesToUint16(r.B, r.C)
	case DE:
		return utils.BytesToUint16(r.D, r.E)
	case HL:
		return utils.BytesToUint16(r.H, r.L)
	}
	panic(fmt.Sprintf("cpu: invalid register pair: %d", uint8(p)))
}

// SetPair writes value across the two registers of the given pair.
// For AF the lower nibble of F is always cleared.
func (r *Registers) SetPair(p Pair, value uint16) {
	hi, lo := utils.Uint16ToBytes(value)
	switch p {
	case AF:
		r.A = hi
		r.F.SetUint8(lo)
	case BC:
		r.B, r.C = hi, lo
	case DE:
		r.D, r.E = hi, lo
	case HL:
		r.H, r.L = hi, lo
	default:
		panic(fmt.Sprintf("cpu: invalid register pair: %d", uint8(p)))
	}
}

// AF returns the value of the AF register pair.
func (r *Registers) AF() uint16 { return r.Pair(AF) }

// BC returns the value of the BC register pair.
func (r *Registers) BC() uint16 { return r.Pair(BC) }

// DE returns the value of the DE register pair.
func (r *Registers) DE() uint16 { return r.Pair(DE) }

// HL returns the value of the HL register pair.
func (r *Registers) HL() uint16 { return r.Pair(HL) }

// SetAF sets the AF register pair, clearing the lower nibble of F.
func (r *Registers) SetAF(value uint16) { r.SetPair(AF, value) }

// SetBC sets the BC register pair.
func (r *Registers) SetBC(value uint16) { r.SetPair(BC, value) }

// SetDE sets the DE register pair.
func (r *Registers) SetDE(value uint16) { r.SetPair(DE, value) }

// SetHL sets the HL register pair.
func (r *Registers) SetHL(value uint16) { r.SetPair(HL, value) }

// SetF writes the flags register directly. Like the AF path,
// the lower nibble is discarded.
func (r *Registers) SetF(value uint8) {
	r.F.SetUint8(value)
}

// FlagZ returns true if the zero flag is set.
func (r *Registers) FlagZ() bool { return r.F.Has(FlagZero) }

// FlagN returns true if the subtract flag is set.
func (r *Registers) FlagN() bool { return r.F.Has(FlagSubtract) }

// FlagH returns true if the half carry flag is set.
func (r *Registers) FlagH() bool { return r.F.Has(FlagHalfCarry) }

// FlagC returns true if the carry flag is set.
func (r *Registers) FlagC() bool { return r.F.Has(FlagCarry) }

// SetFlagZ sets or clears the zero flag.
func (r *Registers) SetFlagZ(v bool) { r.F.Set(FlagZero, v) }

// SetFlagN sets or clears the subtract flag.
func (r *Registers) SetFlagN(v bool) { r.F.Set(FlagSubtract, v) }

// SetFlagH sets or clears the half carry flag.
func (r *Registers) SetFlagH(v bool) { r.F.Set(FlagHalfCarry, v) }

// SetFlagC sets or clears the carry flag.
func (r *Registers) SetFlagC(v bool) { r.F.Set(FlagCarry, v) }

// String returns a single line dump of the registers.
func (r *Registers) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X [%s]",
		r.A, r.F.Uint8(), r.B, r.C, r.D, r.E, r.H, r.L, r.SP, r.PC, r.F)
}
