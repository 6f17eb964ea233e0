package isa

import "fmt"

// Opcode is the 3-bit operation field of an LC-2K instruction.
type Opcode uint8

const (
	OpAdd Opcode = iota
	OpNor
	OpLw
	OpSw
	OpBeq
	OpJalr
	OpHalt
	OpNoop
)

// FillDirective is the data directive; it is not an instruction.
const FillDirective = ".fill"

const (
	NumRegs = 8

	MinOffset = -32768
	MaxOffset = 32767

	opShift   = 22
	regAShift = 19
	regBShift = 16

	OffsetMask = 0xFFFF
)

var mnemonics = [...]string{"add", "nor", "lw", "sw", "beq", "jalr", "halt", "noop"}

func (o Opcode) String() string {
	if int(o) < len(mnemonics) {
		return mnemonics[o]
	}
	return fmt.Sprintf("opcode(%d)", uint8(o))
}

func LookupOpcode(mnemonic string) (Opcode, bool) {
	for i, m := range mnemonics {
		if m == mnemonic {
			return Opcode(i), true
		}
	}
	return 0, false
}

// number of register operands an opcode consumes before its offset/dest field
func (o Opcode) NumRegArgs() int {
	switch o {
	case OpAdd, OpNor:
		return 3
	case OpLw, OpSw, OpBeq, OpJalr:
		return 2
	}
	return 0
}

// HasOffset reports whether bits[15:0] hold a signed offset.
func (o Opcode) HasOffset() bool {
	return o == OpLw || o == OpSw || o == OpBeq
}

func FitsOffset(v int) bool {
	return v >= MinOffset && v <= MaxOffset
}

// REncode encodes add/nor.
func REncode(op Opcode, regA, regB, dest int) int32 {
	return int32(op)<<opShift | int32(regA)<<regAShift | int32(regB)<<regBShift | int32(dest)
}

// IEncode encodes lw/sw/beq, the offset is truncated to 16 bits.
func IEncode(op Opcode, regA, regB, offset int) int32 {
	return int32(op)<<opShift | int32(regA)<<regAShift | int32(regB)<<regBShift | int32(offset&OffsetMask)
}

// JEncode encodes jalr.
func JEncode(regA, regB int) int32 {
	return int32(OpJalr)<<opShift | int32(regA)<<regAShift | int32(regB)<<regBShift
}

// OEncode encodes halt/noop.
func OEncode(op Opcode) int32 {
	return int32(op) << opShift
}

func OpcodeOf(word int32) Opcode {
	return Opcode((uint32(word) >> opShift) & 0x7)
}

// Offset sign-extends bits[15:0].
func Offset(word int32) int {
	return int(int16(uint16(uint32(word) & OffsetMask)))
}

// Low16 returns bits[15:0] unsigned.
func Low16(word int32) int {
	return int(uint32(word) & OffsetMask)
}

func SetLow16(word int32, v int) int32 {
	return int32((uint32(word) &^ OffsetMask) | (uint32(v) & OffsetMask))
}

// FormatWord renders the 8-digit upper-case hex form used by object files and images.
func FormatWord(word int32) string {
	return fmt.Sprintf("0x%08X", uint32(word))
}
