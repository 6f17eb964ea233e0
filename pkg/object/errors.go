package object

import "errors"

// syntax / validation
var (
	ErrLineTooLong        = errors.New("line too long")
	ErrBlankLineInCode    = errors.New("blank line in code")
	ErrInvalidRegister    = errors.New("invalid register")
	ErrOffsetOutOfRange   = errors.New("offset out of range")
	ErrUnrecognizedOpcode = errors.New("unrecognized opcode")
	ErrMissingOperand     = errors.New("missing operand")
	ErrMalformedObject    = errors.New("malformed object file")
)

// symbol resolution
var (
	ErrDuplicateLabel     = errors.New("duplicate label")
	ErrUndefinedLabel     = errors.New("undefined label")
	ErrBeqUndefinedGlobal = errors.New("beq to undefined global label")
)

// link time
var (
	ErrDuplicateGlobalSymbol = errors.New("duplicate global symbol")
	ErrDataBeforeText        = errors.New("instruction after data")
	ErrCapacityExceeded      = errors.New("capacity exceeded")
)
