package assembler

import (
	"strings"
)

// Line is one parsed source line. Fields that are absent are empty.
type Line struct {
	Num    int
	Label  string
	Opcode string
	Args   [3]string
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// ParseLine splits a line into label, opcode and up to three arguments.
// A label is present only when the line does not start with whitespace.
// Anything after the third argument is a comment.
func ParseLine(text string) Line {
	var l Line
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return l
	}

	if !isSpace(text[0]) {
		l.Label = fields[0]
		fields = fields[1:]
	}
	if len(fields) > 0 {
		l.Opcode = fields[0]
		fields = fields[1:]
	}
	for i := 0; i < len(l.Args) && i < len(fields); i++ {
		l.Args[i] = fields[i]
	}
	return l
}

func isBlank(text string) bool {
	return strings.TrimLeft(text, " \t\r\n") == ""
}
