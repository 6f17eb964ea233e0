package linker

import (
	"bytes"
	"strconv"
)

// an object file starts with a line of four non-negative counts
func CheckMagic(content []byte) bool {
	line, _, _ := bytes.Cut(content, []byte("\n"))
	fields := bytes.Fields(line)
	if len(fields) != 4 {
		return false
	}
	for _, f := range fields {
		if n, err := strconv.Atoi(string(f)); err != nil || n < 0 {
			return false
		}
	}
	return true
}
