package assembler

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hcyang1106/lc2k/pkg/object"
)

const (
	DefaultMaxLineLength = 1000
	DefaultMaxTableSize  = 1000
)

type Limits struct {
	MaxLineLength  int
	MaxLabels      int
	MaxSymbols     int
	MaxRelocations int
	MaxWords       int
}

func DefaultLimits() Limits {
	return Limits{
		MaxLineLength:  DefaultMaxLineLength,
		MaxLabels:      DefaultMaxTableSize,
		MaxSymbols:     DefaultMaxTableSize,
		MaxRelocations: DefaultMaxTableSize,
		MaxWords:       DefaultMaxTableSize,
	}
}

// ReadSource validates the whole input and returns its non-blank lines.
// Blank lines are only allowed at the end of the file.
func ReadSource(r io.Reader, limits Limits) ([]Line, error) {
	br := bufio.NewReader(r)
	var lines []Line
	blankAt := -1

	for idx := 0; ; idx++ {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if raw == "" && err == io.EOF {
			break
		}

		// length counts the newline, the last byte of the buffer is reserved
		if limits.MaxLineLength > 0 && len(raw) >= limits.MaxLineLength-1 {
			return nil, fmt.Errorf("line %d: %w (%d bytes)", idx+1, object.ErrLineTooLong, len(raw))
		}

		if isBlank(raw) {
			if blankAt < 0 {
				blankAt = idx
			}
		} else {
			if blankAt >= 0 {
				return nil, fmt.Errorf("%w: empty line at address %d", object.ErrBlankLineInCode, blankAt)
			}
			l := ParseLine(raw)
			l.Num = idx + 1
			lines = append(lines, l)
		}

		if err == io.EOF {
			break
		}
	}

	return lines, nil
}
