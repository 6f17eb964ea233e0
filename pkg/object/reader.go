package object

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

type reader struct {
	scanner *bufio.Scanner
	lineNum int
}

func (r *reader) next(what string) ([]string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: unexpected end of file reading %s", ErrMalformedObject, what)
	}
	r.lineNum++
	fields := strings.Fields(r.scanner.Text())
	if len(fields) == 0 {
		return nil, r.errorf("empty line reading %s", what)
	}
	return fields, nil
}

func (r *reader) errorf(format string, a ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedObject, r.lineNum, fmt.Sprintf(format, a...))
}

func (r *reader) atoi(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, r.errorf("expected integer, got %q", s)
	}
	return v, nil
}

// hex or decimal, signed or unsigned, as long as it fits in 32 bits
func (r *reader) word(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil || v < math.MinInt32 || v > math.MaxUint32 {
		return 0, r.errorf("expected 32-bit word, got %q", s)
	}
	return int32(uint32(v)), nil
}

// Read parses one object file. Counts announced by the header are checked
// against limits.MaxEntries before anything is allocated.
func Read(rd io.Reader, limits Limits) (*Module, error) {
	r := &reader{scanner: bufio.NewScanner(rd)}

	header, err := r.next("header")
	if err != nil {
		return nil, err
	}
	if len(header) != 4 {
		return nil, r.errorf("header needs 4 counts, got %d", len(header))
	}
	var counts [4]int
	for i, f := range header {
		if counts[i], err = r.atoi(f); err != nil {
			return nil, err
		}
		if counts[i] < 0 {
			return nil, r.errorf("negative count %d", counts[i])
		}
	}
	numText, numData, numSyms, numRelocs := counts[0], counts[1], counts[2], counts[3]

	for i, what := range []string{"text words", "data words", "symbols", "relocations"} {
		if err := CheckCapacity(what, counts[i], limits.MaxEntries); err != nil {
			return nil, err
		}
	}

	m := &Module{}
	for i := 0; i < numText+numData; i++ {
		fields, err := r.next("section words")
		if err != nil {
			return nil, err
		}
		word, err := r.word(fields[0])
		if err != nil {
			return nil, err
		}
		if i < numText {
			m.Text = append(m.Text, word)
		} else {
			m.Data = append(m.Data, word)
		}
	}

	for i := 0; i < numSyms; i++ {
		fields, err := r.next("symbol table")
		if err != nil {
			return nil, err
		}
		if len(fields) != 3 {
			return nil, r.errorf("symbol entry needs 3 fields, got %d", len(fields))
		}
		sec, err := ParseSection(fields[1])
		if err != nil {
			return nil, r.errorf("unknown section %q for %s", fields[1], fields[0])
		}
		addr, err := r.atoi(fields[2])
		if err != nil {
			return nil, err
		}
		if sec != SectionUndefined && (addr < 0 || addr >= m.SectionSize(sec)) {
			return nil, r.errorf("symbol %s address %d outside section %s", fields[0], addr, sec)
		}
		m.Symbols = append(m.Symbols, Symbol{Name: fields[0], Section: sec, Address: addr})
	}

	for i := 0; i < numRelocs; i++ {
		fields, err := r.next("relocation table")
		if err != nil {
			return nil, err
		}
		if len(fields) != 3 {
			return nil, r.errorf("relocation entry needs 3 fields, got %d", len(fields))
		}
		offset, err := r.atoi(fields[0])
		if err != nil {
			return nil, err
		}
		rel := Relocation{Offset: offset, Opcode: fields[1], Label: fields[2]}
		if !ValidRelocationOpcode(rel.Opcode) {
			return nil, r.errorf("unknown relocation opcode %q", rel.Opcode)
		}
		if offset < 0 || offset >= m.SectionSize(rel.Section()) {
			return nil, r.errorf("relocation offset %d outside section %s", offset, rel.Section())
		}
		m.Relocations = append(m.Relocations, rel)
	}

	return m, nil
}

func Unmarshal(content []byte, limits Limits) (*Module, error) {
	return Read(bytes.NewReader(content), limits)
}
