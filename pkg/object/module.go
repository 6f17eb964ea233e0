package object

import (
	"fmt"

	"github.com/hcyang1106/lc2k/pkg/isa"
)

type Section uint8

const (
	SectionText Section = iota
	SectionData
	SectionUndefined
)

func (s Section) Letter() byte {
	switch s {
	case SectionText:
		return 'T'
	case SectionData:
		return 'D'
	}
	return 'U'
}

func (s Section) String() string {
	return string(s.Letter())
}

func ParseSection(letter string) (Section, error) {
	switch letter {
	case "T":
		return SectionText, nil
	case "D":
		return SectionData, nil
	case "U":
		return SectionUndefined, nil
	}
	return SectionUndefined, fmt.Errorf("%w: unknown section %q", ErrMalformedObject, letter)
}

// Kind is the visibility of a label, decided by the case of its first letter.
type Kind uint8

const (
	KindLocal Kind = iota
	KindGlobal
)

func KindOf(name string) Kind {
	if name != "" && name[0] >= 'A' && name[0] <= 'Z' {
		return KindGlobal
	}
	return KindLocal
}

func (k Kind) String() string {
	if k == KindGlobal {
		return "global"
	}
	return "local"
}

// Symbol is a persisted symbol table entry. Only global labels are stored.
type Symbol struct {
	Name    string
	Section Section
	Address int
}

func (s *Symbol) IsDefined() bool {
	return s.Section != SectionUndefined
}

// Relocation marks a word whose value depends on a label address.
// Offset is relative to the section the opcode lives in.
type Relocation struct {
	Offset int
	Opcode string
	Label  string
}

// Section returns the section holding the patched word.
func (r *Relocation) Section() Section {
	if r.Opcode == isa.FillDirective {
		return SectionData
	}
	return SectionText
}

// ValidRelocationOpcode accepts .fill and the instructions carrying an offset field.
func ValidRelocationOpcode(op string) bool {
	if op == isa.FillDirective {
		return true
	}
	o, ok := isa.LookupOpcode(op)
	return ok && o.HasOffset()
}

type Module struct {
	Text        []int32
	Data        []int32
	Symbols     []Symbol
	Relocations []Relocation
}

// SectionSize returns the number of words in a section.
func (m *Module) SectionSize(s Section) int {
	switch s {
	case SectionText:
		return len(m.Text)
	case SectionData:
		return len(m.Data)
	}
	return 0
}
