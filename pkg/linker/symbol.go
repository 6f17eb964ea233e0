package linker

import "github.com/hcyang1106/lc2k/pkg/object"

// StackSymbol names the first free word after all linked data.
const StackSymbol = "Stack"

type Symbol struct {
	File         *ObjectFile
	InputSection *InputSection
	Name         string
	Value        int
}

func NewSymbol(file *ObjectFile, name string) *Symbol {
	return &Symbol{
		File: file,
		Name: name,
	}
}

func (s *Symbol) SetInputSection(section *InputSection) {
	s.InputSection = section
}

func (s *Symbol) SetValue(value int) {
	s.Value = value
}

func (s *Symbol) Section() object.Section {
	if s.InputSection == nil {
		return object.SectionUndefined
	}
	return s.InputSection.Section
}

func (s *Symbol) GetAddr() int {
	if s.InputSection != nil {
		return s.InputSection.GetAddr() + s.Value
	}
	return s.Value
}
