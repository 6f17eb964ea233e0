package assembler

import (
	"fmt"

	"github.com/hcyang1106/lc2k/pkg/isa"
	"github.com/hcyang1106/lc2k/pkg/object"
)

type Label struct {
	Name    string
	Kind    object.Kind
	Section object.Section
	Address int // offset inside Section
}

// LabelTable is the result of pass 1.
type LabelTable struct {
	Labels   []Label
	index    map[string]int
	TextSize int
	DataSize int
}

func (t *LabelTable) Find(name string) (*Label, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.Labels[i], true
}

// ModuleAddress returns the address of l with text placed first and data after it.
func (t *LabelTable) ModuleAddress(l *Label) int {
	if l.Section == object.SectionData {
		return t.TextSize + l.Address
	}
	return l.Address
}

// CollectLabels is pass 1: it assigns every label its section and offset
// and sizes both sections.
func CollectLabels(lines []Line, limits Limits) (*LabelTable, error) {
	t := &LabelTable{index: make(map[string]int)}
	seenData := false

	for _, l := range lines {
		if l.Opcode == "" {
			continue
		}

		isData := l.Opcode == isa.FillDirective
		if !isData && seenData {
			return nil, fmt.Errorf("line %d: %w: %s", l.Num, object.ErrDataBeforeText, l.Opcode)
		}
		seenData = seenData || isData

		if l.Label != "" {
			if _, ok := t.index[l.Label]; ok {
				return nil, fmt.Errorf("line %d: %w %s", l.Num, object.ErrDuplicateLabel, l.Label)
			}
			if err := object.CheckCapacity("labels", len(t.Labels)+1, limits.MaxLabels); err != nil {
				return nil, fmt.Errorf("line %d: %w", l.Num, err)
			}
			lbl := Label{Name: l.Label, Kind: object.KindOf(l.Label), Section: object.SectionText, Address: t.TextSize}
			if isData {
				lbl.Section = object.SectionData
				lbl.Address = t.DataSize
			}
			t.index[l.Label] = len(t.Labels)
			t.Labels = append(t.Labels, lbl)
		}

		if isData {
			t.DataSize++
		} else {
			t.TextSize++
		}
	}

	if err := object.CheckCapacity("words", t.TextSize+t.DataSize, limits.MaxWords); err != nil {
		return nil, err
	}
	return t, nil
}
