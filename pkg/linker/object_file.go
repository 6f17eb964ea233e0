package linker

import (
	"fmt"

	"github.com/hcyang1106/lc2k/pkg/isa"
	"github.com/hcyang1106/lc2k/pkg/object"
)

type ObjectFile struct {
	InputFile
	Idx        int // position on the command line
	IsInternal bool

	Text    *InputSection
	Data    *InputSection
	Symbols []*Symbol // globals defined by this file
}

func NewObjectFile(file *File, idx int, limits object.Limits) (*ObjectFile, error) {
	in, err := NewInputFile(file, limits)
	if err != nil {
		return nil, err
	}
	o := &ObjectFile{InputFile: *in, Idx: idx}
	o.Parse()
	return o, nil
}

// fill in input sections and split relocations by the section they patch
func (o *ObjectFile) Parse() {
	o.Text = NewInputSection(o, object.SectionText, o.Module.Text)
	o.Data = NewInputSection(o, object.SectionData, o.Module.Data)
	for _, rel := range o.Module.Relocations {
		isec := o.GetInputSection(rel.Section())
		isec.Rels = append(isec.Rels, rel)
	}
}

func (o *ObjectFile) GetInputSection(sec object.Section) *InputSection {
	if sec == object.SectionData {
		return o.Data
	}
	return o.Text
}

// add every symbol this file defines to the link-wide table
func (o *ObjectFile) RegisterSymbols(ctx *Context) error {
	for _, esym := range o.Module.Symbols {
		if !esym.IsDefined() {
			continue
		}
		if prev, ok := ctx.GetSymbol(esym.Name); ok {
			return fmt.Errorf("%w %s: defined in %s and %s",
				object.ErrDuplicateGlobalSymbol, esym.Name, prev.File.File.Name, o.File.Name)
		}

		sym := NewSymbol(o, esym.Name)
		sym.SetInputSection(o.GetInputSection(esym.Section))
		sym.SetValue(esym.Address)
		ctx.SymbolMap[sym.Name] = sym
		ctx.Symbols = append(ctx.Symbols, sym)
		o.Symbols = append(o.Symbols, sym)
	}
	return nil
}

// ResolveTarget returns the final address a relocation refers to. Globals
// come from the link-wide table. Locals are decoded from the value the
// assembler left in word, which is relative to this module with its data
// placed right after its text.
func (o *ObjectFile) ResolveTarget(ctx *Context, rel *object.Relocation, word int32) (int, error) {
	if object.KindOf(rel.Label) == object.KindGlobal {
		sym, ok := ctx.GetSymbol(rel.Label)
		if !ok {
			return 0, fmt.Errorf("%s: %w %s", o.File.Name, object.ErrUndefinedLabel, rel.Label)
		}
		return sym.GetAddr(), nil
	}

	var local int
	switch rel.Opcode {
	case isa.FillDirective:
		local = int(word)
	case isa.OpBeq.String():
		local = isa.Offset(word) + rel.Offset + 1
	default:
		local = isa.Low16(word)
	}
	return o.Rebase(local), nil
}

// Rebase maps a module-relative address to its final address.
func (o *ObjectFile) Rebase(local int) int {
	if local < o.TextSize() {
		return o.Text.GetAddr() + local
	}
	return o.Data.GetAddr() + local - o.TextSize()
}
