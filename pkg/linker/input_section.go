package linker

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/hcyang1106/lc2k/pkg/isa"
	"github.com/hcyang1106/lc2k/pkg/object"
)

type InputSection struct {
	ObjFile       *ObjectFile
	Section       object.Section
	Content       []int32
	Rels          []object.Relocation
	OutputSection *OutputSection
	Offset        int // offset inside OutputSection
}

func NewInputSection(obj *ObjectFile, sec object.Section, content []int32) *InputSection {
	return &InputSection{
		ObjFile: obj,
		Section: sec,
		Content: content,
	}
}

func (i *InputSection) Size() int {
	return len(i.Content)
}

// only valid once the section is placed
func (i *InputSection) GetAddr() int {
	return i.OutputSection.Addr + i.Offset
}

func (i *InputSection) WriteTo(ctx *Context, buf []int32) error {
	copy(buf, i.Content)
	return i.ApplyRelocs(ctx, buf)
}

// patch every word of buf named by a relocation entry
func (i *InputSection) ApplyRelocs(ctx *Context, buf []int32) error {
	for _, rel := range i.Rels {
		word := buf[rel.Offset]
		addr, err := i.ObjFile.ResolveTarget(ctx, &rel, word)
		if err != nil {
			return err
		}

		switch rel.Opcode {
		case isa.FillDirective:
			buf[rel.Offset] = int32(addr)
		case isa.OpLw.String(), isa.OpSw.String():
			buf[rel.Offset] = isa.SetLow16(word, addr)
		case isa.OpBeq.String():
			pc := i.GetAddr() + rel.Offset
			offset := addr - (pc + 1)
			if !isa.FitsOffset(offset) {
				return fmt.Errorf("%s: %w: beq at %d to %s (offset %d)",
					i.ObjFile.File.Name, object.ErrOffsetOutOfRange, pc, rel.Label, offset)
			}
			buf[rel.Offset] = isa.SetLow16(word, offset)
		}

		if glog.V(2) {
			glog.Infof("%s: %s %d %s -> %d (%s)", i.ObjFile.File.Name, rel.Opcode, rel.Offset, rel.Label,
				addr, isa.FormatWord(buf[rel.Offset]))
		}
	}
	return nil
}
