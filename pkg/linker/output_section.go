package linker

import "github.com/hcyang1106/lc2k/pkg/object"

type OutputSection struct {
	OutputWriter
	Section       object.Section
	Addr          int
	InputSections []*InputSection
}

func NewOutputSection(name string, sec object.Section) *OutputSection {
	o := &OutputSection{OutputWriter: *NewOutputWriter()}
	o.Name = name
	o.Section = sec
	return o
}

// append isec at the current end of the section
func (o *OutputSection) AddInputSection(isec *InputSection) {
	isec.OutputSection = o
	isec.Offset = o.Size
	o.Size += isec.Size()
	o.InputSections = append(o.InputSections, isec)
}

func (o *OutputSection) CopyBuf(ctx *Context) error {
	base := ctx.Buf[o.Addr:]
	for _, isec := range o.InputSections {
		if err := isec.WriteTo(ctx, base[isec.Offset:isec.Offset+isec.Size()]); err != nil {
			return err
		}
	}
	return nil
}
