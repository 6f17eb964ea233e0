package linker

import (
	"errors"

	"github.com/golang/glog"
	"github.com/hcyang1106/lc2k/pkg/object"
	"golang.org/x/sync/errgroup"
)

// Link runs every pass in order. Addresses are final only after
// PlaceSections, so symbols and relocations are handled after it.
func Link(ctx *Context, paths []string) error {
	if err := ReadInputFiles(ctx, paths); err != nil {
		return err
	}
	CreateInternalFile(ctx)
	PlaceSections(ctx)
	if err := BuildSymbolTable(ctx); err != nil {
		return err
	}
	return CopySections(ctx)
}

// ReadInputFiles reads and parses every input concurrently, keeping
// command-line order.
func ReadInputFiles(ctx *Context, paths []string) error {
	if len(paths) == 0 {
		return errors.New("no input files")
	}
	if err := object.CheckCapacity("input files", len(paths), ctx.Args.Limits.MaxFiles); err != nil {
		return err
	}

	objs := make([]*ObjectFile, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			glog.V(1).Infof("opening %s", path)
			file, err := NewFile(path)
			if err != nil {
				return err
			}
			obj, err := NewObjectFile(file, i, ctx.Args.Limits)
			if err != nil {
				return err
			}
			objs[i] = obj
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	ctx.Args.ObjFiles = objs
	return nil
}

// the internal file holds linker-defined symbols; it is placed last so
// Stack lands on the first free word after all data
func CreateInternalFile(ctx *Context) {
	obj := &ObjectFile{
		InputFile: InputFile{
			File: &File{Name: "<internal>"},
			Module: &object.Module{
				Symbols: []object.Symbol{{Name: StackSymbol, Section: object.SectionData}},
			},
		},
		Idx:        len(ctx.Args.ObjFiles),
		IsInternal: true,
	}
	obj.Parse()
	ctx.InternalObj = obj
}

// text of every file in order, then data of every file in order
func PlaceSections(ctx *Context) {
	ctx.Text = NewOutputSection(".text", object.SectionText)
	ctx.Data = NewOutputSection(".data", object.SectionData)

	for _, obj := range ctx.AllFiles() {
		ctx.Text.AddInputSection(obj.Text)
		ctx.Data.AddInputSection(obj.Data)
	}
	ctx.Data.Addr = ctx.Text.Addr + ctx.Text.Size

	for _, obj := range ctx.AllFiles() {
		if obj.IsInternal {
			continue
		}
		glog.V(1).Infof("#%d %s: text at %d, data at %d", obj.Idx, obj.File.Name, obj.Text.GetAddr(), obj.Data.GetAddr())
	}
	ctx.Buf = make([]int32, ctx.Text.Size+ctx.Data.Size)
}

func BuildSymbolTable(ctx *Context) error {
	for _, obj := range ctx.AllFiles() {
		if err := obj.RegisterSymbols(ctx); err != nil {
			return err
		}
	}
	glog.V(1).Infof("%d global symbols", len(ctx.Symbols))
	return nil
}

// copy every section into ctx.Buf and apply relocations
func CopySections(ctx *Context) error {
	for _, o := range []iOutputWriter{ctx.Text, ctx.Data} {
		if err := o.CopyBuf(ctx); err != nil {
			return err
		}
	}
	return nil
}
