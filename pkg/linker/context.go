package linker

import "github.com/hcyang1106/lc2k/pkg/object"

type Args struct {
	Output   string
	MapFile  string
	Limits   object.Limits
	ObjFiles []*ObjectFile
}

type Context struct {
	Args Args

	InternalObj *ObjectFile
	SymbolMap   map[string]*Symbol
	Symbols     []*Symbol // definition order

	Text *OutputSection
	Data *OutputSection
	Buf  []int32
}

func NewContext() *Context {
	return &Context{
		Args: Args{
			Output: "a.out",
			Limits: object.DefaultLimits(),
		},
		SymbolMap: make(map[string]*Symbol),
	}
}

func (ctx *Context) GetSymbol(name string) (*Symbol, bool) {
	sym, ok := ctx.SymbolMap[name]
	return sym, ok
}

// input files followed by the internal file, in placement order
func (ctx *Context) AllFiles() []*ObjectFile {
	files := ctx.Args.ObjFiles
	if ctx.InternalObj != nil {
		files = append(files[:len(files):len(files)], ctx.InternalObj)
	}
	return files
}
