package linker

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hcyang1106/lc2k/pkg/isa"
)

type iOutputWriter interface {
	GetSize() int
	CopyBuf(ctx *Context) error
}

type OutputWriter struct {
	Name string
	Size int
}

func NewOutputWriter() *OutputWriter {
	return &OutputWriter{}
}

func (o *OutputWriter) GetSize() int {
	return o.Size
}

func (o *OutputWriter) CopyBuf(ctx *Context) error {
	return nil
}

// WriteImage emits the linked words, one hex word per line, no header.
func WriteImage(w io.Writer, ctx *Context) error {
	bw := bufio.NewWriter(w)
	for _, word := range ctx.Buf {
		fmt.Fprintln(bw, isa.FormatWord(word))
	}
	return bw.Flush()
}

// WriteSymbolMap emits "<name> <T|D> <address>" for every global symbol.
func WriteSymbolMap(w io.Writer, ctx *Context) error {
	bw := bufio.NewWriter(w)
	for _, sym := range ctx.Symbols {
		fmt.Fprintf(bw, "%s %s %d\n", sym.Name, sym.Section(), sym.GetAddr())
	}
	return bw.Flush()
}

// WriteOutput writes the image and, when requested, the symbol map.
// Called only after a successful link.
func WriteOutput(ctx *Context) error {
	var buf bytes.Buffer
	if err := WriteImage(&buf, ctx); err != nil {
		return err
	}
	if err := os.WriteFile(ctx.Args.Output, buf.Bytes(), 0644); err != nil {
		return err
	}

	if ctx.Args.MapFile == "" {
		return nil
	}
	buf.Reset()
	if err := WriteSymbolMap(&buf, ctx); err != nil {
		return err
	}
	return os.WriteFile(ctx.Args.MapFile, buf.Bytes(), 0644)
}
