package object

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/hcyang1106/lc2k/pkg/isa"
)

// Write serializes m in the object file text format:
//
//	<numText> <numData> <numSymbols> <numRelocations>
//	0xXXXXXXXX            text words, then data words
//	<name> <T|D|U> <addr> symbol table
//	<offset> <op> <label> relocation table
func Write(w io.Writer, m *Module) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d %d\n", len(m.Text), len(m.Data), len(m.Symbols), len(m.Relocations))
	for _, word := range m.Text {
		fmt.Fprintln(bw, isa.FormatWord(word))
	}
	for _, word := range m.Data {
		fmt.Fprintln(bw, isa.FormatWord(word))
	}
	for _, sym := range m.Symbols {
		fmt.Fprintf(bw, "%s %c %d\n", sym.Name, sym.Section.Letter(), sym.Address)
	}
	for _, rel := range m.Relocations {
		fmt.Fprintf(bw, "%d %s %s\n", rel.Offset, rel.Opcode, rel.Label)
	}
	return bw.Flush()
}

func Marshal(m *Module) []byte {
	var buf bytes.Buffer
	// writes to a bytes.Buffer cannot fail
	_ = Write(&buf, m)
	return buf.Bytes()
}
