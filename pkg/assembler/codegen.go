package assembler

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/hcyang1106/lc2k/pkg/isa"
	"github.com/hcyang1106/lc2k/pkg/object"
)

type generator struct {
	labels *LabelTable
	limits Limits
	mod    *object.Module
	syms   map[string]int

	textLine int
	dataLine int
	line     *Line
}

// GenerateCode is pass 2: it encodes every line and builds the symbol and
// relocation tables using the labels collected by pass 1.
func GenerateCode(lines []Line, labels *LabelTable, limits Limits) (*object.Module, error) {
	g := &generator{
		labels: labels,
		limits: limits,
		mod:    &object.Module{},
		syms:   make(map[string]int),
	}

	for i := range lines {
		g.line = &lines[i]
		if g.line.Opcode == "" {
			continue
		}
		if err := g.genLine(); err != nil {
			return nil, g.error(err)
		}
	}

	return g.mod, nil
}

func (g *generator) error(err error) error {
	return fmt.Errorf("line %d: %w", g.line.Num, err)
}

func (g *generator) genLine() error {
	l := g.line
	isData := l.Opcode == isa.FillDirective

	if l.Label != "" && object.KindOf(l.Label) == object.KindGlobal {
		sec, addr := object.SectionText, g.textLine
		if isData {
			sec, addr = object.SectionData, g.dataLine
		}
		if err := g.defineSymbol(l.Label, sec, addr); err != nil {
			return err
		}
	}

	if isData {
		word, err := g.genFill()
		if err != nil {
			return err
		}
		g.mod.Data = append(g.mod.Data, word)
		g.dataLine++
		return nil
	}

	word, err := g.genInstruction()
	if err != nil {
		return err
	}
	g.mod.Text = append(g.mod.Text, word)
	g.textLine++
	return nil
}

func (g *generator) genFill() (int32, error) {
	arg := g.line.Args[0]
	if arg == "" {
		return 0, fmt.Errorf("%w: %s needs a value", object.ErrMissingOperand, isa.FillDirective)
	}

	n, isNum, err := parseNumber(arg)
	if err != nil {
		return 0, err
	}
	if isNum {
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %s %d does not fit in a word", object.ErrOffsetOutOfRange, isa.FillDirective, n)
		}
		return int32(n), nil
	}

	v, err := g.symbolic(arg, isa.FillDirective, g.dataLine)
	return int32(v), err
}

func (g *generator) genInstruction() (int32, error) {
	l := g.line
	op, ok := isa.LookupOpcode(l.Opcode)
	if !ok {
		return 0, fmt.Errorf("%w %q", object.ErrUnrecognizedOpcode, l.Opcode)
	}

	var regs [3]int
	for i := 0; i < op.NumRegArgs(); i++ {
		r, err := parseRegister(l.Args[i])
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		regs[i] = r
	}

	switch op {
	case isa.OpAdd, isa.OpNor:
		return isa.REncode(op, regs[0], regs[1], regs[2]), nil
	case isa.OpLw, isa.OpSw:
		offset, err := g.memoryOffset(op, l.Args[2])
		if err != nil {
			return 0, err
		}
		return isa.IEncode(op, regs[0], regs[1], offset), nil
	case isa.OpBeq:
		offset, err := g.branchOffset(l.Args[2])
		if err != nil {
			return 0, err
		}
		return isa.IEncode(op, regs[0], regs[1], offset), nil
	case isa.OpJalr:
		return isa.JEncode(regs[0], regs[1]), nil
	}
	return isa.OEncode(op), nil
}

func (g *generator) memoryOffset(op isa.Opcode, arg string) (int, error) {
	if arg == "" {
		return 0, fmt.Errorf("%w: %s needs an offset", object.ErrMissingOperand, op)
	}

	n, isNum, err := parseNumber(arg)
	if err != nil {
		return 0, err
	}
	offset := int(n)
	if !isNum {
		if offset, err = g.symbolic(arg, op.String(), g.textLine); err != nil {
			return 0, err
		}
	}

	if !isa.FitsOffset(offset) {
		return 0, fmt.Errorf("%w: %s offset %d", object.ErrOffsetOutOfRange, op, offset)
	}
	return offset, nil
}

// beq is PC-relative, so it never needs the linker for a text target of the
// same module; targets in data move with the data section and are tracked.
func (g *generator) branchOffset(arg string) (int, error) {
	if arg == "" {
		return 0, fmt.Errorf("%w: beq needs an offset", object.ErrMissingOperand)
	}

	n, isNum, err := parseNumber(arg)
	if err != nil {
		return 0, err
	}
	offset := int(n)
	if !isNum {
		lbl, ok := g.labels.Find(arg)
		if !ok {
			if object.KindOf(arg) == object.KindGlobal {
				return 0, fmt.Errorf("%w %s", object.ErrBeqUndefinedGlobal, arg)
			}
			return 0, fmt.Errorf("%w %s", object.ErrUndefinedLabel, arg)
		}
		offset = g.labels.ModuleAddress(lbl) - (g.textLine + 1)
		if lbl.Section == object.SectionData {
			if err := g.addRelocation(g.textLine, isa.OpBeq.String(), arg); err != nil {
				return 0, err
			}
		}
	}

	if !isa.FitsOffset(offset) {
		return 0, fmt.Errorf("%w: beq offset %d", object.ErrOffsetOutOfRange, offset)
	}
	return offset, nil
}

// symbolic resolves a label operand of lw, sw or .fill. Every reference is
// recorded for the linker. Locals keep their module address in the word;
// globals are left as 0.
func (g *generator) symbolic(name, opcode string, offset int) (int, error) {
	lbl, ok := g.labels.Find(name)
	if !ok && object.KindOf(name) == object.KindLocal {
		return 0, fmt.Errorf("%w %s", object.ErrUndefinedLabel, name)
	}

	if err := g.addRelocation(offset, opcode, name); err != nil {
		return 0, err
	}

	if ok && lbl.Kind == object.KindLocal {
		return g.labels.ModuleAddress(lbl), nil
	}

	if _, seen := g.syms[name]; !seen {
		if err := g.addSymbol(object.Symbol{Name: name, Section: object.SectionUndefined}); err != nil {
			return 0, err
		}
	}
	return 0, nil
}

// defineSymbol upserts a global definition, replacing an undefined placeholder
// left by an earlier forward reference.
func (g *generator) defineSymbol(name string, sec object.Section, addr int) error {
	if i, ok := g.syms[name]; ok {
		g.mod.Symbols[i].Section = sec
		g.mod.Symbols[i].Address = addr
		return nil
	}
	return g.addSymbol(object.Symbol{Name: name, Section: sec, Address: addr})
}

func (g *generator) addSymbol(sym object.Symbol) error {
	if err := object.CheckCapacity("symbols", len(g.mod.Symbols)+1, g.limits.MaxSymbols); err != nil {
		return err
	}
	g.syms[sym.Name] = len(g.mod.Symbols)
	g.mod.Symbols = append(g.mod.Symbols, sym)
	return nil
}

func (g *generator) addRelocation(offset int, opcode, label string) error {
	if err := object.CheckCapacity("relocations", len(g.mod.Relocations)+1, g.limits.MaxRelocations); err != nil {
		return err
	}
	g.mod.Relocations = append(g.mod.Relocations, object.Relocation{Offset: offset, Opcode: opcode, Label: label})
	return nil
}

// parseNumber accepts a signed decimal literal. isNum is false for anything
// that is not entirely a number; a number that overflows is an error.
func parseNumber(s string) (n int64, isNum bool, err error) {
	n, err = strconv.ParseInt(s, 10, 64)
	if err == nil {
		return n, true, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, false, fmt.Errorf("%w: %s", object.ErrOffsetOutOfRange, s)
	}
	return 0, false, nil
}

func parseRegister(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: register", object.ErrMissingOperand)
	}
	r, err := strconv.Atoi(s)
	if err != nil || r < 0 || r >= isa.NumRegs {
		return 0, fmt.Errorf("%w %q", object.ErrInvalidRegister, s)
	}
	return r, nil
}
