package assembler

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/hcyang1106/lc2k/pkg/object"
)

// Assemble translates LC-2K source read from r into a relocatable module.
func Assemble(r io.Reader, limits Limits) (*object.Module, error) {
	lines, err := ReadSource(r, limits)
	if err != nil {
		return nil, err
	}

	labels, err := CollectLabels(lines, limits)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("pass 1: %d labels, %d text words, %d data words",
		len(labels.Labels), labels.TextSize, labels.DataSize)

	mod, err := GenerateCode(lines, labels, limits)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("pass 2: %d symbols, %d relocations", len(mod.Symbols), len(mod.Relocations))
	return mod, nil
}

func AssembleString(src string, limits Limits) (*object.Module, error) {
	return Assemble(strings.NewReader(src), limits)
}

// AssembleFile assembles inPath and writes the object file to outPath.
// Nothing is written when assembly fails.
func AssembleFile(inPath, outPath string, limits Limits) error {
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	mod, err := Assemble(f, limits)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	return os.WriteFile(outPath, object.Marshal(mod), 0644)
}
