package linker

import (
	"fmt"

	"github.com/hcyang1106/lc2k/pkg/object"
)

type InputFile struct {
	File   *File
	Module *object.Module
}

func NewInputFile(file *File, limits object.Limits) (*InputFile, error) {
	if ft := GetFileTypeFromContent(file.Content); ft != FileTypeObject {
		return nil, fmt.Errorf("%w: %s is a %s, not an object file", object.ErrMalformedObject, file.Name, ft)
	}

	mod, err := object.Unmarshal(file.Content, limits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Name, err)
	}

	return &InputFile{
		File:   file,
		Module: mod,
	}, nil
}

func (f *InputFile) TextSize() int {
	return len(f.Module.Text)
}

func (f *InputFile) DataSize() int {
	return len(f.Module.Data)
}
