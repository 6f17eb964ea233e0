package linker

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

type FileType uint8

const (
	FileTypeUnknown FileType = iota
	FileTypeEmpty
	FileTypeObject
	FileTypeImage
)

func (t FileType) String() string {
	switch t {
	case FileTypeEmpty:
		return "empty file"
	case FileTypeObject:
		return "object file"
	case FileTypeImage:
		return "linked image"
	}
	return "unknown file"
}

func GetFileTypeFromContent(content []byte) FileType {
	if len(bytes.TrimSpace(content)) == 0 {
		return FileTypeEmpty
	}
	if CheckMagic(content) {
		return FileTypeObject
	}
	if isImage(content) {
		return FileTypeImage
	}
	return FileTypeUnknown
}

// a linked image is nothing but hex words
func isImage(content []byte) bool {
	s := bufio.NewScanner(bytes.NewReader(content))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "0x") {
			return false
		}
		if _, err := strconv.ParseUint(line[2:], 16, 32); err != nil {
			return false
		}
	}
	return true
}
