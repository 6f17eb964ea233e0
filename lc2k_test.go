package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hcyang1106/lc2k/pkg/object"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestAssembleAndLink(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	mainSrc := write("main.as", "\tlw\t0\t1\tCount\n\tjalr\t4\t7\n\thalt\n")
	lib := write("lib.as", "\tnoop\nCount\t.fill\t3\n")
	mainObj := filepath.Join(dir, "main.obj")
	libObj := filepath.Join(dir, "lib.obj")
	out := filepath.Join(dir, "prog.mc")
	mapFile := filepath.Join(dir, "prog.map")

	if err := run(t, "assemble", mainSrc, mainObj); err != nil {
		t.Fatal(err)
	}
	if err := run(t, "assemble", lib, libObj); err != nil {
		t.Fatal(err)
	}
	if err := run(t, "link", "--map", mapFile, mainObj, libObj, out); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "0x00810004\n0x01670000\n0x01800000\n0x01C00000\n0x00000003\n"
	if string(got) != want {
		t.Errorf("image:\n%s\nwant:\n%s", got, want)
	}

	m, err := os.ReadFile(mapFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(m) != "Count D 4\nStack D 5\n" {
		t.Errorf("map = %q", m)
	}
}

func TestNoOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.as")
	obj := filepath.Join(dir, "bad.obj")
	if err := os.WriteFile(src, []byte("\tlw\t0\t1\tMissing\n\thalt\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run(t, "assemble", src, obj); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "bad.mc")
	err := run(t, "link", obj, out)
	if !errors.Is(err, object.ErrUndefinedLabel) {
		t.Errorf("got %v, want %v", err, object.ErrUndefinedLabel)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no image may be written when linking fails")
	}
}

func TestExitCode(t *testing.T) {
	if code := exitCode(fmt.Errorf("x.as: %w", object.ErrBlankLineInCode)); code != 2 {
		t.Errorf("blank line exit code = %d, want 2", code)
	}
	if code := exitCode(object.ErrDuplicateLabel); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}
