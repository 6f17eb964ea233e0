package object

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func sampleModule() *Module {
	return &Module{
		Text: []int32{0x00810000, 0x01800000},
		Data: []int32{1, -1, 0},
		Symbols: []Symbol{
			{Name: "Main", Section: SectionText, Address: 0},
			{Name: "Ext", Section: SectionUndefined, Address: 0},
			{Name: "Tab", Section: SectionData, Address: 2},
		},
		Relocations: []Relocation{
			{Offset: 0, Opcode: "lw", Label: "Ext"},
			{Offset: 2, Opcode: ".fill", Label: "Main"},
		},
	}
}

const sampleText = `2 3 3 2
0x00810000
0x01800000
0x00000001
0xFFFFFFFF
0x00000000
Main T 0
Ext U 0
Tab D 2
0 lw Ext
2 .fill Main
`

func TestWrite(t *testing.T) {
	got := string(Marshal(sampleModule()))
	if got != sampleText {
		t.Errorf("Marshal mismatch:\n%s\nwant:\n%s", got, sampleText)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, m := range []*Module{sampleModule(), {}, {Text: []int32{0x01800000}}} {
		got, err := Unmarshal(Marshal(m), DefaultLimits())
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, m) {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, m)
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrMalformedObject},
		{"short header", "1 0 0\n", ErrMalformedObject},
		{"negative count", "-1 0 0 0\n", ErrMalformedObject},
		{"truncated text", "2 0 0 0\n0x01800000\n", ErrMalformedObject},
		{"bad word", "1 0 0 0\nzzz\n", ErrMalformedObject},
		{"bad section", "1 0 1 0\n0x01800000\nFoo X 0\n", ErrMalformedObject},
		{"symbol outside section", "1 0 1 0\n0x01800000\nFoo T 1\n", ErrMalformedObject},
		{"bad relocation opcode", "1 0 0 1\n0x01800000\n0 add Foo\n", ErrMalformedObject},
		{"relocation outside section", "1 0 0 1\n0x01800000\n0 .fill Foo\n", ErrMalformedObject},
		{"too many words", "501 0 0 0\n", ErrCapacityExceeded},
		{"too many relocations", "0 0 0 501\n", ErrCapacityExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.src), DefaultLimits())
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadLimitsConfigurable(t *testing.T) {
	src := Marshal(sampleModule())
	if _, err := Unmarshal(src, Limits{MaxEntries: 2}); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("got %v, want %v", err, ErrCapacityExceeded)
	}
	if _, err := Unmarshal(src, Limits{MaxEntries: 3}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestKindOf(t *testing.T) {
	tests := map[string]Kind{
		"Foo":   KindGlobal,
		"Stack": KindGlobal,
		"foo":   KindLocal,
		"x1":    KindLocal,
		"":      KindLocal,
	}
	for name, want := range tests {
		if got := KindOf(name); got != want {
			t.Errorf("KindOf(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestRelocationSection(t *testing.T) {
	if (&Relocation{Opcode: ".fill"}).Section() != SectionData {
		t.Error(".fill patches data")
	}
	for _, op := range []string{"lw", "sw", "beq"} {
		if (&Relocation{Opcode: op}).Section() != SectionText {
			t.Errorf("%s patches text", op)
		}
	}
}

func TestValidRelocationOpcode(t *testing.T) {
	for _, op := range []string{".fill", "lw", "sw", "beq"} {
		if !ValidRelocationOpcode(op) {
			t.Errorf("%s should be accepted", op)
		}
	}
	for _, op := range []string{"add", "jalr", "halt", ".word", ""} {
		if ValidRelocationOpcode(op) {
			t.Errorf("%s should be rejected", op)
		}
	}
}
