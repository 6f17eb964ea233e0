package isa

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want uint32
	}{
		{"add 1 2 3", REncode(OpAdd, 1, 2, 3), 0x000A0003},
		{"nor 7 7 7", REncode(OpNor, 7, 7, 7), 0x007F0007},
		{"lw 0 1 5", IEncode(OpLw, 0, 1, 5), 0x00810005},
		{"sw 0 1 5", IEncode(OpSw, 0, 1, 5), 0x00C10005},
		{"beq 0 1 -1", IEncode(OpBeq, 0, 1, -1), 0x0101FFFF},
		{"jalr 4 2", JEncode(4, 2), 0x01620000},
		{"halt", OEncode(OpHalt), 0x01800000},
		{"noop", OEncode(OpNoop), 0x01C00000},
	}
	for _, tt := range tests {
		if uint32(tt.got) != tt.want {
			t.Errorf("%s: got 0x%08X, want 0x%08X", tt.name, uint32(tt.got), tt.want)
		}
	}
}

func TestLookupOpcode(t *testing.T) {
	for i, m := range mnemonics {
		op, ok := LookupOpcode(m)
		if !ok || op != Opcode(i) {
			t.Errorf("LookupOpcode(%q) = %v, %v", m, op, ok)
		}
		if op.String() != m {
			t.Errorf("Opcode(%d).String() = %q, want %q", i, op.String(), m)
		}
	}
	if _, ok := LookupOpcode(".fill"); ok {
		t.Error(".fill is not an instruction")
	}
	if _, ok := LookupOpcode("ADD"); ok {
		t.Error("mnemonics are case sensitive")
	}
}

func TestFields(t *testing.T) {
	word := IEncode(OpBeq, 0, 1, -3)
	if OpcodeOf(word) != OpBeq {
		t.Errorf("OpcodeOf = %v", OpcodeOf(word))
	}
	if Offset(word) != -3 {
		t.Errorf("Offset = %d, want -3", Offset(word))
	}
	if Low16(word) != 0xFFFD {
		t.Errorf("Low16 = 0x%X, want 0xFFFD", Low16(word))
	}

	patched := SetLow16(word, 7)
	if uint32(patched) != 0x01010007 {
		t.Errorf("SetLow16 = 0x%08X", uint32(patched))
	}
	if OpcodeOf(patched) != OpBeq {
		t.Error("SetLow16 must keep the opcode")
	}
}

func TestFitsOffset(t *testing.T) {
	for _, v := range []int{-32768, 0, 32767} {
		if !FitsOffset(v) {
			t.Errorf("%d should fit", v)
		}
	}
	for _, v := range []int{-32769, 32768} {
		if FitsOffset(v) {
			t.Errorf("%d should not fit", v)
		}
	}
}

func TestFormatWord(t *testing.T) {
	if s := FormatWord(-1); s != "0xFFFFFFFF" {
		t.Errorf("FormatWord(-1) = %s", s)
	}
	if s := FormatWord(0x810007); s != "0x00810007" {
		t.Errorf("FormatWord = %s", s)
	}
}
