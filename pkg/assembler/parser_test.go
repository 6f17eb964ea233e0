package assembler

import "testing"

func TestParseLine(t *testing.T) {
	tests := []struct {
		text string
		want Line
	}{
		{"start\tadd\t1\t2\t1\tdecrement reg1\n", Line{Label: "start", Opcode: "add", Args: [3]string{"1", "2", "1"}}},
		{"\tlw 0 1 five\n", Line{Opcode: "lw", Args: [3]string{"0", "1", "five"}}},
		{"  halt   end of program", Line{Opcode: "halt", Args: [3]string{"end", "of", "program"}}},
		{"done\thalt", Line{Label: "done", Opcode: "halt"}},
		{"lonely\n", Line{Label: "lonely"}},
		{"   \n", Line{}},
		{"", Line{}},
	}
	for _, tt := range tests {
		if got := ParseLine(tt.text); got != tt.want {
			t.Errorf("ParseLine(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}
