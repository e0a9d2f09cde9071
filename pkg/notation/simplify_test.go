package notation

import "testing"

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"R U F", "R U F"},
		{"R R", "R2"},
		{"R R'", ""},
		{"R2 R", "R'"},
		{"R2 R2", ""},
		{"R' R' R'", "R"},
		{"U R R' U", "U2"},
		{"F R R2 R F'", ""},
		{"R L R", "R L R"},
	}

	for _, tt := range tests {
		moves, err := ParseMoves(tt.in)
		if err != nil {
			t.Fatalf("ParseMoves(%q): %v", tt.in, err)
		}
		if got := FormatMoves(Simplify(moves)); got != tt.want {
			t.Errorf("Simplify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
