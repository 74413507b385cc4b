package rna

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/rnaviz/pkg/errors"
)

func TestBuildPairTable(t *testing.T) {
	tests := []struct {
		name      string
		structure string
		want      []int
	}{
		{"empty", "", []int{}},
		{"unpaired", "...", []int{-1, -1, -1}},
		{"hairpin", "((..))", []int{5, 4, -1, -1, 1, 0}},
		{"small", "(.)", []int{2, -1, 0}},
		{"two stems", "()()", []int{1, 0, 3, 2}},
		{"pseudoknot", "(.[.).]", []int{4, -1, 6, -1, 0, -1, 2}},
		{"all classes", "([{<>}])", []int{7, 6, 5, 4, 3, 2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := BuildPairTable(tt.structure)
			if err != nil {
				t.Fatalf("BuildPairTable(%q) error: %v", tt.structure, err)
			}
			if !slices.Equal([]int(pt), tt.want) {
				t.Errorf("BuildPairTable(%q) = %v, want %v", tt.structure, pt, tt.want)
			}
		})
	}
}

func TestBuildPairTableErrors(t *testing.T) {
	tests := []struct {
		name      string
		structure string
	}{
		{"unclosed", "(()"},
		{"unopened", "())"},
		{"closing first", ")("},
		{"class mismatch", "(]"},
		{"invalid char", "((x))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := BuildPairTable(tt.structure)
			if err == nil {
				t.Fatalf("BuildPairTable(%q) = %v, want error", tt.structure, pt)
			}
			if !errors.Is(err, errors.ErrCodeStructure) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeStructure)
			}
		})
	}
}

func TestPairTableInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 200; trial++ {
		s := randomStructure(rng, 1+rng.IntN(120))
		pt, err := BuildPairTable(s)
		if err != nil {
			t.Fatalf("BuildPairTable(%q): %v", s, err)
		}
		if len(pt) != len(s) {
			t.Fatalf("len = %d, want %d", len(pt), len(s))
		}
		for i := range pt {
			if j, ok := pt.Partner(i); ok && pt[j] != i {
				t.Fatalf("%q: pt[pt[%d]] = %d, want %d", s, i, pt[j], i)
			}
		}
		if err := pt.Validate(); err != nil {
			t.Fatalf("%q: Validate: %v", s, err)
		}
	}
}

func TestPairTableAccessors(t *testing.T) {
	pt, err := BuildPairTable("((..)).()")
	if err != nil {
		t.Fatal(err)
	}

	if j, ok := pt.Partner(0); !ok || j != 5 {
		t.Errorf("Partner(0) = %d, %v; want 5, true", j, ok)
	}
	if _, ok := pt.Partner(2); ok {
		t.Error("Partner(2) should be unpaired")
	}
	if _, ok := pt.Partner(99); ok {
		t.Error("Partner(99) should be out of range")
	}

	want := [][2]int{{0, 5}, {1, 4}, {7, 8}}
	if got := pt.Pairs(); !slices.Equal(got, want) {
		t.Errorf("Pairs() = %v, want %v", got, want)
	}
	if pt.PairCount() != 3 {
		t.Errorf("PairCount() = %d, want 3", pt.PairCount())
	}
	if pt.String() != "((..)).()" {
		t.Errorf("String() = %q", pt.String())
	}
}

func TestPairTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		pt      PairTable
		wantErr bool
	}{
		{"ok", PairTable{1, 0, -1}, false},
		{"asymmetric", PairTable{1, 2, 1}, true},
		{"self", PairTable{0}, true},
		{"out of range", PairTable{5, -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.pt.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// randomStructure generates a balanced dot-bracket string of length n,
// mixing the primary class with occasional pseudoknot brackets.
func randomStructure(rng *rand.Rand, n int) string {
	out := make([]byte, 0, n)
	var open []byte
	for len(out) < n {
		remaining := n - len(out)
		switch {
		case len(open) > 0 && (remaining <= len(open) || rng.IntN(3) == 0):
			out = append(out, closerOf(open[len(open)-1]))
			open = open[:len(open)-1]
		case remaining > len(open)+1 && rng.IntN(2) == 0:
			b := byte('(')
			if rng.IntN(8) == 0 {
				b = '['
			}
			out = append(out, b)
			open = append(open, b)
		default:
			out = append(out, '.')
		}
	}
	return string(out)
}

func closerOf(b byte) byte {
	if b == '[' {
		return ']'
	}
	return ')'
}
