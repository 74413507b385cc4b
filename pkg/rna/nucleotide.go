package rna

import "strings"

// Nucleotide identifies the base at one sequence position.
type Nucleotide uint8

// Nucleotides. Unknown is the zero value so a freshly allocated sequence
// needs no initialization.
const (
	Unknown Nucleotide = iota
	A
	C
	G
	U
)

var nucleotideNames = [...]string{Unknown: "N", A: "A", C: "C", G: "G", U: "U"}

// String returns the one-letter code, "N" for Unknown.
func (n Nucleotide) String() string {
	if int(n) < len(nucleotideNames) {
		return nucleotideNames[n]
	}
	return "N"
}

// Known reports whether n is one of A, C, G or U.
func (n Nucleotide) Known() bool { return n != Unknown && n <= U }

// ParseNucleotide maps a single letter to a Nucleotide, case-insensitively.
func ParseNucleotide(b byte) Nucleotide {
	switch b {
	case 'A', 'a':
		return A
	case 'C', 'c':
		return C
	case 'G', 'g':
		return G
	case 'U', 'u', 'T', 't':
		return U
	default:
		return Unknown
	}
}

// DecodeSequence maps every byte of text to a Nucleotide.
// The result has exactly len(text) entries.
func DecodeSequence(text string) []Nucleotide {
	seq := make([]Nucleotide, len(text))
	for i := 0; i < len(text); i++ {
		seq[i] = ParseNucleotide(text[i])
	}
	return seq
}

// UnknownSequence returns n Unknown nucleotides, used when a record carries
// a structure but no sequence.
func UnknownSequence(n int) []Nucleotide {
	return make([]Nucleotide, n)
}

// FormatSequence renders seq back to one-letter codes.
func FormatSequence(seq []Nucleotide) string {
	var b strings.Builder
	b.Grow(len(seq))
	for _, n := range seq {
		b.WriteString(n.String())
	}
	return b.String()
}
