// Package input parses the line-oriented text record that describes one
// secondary structure.
//
// A record is a handful of lines, each classified by its content:
//
//	>tRNA-Phe                     optional name (FASTA style)
//	# comment                     ignored, as are blank lines
//	GCGGAUUUAGCUCAGUUGGGAGAGC     sequence (letters, case-insensitive)
//	(((((((..((((.....[..)))).    structure (dot-bracket)
//	.......1111.............22    highlight mask (digit = color-id)
//	@ 3:1, 10-14:2                highlight ranges (0-based, inclusive)
//
// Consecutive lines of the same kind are joined so that wrapped input is
// accepted. A line of dots after the structure is read as a highlight mask
// with no colors once the structure already covers the sequence. Any other layout is reported as an errors.ErrCodeParse error
// naming the offending line.
package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/rna"
)

// Record is the structured form of one input record. Every field is
// optional at the parser level; the pipeline decides which combinations
// it can render.
type Record struct {
	Name      string `json:"name,omitempty"`
	Structure string `json:"structure,omitempty"`
	Sequence  string `json:"sequence,omitempty"`
	Highlight string `json:"highlight,omitempty"`

	HasStructure bool `json:"has_structure"`
	HasSequence  bool `json:"has_sequence"`
	HasHighlight bool `json:"has_highlight"`
}

// Kind classifies a record line.
type Kind int

// Line kinds.
const (
	KindSkip Kind = iota
	KindName
	KindStructure
	KindSequence
	KindHighlight
	KindInvalid
)

var kindNames = map[Kind]string{
	KindSkip:      "blank",
	KindName:      "name",
	KindStructure: "structure",
	KindSequence:  "sequence",
	KindHighlight: "highlight",
	KindInvalid:   "invalid",
}

func (k Kind) String() string { return kindNames[k] }

// Classify returns the kind of a single trimmed line.
func Classify(line string) Kind {
	switch {
	case line == "", strings.HasPrefix(line, "#"):
		return KindSkip
	case strings.HasPrefix(line, ">"):
		return KindName
	case strings.HasPrefix(line, "@"):
		return KindHighlight
	case isMask(line):
		return KindHighlight
	case isStructure(line):
		return KindStructure
	case isLetters(line):
		return KindSequence
	default:
		return KindInvalid
	}
}

// ParseString splits text on newlines and parses the result.
func ParseString(text string) (Record, error) {
	return Parse(strings.Split(text, "\n"))
}

// ParseReader reads every line from r and parses the result.
func ParseReader(r io.Reader) (Record, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), errors.MaxInputLength*2)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeParse, err, "read input")
	}
	return Parse(lines)
}

// Parse classifies each line and assembles the record.
func Parse(lines []string) (Record, error) {
	var (
		rec  Record
		prev = KindSkip
		seen = map[Kind]bool{}
	)

	for n, raw := range lines {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		kind := Classify(line)
		lineNo := n + 1

		switch kind {
		case KindSkip:
			continue
		case KindInvalid:
			return Record{}, errors.New(errors.ErrCodeParse, "line %d: unrecognized record line %q", lineNo, abbreviate(line))
		}

		if kind == KindStructure && seen[KindStructure] && emptyMask(line, rec, prev) {
			kind = KindHighlight
		}

		// Structure and sequence may wrap over consecutive lines.
		continues := kind == prev && (kind == KindStructure || kind == KindSequence)
		if seen[kind] && !continues {
			return Record{}, errors.New(errors.ErrCodeParse, "line %d: duplicate %s line", lineNo, kind)
		}
		seen[kind] = true
		prev = kind

		switch kind {
		case KindName:
			rec.Name = strings.TrimSpace(line[1:])
		case KindStructure:
			rec.Structure += line
			rec.HasStructure = true
		case KindSequence:
			rec.Sequence += line
			rec.HasSequence = true
		case KindHighlight:
			rec.Highlight = line
			rec.HasHighlight = true
		}
	}
	return rec, nil
}

// String renders the record back into the text format accepted by Parse.
func (r Record) String() string {
	var b strings.Builder
	if r.Name != "" {
		b.WriteString(">" + r.Name + "\n")
	}
	if r.HasSequence {
		b.WriteString(r.Sequence + "\n")
	}
	if r.HasStructure {
		b.WriteString(r.Structure + "\n")
	}
	if r.HasHighlight {
		b.WriteString(r.Highlight + "\n")
	}
	return b.String()
}

// Length returns the number of positions the record describes, taken from
// the structure when present and from the sequence otherwise.
func (r Record) Length() int {
	if r.HasStructure {
		return len(r.Structure)
	}
	return len(r.Sequence)
}

func isStructure(s string) bool {
	for i := 0; i < len(s); i++ {
		if !rna.IsStructureChar(s[i]) {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// emptyMask reports whether an all-dot line seen after the structure is a
// highlight mask without digits rather than more structure. It is a mask
// unless it directly continues a structure that is still shorter than the
// sequence.
func emptyMask(line string, rec Record, prev Kind) bool {
	if strings.Trim(line, ".") != "" {
		return false
	}
	if prev != KindStructure {
		return true
	}
	return rec.HasSequence && len(rec.Structure) >= len(rec.Sequence)
}

// isMask reports whether s is a positional highlight mask: at least one
// digit and otherwise only placeholder characters.
func isMask(s string) bool {
	digit := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			digit = true
		case c == '.' || c == '_' || c == '-':
		default:
			return false
		}
	}
	return digit
}

func abbreviate(s string) string {
	const max = 40
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
