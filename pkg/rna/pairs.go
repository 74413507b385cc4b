package rna

import (
	"fmt"

	"github.com/matzehuels/rnaviz/pkg/errors"
)

// Unpaired marks a position without a partner in a PairTable.
const Unpaired = -1

// PairTable maps every position to its partner position or Unpaired.
type PairTable []int

// bracketClasses lists the supported bracket pairs. The first class is the
// primary nesting alphabet; the others encode pseudoknots.
var bracketClasses = [...]struct{ open, close byte }{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
	{'<', '>'},
}

// classOf returns the bracket class index of b and whether b opens it.
// A class of -1 means b is not a bracket.
func classOf(b byte) (class int, opening bool) {
	for i, bc := range bracketClasses {
		switch b {
		case bc.open:
			return i, true
		case bc.close:
			return i, false
		}
	}
	return -1, false
}

// IsStructureChar reports whether b belongs to the dot-bracket alphabet.
func IsStructureChar(b byte) bool {
	if b == '.' {
		return true
	}
	c, _ := classOf(b)
	return c >= 0
}

// BuildPairTable matches the brackets of a dot-bracket string.
//
// Each bracket class keeps its own stack: an opener pushes its position and a
// closer pops the stack of its class, recording a symmetric pair. Closing an
// empty stack, leaving an opener unclosed, or using a character outside the
// alphabet fails with an ErrCodeStructure error.
func BuildPairTable(structure string) (PairTable, error) {
	pt := make(PairTable, len(structure))
	var stacks [len(bracketClasses)][]int

	for i := 0; i < len(structure); i++ {
		b := structure[i]
		pt[i] = Unpaired
		if b == '.' {
			continue
		}
		class, opening := classOf(b)
		if class < 0 {
			return nil, errors.New(errors.ErrCodeStructure, "invalid character %q at position %d", b, i)
		}
		if opening {
			stacks[class] = append(stacks[class], i)
			continue
		}
		st := stacks[class]
		if len(st) == 0 {
			return nil, errors.New(errors.ErrCodeStructure, "unmatched %q at position %d", b, i)
		}
		j := st[len(st)-1]
		stacks[class] = st[:len(st)-1]
		pt[i], pt[j] = j, i
	}

	for class, st := range stacks {
		if len(st) > 0 {
			return nil, errors.New(errors.ErrCodeStructure, "unclosed %q at position %d",
				bracketClasses[class].open, st[len(st)-1])
		}
	}
	return pt, nil
}

// Len returns the number of positions.
func (pt PairTable) Len() int { return len(pt) }

// Partner returns the partner of position i, if any.
func (pt PairTable) Partner(i int) (int, bool) {
	if i < 0 || i >= len(pt) || pt[i] == Unpaired {
		return Unpaired, false
	}
	return pt[i], true
}

// Pairs returns every pair once as (i, j) with i < j, ordered by i.
func (pt PairTable) Pairs() [][2]int {
	var pairs [][2]int
	for i, j := range pt {
		if j > i {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

// PairCount returns the number of base pairs.
func (pt PairTable) PairCount() int {
	n := 0
	for i, j := range pt {
		if j > i {
			n++
		}
	}
	return n
}

// Validate checks that the table is a symmetric involution with in-range
// partners. Tables built by BuildPairTable always pass.
func (pt PairTable) Validate() error {
	for i, j := range pt {
		if j == Unpaired {
			continue
		}
		if j < 0 || j >= len(pt) || j == i {
			return errors.New(errors.ErrCodeInternal, "position %d has invalid partner %d", i, j)
		}
		if pt[j] != i {
			return errors.New(errors.ErrCodeInternal, "pair table not symmetric: %d→%d but %d→%d", i, j, j, pt[j])
		}
	}
	return nil
}

// String renders the table back to primary-class dot-bracket notation.
// Pseudoknotted pairs are written with the primary class too, so the result
// is only a faithful round trip for nested structures.
func (pt PairTable) String() string {
	out := make([]byte, len(pt))
	for i, j := range pt {
		switch {
		case j == Unpaired:
			out[i] = '.'
		case j > i:
			out[i] = '('
		default:
			out[i] = ')'
		}
	}
	return string(out)
}

// GoString implements fmt.GoStringer for readable test failures.
func (pt PairTable) GoString() string {
	return fmt.Sprintf("rna.PairTable(%v)", []int(pt))
}
