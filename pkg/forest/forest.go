package forest

import (
	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/rna"
)

// Kind distinguishes base-pair nodes from unpaired leaves.
type Kind uint8

const (
	// KindUnpaired is a single unpaired position.
	KindUnpaired Kind = iota
	// KindPair is a base pair enclosing its children.
	KindPair
)

func (k Kind) String() string {
	if k == KindPair {
		return "pair"
	}
	return "unpaired"
}

// None is the index used for "no node".
const None = -1

// Node is one structural element of the forest.
type Node struct {
	Kind    Kind `json:"kind"`
	Pos     int  `json:"pos"`     // opening (or only) position
	Partner int  `json:"partner"` // closing position, rna.Unpaired for leaves
	Parent  int  `json:"parent"`  // None for roots
	First   int  `json:"first"`   // first child index
	End     int  `json:"end"`     // one past the last child index
}

// IsPair reports whether n is a base-pair node.
func (n Node) IsPair() bool { return n.Kind == KindPair }

// ChildCount returns the number of direct children.
func (n Node) ChildCount() int { return n.End - n.First }

// Forest is an arena of nodes whose roots are the top-level elements of a
// structure, in position order.
type Forest struct {
	Nodes  []Node `json:"nodes"`
	Roots  int    `json:"roots"`
	Length int    `json:"length"` // number of positions covered
}

// draft is a node under construction, before the arena is reordered.
type draft struct {
	kind     Kind
	pos      int
	partner  int
	children []int
}

// Build constructs the forest of pt with a single left-to-right scan.
//
// An opening position creates a pair node attached to the top of the stack
// (or to the roots) and pushes it; a closing position pops it; an unpaired
// position becomes a leaf of the top of the stack (or a root).
func Build(pt rna.PairTable) (*Forest, error) {
	var (
		drafts   = make([]draft, 0, len(pt))
		roots    []int
		stack    []int
		crossing = make(map[int]bool)
	)

	attach := func(idx int) {
		if len(stack) == 0 {
			roots = append(roots, idx)
			return
		}
		top := stack[len(stack)-1]
		drafts[top].children = append(drafts[top].children, idx)
	}
	leaf := func(i int) {
		drafts = append(drafts, draft{kind: KindUnpaired, pos: i, partner: rna.Unpaired})
		attach(len(drafts) - 1)
	}

	for i, j := range pt {
		switch {
		case j == rna.Unpaired || crossing[i]:
			leaf(i)

		case j > i:
			if len(stack) > 0 && j > drafts[stack[len(stack)-1]].partner {
				crossing[j] = true
				leaf(i)
				continue
			}
			drafts = append(drafts, draft{kind: KindPair, pos: i, partner: j})
			idx := len(drafts) - 1
			attach(idx)
			stack = append(stack, idx)

		default:
			if len(stack) == 0 {
				return nil, errors.New(errors.ErrCodeInternal, "closing position %d has no open pair", i)
			}
			top := stack[len(stack)-1]
			if drafts[top].pos != j {
				return nil, errors.New(errors.ErrCodeInternal,
					"closing position %d pairs with %d but the innermost open pair starts at %d", i, j, drafts[top].pos)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return nil, errors.New(errors.ErrCodeInternal, "pair at %d never closed", drafts[stack[len(stack)-1]].pos)
	}

	return pack(drafts, roots, len(pt)), nil
}

// pack lays the drafts out breadth-first so that siblings are contiguous.
func pack(drafts []draft, roots []int, length int) *Forest {
	f := &Forest{
		Nodes:  make([]Node, 0, len(drafts)),
		Roots:  len(roots),
		Length: length,
	}

	order := make([]int, 0, len(drafts)) // arena index → draft index
	parents := make([]int, 0, len(drafts))
	for _, r := range roots {
		order = append(order, r)
		parents = append(parents, None)
	}

	for head := 0; head < len(order); head++ {
		d := drafts[order[head]]
		first := len(order)
		for _, c := range d.children {
			order = append(order, c)
			parents = append(parents, head)
		}
		f.Nodes = append(f.Nodes, Node{
			Kind:    d.kind,
			Pos:     d.pos,
			Partner: d.partner,
			Parent:  parents[head],
			First:   first,
			End:     len(order),
		})
	}
	return f
}

// Len returns the number of nodes in the arena.
func (f *Forest) Len() int { return len(f.Nodes) }

// Empty reports whether the forest has no nodes.
func (f *Forest) Empty() bool { return len(f.Nodes) == 0 }

// Node returns the node at arena index i.
func (f *Forest) Node(i int) Node { return f.Nodes[i] }

// RootIndices returns the arena indices of the roots.
func (f *Forest) RootIndices() []int { return indexRange(0, f.Roots) }

// ChildIndices returns the arena indices of the children of node i.
func (f *Forest) ChildIndices(i int) []int {
	n := f.Nodes[i]
	return indexRange(n.First, n.End)
}

// Children returns the child nodes of node i.
func (f *Forest) Children(i int) []Node {
	n := f.Nodes[i]
	return f.Nodes[n.First:n.End]
}

// PositionCount returns the number of sequence positions covered by the
// forest: two per pair node and one per leaf. It always equals Length.
func (f *Forest) PositionCount() int {
	n := 0
	for _, node := range f.Nodes {
		if node.IsPair() {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// PairCount returns the number of pair nodes.
func (f *Forest) PairCount() int {
	n := 0
	for _, node := range f.Nodes {
		if node.IsPair() {
			n++
		}
	}
	return n
}

// Depth returns the maximum nesting depth; roots have depth 1.
func (f *Forest) Depth() int {
	depth := make([]int, len(f.Nodes))
	deepest := 0
	for i, n := range f.Nodes {
		if n.Parent == None {
			depth[i] = 1
		} else {
			depth[i] = depth[n.Parent] + 1
		}
		deepest = max(deepest, depth[i])
	}
	return deepest
}

// Walk visits every node depth-first in position order. Returning false
// from fn skips the node's subtree.
func (f *Forest) Walk(fn func(idx int, n Node, depth int) bool) {
	var visit func(idx, depth int)
	visit = func(idx, depth int) {
		n := f.Nodes[idx]
		if !fn(idx, n, depth) {
			return
		}
		for c := n.First; c < n.End; c++ {
			visit(c, depth+1)
		}
	}
	for r := 0; r < f.Roots; r++ {
		visit(r, 0)
	}
}

func indexRange(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}
