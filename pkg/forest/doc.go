// Package forest turns a pair table into the ordered forest of nested
// structural elements that the layout engine walks.
//
// # Arena
//
// Nodes live in a single slice and refer to each other by index. The arena
// is ordered breadth-first, so the children of every node occupy the
// contiguous range Nodes[First:End] and the roots occupy Nodes[:Roots]:
//
//	f, _ := forest.Build(pt)
//	for _, root := range f.RootIndices() {
//	    for _, c := range f.ChildIndices(root) {
//	        ...
//	    }
//	}
//
// There are no pointers between nodes, which keeps a Forest trivially
// serializable for golden tests and the JSON sink.
//
// # Pseudoknots
//
// A pair whose closing position lies beyond the closing position of the
// pair currently enclosing it crosses that pair. Both of its positions
// enter the forest as unpaired leaves, keeping the forest planar. The pair
// table is not changed, so renderers still see the crossing pair.
package forest
