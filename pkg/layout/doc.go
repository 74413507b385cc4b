// Package layout computes 2-D coordinates for every position of a secondary
// structure.
//
// # Algorithm
//
// [Layout] walks a [forest.Forest] and places one circle ("bubble") of
// radius r per position. Neighbouring and paired bubbles touch, so every
// pair and every backbone step inside a root element spans 2r.
//
// Top-level elements sit on a straight backbone through the origin running
// in the start direction; root stems grow perpendicular to it. Each root
// stem is pushed along the backbone until its whole subtree clears the
// previous element by 2r, so neighbouring domains never collide. A stem
// continues straight while each pair encloses exactly one other pair. Any
// other content closes a loop: the closing pair, the unpaired positions and
// both bases of every branching stem become vertices of a regular polygon
// with side 2r. For m vertices the circumradius is
//
//	R = r / sin(π/m)
//
// which is the smallest circle on which m bubbles of radius r fit without
// overlapping. Each branching stem continues radially outward from the loop
// centre.
//
// The placement is closed-form and deterministic: the same forest, sequence,
// radius and start angle always yield the same coordinates.
//
// # Mirroring
//
// [Mirror] reflects finished bubbles about the layout origin.
package layout
