package frame

import (
	"sort"

	"github.com/opencar/car/pkg/litsat"
)

// Frame is a set of blocking clauses (spec §3) plus an inverted index from
// literal to the sorted list of element positions that mention it. The
// index is kept in bijection with the element vector at every mutation
// (spec §8 invariant 2).
type Frame struct {
	elements []*Element
	index    map[litsat.Lit][]int
}

// New returns an empty Frame.
func New() *Frame {
	return &Frame{index: make(map[litsat.Lit][]int)}
}

// Len returns the number of elements currently in the frame.
func (f *Frame) Len() int { return len(f.elements) }

// At returns the element at position i.
func (f *Frame) At(i int) *Element { return f.elements[i] }

// Elements returns the frame's elements in insertion order. The returned
// slice is shared with the frame and must not be mutated.
func (f *Frame) Elements() []*Element { return f.elements }

// GetIndexes returns the positions p such that the element at p contains
// every literal of cu — i.e. cu is a (non-strict) subset of that element's
// cube, meaning the element is weaker-or-equal and would be subsumed by
// inserting cu. Implementation follows the source's
// Frame::get_indexes: for each literal in cu, intersect the sorted
// position lists found in the inverted index; an empty lookup for any
// literal means no element can qualify, so the search terminates early
// with an empty result.
func (f *Frame) GetIndexes(cu litsat.Cube) []int {
	var res []int
	for i, l := range cu {
		positions, ok := f.index[l]
		if !ok {
			return nil
		}
		if i == 0 {
			res = append([]int(nil), positions...)
			continue
		}
		res = intersectSorted(res, positions)
		if len(res) == 0 {
			return nil
		}
	}
	return res
}

func intersectSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// Add inserts cu as a new Element at the back of the frame, first removing
// any existing elements it subsumes (elements that are literal-wise
// supersets of cu — spec §8 invariant 1). Add trusts its caller: it does
// not itself verify that cu is implied by the previous frame (spec §4.2
// monotonicity note); that check belongs to the engine's SAT interaction.
//
// Frames own their elements through a de-duplicating map keyed on the
// cube (spec §3 Ownership): if cu already names an existing element
// exactly, that element is returned untouched (same identity, so its
// propagated flag, levels and states survive) rather than being removed
// and recreated — this is what keeps re-inserting an identical cube a
// true no-op (spec §8 boundary behavior).
func (f *Frame) Add(cu litsat.Cube) *Element {
	removed := f.GetIndexes(cu)
	for _, p := range removed {
		if len(f.elements[p].Cube) == len(cu) {
			return f.elements[p]
		}
	}
	if len(removed) > 0 {
		f.removeAt(removed)
	}

	e := NewElement(cu)
	f.elements = append(f.elements, e)
	f.addToIndex(cu, len(f.elements)-1)
	return e
}

// removeAt deletes the elements at the given sorted, ascending positions
// and renumbers the inverted index: positions greater than a removed one
// are decremented by the count of removed positions preceding them, and
// positions equal to a removed one are dropped — ported from
// Frame::update_index_map.
func (f *Frame) removeAt(removed []int) {
	kept := make([]*Element, 0, len(f.elements)-len(removed))
	removedSet := make(map[int]struct{}, len(removed))
	for _, p := range removed {
		removedSet[p] = struct{}{}
	}
	for i, e := range f.elements {
		if _, gone := removedSet[i]; !gone {
			kept = append(kept, e)
		}
	}
	f.elements = kept

	for lit, positions := range f.index {
		var renumbered []int
		for _, p := range positions {
			if _, gone := removedSet[p]; gone {
				continue
			}
			shift := 0
			for _, r := range removed {
				if r < p {
					shift++
				}
			}
			renumbered = append(renumbered, p-shift)
		}
		if len(renumbered) == 0 {
			delete(f.index, lit)
			continue
		}
		f.index[lit] = renumbered
	}
}

func (f *Frame) addToIndex(cu litsat.Cube, pos int) {
	for _, l := range cu {
		positions := f.index[l]
		i := sort.SearchInts(positions, pos)
		positions = append(positions, 0)
		copy(positions[i+1:], positions[i:])
		positions[i] = pos
		f.index[l] = positions
	}
}
