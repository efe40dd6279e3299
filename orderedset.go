package automaton

import "sort"

// IntSet is a duplicate-free, ascending-ordered set of ints. It backs
// every set-valued quantity in this package: states, letters,
// initials, finals, and the destination sets of transitions.
//
// The zero value is an empty, usable set.
type IntSet struct {
	m map[int]struct{}
}

// NewIntSet returns an empty set, optionally seeded with elems.
func NewIntSet(elems ...int) *IntSet {
	s := &IntSet{m: make(map[int]struct{}, len(elems))}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts v into the set. Idempotent.
func (s *IntSet) Add(v int) {
	if s.m == nil {
		s.m = make(map[int]struct{})
	}
	s.m[v] = struct{}{}
}

// Has reports whether v is a member.
func (s *IntSet) Has(v int) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[v]
	return ok
}

// Len returns the number of elements.
func (s *IntSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Remove deletes v from the set, if present.
func (s *IntSet) Remove(v int) {
	if s == nil {
		return
	}
	delete(s.m, v)
}

// Slice returns the elements in ascending order. The returned slice is
// freshly allocated and owned by the caller.
func (s *IntSet) Slice() []int {
	if s == nil {
		return nil
	}
	out := make([]int, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// ForEach visits every element in ascending order.
func (s *IntSet) ForEach(f func(int)) {
	for _, v := range s.Slice() {
		f(v)
	}
}

// Copy returns a fresh, independent set with the same elements.
func (s *IntSet) Copy() *IntSet {
	out := NewIntSet()
	if s == nil {
		return out
	}
	for v := range s.m {
		out.Add(v)
	}
	return out
}

// Union returns a fresh set containing every element of s or other.
func (s *IntSet) Union(other *IntSet) *IntSet {
	out := s.Copy()
	if other != nil {
		for v := range other.m {
			out.Add(v)
		}
	}
	return out
}

// Difference returns a fresh set containing the elements of s that are
// not in other.
func (s *IntSet) Difference(other *IntSet) *IntSet {
	out := NewIntSet()
	if s == nil {
		return out
	}
	for v := range s.m {
		if !other.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Intersect returns a fresh set containing the elements present in
// both s and other.
func (s *IntSet) Intersect(other *IntSet) *IntSet {
	out := NewIntSet()
	if s == nil || other == nil {
		return out
	}
	for v := range s.m {
		if other.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Empty reports whether the set has no elements.
func (s *IntSet) Empty() bool {
	return s.Len() == 0
}

// Equal reports whether s and other contain exactly the same elements.
func (s *IntSet) Equal(other *IntSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for v := range s.m {
		if !other.Has(v) {
			return false
		}
	}
	return true
}
