package automaton

import "sort"

// transKey is the key of the transition index: an origin state and a
// letter. Keys compare lexicographically, origin first, letter second.
type transKey struct {
	origin int
	letter int
}

func (a transKey) less(b transKey) bool {
	if a.origin != b.origin {
		return a.origin < b.origin
	}
	return a.letter < b.letter
}

// transMap is the ordered map from (origin, letter) to the set of
// destination states. It never holds a key whose value is the empty
// set: Add only ever grows a destination set, and RemoveDest prunes
// the key outright once its destination set empties.
type transMap struct {
	m map[transKey]*IntSet
}

func newTransMap() *transMap {
	return &transMap{m: make(map[transKey]*IntSet)}
}

// Get returns the destination set for key, or nil if absent. The
// returned set is borrowed, not owned.
func (t *transMap) Get(k transKey) *IntSet {
	if t == nil {
		return nil
	}
	return t.m[k]
}

// Add inserts dest into the destination set for key, creating the
// entry if needed.
func (t *transMap) Add(k transKey, dest int) {
	s, ok := t.m[k]
	if !ok {
		s = NewIntSet()
		t.m[k] = s
	}
	s.Add(dest)
}

// pruneIfEmpty removes the key if its destination set is empty.
func (t *transMap) pruneIfEmpty(k transKey) {
	if s, ok := t.m[k]; ok && s.Empty() {
		delete(t.m, k)
	}
}

// RemoveDest removes dest from the destination set of key, pruning the
// key entirely if the set becomes empty.
func (t *transMap) RemoveDest(k transKey, dest int) {
	if s, ok := t.m[k]; ok {
		s.Remove(dest)
		t.pruneIfEmpty(k)
	}
}

// Len returns the number of distinct keys.
func (t *transMap) Len() int {
	if t == nil {
		return 0
	}
	return len(t.m)
}

// Keys returns the keys in ascending (origin, letter) order.
func (t *transMap) Keys() []transKey {
	if t == nil {
		return nil
	}
	keys := make([]transKey, 0, len(t.m))
	for k := range t.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

// ForEach visits every (origin, letter, destination) triple exactly
// once, in ascending order.
func (t *transMap) ForEach(f func(origin, letter, dest int)) {
	for _, k := range t.Keys() {
		for _, d := range t.m[k].Slice() {
			f(k.origin, k.letter, d)
		}
	}
}

// Copy returns a fresh, independent transMap with the same contents.
func (t *transMap) Copy() *transMap {
	out := newTransMap()
	if t == nil {
		return out
	}
	for k, s := range t.m {
		out.m[k] = s.Copy()
	}
	return out
}
