package automaton

// DeltaOne returns Δ(p,c) as a fresh, caller-owned set.
func DeltaOne(a *Automaton, p int, c byte) *IntSet {
	return a.Neighbors(p, c).Copy()
}

// Delta returns ⋃_{p∈S} Δ(p,c) as a fresh set.
func Delta(a *Automaton, s *IntSet, c byte) *IntSet {
	out := NewIntSet()
	s.ForEach(func(p int) {
		a.Neighbors(p, c).ForEach(func(q int) { out.Add(q) })
	})
	return out
}

// DeltaStar returns the set reached from s after consuming every
// letter of w in sequence. If w is empty it returns a copy of s.
// Epsilon is not expanded automatically: a run only ever follows the
// literal bytes of w, so a '#' transition is exercised exactly like
// any other labelled edge — only when w itself contains that byte.
func DeltaStar(a *Automaton, s *IntSet, w []byte) *IntSet {
	cur := s.Copy()
	for _, c := range w {
		cur = Delta(a, cur, c)
	}
	return cur
}

// Accepts reports whether w is recognized by a: whether
// DeltaStar(a, I, w) meets F.
func Accepts(a *Automaton, w []byte) bool {
	reached := DeltaStar(a, a.initials, w)
	accept := false
	reached.ForEach(func(q int) {
		if a.finals.Has(q) {
			accept = true
		}
	})
	return accept
}

// WordAutomaton returns the chain automaton recognizing exactly the
// word w and nothing else: states 1..len(w)+1, initial {1},
// final {len(w)+1}, transitions (i, w[i-1], i+1).
func WordAutomaton(w []byte) *Automaton {
	a := NewAutomaton()
	a.AddInitial(1)
	a.AddFinal(len(w) + 1)
	for i, c := range w {
		a.AddTransition(i+1, c, i+2)
	}
	return a
}

// EmptyWordAutomaton returns Aε, the automaton recognizing exactly the
// empty word: one state, both initial and final, no transitions.
func EmptyWordAutomaton() *Automaton {
	a := NewAutomaton()
	a.AddInitial(0)
	a.AddFinal(0)
	return a
}
