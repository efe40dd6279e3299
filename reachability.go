package automaton

// AccessibleStates returns every state reachable from q by following
// any sequence of transitions over letters of A's alphabet, including
// '#' if present in Σ — '#' is treated like any other letter here,
// which is deliberate: the closure constructions below insert '#'
// transitions that must participate in reachability.
//
// Frontier-based breadth expansion.
func AccessibleStates(a *Automaton, q int) *IntSet {
	reached := NewIntSet(q)
	frontier := NewIntSet(q)
	letters := a.alphabet.Slice()
	for !frontier.Empty() {
		next := NewIntSet()
		frontier.ForEach(func(p int) {
			for _, c := range letters {
				a.Neighbors(p, byte(c)).ForEach(func(d int) { next.Add(d) })
			}
		})
		frontier = next.Difference(reached)
		reached = reached.Union(frontier)
	}
	return reached
}

// AccessibleAutomaton returns a restricted to the states reachable
// from some initial state: dropped states lose their transitions,
// initial/final membership, and identity entirely.
func AccessibleAutomaton(a *Automaton) *Automaton {
	reachable := NewIntSet()
	a.initials.ForEach(func(i int) {
		AccessibleStates(a, i).ForEach(func(q int) { reachable.Add(q) })
	})
	return restrictTo(a, reachable)
}

// CoAccessibleAutomaton returns a restricted to the states that can
// reach some final state. Implemented via Mirror: co-accessible in A
// is accessible-from-finals in Mirror(A).
func CoAccessibleAutomaton(a *Automaton) *Automaton {
	m := Mirror(a)
	coAccessible := NewIntSet()
	m.initials.ForEach(func(i int) {
		AccessibleStates(m, i).ForEach(func(q int) { coAccessible.Add(q) })
	})
	return restrictTo(a, coAccessible)
}

// restrictTo returns a fresh automaton containing only the states in
// keep: transitions whose origin or destination falls outside keep
// are dropped, as are initial/final entries outside keep.
func restrictTo(a *Automaton, keep *IntSet) *Automaton {
	out := NewAutomaton()
	for _, c := range a.alphabet.Slice() {
		out.AddLetter(byte(c))
	}
	keep.ForEach(func(q int) {
		out.AddState(q)
		if a.IsInitial(q) {
			out.AddInitial(q)
		}
		if a.IsFinal(q) {
			out.AddFinal(q)
		}
	})
	a.ForEachTransition(func(p int, c byte, q int) {
		if keep.Has(p) && keep.Has(q) {
			out.AddTransition(p, c, q)
		}
	})
	return out
}
