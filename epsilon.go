package automaton

// epsilonClosure returns every state reachable from q by following
// only '#'-labeled transitions, reflexively and transitively.
func epsilonClosure(a *Automaton, q int) *IntSet {
	reached := NewIntSet(q)
	frontier := NewIntSet(q)
	for !frontier.Empty() {
		next := NewIntSet()
		frontier.ForEach(func(p int) {
			a.Neighbors(p, Epsilon).ForEach(func(d int) { next.Add(d) })
		})
		frontier = next.Difference(reached)
		reached = reached.Union(frontier)
	}
	return reached
}

// foldEpsilon returns a copy of a in which every real-letter
// transition reachable by first skipping through zero or more epsilon
// edges has been materialized as a direct transition from the
// skipping state, and every state whose epsilon-closure meets F has
// been marked final.
//
// DeltaStar/Accepts never expand epsilon on their own, so a
// construction whose correctness depends on an epsilon skip being
// usable mid-run has to fold that skip into a real transition up
// front instead of leaning on recognition to follow it. Subword and
// SuperWord both call foldEpsilon once, after their own epsilon edges
// and initial/final marking are in place, so that plain Accepts/
// DeltaStar over their output need no special-casing of '#' at all.
func foldEpsilon(a *Automaton) *Automaton {
	out := a.Copy()
	a.states.ForEach(func(p int) {
		ec := epsilonClosure(a, p)
		ec.ForEach(func(r int) {
			if a.finals.Has(r) {
				out.AddFinal(p)
			}
			for _, c := range a.alphabet.Slice() {
				if byte(c) == Epsilon {
					continue
				}
				a.Neighbors(r, byte(c)).ForEach(func(t int) {
					out.AddTransition(p, byte(c), t)
				})
			}
		})
	})
	return out
}
