package automaton

// Prefix returns the automaton accepting every prefix of every word
// of L(A): for each state q whose reachable set meets F, q becomes
// final. Once a run reaches such a q, halting must accept.
func Prefix(a *Automaton) *Automaton {
	b := a.Copy()
	b.states.ForEach(func(q int) {
		if meetsFinal(a, q) {
			b.AddFinal(q)
		}
	})
	return b
}

// Suffix returns the automaton accepting every suffix of every word of
// L(A): for each state q whose reachable set meets F, q becomes
// initial — a suffix is obtained by starting anywhere still useful.
func Suffix(a *Automaton) *Automaton {
	b := a.Copy()
	b.states.ForEach(func(q int) {
		if meetsFinal(a, q) {
			b.AddInitial(q)
		}
	})
	return b
}

// Factor returns the automaton accepting every factor (contiguous
// middle segment) of every word of L(A): a factor is a prefix of a
// suffix, so qualifying states become both initial and final.
func Factor(a *Automaton) *Automaton {
	b := a.Copy()
	b.states.ForEach(func(q int) {
		if meetsFinal(a, q) {
			b.AddInitial(q)
			b.AddFinal(q)
		}
	})
	return b
}

// Subword returns the automaton accepting every subsequence of every
// word of L(A). A subword is a factor with letters allowed to be
// skipped; skipping is modelled by an epsilon jump from q to any
// later reachable state q'.
func Subword(a *Automaton) *Automaton {
	b := a.Copy()
	b.states.ForEach(func(q int) {
		reach := AccessibleStates(a, q)
		reach.ForEach(func(qp int) {
			b.AddEpsilon(q, qp)
			if a.finals.Has(qp) {
				b.AddInitial(q)
				b.AddFinal(q)
			}
		})
	})
	// The epsilon skips above are load-bearing for recognition (a run
	// must be able to consume a letter, skip ahead, and consume the
	// next); fold them into real transitions so plain Accepts/
	// DeltaStar — which never expand '#' — still work. See foldEpsilon.
	return foldEpsilon(b)
}

// meetsFinal reports whether some state reachable from q (in a, the
// original, un-modified automaton) is final.
func meetsFinal(a *Automaton, q int) bool {
	hit := false
	AccessibleStates(a, q).ForEach(func(r int) {
		if a.finals.Has(r) {
			hit = true
		}
	})
	return hit
}
