package automaton

// Mirror returns the automaton of reversed words: Q, Σ unchanged,
// I and F swapped, and (p,c,q) ∈ Δ_A iff (q,c,p) ∈ Δ_Mirror(A).
//
// Built by iterating every transition of the source and inserting its
// reverse.
func Mirror(a *Automaton) *Automaton {
	out := NewAutomaton()
	for _, c := range a.alphabet.Slice() {
		out.AddLetter(byte(c))
	}
	for _, q := range a.states.Slice() {
		out.AddState(q)
	}
	a.initials.ForEach(out.AddFinal)
	a.finals.ForEach(out.AddInitial)
	a.ForEachTransition(func(p int, c byte, q int) {
		out.AddTransition(q, c, p)
	})
	return out
}
