package automaton

// Shuffle returns the automaton accepting every interleaving of some
// w1 ∈ L(a1) and some w2 ∈ L(a2):
//
//	shuffle(a·w1, b·w2) = a·shuffle(w1, b·w2) ∪ b·shuffle(a·w1, w2)
//	shuffle(w, ε) = w
//	shuffle(ε, w) = w
//
// States are Q(a1) × Q(a2), flattened to fresh ids by a row-major
// bijection recorded in two index maps. Initials/finals are the
// corresponding products. A transition (p1,c,q1) of a1 lifts to
// ((p1,r),c,(q1,r)) for every r ∈ Q(a2), and symmetrically for a2's
// transitions against every r ∈ Q(a1). No epsilon transitions are
// introduced.
func Shuffle(a1, a2 *Automaton) *Automaton {
	s1 := a1.states.Slice()
	s2 := a2.states.Slice()
	index1 := make(map[int]int, len(s1))
	for i, q := range s1 {
		index1[q] = i
	}
	index2 := make(map[int]int, len(s2))
	for i, q := range s2 {
		index2[q] = i
	}
	n2 := len(s2)
	id := func(q1, q2 int) int { return index1[q1]*n2 + index2[q2] }

	out := NewAutomaton()
	for _, c := range a1.alphabet.Slice() {
		out.AddLetter(byte(c))
	}
	for _, c := range a2.alphabet.Slice() {
		out.AddLetter(byte(c))
	}
	for _, q1 := range s1 {
		for _, q2 := range s2 {
			out.AddState(id(q1, q2))
		}
	}
	a1.initials.ForEach(func(q1 int) {
		a2.initials.ForEach(func(q2 int) { out.AddInitial(id(q1, q2)) })
	})
	a1.finals.ForEach(func(q1 int) {
		a2.finals.ForEach(func(q2 int) { out.AddFinal(id(q1, q2)) })
	})

	a1.ForEachTransition(func(p1 int, c byte, q1 int) {
		for _, r := range s2 {
			out.AddTransition(id(p1, r), c, id(q1, r))
		}
	})
	a2.ForEachTransition(func(p2 int, c byte, q2 int) {
		for _, r := range s1 {
			out.AddTransition(id(r, p2), c, id(r, q2))
		}
	})

	return out
}
