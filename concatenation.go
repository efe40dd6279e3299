package automaton

// Concatenation returns the automaton accepting L(a1)·L(a2).
//
// a2's states are translated by a deterministic offset that makes them
// disjoint from a1's, regardless of whether the two operands' state
// ids happened to overlap. Every final of a1 is then grafted with the
// outgoing behavior of every initial of the translated a2: for each
// transition (i',c,q) out of a translated initial i', add (f,c,q) for
// every final f of a1.
func Concatenation(a1, a2 *Automaton) *Automaton {
	offset := a1.MaxState() + 1 - a2.MinState()
	a2t := a2.Translate(offset)

	c := a1.Copy()
	for _, l := range a2t.alphabet.Slice() {
		c.AddLetter(byte(l))
	}
	for _, q := range a2t.states.Slice() {
		c.AddState(q)
	}
	a2t.ForEachTransition(func(p int, ch byte, q int) {
		c.AddTransition(p, ch, q)
	})

	a1.finals.ForEach(func(f int) {
		a2t.initials.ForEach(func(ip int) {
			for _, l := range a2t.alphabet.Slice() {
				a2t.Neighbors(ip, byte(l)).ForEach(func(q int) {
					c.AddTransition(f, byte(l), q)
				})
			}
		})
	})

	epsilonInL2 := acceptsEmptyWord(a2t)
	c.finals = NewIntSet()
	a2t.finals.ForEach(c.AddFinal)
	if epsilonInL2 {
		a1.finals.ForEach(c.AddFinal)
	}

	c.initials = NewIntSet()
	a1.initials.ForEach(c.AddInitial)

	return c
}

// acceptsEmptyWord reports whether some initial of a is also final —
// i.e. whether ε ∈ L(a).
func acceptsEmptyWord(a *Automaton) bool {
	hit := false
	a.initials.ForEach(func(q int) {
		if a.finals.Has(q) {
			hit = true
		}
	})
	return hit
}
