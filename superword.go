package automaton

// SuperWord returns the automaton accepting every word that contains
// some word of L(a) as a subsequence ("sub-word" in this library's
// sense — not substring), over the alphabet Σ(a) ∪ extra.
//
// A fresh initial sInit (lower than any state of a) and a fresh final
// sFinal (higher than any state of a) each self-loop on every letter
// of the combined alphabet. Every transition (p,c,q) of a is routed
// through a fresh auxiliary state x: (p,c,x), self-loops on x over
// the combined alphabet, and an epsilon edge x→q. sInit connects by
// epsilon to every original initial, and every original final connects
// by epsilon to sFinal.
func SuperWord(a *Automaton, extra *IntSet) *Automaton {
	lo, hi := a.MinState(), a.MaxState()
	if a.states.Empty() {
		lo, hi = 0, -1
	}
	sInit := lo - 1
	sFinal := hi + 1

	combined := a.alphabet.Copy()
	if extra != nil {
		extra.ForEach(func(c int) { combined.Add(c) })
	}

	out := NewAutomaton()
	combined.ForEach(func(c int) { out.AddLetter(byte(c)) })
	for _, q := range a.states.Slice() {
		out.AddState(q)
	}
	out.AddInitial(sInit)
	out.AddFinal(sFinal)

	selfLoop := func(q int) {
		combined.ForEach(func(c int) { out.AddTransition(q, byte(c), q) })
	}
	selfLoop(sInit)
	selfLoop(sFinal)

	next := hi + 2
	a.ForEachTransition(func(p int, c byte, q int) {
		x := next
		next++
		out.AddTransition(p, c, x)
		selfLoop(x)
		out.AddEpsilon(x, q)
	})

	a.initials.ForEach(func(i int) { out.AddEpsilon(sInit, i) })
	a.finals.ForEach(func(f int) { out.AddEpsilon(f, sFinal) })

	// Every consumed letter of the original word is followed by an
	// epsilon jump off its auxiliary state; fold those skips into real
	// transitions so plain Accepts/DeltaStar (which never expand '#')
	// still recognize the intended language. See foldEpsilon.
	return foldEpsilon(out)
}
