// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Package automaton builds, inspects, and algebraically transforms
nondeterministic finite-state automata over an 8-bit alphabet.

An automaton is the 6-tuple (Q, Σ, Δ, I, F, ε) of a language-theory
textbook: a finite set of states Q (arbitrary signed integers), an
alphabet Σ of bytes actually in use, a set-valued transition relation
Δ, initial states I, final states F, and a fixed epsilon byte ε used
for silent transitions. Multiple initial states are allowed; Δ(p,c)
may contain more than one destination.

On top of construction and word recognition, the package provides the
closure family of language algebra: Mirror, Accessible/CoAccessible
restriction, Prefix/Suffix/Factor/Subword, SuperWord, Concatenation,
and Shuffle. Each closure consumes one or two automata and returns a
freshly allocated one; none mutates its arguments.

No determinization, minimization, or regular-expression parser is
provided, there is no serialized automaton format, letters are single
bytes (no Unicode), and nothing here is safe for concurrent mutation
of a single automaton — read-only sharing across goroutines is fine.

*/
package automaton

// Epsilon is the reserved byte denoting the empty-word transition.
const Epsilon byte = '#'

// Automaton is a nondeterministic finite-state automaton as described
// in the package doc. The zero value is not usable; construct with
// NewAutomaton.
type Automaton struct {
	states   *IntSet
	alphabet *IntSet
	initials *IntSet
	finals   *IntSet
	trans    *transMap
}

// NewAutomaton returns an empty automaton: no states, no letters, no
// transitions.
func NewAutomaton() *Automaton {
	return &Automaton{
		states:   NewIntSet(),
		alphabet: NewIntSet(),
		initials: NewIntSet(),
		finals:   NewIntSet(),
		trans:    newTransMap(),
	}
}

// AddState adds q to Q. Idempotent.
func (a *Automaton) AddState(q int) {
	a.states.Add(q)
}

// AddLetter adds c to Σ. Idempotent. Epsilon is allowed.
func (a *Automaton) AddLetter(c byte) {
	a.alphabet.Add(int(c))
}

// AddTransition adds (p,c,q) to Δ, implicitly adding p and q to Q and
// c to Σ. Idempotent: adding the same triple twice is a no-op after
// the first.
func (a *Automaton) AddTransition(p int, c byte, q int) {
	a.AddState(p)
	a.AddState(q)
	a.AddLetter(c)
	a.trans.Add(transKey{origin: p, letter: int(c)}, q)
}

// AddEpsilon adds (p,#,q) to Δ. Equivalent to AddTransition(p, Epsilon, q).
func (a *Automaton) AddEpsilon(p, q int) {
	a.AddTransition(p, Epsilon, q)
}

// AddInitial adds q to Q and I.
func (a *Automaton) AddInitial(q int) {
	a.AddState(q)
	a.initials.Add(q)
}

// AddFinal adds q to Q and F.
func (a *Automaton) AddFinal(q int) {
	a.AddState(q)
	a.finals.Add(q)
}

// States returns the borrowed view of Q.
func (a *Automaton) States() *IntSet { return a.states }

// Alphabet returns the borrowed view of Σ.
func (a *Automaton) Alphabet() *IntSet { return a.alphabet }

// Initials returns the borrowed view of I.
func (a *Automaton) Initials() *IntSet { return a.initials }

// Finals returns the borrowed view of F.
func (a *Automaton) Finals() *IntSet { return a.finals }

// IsState reports whether q ∈ Q.
func (a *Automaton) IsState(q int) bool { return a.states.Has(q) }

// IsInitial reports whether q ∈ I.
func (a *Automaton) IsInitial(q int) bool { return a.initials.Has(q) }

// IsFinal reports whether q ∈ F.
func (a *Automaton) IsFinal(q int) bool { return a.finals.Has(q) }

// IsLetter reports whether c ∈ Σ.
func (a *Automaton) IsLetter(c byte) bool { return a.alphabet.Has(int(c)) }

// IsTransition reports whether (p,c,q) ∈ Δ.
func (a *Automaton) IsTransition(p int, c byte, q int) bool {
	s := a.trans.Get(transKey{origin: p, letter: int(c)})
	return s.Has(q)
}

// Neighbors returns Δ(p,c), or an empty set if the key is absent. The
// returned set is borrowed, not owned.
func (a *Automaton) Neighbors(p int, c byte) *IntSet {
	s := a.trans.Get(transKey{origin: p, letter: int(c)})
	if s == nil {
		return NewIntSet()
	}
	return s
}

// ForEachTransition visits every (p,c,q) triple exactly once, in
// ascending (p,c,q) order.
func (a *Automaton) ForEachTransition(f func(p int, c byte, q int)) {
	a.trans.ForEach(func(p, l, q int) { f(p, byte(l), q) })
}

// Copy returns a deep, independent clone: mutating the clone never
// affects a, and vice versa.
func (a *Automaton) Copy() *Automaton {
	return &Automaton{
		states:   a.states.Copy(),
		alphabet: a.alphabet.Copy(),
		initials: a.initials.Copy(),
		finals:   a.finals.Copy(),
		trans:    a.trans.Copy(),
	}
}

// sentinel bounds used by MinState/MaxState on an empty state set.
const (
	maxStateSentinelEmpty = minIntSentinel
	minStateSentinelEmpty = maxIntSentinel
)

// MaxState returns the greatest state id in Q, or a sentinel
// equivalent to −∞ if Q is empty.
func (a *Automaton) MaxState() int {
	states := a.states.Slice()
	if len(states) == 0 {
		return maxStateSentinelEmpty
	}
	max := states[0]
	for _, q := range states[1:] {
		max = maxInt(max, q)
	}
	return max
}

// MinState returns the least state id in Q, or a sentinel equivalent
// to +∞ if Q is empty.
func (a *Automaton) MinState() int {
	states := a.states.Slice()
	if len(states) == 0 {
		return minStateSentinelEmpty
	}
	min := states[0]
	for _, q := range states[1:] {
		min = minInt(min, q)
	}
	return min
}

// Translate returns a fresh automaton with every state id shifted by
// n: q ↦ q+n uniformly across Q, I, F, and Δ. Σ is unchanged.
func (a *Automaton) Translate(n int) *Automaton {
	out := NewAutomaton()
	for _, c := range a.alphabet.Slice() {
		out.AddLetter(byte(c))
	}
	for _, q := range a.states.Slice() {
		out.AddState(q + n)
	}
	for _, q := range a.initials.Slice() {
		out.AddInitial(q + n)
	}
	for _, q := range a.finals.Slice() {
		out.AddFinal(q + n)
	}
	a.ForEachTransition(func(p int, c byte, q int) {
		out.AddTransition(p+n, c, q+n)
	})
	return out
}

// String renders the automaton via Dump, satisfying fmt.Stringer.
func (a *Automaton) String() string {
	return dumpString(a)
}
