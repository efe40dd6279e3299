package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A recognises exactly "abc"; its prefix/suffix/factor/subword
// closures must each produce the expected language.
func TestStructuralClosuresOfSingleWord(t *testing.T) {
	a := WordAutomaton([]byte("abc"))
	alphabet := []byte{'a', 'b', 'c'}

	assert.ElementsMatch(t, []string{"", "a", "ab", "abc"}, languageOf(Prefix(a), alphabet, 4))
	assert.ElementsMatch(t, []string{"", "c", "bc", "abc"}, languageOf(Suffix(a), alphabet, 4))
	assert.ElementsMatch(t, []string{"", "a", "b", "c", "ab", "bc", "abc"}, languageOf(Factor(a), alphabet, 4))
	assert.ElementsMatch(t,
		[]string{"", "a", "b", "c", "ab", "ac", "bc", "abc"},
		languageOf(Subword(a), alphabet, 4),
	)
}

// L(A) ⊆ L(prefix(A)), and every word of L(prefix(A)) is a prefix of
// some word of L(A).
func TestPrefixClosureMonotonicity(t *testing.T) {
	a := NewAutomaton()
	a.AddInitial(1)
	a.AddFinal(2)
	a.AddFinal(3)
	a.AddTransition(1, 'a', 1)
	a.AddTransition(1, 'b', 2)
	a.AddTransition(2, 'a', 3)

	alphabet := []byte{'a', 'b'}
	original := make(map[string]bool)
	for _, w := range languageOf(a, alphabet, 5) {
		original[w] = true
	}

	p := Prefix(a)
	for w := range original {
		assert.True(t, Accepts(p, []byte(w)), "L(A) must be a subset of L(prefix(A)): %q", w)
	}
	for _, w := range languageOf(p, alphabet, 5) {
		isPrefixOfSome := false
		for orig := range original {
			if len(w) <= len(orig) && orig[:len(w)] == w {
				isPrefixOfSome = true
				break
			}
		}
		assert.True(t, isPrefixOfSome, "%q accepted by prefix(A) is not a prefix of any word of L(A)", w)
	}
}

func TestClosuresNeverPrune(t *testing.T) {
	a := WordAutomaton([]byte("ab"))
	for _, closure := range []func(*Automaton) *Automaton{Prefix, Suffix, Factor, Subword} {
		b := closure(a)
		a.States().ForEach(func(q int) {
			assert.True(t, b.IsState(q))
		})
		a.ForEachTransition(func(p int, c byte, q int) {
			assert.True(t, b.IsTransition(p, c, q))
		})
	}
}
