package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcatenationBasic(t *testing.T) {
	a1 := chainAutomaton("ab")
	a2 := chainAutomaton("cd")

	c := Concatenation(a1, a2)
	assert.True(t, Accepts(c, []byte("abcd")))
	assert.False(t, Accepts(c, []byte("ab")))
	assert.False(t, Accepts(c, []byte("cd")))
	assert.False(t, Accepts(c, []byte("abc")))
}

func TestConcatenationWithEpsilonSecondOperand(t *testing.T) {
	a1 := chainAutomaton("ab")
	eps := EmptyWordAutomaton()

	c := Concatenation(a1, eps)
	assert.True(t, Accepts(c, []byte("ab")))
	assert.False(t, Accepts(c, []byte("abz")))
}

func TestConcatenationOverlappingStateIDs(t *testing.T) {
	// Both operands use the exact same small state-id range; the
	// disjointness offset must still keep them apart.
	a1 := NewAutomaton()
	a1.AddInitial(0)
	a1.AddFinal(1)
	a1.AddTransition(0, 'x', 1)

	a2 := NewAutomaton()
	a2.AddInitial(0)
	a2.AddFinal(1)
	a2.AddTransition(0, 'y', 1)

	c := Concatenation(a1, a2)
	assert.True(t, Accepts(c, []byte("xy")))
	assert.False(t, Accepts(c, []byte("x")))
	assert.False(t, Accepts(c, []byte("y")))
}

// Concatenation associativity:
// L(concat(concat(a,b),c)) = L(concat(a,concat(b,c))).
func TestConcatenationAssociativity(t *testing.T) {
	a := chainAutomaton("a")
	b := chainAutomaton("b")
	c := chainAutomaton("c")

	left := Concatenation(Concatenation(a, b), c)
	right := Concatenation(a, Concatenation(b, c))

	assert.True(t, sameLanguageUpTo(left, right, []byte{'a', 'b', 'c'}, 5))
	assert.ElementsMatch(t, []string{"abc"}, languageOf(left, []byte{'a', 'b', 'c'}, 5))
}
