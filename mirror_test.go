package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// mirror(mirror(A)) recognises the same language as A, and has the
// same state set.
func TestMirrorInvolution(t *testing.T) {
	a := NewAutomaton()
	a.AddInitial(1)
	a.AddFinal(3)
	a.AddTransition(1, 'a', 2)
	a.AddTransition(2, 'b', 3)
	a.AddTransition(2, 'a', 2)

	mm := Mirror(Mirror(a))

	assert.True(t, a.States().Equal(mm.States()))
	assert.True(t, sameLanguageUpTo(a, mm, []byte{'a', 'b'}, 5))
}

func TestMirrorReversesWords(t *testing.T) {
	a := NewAutomaton()
	a.AddInitial(1)
	a.AddFinal(3)
	a.AddTransition(1, 'a', 2)
	a.AddTransition(2, 'b', 3)

	m := Mirror(a)
	assert.True(t, Accepts(a, []byte("ab")))
	assert.True(t, Accepts(m, []byte("ba")))
	assert.False(t, Accepts(m, []byte("ab")))
}
