package automaton

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cznic/strutil"
)

// Dump writes a human-readable, multi-line, labelled description of a
// to w: states, initials, finals, alphabet, transitions — for
// eyeballing, not parsing.
func (a *Automaton) Dump(w io.Writer) {
	f := strutil.IndentFormatter(w, "\t")
	f.Format("States: %v\n", a.states.Slice())
	f.Format("Initials: %v\n", a.initials.Slice())
	f.Format("Finals: %v\n", a.finals.Slice())
	f.Format("Alphabet: %s\n", formatLetters(a.alphabet))
	f.Format("Transitions:\n%i")
	a.ForEachTransition(func(p int, c byte, q int) {
		f.Format("%d %s -> %d\n", p, formatLetter(c), q)
	})
	f.Format("%u")
}

func formatLetters(s *IntSet) string {
	var b bytes.Buffer
	b.WriteByte('[')
	first := true
	s.ForEach(func(c int) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(formatLetter(byte(c)))
	})
	b.WriteByte(']')
	return b.String()
}

func formatLetter(c byte) string {
	if c == Epsilon {
		return "ε"
	}
	return fmt.Sprintf("%q", c)
}

// dumpString renders Dump into a string, used by Automaton.String.
func dumpString(a *Automaton) string {
	var b bytes.Buffer
	a.Dump(&b)
	return b.String()
}
