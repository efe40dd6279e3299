package automaton

// enumerateWords returns every word over alphabet of length 0..maxLen,
// shortest first. Used by the language-equality tests below, which
// compare automata by brute-force enumeration up to a bounded length.
func enumerateWords(alphabet []byte, maxLen int) [][]byte {
	words := [][]byte{{}}
	frontier := [][]byte{{}}
	for l := 0; l < maxLen; l++ {
		var next [][]byte
		for _, w := range frontier {
			for _, c := range alphabet {
				nw := make([]byte, len(w)+1)
				copy(nw, w)
				nw[len(w)] = c
				next = append(next, nw)
				words = append(words, nw)
			}
		}
		frontier = next
	}
	return words
}

// sameLanguageUpTo reports whether a1 and a2 accept exactly the same
// words of length 0..maxLen over alphabet.
func sameLanguageUpTo(a1, a2 *Automaton, alphabet []byte, maxLen int) bool {
	for _, w := range enumerateWords(alphabet, maxLen) {
		if Accepts(a1, w) != Accepts(a2, w) {
			return false
		}
	}
	return true
}

// languageOf returns, as strings, every word of length 0..maxLen over
// alphabet accepted by a.
func languageOf(a *Automaton, alphabet []byte, maxLen int) []string {
	var out []string
	for _, w := range enumerateWords(alphabet, maxLen) {
		if Accepts(a, w) {
			out = append(out, string(w))
		}
	}
	return out
}
