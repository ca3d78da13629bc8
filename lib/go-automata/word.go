package automata

// NewWord builds an automaton accepting exactly word and nothing else.
// The automaton is a chain of len(word)+1 states: state i means "the
// first i bytes matched" and the last state is the only accepting one.
// Any deviation from the chain traps, so prefixes, extensions and the
// empty input are all rejected. NewWord("") accepts only the empty
// input.
func NewWord(word string) *DFA {
	d := New(len(word) + 1)
	for i := 0; i < len(word); i++ {
		d.AddTransition(State(i), word[i], State(i+1))
	}
	d.MarkAccepting(State(len(word)))
	return d
}
