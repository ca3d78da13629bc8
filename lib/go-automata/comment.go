package automata

// Comment automaton states. Numbering is part of the recognizer shape:
// 0 is Initial and 3 is the single accepting state shared by all three
// comment styles.
const (
	stateStart     State = 0 // nothing consumed yet
	stateSlash     State = 1 // saw '/', expecting the second one
	stateLineBody  State = 2 // inside a line comment, waiting for '\n'
	stateClosed    State = 3 // comment closed, accepting
	stateBraceBody State = 4 // inside a brace comment, waiting for '}'
	stateParen     State = 5 // saw '(', expecting '*'
	stateStarBody  State = 6 // inside a star comment, waiting for '*'
	stateStarClose State = 7 // saw '*' inside a star comment, ')' closes
)

// CommentDFA accepts exactly one complete comment in any of the three
// styles: a line comment from "//" to a mandatory '\n', a brace
// comment from '{' to '}' and a star comment from "(*" to "*)". Body
// states loop on arbitrary bytes, which a sparse table cannot express,
// so Step augments the base table with hard-coded rules for them.
//
// Comments do not nest: the first closing sequence ends the comment,
// "{ a { b }" is accepted as a whole. Input after the closing sequence
// traps, a closed comment followed by anything is not a comment.
type CommentDFA struct {
	*DFA
}

// NewComment builds the comment automaton. The table carries the fixed
// skeleton of the three styles; the looping body rules live in Step.
func NewComment() *CommentDFA {
	d := New(8)

	d.AddTransition(stateStart, '/', stateSlash)
	d.AddTransition(stateSlash, '/', stateLineBody)
	d.AddTransition(stateLineBody, '\n', stateClosed)

	d.AddTransition(stateStart, '{', stateBraceBody)
	d.AddTransition(stateBraceBody, '}', stateClosed)

	d.AddTransition(stateStart, '(', stateParen)
	d.AddTransition(stateParen, '*', stateStarBody)

	d.MarkAccepting(stateClosed)
	return &CommentDFA{DFA: d}
}

// Step consumes one input byte. The body states consume any byte
// except their closing sequence, so they are resolved here; every
// other state falls through to the table lookup, including Trap
// absorption and the trap-on-missing-edge rule.
func (c *CommentDFA) Step(letter byte) {
	switch c.current {
	case stateLineBody:
		if letter == '\n' {
			c.current = stateClosed
		}
	case stateBraceBody:
		if letter == '}' {
			c.current = stateClosed
		}
	case stateStarBody:
		if letter == '*' {
			c.current = stateStarClose
		}
	case stateStarClose:
		switch letter {
		case ')':
			c.current = stateClosed
		case '*':
			// Another '*' keeps the closing candidate alive: "(**)"
			// and "(* a ** b *)" are both complete comments.
		default:
			c.current = stateStarBody
		}
	default:
		c.DFA.Step(letter)
	}
}

// Run resets the automaton, consumes input byte by byte and reports
// whether the automaton ends in an accepting state. Redeclared so the
// loop drives CommentDFA.Step and not the embedded table-only one.
func (c *CommentDFA) Run(input string) bool {
	return run(c, input)
}

// Graph extends the table edges with the rules hard-coded in Step.
// Looping body transitions are labeled "other": they fire for any byte
// not covered by an explicit edge of the same state.
func (c *CommentDFA) Graph() *Graph {
	g := c.DFA.Graph()
	g.Edges = append(g.Edges,
		Edge{From: stateLineBody, To: stateLineBody, Label: "other"},
		Edge{From: stateBraceBody, To: stateBraceBody, Label: "other"},
		Edge{From: stateStarBody, To: stateStarClose, Label: "*"},
		Edge{From: stateStarBody, To: stateStarBody, Label: "other"},
		Edge{From: stateStarClose, To: stateClosed, Label: ")"},
		Edge{From: stateStarClose, To: stateStarClose, Label: "*"},
		Edge{From: stateStarClose, To: stateStarBody, Label: "other"},
	)
	sortEdges(g.Edges)
	return g
}
