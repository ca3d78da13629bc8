package automata

// State identifies a single automaton state.
type State int

const (
	// Initial is the state every automaton starts in.
	Initial State = 0
	// Trap is the absorbing rejecting state: once entered it is never
	// left, whatever input follows.
	Trap State = -1
)

// stateSymbol is a transition table key: the pair (state, input byte).
type stateSymbol struct {
	state  State
	symbol byte
}

// Automaton is a deterministic finite automaton over bytes. The set of
// implementations is closed: DFA covers everything a sparse transition
// table can express, CommentDFA adds the state-dependent rules a table
// cannot.
type Automaton interface {
	// Reset returns the automaton to the initial state.
	Reset()
	// Step consumes one input byte, never failing: input without a
	// transition moves the automaton to Trap.
	Step(letter byte)
	// Current returns the state the automaton is in.
	Current() State
	// IsAccepting reports whether the current state is accepting.
	IsAccepting() bool
	// Run resets the automaton, consumes input byte by byte and
	// reports whether the automaton ends in an accepting state.
	Run(input string) bool
	// Graph returns a renderable description of the automaton.
	Graph() *Graph
}

// run is the shared Run loop. It dispatches through the interface so
// that every variant drives its own Step.
func run(a Automaton, input string) bool {
	a.Reset()
	for i := 0; i < len(input); i++ {
		a.Step(input[i])
	}
	return a.IsAccepting()
}

// DFA is the table-driven automaton engine. Transitions are stored
// sparsely: only defined edges are present and every missing edge
// implicitly routes to Trap. The table and the accepting set are fixed
// at construction time; only the current state mutates, so an instance
// must not be shared by concurrent callers.
type DFA struct {
	current   State
	numStates int

	transitions map[stateSymbol]State
	accepting   map[State]struct{}
}

// New creates an automaton with the declared number of states and no
// transitions: until edges are added it accepts nothing and traps on
// the first byte. The state count is declarative, it is not enforced
// during execution.
func New(numStates int) *DFA {
	return &DFA{
		current:     Initial,
		numStates:   numStates,
		transitions: make(map[stateSymbol]State),
		accepting:   make(map[State]struct{}),
	}
}

// AddTransition records the edge (from, symbol) -> to. Construction
// only: the table must not change once the automaton consumes input.
func (d *DFA) AddTransition(from State, symbol byte, to State) {
	d.transitions[stateSymbol{state: from, symbol: symbol}] = to
}

// MarkAccepting adds state to the accepting set. Trap must never be
// marked accepting; this is an invariant of every automaton built here
// and is enforced by tests rather than runtime checks.
func (d *DFA) MarkAccepting(state State) {
	d.accepting[state] = struct{}{}
}

// Reset returns the automaton to the initial state.
func (d *DFA) Reset() {
	d.current = Initial
}

// Step consumes one input byte. When the automaton is trapped the call
// is a no-op, which guarantees absorption. Otherwise the (state, byte)
// pair is looked up in the table and a missing edge routes to Trap.
func (d *DFA) Step(letter byte) {
	if d.current == Trap {
		return
	}

	next, ok := d.transitions[stateSymbol{state: d.current, symbol: letter}]
	if !ok {
		d.current = Trap
		return
	}
	d.current = next
}

// Current returns the state the automaton is in.
func (d *DFA) Current() State {
	return d.current
}

// IsAccepting reports whether the current state is accepting.
func (d *DFA) IsAccepting() bool {
	_, ok := d.accepting[d.current]
	return ok
}

// Run resets the automaton, consumes input byte by byte and reports
// whether the automaton ends in an accepting state.
func (d *DFA) Run(input string) bool {
	return run(d, input)
}

// States returns the declared number of states.
func (d *DFA) States() int {
	return d.numStates
}
