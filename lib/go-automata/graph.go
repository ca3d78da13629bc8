package automata

import (
	"fmt"
	"sort"
)

// Edge is a single labeled transition of a Graph.
type Edge struct {
	From  State
	To    State
	Label string
}

// Graph is a renderable description of an automaton: the full state
// set, the accepting subset and every transition with a printable
// label. Trap and the implicit edges leading into it are omitted,
// otherwise diagrams drown in rejection arrows.
type Graph struct {
	Start     State
	States    []State
	Accepting []State
	Edges     []Edge
}

// Graph returns the automaton description built from the transition
// table. States are listed in numbering order and edges are sorted by
// source state and label, so the output is deterministic.
func (d *DFA) Graph() *Graph {
	g := &Graph{
		Start:     Initial,
		States:    make([]State, 0, d.numStates),
		Accepting: make([]State, 0, len(d.accepting)),
		Edges:     make([]Edge, 0, len(d.transitions)),
	}
	for s := 0; s < d.numStates; s++ {
		g.States = append(g.States, State(s))
	}
	for s := range d.accepting {
		g.Accepting = append(g.Accepting, s)
	}
	sort.Slice(g.Accepting, func(i, j int) bool { return g.Accepting[i] < g.Accepting[j] })

	for key, to := range d.transitions {
		g.Edges = append(g.Edges, Edge{From: key.state, To: to, Label: symbolLabel(key.symbol)})
	}
	sortEdges(g.Edges)
	return g
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		if edges[i].To != edges[j].To {
			return edges[i].To < edges[j].To
		}
		return edges[i].Label < edges[j].Label
	})
}

// symbolLabel returns a printable form of an input byte for diagrams.
func symbolLabel(symbol byte) string {
	switch symbol {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case ' ':
		return "space"
	}
	if symbol < '!' || symbol > '~' {
		return fmt.Sprintf("0x%02x", symbol)
	}
	return string(symbol)
}
