package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentAccepts(t *testing.T) {
	inputs := []string{
		"//\n",
		"// hello\n",
		"// {(* \n",
		"{}",
		"{ hello }",
		"{ a { b }",
		"{//\n}",
		"(**)",
		"(* hello *)",
		"(* a ** b *)",
		"(***)",
		"(*(*)",
	}

	d := NewComment()
	for i, input := range inputs {
		assert.Truef(t, d.Run(input), "Failed #%d:", i)
	}
}

func TestCommentRejects(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"/",
		"/x",
		"/ /\n",
		"// hello",
		"// a\nb",
		"{",
		"{ hello",
		"{}x",
		"(",
		"(x",
		"(*",
		"(*)",
		"(* hello",
		"(* hello *",
		"(* a *)b",
		"*)",
	}

	d := NewComment()
	for i, input := range inputs {
		assert.Falsef(t, d.Run(input), "Failed #%d:", i)
	}
}

func TestCommentStarClosing(t *testing.T) {
	d := NewComment()

	d.Step('(')
	assert.EqualValues(t, stateParen, d.Current())
	d.Step('*')
	assert.EqualValues(t, stateStarBody, d.Current())

	// ')' right after the opening "(*" is body, not closing.
	d.Step(')')
	assert.EqualValues(t, stateStarBody, d.Current())

	// A '*' run keeps the closing candidate alive.
	d.Step('*')
	assert.EqualValues(t, stateStarClose, d.Current())
	d.Step('*')
	assert.EqualValues(t, stateStarClose, d.Current())

	// Any other byte drops back into the body.
	d.Step('a')
	assert.EqualValues(t, stateStarBody, d.Current())

	d.Step('*')
	d.Step(')')
	assert.EqualValues(t, stateClosed, d.Current())
	assert.True(t, d.IsAccepting())

	// A closed comment does not continue.
	d.Step(' ')
	assert.EqualValues(t, Trap, d.Current())
}

func TestCommentReuse(t *testing.T) {
	d := NewComment()
	assert.False(t, d.Run("{ open"))
	assert.True(t, d.Run("{ closed }"))
	assert.True(t, d.Run("// line\n"))
}

func TestCommentGraph(t *testing.T) {
	g := NewComment().Graph()

	assert.EqualValues(t, Initial, g.Start)
	assert.Len(t, g.States, 8)
	assert.EqualValues(t, []State{stateClosed}, g.Accepting)

	assert.Contains(t, g.Edges, Edge{From: stateStart, To: stateSlash, Label: "/"})
	assert.Contains(t, g.Edges, Edge{From: stateStarBody, To: stateStarClose, Label: "*"})
	assert.Contains(t, g.Edges, Edge{From: stateStarClose, To: stateStarBody, Label: "other"})
	assert.Contains(t, g.Edges, Edge{From: stateBraceBody, To: stateBraceBody, Label: "other"})
}
