package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingEdgeTraps(t *testing.T) {
	d := New(2)
	d.AddTransition(Initial, 'a', 1)

	d.Step('b')
	assert.EqualValues(t, Trap, d.Current())
}

func TestTrapAbsorbs(t *testing.T) {
	d := New(2)
	d.AddTransition(Initial, 'a', 1)
	d.AddTransition(1, 'b', Initial)
	d.MarkAccepting(1)

	d.Step('x')
	assert.EqualValues(t, Trap, d.Current())

	// Even bytes with edges elsewhere in the table must not revive
	// a trapped automaton.
	for i, letter := range []byte{'a', 'b', 0x00, 0xff} {
		d.Step(letter)
		assert.EqualValuesf(t, Trap, d.Current(), "Failed #%d:", i)
	}
	assert.False(t, d.IsAccepting())
}

func TestEmptyInput(t *testing.T) {
	d := New(1)
	assert.False(t, d.Run(""))

	d.MarkAccepting(Initial)
	assert.True(t, d.Run(""))
}

func TestRunResets(t *testing.T) {
	d := New(2)
	d.AddTransition(Initial, 'a', 1)
	d.MarkAccepting(1)

	assert.False(t, d.Run("ab"))
	assert.True(t, d.Run("a"))
	assert.True(t, d.Run("a"))
}

func TestResetClearsTrap(t *testing.T) {
	d := New(2)
	d.AddTransition(Initial, 'a', 1)

	d.Step('z')
	assert.EqualValues(t, Trap, d.Current())

	d.Reset()
	assert.EqualValues(t, Initial, d.Current())
	d.Step('a')
	assert.EqualValues(t, State(1), d.Current())
}

func TestStepwiseEqualsRun(t *testing.T) {
	inputs := []string{"", "a", "ab", "abb", "x", "aab"}

	d := New(3)
	d.AddTransition(Initial, 'a', 1)
	d.AddTransition(1, 'b', 2)
	d.AddTransition(2, 'b', 2)
	d.MarkAccepting(2)

	for i, input := range inputs {
		d.Reset()
		for j := 0; j < len(input); j++ {
			d.Step(input[j])
		}
		stepped := d.IsAccepting()
		assert.EqualValuesf(t, d.Run(input), stepped, "Failed #%d:", i)
	}
}

func TestGraph(t *testing.T) {
	d := New(3)
	d.AddTransition(Initial, 'a', 1)
	d.AddTransition(1, 'b', 2)
	d.AddTransition(1, '\n', Initial)
	d.MarkAccepting(2)

	g := d.Graph()
	assert.EqualValues(t, Initial, g.Start)
	assert.EqualValues(t, []State{0, 1, 2}, g.States)
	assert.EqualValues(t, []State{2}, g.Accepting)
	assert.EqualValues(t, []Edge{
		{From: 0, To: 1, Label: "a"},
		{From: 1, To: 0, Label: `\n`},
		{From: 1, To: 2, Label: "b"},
	}, g.Edges)
}
