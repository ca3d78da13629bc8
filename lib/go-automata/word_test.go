package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordAccepts(t *testing.T) {
	assert.True(t, NewWord("hello").Run("hello"))
	assert.True(t, NewWord("a").Run("a"))
	assert.True(t, NewWord("привет").Run("привет"))
}

func TestWordRejects(t *testing.T) {
	inputs := []string{
		"",
		"hell",
		"hellos",
		"hhello",
		"Hello",
		"world",
		"hello ",
		" hello",
	}

	d := NewWord("hello")
	for i, input := range inputs {
		assert.Falsef(t, d.Run(input), "Failed #%d:", i)
	}
}

func TestEmptyWord(t *testing.T) {
	d := NewWord("")
	assert.True(t, d.Run(""))
	assert.False(t, d.Run("a"))
	assert.True(t, d.Run(""))
}

func TestWordShape(t *testing.T) {
	d := NewWord("ab")
	assert.EqualValues(t, 3, d.States())

	d.Step('a')
	assert.EqualValues(t, State(1), d.Current())
	d.Step('b')
	assert.EqualValues(t, State(2), d.Current())
	assert.True(t, d.IsAccepting())

	// The word may not continue past its accepting state.
	d.Step('a')
	assert.EqualValues(t, Trap, d.Current())
}
