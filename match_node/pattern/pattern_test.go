package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternValidate(t *testing.T) {
	valid := []*Pattern{
		{Name: "hello", Type: TypeWord, Word: "hello"},
		{Name: "comments", Type: TypeComment},
	}
	for i, p := range valid {
		assert.NoErrorf(t, p.Validate(), "Failed #%d:", i)
	}

	invalid := []*Pattern{
		{Name: "bad", Type: "regexp", Word: "a+"},
		{Name: "empty", Type: TypeWord},
		{Name: "none", Type: ""},
	}
	for i, p := range invalid {
		assert.Errorf(t, p.Validate(), "Failed #%d:", i)
	}
}

func TestPatternAutomaton(t *testing.T) {
	word := &Pattern{Name: "hello", Type: TypeWord, Word: "hello"}
	a, err := word.Automaton()
	assert.NoError(t, err)
	assert.True(t, a.Run("hello"))
	assert.False(t, a.Run("hell"))

	comment := &Pattern{Name: "comments", Type: TypeComment}
	a, err = comment.Automaton()
	assert.NoError(t, err)
	assert.True(t, a.Run("{ hi }"))
	assert.False(t, a.Run("{ hi"))

	broken := &Pattern{Name: "bad", Type: "regexp"}
	_, err = broken.Automaton()
	assert.Error(t, err)
}
