package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GDVFox/gomatch/match_node/pattern"
	"github.com/GDVFox/gomatch/util"
)

func testRegistry(t *testing.T, initial []*pattern.Pattern) *PatternRegistry {
	logger, err := util.NewLogger(util.NewLoggingConfig())
	assert.NoError(t, err)
	return NewPatternRegistry(initial, logger)
}

func TestRegistryGetSetDelete(t *testing.T) {
	r := testRegistry(t, []*pattern.Pattern{
		{Name: "hello", Type: pattern.TypeWord, Word: "hello"},
	})
	assert.EqualValues(t, 1, r.Size())

	p, err := r.Get("hello")
	assert.NoError(t, err)
	assert.EqualValues(t, "hello", p.Word)

	_, err = r.Get("missing")
	assert.Error(t, err)

	r.Set(&pattern.Pattern{Name: "comments", Type: pattern.TypeComment})
	assert.EqualValues(t, 2, r.Size())
	assert.EqualValues(t, []string{"comments", "hello"}, r.Names())

	r.Delete("hello")
	assert.EqualValues(t, 1, r.Size())
	_, err = r.Get("hello")
	assert.Error(t, err)
}

func TestRegistryCopies(t *testing.T) {
	r := testRegistry(t, []*pattern.Pattern{
		{Name: "hello", Type: pattern.TypeWord, Word: "hello"},
	})

	// Изменение копии не должно задевать реестр.
	p, err := r.Get("hello")
	assert.NoError(t, err)
	p.Word = "broken"

	fresh, err := r.Get("hello")
	assert.NoError(t, err)
	assert.EqualValues(t, "hello", fresh.Word)
}

func TestRegistryResolve(t *testing.T) {
	r := testRegistry(t, []*pattern.Pattern{
		{Name: "hello", Type: pattern.TypeWord, Word: "hello"},
		{Name: "comments", Type: pattern.TypeComment},
	})

	resolved, err := r.Resolve([]string{"hello"})
	assert.NoError(t, err)
	assert.Len(t, resolved, 1)
	assert.EqualValues(t, "hello", resolved[0].Name)

	// Пустой список имен означает все шаблоны.
	resolved, err = r.Resolve(nil)
	assert.NoError(t, err)
	assert.Len(t, resolved, 2)
	assert.EqualValues(t, "comments", resolved[0].Name)
	assert.EqualValues(t, "hello", resolved[1].Name)

	_, err = r.Resolve([]string{"hello", "missing"})
	assert.Error(t, err)
}
