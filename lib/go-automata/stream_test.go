package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedByChunks(s *StreamScanner, text string, size int) []Fragment {
	fragments := make([]Fragment, 0)
	data := []byte(text)
	for len(data) > 0 {
		n := size
		if n > len(data) {
			n = len(data)
		}
		fragments = append(fragments, s.Feed(data[:n])...)
		data = data[n:]
	}
	return fragments
}

func TestStreamMatchesBatch(t *testing.T) {
	texts := []string{
		"x{a}\n// b\ny(*c*)",
		"{a{b}{c}",
		"((* nested? *)",
		"// no newline yet",
		"(*)(**)",
		"plain text",
		"{x // y\n",
		"",
	}

	for i, text := range texts {
		want := NewScanner(NewComment()).Scan(text)
		for _, size := range []int{1, 2, 3, 7, len(text) + 1} {
			s := NewStreamScanner(NewComment())
			got := append(feedByChunks(s, text, size), s.Finish()...)
			assert.EqualValuesf(t, want, got, "Failed #%d (chunk %d):", i, size)
		}
	}
}

func TestStreamFinishUncoversShadowedMatch(t *testing.T) {
	text := "{x // y\n"
	want := NewScanner(NewComment()).Scan(text)
	assert.Len(t, want, 1)

	// The unclosed brace attempt swallows the line comment until
	// Finish abandons it.
	s := NewStreamScanner(NewComment())
	assert.Empty(t, s.Feed([]byte(text)))

	got := s.Finish()
	assert.EqualValues(t, want, got)
	assert.EqualValues(t, Position{Line: 1, Pos: 4, Index: 3}, got[0].Starting)
	assert.EqualValues(t, Position{Line: 2, Pos: 1, Index: 8}, got[0].Ending)
}

func TestStreamPendingTail(t *testing.T) {
	s := NewStreamScanner(NewComment())

	fragments := s.Feed([]byte("{abc"))
	assert.Empty(t, fragments)
	assert.EqualValues(t, 4, s.Pending())

	fragments = s.Feed([]byte("}"))
	assert.Len(t, fragments, 1)
	assert.EqualValues(t, 0, fragments[0].Starting.Index)
	assert.EqualValues(t, 5, fragments[0].Ending.Index)
	assert.EqualValues(t, 0, s.Pending())
}

func TestStreamSlideReplay(t *testing.T) {
	s := NewStreamScanner(NewComment())

	// "/(" fails the line comment attempt, but its trailing '('
	// opens a star comment once the anchor slides.
	assert.Empty(t, s.Feed([]byte("/(")))
	fragments := s.Feed([]byte("*ok*)"))
	assert.Len(t, fragments, 1)
	assert.EqualValues(t, 1, fragments[0].Starting.Index)
	assert.EqualValues(t, 7, fragments[0].Ending.Index)
}

func TestStreamReset(t *testing.T) {
	s := NewStreamScanner(NewWord("ab"))

	assert.Empty(t, s.Feed([]byte("a")))
	s.Reset()
	assert.EqualValues(t, 0, s.Pending())

	// After a reset coordinates restart, the buffered 'a' is gone.
	fragments := s.Feed([]byte("ab"))
	assert.Len(t, fragments, 1)
	assert.EqualValues(t, Position{Line: 1, Pos: 1, Index: 0}, fragments[0].Starting)
}

func TestStreamLineCoordinates(t *testing.T) {
	s := NewStreamScanner(NewComment())

	fragments := s.Feed([]byte("x\nx{a}"))
	assert.Len(t, fragments, 1)
	assert.EqualValues(t, Position{Line: 2, Pos: 2, Index: 3}, fragments[0].Starting)
	assert.EqualValues(t, Position{Line: 2, Pos: 5, Index: 6}, fragments[0].Ending)
}
