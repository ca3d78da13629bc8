package automata

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanWords(t *testing.T) {
	s := NewScanner(NewWord("ab"))

	fragments := s.Scan("xxabyabab")
	assert.EqualValues(t, []Fragment{
		{Starting: Position{Line: 1, Pos: 3, Index: 2}, Ending: Position{Line: 1, Pos: 5, Index: 4}},
		{Starting: Position{Line: 1, Pos: 6, Index: 5}, Ending: Position{Line: 1, Pos: 8, Index: 7}},
		{Starting: Position{Line: 1, Pos: 8, Index: 7}, Ending: Position{Line: 1, Pos: 10, Index: 9}},
	}, fragments)
}

func TestScanComments(t *testing.T) {
	s := NewScanner(NewComment())

	fragments := s.Scan("x{a}\n// b\ny(*c*)")
	assert.EqualValues(t, []Fragment{
		{Starting: Position{Line: 1, Pos: 2, Index: 1}, Ending: Position{Line: 1, Pos: 5, Index: 4}},
		{Starting: Position{Line: 2, Pos: 1, Index: 5}, Ending: Position{Line: 3, Pos: 1, Index: 10}},
		{Starting: Position{Line: 3, Pos: 2, Index: 11}, Ending: Position{Line: 3, Pos: 7, Index: 16}},
	}, fragments)
}

func TestScanNothing(t *testing.T) {
	s := NewScanner(NewWord("needle"))

	fragments := s.Scan("haystack without matches")
	assert.NotNil(t, fragments)
	assert.Empty(t, fragments)

	assert.Empty(t, s.Scan(""))
}

func TestScanNoOverlap(t *testing.T) {
	s := NewScanner(NewWord("aa"))

	// "aaa" holds two overlapping occurrences, only the leftmost
	// closes; the shared byte is consumed.
	fragments := s.Scan("aaa")
	assert.Len(t, fragments, 1)
	assert.EqualValues(t, 0, fragments[0].Starting.Index)
	assert.EqualValues(t, 2, fragments[0].Ending.Index)
}

func TestScanEmptyWordAutomaton(t *testing.T) {
	s := NewScanner(NewWord(""))

	// The automaton accepts the empty word, but empty fragments are
	// never reported.
	assert.Empty(t, s.Scan("abc"))
}

func TestScanReader(t *testing.T) {
	text := "{one}\n{two}"
	want := NewScanner(NewComment()).Scan(text)

	s := NewScanner(NewComment())
	fragments, err := s.ScanReader(context.Background(), strings.NewReader(text))
	assert.NoError(t, err)
	assert.EqualValues(t, want, fragments)
}

func TestScanReaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScanner(NewComment())
	_, err := s.ScanReader(ctx, strings.NewReader("{never read}"))
	assert.Error(t, err)
}
