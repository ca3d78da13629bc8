package automata

import (
	"context"
	"fmt"
	"io"

	"github.com/GDVFox/ctxio"
)

// Position is the coordinate of a single byte of scanned text. Line
// and Pos are 1-based, Index is the byte offset from the beginning of
// the text.
type Position struct {
	Line  int `json:"line"`
	Pos   int `json:"pos"`
	Index int `json:"index"`
}

// advance returns the position of the byte following letter at p.
func (p Position) advance(letter byte) Position {
	if letter == '\n' {
		return Position{Line: p.Line + 1, Pos: 1, Index: p.Index + 1}
	}
	return Position{Line: p.Line, Pos: p.Pos + 1, Index: p.Index + 1}
}

// startPosition is the coordinate of the first byte of any text.
var startPosition = Position{Line: 1, Pos: 1, Index: 0}

// Fragment is a half-open piece of scanned text: Starting points at
// its first byte and Ending one past its last byte.
type Fragment struct {
	Starting Position `json:"starting"`
	Ending   Position `json:"ending"`
}

// Scanner drives an automaton across a text and reports every
// non-overlapping occurrence of its language, leftmost first.
// A Scanner owns its automaton, concurrent scans need separate
// instances.
type Scanner struct {
	automaton Automaton
}

// NewScanner creates a Scanner on top of a.
func NewScanner(a Automaton) *Scanner {
	return &Scanner{automaton: a}
}

// Scan returns the fragments of text accepted by the automaton. An
// attempt starts at an anchor and steps the automaton until it either
// accepts, which closes the shortest match from that anchor, or traps,
// which slides the anchor one byte forward. The next attempt starts
// right after a closed match, so matches never overlap. Empty matches
// are not reported even when the automaton accepts the empty word.
func (s *Scanner) Scan(text string) []Fragment {
	fragments := make([]Fragment, 0)

	anchor := startPosition
	for anchor.Index < len(text) {
		s.automaton.Reset()

		cursor := anchor
		matched := false
		for cursor.Index < len(text) {
			letter := text[cursor.Index]
			s.automaton.Step(letter)
			cursor = cursor.advance(letter)

			if s.automaton.Current() == Trap {
				break
			}
			if s.automaton.IsAccepting() {
				fragments = append(fragments, Fragment{Starting: anchor, Ending: cursor})
				anchor = cursor
				matched = true
				break
			}
		}

		if !matched {
			anchor = anchor.advance(text[anchor.Index])
		}
	}
	return fragments
}

// ScanReader reads r until EOF and scans the collected text. The read
// is interrupted when ctx is done.
func (s *Scanner) ScanReader(ctx context.Context, r io.Reader) ([]Fragment, error) {
	reader := ctxio.NewContextReader(ctx, r)
	defer reader.Free()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("can not read text: %w", err)
	}
	return s.Scan(string(data)), nil
}
