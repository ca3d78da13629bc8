package automata

// StreamScanner is an incremental Scanner: it consumes text in
// arbitrary chunks and reports fragments as soon as the closing byte
// arrives. For any chunking, Feed calls followed by Finish yield
// exactly the fragments Scanner.Scan returns for the whole text.
// Before Finish an open attempt may hide later matches inside its
// window, an unclosed "{" swallows everything after it.
type StreamScanner struct {
	automaton Automaton

	// window holds the bytes consumed since anchor: the automaton
	// state is always the result of stepping window from Initial.
	window []byte
	anchor Position
}

// NewStreamScanner creates a StreamScanner on top of a.
func NewStreamScanner(a Automaton) *StreamScanner {
	s := &StreamScanner{automaton: a}
	s.Reset()
	return s
}

// Reset discards buffered input and restarts coordinates from the
// beginning of a text.
func (s *StreamScanner) Reset() {
	s.automaton.Reset()
	s.window = s.window[:0]
	s.anchor = startPosition
}

// Pending returns the number of buffered bytes that are part of an
// attempt which has neither closed nor failed yet.
func (s *StreamScanner) Pending() int {
	return len(s.window)
}

// Feed consumes the next chunk and returns the fragments it completed.
// When an attempt traps, the anchor slides one byte forward and the
// rest of the window is replayed as fresh input, so a single fed byte
// may close a match that started many chunks ago.
func (s *StreamScanner) Feed(chunk []byte) []Fragment {
	fragments := make([]Fragment, 0)

	pending := chunk
	for len(pending) > 0 {
		letter := pending[0]
		pending = pending[1:]

		s.window = append(s.window, letter)
		s.automaton.Step(letter)

		if s.automaton.Current() != Trap {
			if s.automaton.IsAccepting() {
				fragments = append(fragments, s.closeWindow())
			}
			continue
		}

		replay := append([]byte(nil), s.window[1:]...)
		s.anchor = s.anchor.advance(s.window[0])
		s.window = s.window[:0]
		s.automaton.Reset()
		pending = append(replay, pending...)
	}
	return fragments
}

// Finish declares the end of the stream. The open attempt, if any, is
// abandoned byte by byte the way Scanner.Scan abandons it at the end
// of a text, so matches hidden behind it are still reported. The
// scanner is reset afterwards.
func (s *StreamScanner) Finish() []Fragment {
	fragments := make([]Fragment, 0)
	for len(s.window) > 0 {
		replay := append([]byte(nil), s.window[1:]...)
		s.anchor = s.anchor.advance(s.window[0])
		s.window = s.window[:0]
		s.automaton.Reset()
		fragments = append(fragments, s.Feed(replay)...)
	}
	s.Reset()
	return fragments
}

// closeWindow turns the current window into a fragment and moves the
// anchor past it.
func (s *StreamScanner) closeWindow() Fragment {
	ending := s.anchor
	for _, letter := range s.window {
		ending = ending.advance(letter)
	}

	fragment := Fragment{Starting: s.anchor, Ending: ending}
	s.anchor = ending
	s.window = s.window[:0]
	s.automaton.Reset()
	return fragment
}
