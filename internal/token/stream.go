package token

// Stream is a forward-only cursor over the lexed tokens of one compilation
// unit. Reads past the end keep returning the final EOF token, so consumers
// never have to bounds-check.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Next consumes and returns the token under the cursor.
func (s *Stream) Next() Token {
	if s.pos >= len(s.tokens) {
		return s.eof()
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// Peek returns up to n tokens ahead of the cursor without consuming them.
func (s *Stream) Peek(n int) []Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	return s.tokens[s.pos:end]
}

func (s *Stream) eof() Token {
	if len(s.tokens) > 0 {
		last := s.tokens[len(s.tokens)-1]
		if last.Type == EOF {
			return last
		}
	}
	return Token{Type: EOF}
}
