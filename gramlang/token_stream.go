package gramlang

// TokenStream is an ordered sequence of tokens owned exclusively by the
// caller, supporting a single destructive operation: remove and return the
// frontmost token. Next returns ErrStreamExhausted when no token is left.
type TokenStream interface {
	Next() (*Token, error)
}

// SliceTokenStream reads from an immutable token buffer through a cursor.
type SliceTokenStream struct {
	tokens []*Token
	idx    int
}

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Next() (*Token, error) {
	if s.idx >= len(s.tokens) {
		return nil, ErrStreamExhausted
	}
	token := s.tokens[s.idx]
	s.idx++
	return token, nil
}

// Len reports how many tokens remain in front of the cursor.
func (s *SliceTokenStream) Len() int {
	return len(s.tokens) - s.idx
}

// lookahead adds a non-destructive one-token peek on top of a pop-only
// stream. It implements TokenStream so rules can consume through it without
// seeing the buffered token twice.
type lookahead struct {
	stream  TokenStream
	pending *Token
}

func newLookahead(stream TokenStream) *lookahead {
	return &lookahead{
		stream: stream,
	}
}

func (l *lookahead) Peek() (*Token, error) {
	if l.pending == nil {
		token, err := l.stream.Next()
		if err != nil {
			return nil, err
		}
		l.pending = token
	}
	return l.pending, nil
}

func (l *lookahead) Next() (*Token, error) {
	if token := l.pending; token != nil {
		l.pending = nil
		return token, nil
	}
	return l.stream.Next()
}
