package gramlang

type Token struct {
	Kind  TokenKind
	Text  string
	Pos   Pos
	Value any
}

// IsTerminator reports whether the token ends a statement.
func (t *Token) IsTerminator() bool {
	return t.Kind == TokenEOF || t.Kind == TokenNewline
}

var EOFToken = &Token{
	Kind: TokenEOF,
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenIdentifier
	TokenKeyword
	TokenString
	TokenNumber
	TokenSymbol
	TokenNewline
	TokenEOF
)

type Pos struct {
	Source *Source
	Line   int
	Column int
}
