package gramlang

// Node is a parsed syntax node. Type returns the node's discriminator tag.
type Node interface {
	Type() string
	Pos() Pos
}

// LetDeclaration is the node produced by LetRule. Name and Value carry
// placeholder content, see LetRule.
type LetDeclaration struct {
	Name  string
	Value int

	Position Pos
	// Head is the consumed head token; Body holds the accumulated tokens up
	// to and including the terminator.
	Head *Token
	Body []*Token
}

var _ Node = new(LetDeclaration)

func (l *LetDeclaration) Type() string {
	return "let_declaration"
}

func (l *LetDeclaration) Pos() Pos {
	return l.Position
}
