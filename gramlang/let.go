package gramlang

// Placeholder binding content, pending semantic extraction from the consumed
// tokens. The node is fixed regardless of what the declaration says.
const (
	placeholderName  = "x"
	placeholderValue = 5
)

// LetRule matches one let declaration from the front of a token stream: the
// head token, then every following token up to and including the first
// terminator. The head is consumed unverified, dispatch has already
// determined that it starts a let declaration. Body tokens are not validated.
type LetRule struct{}

var _ Rule = LetRule{}

func (LetRule) Name() string {
	return "let_declaration"
}

func (LetRule) Match(stream TokenStream) (Node, error) {
	head, err := stream.Next()
	if err != nil {
		return nil, err
	}

	var body []*Token
	for {
		token, err := stream.Next()
		if err != nil {
			return nil, WithPos(err, head.Pos)
		}
		body = append(body, token)
		if token.IsTerminator() {
			break
		}
	}

	return &LetDeclaration{
		Name:     placeholderName,
		Value:    placeholderValue,
		Position: head.Pos,
		Head:     head,
		Body:     body,
	}, nil
}
