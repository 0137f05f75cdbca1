package gramlang

import (
	"errors"
	"fmt"
)

// Rule recognizes one construct at the front of a token stream and produces
// a node. Match consumes the construct's tokens destructively, head through
// terminator; it must only be called when dispatch determined that the
// stream's front token starts this construct.
type Rule interface {
	Name() string
	Match(stream TokenStream) (Node, error)
}

// Grammar maps leading keywords to rules.
type Grammar struct {
	rules    map[string]Rule
	keywords map[string]Rule
}

func NewGrammar() *Grammar {
	return &Grammar{
		rules:    make(map[string]Rule),
		keywords: make(map[string]Rule),
	}
}

func (g *Grammar) Register(keyword string, rule Rule) {
	if _, ok := g.keywords[keyword]; ok {
		panic(fmt.Errorf("duplicated keyword %s", keyword))
	}
	if _, ok := g.rules[rule.Name()]; ok {
		panic(fmt.Errorf("duplicated rule %s", rule.Name()))
	}
	g.keywords[keyword] = rule
	g.rules[rule.Name()] = rule
}

func (g *Grammar) Rule(name string) (Rule, bool) {
	rule, ok := g.rules[name]
	return rule, ok
}

// Default returns a grammar with the built-in rules registered.
func Default() *Grammar {
	g := NewGrammar()
	g.Register("let", LetRule{})
	return g
}

// Parse drives rule dispatch over a stream until its EOF token or
// exhaustion. Blank lines between statements are skipped. A front token no
// rule claims fails with UnexpectedTokenError.
func (g *Grammar) Parse(stream TokenStream) ([]Node, error) {
	look := newLookahead(stream)
	var nodes []Node
	for {
		token, err := look.Peek()
		if errors.Is(err, ErrStreamExhausted) {
			break
		}
		if err != nil {
			return nodes, err
		}
		if token.Kind == TokenEOF {
			break
		}
		if token.Kind == TokenNewline {
			look.Next()
			continue
		}

		rule, ok := g.keywords[token.Text]
		if !ok || token.Kind != TokenKeyword {
			return nodes, WithPos(UnexpectedTokenError{Token: token}, token.Pos)
		}

		node, err := rule.Match(look)
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// ParseSource tokenizes and parses a source text.
func (g *Grammar) ParseSource(src *Source) ([]Node, error) {
	return g.Parse(NewTokenizer(src))
}
