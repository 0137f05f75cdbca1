package gramlang

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var keywords = map[string]bool{
	"let": true,
}

// Tokenizer turns a source text into a stream of tokens. It emits one
// Newline token per line break, a single trailing EOF token, and
// ErrStreamExhausted after that.
type Tokenizer struct {
	src    *Source
	reader *bufio.Reader

	currPos Pos
	prevPos Pos

	done bool
}

func NewTokenizer(src *Source) *Tokenizer {
	return &Tokenizer{
		src:    src,
		reader: bufio.NewReader(strings.NewReader(src.Content)),
		currPos: Pos{
			Source: src,
			Line:   1,
			Column: 1,
		},
	}
}

var _ TokenStream = new(Tokenizer)

func (t *Tokenizer) Next() (*Token, error) {
	if t.done {
		return nil, ErrStreamExhausted
	}
	token, err := t.parseNext()
	if err != nil {
		return nil, err
	}
	if token.Kind == TokenEOF {
		t.done = true
	}
	return token, nil
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.reader.UnreadRune()
	t.currPos = t.prevPos
}

func (t *Tokenizer) parseNext() (*Token, error) {
	t.skipBlanks()
	startPos := t.currPos

	r, err := t.readRune()
	if err == io.EOF {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return nil, err
	}

	switch {
	case r == '\n':
		return &Token{
			Kind: TokenNewline,
			Text: "\n",
			Pos:  startPos,
		}, nil
	case r == '/':
		next, err := t.readRune()
		if err == nil && next == '/' {
			t.skipComment()
			return t.parseNext()
		}
		if err == nil {
			t.unreadRune()
		}
		return &Token{
			Kind: TokenSymbol,
			Text: "/",
			Pos:  startPos,
		}, nil
	case r == '\'' || r == '"':
		return t.parseString(r, startPos)
	case unicode.IsDigit(r):
		t.unreadRune()
		return t.parseNumber()
	case isSymbol(r):
		return &Token{
			Kind: TokenSymbol,
			Text: string(r),
			Pos:  startPos,
		}, nil
	case r == '_' || unicode.IsLetter(r):
		t.unreadRune()
		return t.parseIdentifier()
	}

	return &Token{Kind: TokenInvalid, Text: string(r), Pos: startPos}, nil
}

func isSymbol(r rune) bool {
	switch r {
	case '=', '+', '-', '*', '%',
		'(', ')', '[', ']', '{', '}',
		':', ',', ';', '<', '>', '!':
		return true
	}
	return false
}

// skipBlanks skips whitespace except line breaks, which are tokens.
func (t *Tokenizer) skipBlanks() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if r == '\n' || !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

// skipComment skips to the end of the line, leaving the line break unread so
// it still terminates the statement.
func (t *Tokenizer) skipComment() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if r == '\n' {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) parseIdentifier() (*Token, error) {
	startPos := t.currPos
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	text := buf.String()
	kind := TokenIdentifier
	if keywords[text] {
		kind = TokenKeyword
	}
	return &Token{
		Kind: kind,
		Text: text,
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) parseNumber() (*Token, error) {
	startPos := t.currPos

	first, err := t.readRune()
	if err != nil {
		return nil, err
	}
	if first == '0' {
		next, err := t.readRune()
		if err == nil {
			switch next {
			case 'b':
				return t.parseBasedNumber("0b", 2, isBinDigit, startPos)
			case 'o':
				return t.parseBasedNumber("0o", 8, isOctDigit, startPos)
			case 'x':
				return t.parseBasedNumber("0x", 16, isHexDigit, startPos)
			}
			t.unreadRune()
		} else if err != io.EOF {
			return nil, err
		}
	}

	var buf bytes.Buffer
	buf.WriteRune(first)
	hasDot := false
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if unicode.IsDigit(r) {
			buf.WriteRune(r)
		} else if r == '.' && !hasDot {
			hasDot = true
			buf.WriteRune(r)
		} else {
			t.unreadRune()
			break
		}
	}
	text := buf.String()
	var value any
	if hasDot {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return &Token{Kind: TokenInvalid, Text: text, Pos: startPos}, nil
		}
		value = f
	} else {
		i, err := strconv.Atoi(text)
		if err != nil {
			return &Token{Kind: TokenInvalid, Text: text, Pos: startPos}, nil
		}
		value = i
	}
	return &Token{
		Kind:  TokenNumber,
		Text:  text,
		Pos:   startPos,
		Value: value,
	}, nil
}

func (t *Tokenizer) parseBasedNumber(prefix string, base int, isDigit func(rune) bool, startPos Pos) (*Token, error) {
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isDigit(r) {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	text := prefix + buf.String()
	i, err := strconv.ParseInt(buf.String(), base, 64)
	if err != nil {
		// bare prefix or overflow
		return &Token{Kind: TokenInvalid, Text: text, Pos: startPos}, nil
	}
	return &Token{
		Kind:  TokenNumber,
		Text:  text,
		Pos:   startPos,
		Value: int(i),
	}, nil
}

func isBinDigit(r rune) bool {
	return r == '0' || r == '1'
}

func isOctDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

func (t *Tokenizer) parseString(quote rune, startPos Pos) (*Token, error) {
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			// Unmatched quote
			return &Token{Kind: TokenInvalid, Text: buf.String(), Pos: startPos}, nil
		}
		if err != nil {
			return nil, err
		}
		if r == quote {
			break
		}

		if r == '\\' {
			next, err := t.readRune()
			if err == io.EOF {
				buf.WriteRune(r)
				break
			}
			if err != nil {
				return nil, err
			}
			switch next {
			case 'n':
				buf.WriteRune('\n')
			case 'r':
				buf.WriteRune('\r')
			case 't':
				buf.WriteRune('\t')
			case '\\':
				buf.WriteRune('\\')
			case '"':
				buf.WriteRune('"')
			case '\'':
				buf.WriteRune('\'')
			default:
				buf.WriteRune('\\')
				buf.WriteRune(next)
			}
		} else {
			buf.WriteRune(r)
		}
	}
	return &Token{
		Kind: TokenString,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}
