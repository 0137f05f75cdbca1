package gramlang

import (
	"errors"
	"testing"
)

func TestTokenizer(t *testing.T) {
	type TokenInfo struct {
		Kind TokenKind
		Text string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "hello world",
			tokens: []TokenInfo{
				{TokenIdentifier, "hello"},
				{TokenIdentifier, "world"},
			},
		},
		{
			input: "  foo \t bar  ",
			tokens: []TokenInfo{
				{TokenIdentifier, "foo"},
				{TokenIdentifier, "bar"},
			},
		},
		{
			input: "let x = 5",
			tokens: []TokenInfo{
				{TokenKeyword, "let"},
				{TokenIdentifier, "x"},
				{TokenSymbol, "="},
				{TokenNumber, "5"},
			},
		},
		{
			input: "a\nb",
			tokens: []TokenInfo{
				{TokenIdentifier, "a"},
				{TokenNewline, "\n"},
				{TokenIdentifier, "b"},
			},
		},
		{
			input: "a\n\nb",
			tokens: []TokenInfo{
				{TokenIdentifier, "a"},
				{TokenNewline, "\n"},
				{TokenNewline, "\n"},
				{TokenIdentifier, "b"},
			},
		},
		{
			input: "123 45.67",
			tokens: []TokenInfo{
				{TokenNumber, "123"},
				{TokenNumber, "45.67"},
			},
		},
		{
			input: "0b101010 0o52 0x2A",
			tokens: []TokenInfo{
				{TokenNumber, "0b101010"},
				{TokenNumber, "0o52"},
				{TokenNumber, "0x2A"},
			},
		},
		{
			input: "0 0.5",
			tokens: []TokenInfo{
				{TokenNumber, "0"},
				{TokenNumber, "0.5"},
			},
		},
		{
			input: "0x",
			tokens: []TokenInfo{
				{TokenInvalid, "0x"},
			},
		},
		{
			input: "0b12",
			tokens: []TokenInfo{
				{TokenNumber, "0b1"},
				{TokenNumber, "2"},
			},
		},
		{
			input: `'str1' "str2"`,
			tokens: []TokenInfo{
				{TokenString, "str1"},
				{TokenString, "str2"},
			},
		},
		{
			input: `"a\nb"`,
			tokens: []TokenInfo{
				{TokenString, "a\nb"},
			},
		},
		{
			input: "x // comment\ny",
			tokens: []TokenInfo{
				{TokenIdentifier, "x"},
				{TokenNewline, "\n"},
				{TokenIdentifier, "y"},
			},
		},
		{
			input: "a / b",
			tokens: []TokenInfo{
				{TokenIdentifier, "a"},
				{TokenSymbol, "/"},
				{TokenIdentifier, "b"},
			},
		},
		{
			input: "foo_bar1",
			tokens: []TokenInfo{
				{TokenIdentifier, "foo_bar1"},
			},
		},
		{
			input: "letter",
			tokens: []TokenInfo{
				{TokenIdentifier, "letter"},
			},
		},
		{
			input: "( ) { }",
			tokens: []TokenInfo{
				{TokenSymbol, "("},
				{TokenSymbol, ")"},
				{TokenSymbol, "{"},
				{TokenSymbol, "}"},
			},
		},
		{
			input: "^",
			tokens: []TokenInfo{
				{TokenInvalid, "^"},
			},
		},
		{
			input: "'unclosed",
			tokens: []TokenInfo{
				{TokenInvalid, "unclosed"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokenizer := NewTokenizer(NewSource("test", test.input))
			for i, expected := range test.tokens {
				token, err := tokenizer.Next()
				if err != nil {
					t.Fatalf("step %d: unexpected error: %v", i, err)
				}
				if token.Kind != expected.Kind {
					t.Errorf("step %d: expected kind %v, got %v (text: %q)", i, expected.Kind, token.Kind, token.Text)
				}
				if token.Text != expected.Text {
					t.Errorf("step %d: expected text %q, got %q", i, expected.Text, token.Text)
				}
			}
			token, err := tokenizer.Next()
			if err != nil {
				t.Fatalf("eof: unexpected error: %v", err)
			}
			if token.Kind != TokenEOF {
				t.Errorf("expected EOF, got %v", token.Kind)
			}
			if _, err := tokenizer.Next(); !errors.Is(err, ErrStreamExhausted) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestTokenizerPos(t *testing.T) {
	src := NewSource("test", "let a\nlet b")
	tokenizer := NewTokenizer(src)

	type PosInfo struct {
		Line   int
		Column int
	}
	expected := []PosInfo{
		{1, 1},
		{1, 5},
		{1, 6},
		{2, 1},
		{2, 5},
	}
	for i, exp := range expected {
		token, err := tokenizer.Next()
		if err != nil {
			t.Fatal(err)
		}
		if token.Pos.Line != exp.Line || token.Pos.Column != exp.Column {
			t.Errorf("step %d: expected %d:%d, got %d:%d", i, exp.Line, exp.Column, token.Pos.Line, token.Pos.Column)
		}
		if token.Pos.Source != src {
			t.Errorf("step %d: source not set", i)
		}
	}
}

func TestTokenizerNumberValue(t *testing.T) {
	tokenizer := NewTokenizer(NewSource("test", "5 2.5"))

	token, err := tokenizer.Next()
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := token.Value.(int); !ok || v != 5 {
		t.Fatalf("got %#v", token.Value)
	}

	token, err = tokenizer.Next()
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := token.Value.(float64); !ok || v != 2.5 {
		t.Fatalf("got %#v", token.Value)
	}
}

func TestTokenizerBasedNumberValue(t *testing.T) {
	// the same value in every base
	tokenizer := NewTokenizer(NewSource("test", "0b101010 0o52 0x2A 0xff"))

	for i, expected := range []int{42, 42, 42, 255} {
		token, err := tokenizer.Next()
		if err != nil {
			t.Fatal(err)
		}
		if token.Kind != TokenNumber {
			t.Fatalf("step %d: got %v", i, token.Kind)
		}
		if v, ok := token.Value.(int); !ok || v != expected {
			t.Fatalf("step %d: got %#v", i, token.Value)
		}
	}
}
