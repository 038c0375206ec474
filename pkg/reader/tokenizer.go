// Package reader implements the text-to-Value parser: a rune-at-a-time
// tokenizer with line/column position tracking feeding a recursive-
// descent parser.
package reader

import (
	"strings"

	"github.com/leinonen/go-scheme/pkg/schemerr"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokLParen
	tokRParen
	tokQuote
	tokDot
	tokAtom
	tokNumber
	tokString
)

type token struct {
	typ  tokenType
	text string
	pos  schemerr.Position
}

// symbolChars is the set of punctuation characters allowed in a symbol
// atom, alongside letters and (after the first character) digits.
const symbolChars = "!$%&|*+-/:<=>?@^_~#"

func isSymbolChar(r rune) bool {
	return strings.ContainsRune(symbolChars, r)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAtomStart(r rune) bool {
	return isLetter(r) || isSymbolChar(r)
}

func isAtomCont(r rune) bool {
	return isLetter(r) || isSymbolChar(r) || isDigit(r)
}

// tokenizer scans the input rune by rune, tracking 1-based line/column
// position the way pkg/tokenizer.Tokenizer does.
type tokenizer struct {
	input    []rune
	position int
	current  rune
	line     int
	column   int
}

func newTokenizer(input string) *tokenizer {
	t := &tokenizer{input: []rune(input), line: 1, column: 0}
	t.readChar()
	return t
}

func (t *tokenizer) readChar() {
	if t.position >= len(t.input) {
		t.current = 0
	} else {
		t.current = t.input[t.position]
	}
	if t.current == '\n' {
		t.line++
		t.column = 0
	} else {
		t.column++
	}
	t.position++
}

func (t *tokenizer) peekChar() rune {
	if t.position >= len(t.input) {
		return 0
	}
	return t.input[t.position]
}

func (t *tokenizer) skipWhitespace() {
	for t.current == ' ' || t.current == '\t' || t.current == '\n' || t.current == '\r' {
		t.readChar()
	}
}

func (t *tokenizer) posHere() schemerr.Position {
	return schemerr.Position{Line: t.line, Column: t.column}
}

// next returns the next token, or a *schemerr.ParserError.
func (t *tokenizer) next() (token, error) {
	t.skipWhitespace()
	pos := t.posHere()

	switch {
	case t.current == 0:
		return token{typ: tokEOF, pos: pos}, nil
	case t.current == '(':
		t.readChar()
		return token{typ: tokLParen, pos: pos}, nil
	case t.current == ')':
		t.readChar()
		return token{typ: tokRParen, pos: pos}, nil
	case t.current == '\'':
		t.readChar()
		return token{typ: tokQuote, pos: pos}, nil
	case t.current == '"':
		return t.readString(pos)
	case t.current == '.' && !isAtomCont(t.peekChar()) && !isDigit(t.peekChar()):
		t.readChar()
		return token{typ: tokDot, pos: pos}, nil
	case isDigit(t.current):
		return t.readNumber(pos), nil
	case isAtomStart(t.current):
		return t.readAtom(pos), nil
	default:
		return token{}, schemerr.NewParser(
			"unexpected character '"+string(t.current)+"'", pos)
	}
}

func (t *tokenizer) readString(pos schemerr.Position) (token, error) {
	t.readChar() // consume opening quote
	var sb strings.Builder
	for t.current != '"' {
		if t.current == 0 {
			return token{}, schemerr.NewParser("unterminated string literal", pos)
		}
		sb.WriteRune(t.current)
		t.readChar()
	}
	t.readChar() // consume closing quote
	return token{typ: tokString, text: sb.String(), pos: pos}, nil
}

func (t *tokenizer) readNumber(pos schemerr.Position) token {
	var sb strings.Builder
	for isDigit(t.current) {
		sb.WriteRune(t.current)
		t.readChar()
	}
	return token{typ: tokNumber, text: sb.String(), pos: pos}
}

func (t *tokenizer) readAtom(pos schemerr.Position) token {
	var sb strings.Builder
	sb.WriteRune(t.current)
	t.readChar()
	for isAtomCont(t.current) {
		sb.WriteRune(t.current)
		t.readChar()
	}
	return token{typ: tokAtom, text: sb.String(), pos: pos}
}
