package reader

import (
	"github.com/leinonen/go-scheme/pkg/schemerr"
	"github.com/leinonen/go-scheme/pkg/types"
)

// parser is a recursive-descent parser over a tokenizer's output. It
// parses list bodies in a single forward pass, switching to dotted-tail
// handling the moment it sees a standalone '.' token, rather than trying
// a proper-list parse and backtracking on failure — the symbol/atom
// character set excludes '.', so a lone '.' token is never ambiguous
// with an atom or a number and no backtracking is needed.
type parser struct {
	tok *tokenizer
	cur token
}

func newParser(input string) (*parser, error) {
	p := &parser{tok: newTokenizer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	t, err := p.tok.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

// ReadExpr parses exactly one expression from input (used for a single
// REPL line or a `read` call). Text after that expression is not parsed,
// but the token right after it is scanned, so an unexpected character or
// an unterminated string in that position still fails with a ParserError.
func ReadExpr(input string) (types.Value, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	if p.cur.typ == tokEOF {
		return nil, schemerr.NewParser("unexpected end of input", p.cur.pos)
	}
	return p.parseExpr()
}

// ReadAll parses every expression in input, separated by whitespace,
// until EOF (used for file loads).
func ReadAll(input string) ([]types.Value, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	var values []types.Value
	for p.cur.typ != tokEOF {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (p *parser) parseExpr() (types.Value, error) {
	tok := p.cur

	switch tok.typ {
	case tokNumber:
		n, ok := types.NewNumberFromString(tok.text)
		if !ok {
			return nil, schemerr.NewParser("malformed number literal '"+tok.text+"'", tok.pos)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil

	case tokString:
		s := types.String(tok.text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return s, nil

	case tokAtom:
		name := tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch name {
		case "#t":
			return types.Bool(true), nil
		case "#f":
			return types.Bool(false), nil
		default:
			return types.Atom(name), nil
		}

	case tokQuote:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return types.NewList(types.Atom("quote"), inner), nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseListBody(tok.pos)

	case tokEOF:
		return nil, schemerr.NewParser("unexpected end of input", tok.pos)

	default:
		return nil, schemerr.NewParser("unexpected token", tok.pos)
	}
}

func (p *parser) parseListBody(openPos schemerr.Position) (types.Value, error) {
	var elements []types.Value

	for {
		switch p.cur.typ {
		case tokRParen:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return types.NewList(elements...), nil

		case tokDot:
			if len(elements) == 0 {
				return nil, schemerr.NewParser("'.' not allowed without a preceding list element", p.cur.pos)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			tail, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.cur.typ != tokRParen {
				return nil, schemerr.NewParser("expected ')' after dotted tail", p.cur.pos)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return types.NewDottedList(elements, tail), nil

		case tokEOF:
			return nil, schemerr.NewParser("unterminated list, opened", openPos)

		default:
			v, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elements = append(elements, v)
		}
	}
}
