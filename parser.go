package crisp

import (
	"strconv"
)

// Parser consumes a token sequence and produces a single list value
// holding the top-level forms of the program. It is a recursive descent
// over a shared cursor with an open-paren depth counter.
type Parser struct {
	name   string
	idx    int
	depth  int
	tokens []*Token
}

// newParser creates a new parser for the given tokens.
func newParser(name string, tokens []*Token) *Parser {
	return &Parser{
		name:   name,
		tokens: tokens,
	}
}

// Current returns the token under the cursor.
func (p *Parser) Current() *Token {
	return p.Get(p.idx)
}

// Consume advances the cursor by one token.
func (p *Parser) Consume() {
	p.idx++
}

// Remaining returns the number of tokens not yet consumed.
func (p *Parser) Remaining() int {
	return len(p.tokens) - p.idx
}

// Get returns the i-th token, or nil when out of range.
func (p *Parser) Get(i int) *Token {
	if i >= 0 && i < len(p.tokens) {
		return p.tokens[i]
	}
	return nil
}

// previousLine returns the line of the token before the cursor, for
// errors reported at end of input.
func (p *Parser) previousLine() int {
	if t := p.Get(p.idx - 1); t != nil {
		return t.Line
	}
	return -1
}

// errorf builds a ParseError at the given line.
func (p *Parser) errorf(line int, format string, args ...interface{}) error {
	err := newParseError(line, "parser", format, args...)
	err.Filename = p.name
	return err
}

// parseDocument reads every top-level form and returns them wrapped in
// a single list.
func (p *Parser) parseDocument() (*Value, error) {
	root := NewList(1)
	if err := p.parseInto(root); err != nil {
		return nil, err
	}
	adoptLine(root)
	return root, nil
}

// parseInto appends forms to container until the container's closing
// paren, or EOF at the top level. Depth going negative and EOF inside
// an open list are both mismatched-parentheses errors.
func (p *Parser) parseInto(container *Value) error {
	for {
		tok := p.Current()
		if tok == nil {
			// The lexer always terminates the sequence with TokenEOF.
			return p.errorf(p.previousLine(), "unexpected end of token stream")
		}
		switch tok.Typ {
		case TokenEOF:
			if p.depth != 0 {
				return p.errorf(p.previousLine(), "mismatched parentheses")
			}
			return nil
		case TokenOpenParen:
			p.depth++
			p.Consume()
			child := NewList(tok.Line)
			if err := p.parseInto(child); err != nil {
				return err
			}
			adoptLine(child)
			container.Append(child)
		case TokenCloseParen:
			p.depth--
			if p.depth < 0 {
				return p.errorf(tok.Line, "mismatched parentheses")
			}
			p.Consume()
			return nil
		default:
			atom, err := p.atom(tok)
			if err != nil {
				return err
			}
			container.Append(atom)
			p.Consume()
		}
	}
}

// atom wraps a non-paren token in a value of the matching tag.
func (p *Parser) atom(tok *Token) (*Value, error) {
	switch tok.Typ {
	case TokenIdent:
		return NewIdent(tok.Line, tok.Val), nil
	case TokenInteger:
		n, err := strconv.ParseInt(tok.Val, 10, 32)
		if err != nil {
			perr := wrapParseError(err, tok.Line, "parser", "invalid integer literal '%s'", tok.Val)
			perr.Filename = p.name
			return nil, perr
		}
		return NewInt(tok.Line, int32(n)), nil
	case TokenFloat:
		f, err := strconv.ParseFloat(tok.Val, 32)
		if err != nil {
			perr := wrapParseError(err, tok.Line, "parser", "invalid float literal '%s'", tok.Val)
			perr.Filename = p.name
			return nil, perr
		}
		return NewFloat(tok.Line, float32(f)), nil
	case TokenString:
		return NewString(tok.Line, tok.Val), nil
	case TokenChar:
		return NewChar(tok.Line, tok.Val), nil
	case TokenBool:
		return newBoolAt(tok.Line, tok.Val == "T"), nil
	default:
		return nil, p.errorf(tok.Line, "unexpected token %s", tok)
	}
}

// adoptLine makes a composite list carry the line of its first element.
func adoptLine(list *Value) {
	if first := list.head(); first != nil {
		list.line = first.line
	}
}
