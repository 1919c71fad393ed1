package crisp

import (
	"github.com/go-check/check"
)

type LexerSuite struct{}

var _ = check.Suite(&LexerSuite{})

// tokenKinds strips a token sequence down to its types.
func tokenKinds(tokens []*Token) []TokenType {
	kinds := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Typ
	}
	return kinds
}

func (s *LexerSuite) TestBasicForm(c *check.C) {
	tokens, err := lex("<test>", `(print-line (+ 1 2.5))`)
	c.Assert(err, check.IsNil)
	c.Assert(tokenKinds(tokens), check.DeepEquals, []TokenType{
		TokenOpenParen, TokenIdent,
		TokenOpenParen, TokenIdent, TokenInteger, TokenFloat, TokenCloseParen,
		TokenCloseParen, TokenEOF,
	})
	c.Check(tokens[1].Val, check.Equals, "print-line")
	c.Check(tokens[3].Val, check.Equals, "+")
	c.Check(tokens[4].Val, check.Equals, "1")
	c.Check(tokens[5].Val, check.Equals, "2.5")
}

func (s *LexerSuite) TestLineNumbers(c *check.C) {
	tokens, err := lex("<test>", "a\n  b\n\n(c)")
	c.Assert(err, check.IsNil)
	c.Check(tokens[0].Line, check.Equals, 1)
	c.Check(tokens[1].Line, check.Equals, 2)
	c.Check(tokens[2].Line, check.Equals, 4) // (
	c.Check(tokens[3].Line, check.Equals, 4) // c
	c.Check(tokens[5].Typ, check.Equals, TokenEOF)
	c.Check(tokens[5].Line, check.Equals, -1)
}

func (s *LexerSuite) TestIdentTerminatedByParen(c *check.C) {
	tokens, err := lex("<test>", `a(b)c`)
	c.Assert(err, check.IsNil)
	c.Assert(tokenKinds(tokens), check.DeepEquals, []TokenType{
		TokenIdent, TokenOpenParen, TokenIdent, TokenCloseParen, TokenIdent, TokenEOF,
	})
}

func (s *LexerSuite) TestSymbolIdents(c *check.C) {
	tokens, err := lex("<test>", `+ - <= >= empty? f2 λx £cost`)
	c.Assert(err, check.IsNil)
	c.Assert(len(tokens), check.Equals, 9)
	for _, tok := range tokens[:8] {
		c.Check(tok.Typ, check.Equals, TokenIdent)
	}
}

func (s *LexerSuite) TestStringEscapes(c *check.C) {
	tokens, err := lex("<test>", `"a\nb\t\"c\"\\"`)
	c.Assert(err, check.IsNil)
	c.Assert(tokens[0].Typ, check.Equals, TokenString)
	c.Check(tokens[0].Val, check.Equals, "a\nb\t\"c\"\\")
}

func (s *LexerSuite) TestUnknownEscapeDropped(c *check.C) {
	tokens, err := lex("<test>", `"a\qb"`)
	c.Assert(err, check.IsNil)
	c.Check(tokens[0].Val, check.Equals, "ab")
}

func (s *LexerSuite) TestCharLiteral(c *check.C) {
	tokens, err := lex("<test>", `'x' '\"' '\n'`)
	c.Assert(err, check.IsNil)
	c.Assert(tokenKinds(tokens), check.DeepEquals, []TokenType{
		TokenChar, TokenChar, TokenChar, TokenEOF,
	})
	c.Check(tokens[0].Val, check.Equals, "x")
	c.Check(tokens[1].Val, check.Equals, `"`)
	c.Check(tokens[2].Val, check.Equals, "\n")
}

func (s *LexerSuite) TestMultilineString(c *check.C) {
	tokens, err := lex("<test>", "\"a\nb\" c")
	c.Assert(err, check.IsNil)
	c.Check(tokens[0].Val, check.Equals, "a\nb")
	c.Check(tokens[0].Line, check.Equals, 1)
	c.Check(tokens[1].Line, check.Equals, 2)
}

func (s *LexerSuite) TestBoolLiterals(c *check.C) {
	tokens, err := lex("<test>", `#T #F`)
	c.Assert(err, check.IsNil)
	c.Check(tokens[0].Typ, check.Equals, TokenBool)
	c.Check(tokens[0].Val, check.Equals, "T")
	c.Check(tokens[1].Val, check.Equals, "F")
}

func (s *LexerSuite) TestBadBool(c *check.C) {
	_, err := lex("<test>", `#x`)
	c.Assert(err, check.NotNil)
	c.Check(err, check.ErrorMatches, `.*#x is an invalid boolean literal; use #T or #F`)
}

func (s *LexerSuite) TestComment(c *check.C) {
	tokens, err := lex("<test>", "; a comment (with parens)\n42")
	c.Assert(err, check.IsNil)
	c.Assert(tokens[0].Typ, check.Equals, TokenInteger)
	c.Check(tokens[0].Line, check.Equals, 2)
}

func (s *LexerSuite) TestSecondDotInFloat(c *check.C) {
	_, err := lex("<test>", `1.2.3`)
	c.Assert(err, check.NotNil)
	c.Check(err, check.ErrorMatches, `.*a second '\.' character in a float literal is illegal`)
	kind, ok := KindOf(err)
	c.Assert(ok, check.Equals, true)
	c.Check(kind, check.Equals, ParseError)
}

func (s *LexerSuite) TestUnexpectedCharacter(c *check.C) {
	_, err := lex("<test>", "abc\n  ~")
	c.Assert(err, check.NotNil)
	lexErr, ok := AsError(err)
	c.Assert(ok, check.Equals, true)
	c.Check(lexErr.Kind, check.Equals, ParseError)
	c.Check(lexErr.Line, check.Equals, 2)
}

func (s *LexerSuite) TestUnterminatedLiteralsAtEOF(c *check.C) {
	tokens, err := lex("<test>", `"abc`)
	c.Assert(err, check.IsNil)
	c.Assert(tokens[0].Typ, check.Equals, TokenString)
	c.Check(tokens[0].Val, check.Equals, "abc")

	tokens, err = lex("<test>", `123`)
	c.Assert(err, check.IsNil)
	c.Assert(tokens[0].Typ, check.Equals, TokenInteger)
	c.Check(tokens[0].Val, check.Equals, "123")
}

func (s *LexerSuite) TestEmptyInput(c *check.C) {
	tokens, err := lex("<test>", "")
	c.Assert(err, check.IsNil)
	c.Assert(tokens, check.HasLen, 1)
	c.Check(tokens[0].Typ, check.Equals, TokenEOF)
}
