package crisp

import (
	"github.com/go-check/check"
)

type ValueSuite struct{}

var _ = check.Suite(&ValueSuite{})

func (s *ValueSuite) TestAccessors(c *check.C) {
	n, err := NewInt(3, 42).AsInt()
	c.Assert(err, check.IsNil)
	c.Check(n, check.Equals, int32(42))

	f, err := NewFloat(3, 1.5).AsFloat()
	c.Assert(err, check.IsNil)
	c.Check(f, check.Equals, float32(1.5))

	text, err := NewIdent(1, "car").AsIdent()
	c.Assert(err, check.IsNil)
	c.Check(text, check.Equals, "car")

	b, err := True.AsBool()
	c.Assert(err, check.IsNil)
	c.Check(b, check.Equals, true)
}

func (s *ValueSuite) TestWrongTagAccess(c *check.C) {
	_, err := NewInt(7, 1).AsList()
	c.Assert(err, check.NotNil)
	kind, ok := KindOf(err)
	c.Assert(ok, check.Equals, true)
	c.Check(kind, check.Equals, InternalTypeError)

	e, _ := AsError(err)
	c.Check(e.Line, check.Equals, 7)

	_, err = NewString(1, "s").AsChar()
	c.Assert(err, check.NotNil)
}

func (s *ValueSuite) TestIndexing(c *check.C) {
	atom := NewInt(1, 9)
	v, err := atom.Index(0)
	c.Assert(err, check.IsNil)
	c.Check(v, check.Equals, atom)

	_, err = atom.Index(1)
	c.Assert(err, check.NotNil)
	kind, _ := KindOf(err)
	c.Check(kind, check.Equals, InternalTypeError)

	list := NewListOf(1, NewInt(1, 1), NewInt(1, 2))
	v, err = list.Index(1)
	c.Assert(err, check.IsNil)
	n, _ := v.AsInt()
	c.Check(n, check.Equals, int32(2))

	_, err = list.Index(2)
	c.Assert(err, check.NotNil)
}

func (s *ValueSuite) TestLen(c *check.C) {
	c.Check(NewInt(1, 1).Len(), check.Equals, 0)
	c.Check(NewList(1).Len(), check.Equals, 0)
	c.Check(NewListOf(1, None, None).Len(), check.Equals, 2)
}

func (s *ValueSuite) TestEqual(c *check.C) {
	c.Check(NewInt(-1, 3).Equal(NewInt(5, 3)), check.Equals, true)
	c.Check(NewInt(-1, 3).Equal(NewFloat(-1, 3)), check.Equals, true)
	c.Check(NewFloat(-1, 3).Equal(NewInt(-1, 3)), check.Equals, true)
	c.Check(NewFloat(-1, 3.25).Equal(NewFloat(-1, 3.25)), check.Equals, true)
	c.Check(NewInt(-1, 3).Equal(NewInt(-1, 4)), check.Equals, false)
	c.Check(True.Equal(newBoolAt(9, true)), check.Equals, true)
	c.Check(True.Equal(False), check.Equals, false)
	c.Check(NewString(-1, "a").Equal(NewString(-1, "a")), check.Equals, true)
	c.Check(NewString(-1, "a").Equal(NewChar(-1, "a")), check.Equals, false)
	c.Check(NewChar(-1, "a").Equal(NewChar(-1, "a")), check.Equals, true)
	// Lists never compare equal, even to themselves.
	list := NewListOf(-1, NewInt(-1, 1))
	c.Check(list.Equal(list), check.Equals, false)
	c.Check(None.Equal(None), check.Equals, false)
}

func (s *ValueSuite) TestTextualForm(c *check.C) {
	c.Check(NewInt(-1, 42).String(), check.Equals, "42")
	c.Check(NewFloat(-1, 10).String(), check.Equals, "10")
	c.Check(NewFloat(-1, 2.5).String(), check.Equals, "2.5")
	c.Check(True.String(), check.Equals, "#T")
	c.Check(False.String(), check.Equals, "#F")
	c.Check(None.String(), check.Equals, "none")
	c.Check(NewString(-1, "hi").String(), check.Equals, "hi")
	list := NewListOf(-1, NewInt(-1, 1), NewListOf(-1, NewIdent(-1, "a")), NewFloat(-1, 0.5))
	c.Check(list.String(), check.Equals, "(1 (a) 0.5)")
	c.Check(NewList(-1).String(), check.Equals, "()")
}

func (s *ValueSuite) TestSingletonLines(c *check.C) {
	c.Check(True.Line(), check.Equals, -1)
	c.Check(False.Line(), check.Equals, -1)
	c.Check(None.Line(), check.Equals, -1)
	c.Check(NewBool(true), check.Equals, True)
	c.Check(NewBool(false), check.Equals, False)
}
