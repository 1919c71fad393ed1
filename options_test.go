package crisp

import (
	"github.com/go-check/check"
)

type OptionsSuite struct{}

var _ = check.Suite(&OptionsSuite{})

func (s *OptionsSuite) TestSetDebugTogglesLogger(c *check.C) {
	SetDebug(true)
	c.Check(logger.IsTraceEnabled(), check.Equals, true)
	SetDebug(false)
	c.Check(logger.IsTraceEnabled(), check.Equals, false)
}
