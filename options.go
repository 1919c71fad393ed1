package crisp

import (
	"github.com/juju/loggo"
)

// logger is the module logger. It stays silent unless the host opts in
// via SetDebug.
var logger = loggo.GetLogger("crisp")

// SetDebug toggles debug- and trace-level logging of built-in
// registration and evaluator dispatch.
func SetDebug(b bool) {
	if b {
		logger.SetLogLevel(loggo.TRACE)
	} else {
		logger.SetLogLevel(loggo.WARNING)
	}
}
