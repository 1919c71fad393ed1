package crisp

import (
	"fmt"
	"strings"
)

// builtinHelp lists every built-in operator, user function and
// variable reachable from the current environment. Arguments are
// ignored.
func builtinHelp(env *Environment, sink Sink, args *Value) (*Value, error) {
	sections := []struct {
		title string
		names []string
	}{
		{"built-ins", BuiltinNames()},
		{"functions", env.UserFunctionNames()},
		{"variables", env.VariableNames()},
	}
	for _, section := range sections {
		if _, err := fmt.Fprintf(sink, "%s: %s\n", section.title, strings.Join(section.names, " ")); err != nil {
			return nil, err
		}
	}
	if err := sink.Flush(); err != nil {
		return nil, err
	}
	return None, nil
}

func init() {
	RegisterBuiltin("help", builtinHelp)
}
