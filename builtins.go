package crisp

import (
	"fmt"
	"sort"
)

// BuiltinFunction is the contract every built-in operator fulfils. It
// receives the evaluator's current environment, the output sink and the
// call's argument list as an unevaluated list value; each operator
// decides per argument whether to evaluate (by calling Evaluate) or to
// consume it literally, the way quote and define do.
type BuiltinFunction func(env *Environment, sink Sink, args *Value) (*Value, error)

// builtins is the process-wide operator table. It is filled by the
// init functions of the builtins_*.go files and shared, read-only, by
// every environment.
var builtins map[string]BuiltinFunction

func init() {
	builtins = make(map[string]BuiltinFunction)
}

// RegisterBuiltin adds a named operator to the table. Registering a
// name twice is a programming error.
func RegisterBuiltin(name string, fn BuiltinFunction) {
	if _, existing := builtins[name]; existing {
		panic(fmt.Sprintf("built-in with name '%s' is already registered", name))
	}
	builtins[name] = fn
	logger.Debugf("registered built-in '%s'", name)
}

// ReplaceBuiltin swaps out an already-registered operator, for hosts
// that want to override a primitive (e.g. a sandboxed print).
func ReplaceBuiltin(name string, fn BuiltinFunction) error {
	if _, existing := builtins[name]; !existing {
		return fmt.Errorf("built-in with name '%s' does not exist (use RegisterBuiltin)", name)
	}
	builtins[name] = fn
	logger.Debugf("replaced built-in '%s'", name)
	return nil
}

// BuiltinExists reports whether name is in the operator table.
func BuiltinExists(name string) bool {
	_, existing := builtins[name]
	return existing
}

// BuiltinNames returns the registered operator names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupBuiltin(name string) (BuiltinFunction, bool) {
	fn, ok := builtins[name]
	return fn, ok
}

// exactArgs unwraps an argument list that must hold exactly n forms.
func exactArgs(name string, args *Value, n int) ([]*Value, error) {
	elems, err := args.AsList()
	if err != nil {
		return nil, err
	}
	if len(elems) != n {
		return nil, newArgumentError(args.Line(), "builtin:"+name,
			"'%s' takes exactly %d argument(s), but %d were given", name, n, len(elems))
	}
	return elems, nil
}

// atLeastArgs unwraps an argument list that must hold n or more forms.
func atLeastArgs(name string, args *Value, n int) ([]*Value, error) {
	elems, err := args.AsList()
	if err != nil {
		return nil, err
	}
	if len(elems) < n {
		return nil, newArgumentError(args.Line(), "builtin:"+name,
			"'%s' takes at least %d argument(s), but %d were given", name, n, len(elems))
	}
	return elems, nil
}

// errorLine picks the most specific line available for an error: the
// offending sub-expression's own line when it has one, otherwise the
// call site's.
func errorLine(v *Value, call *Value) int {
	if v != nil && v.Line() > 0 {
		return v.Line()
	}
	return call.Line()
}
