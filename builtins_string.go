package crisp

import (
	"strings"
)

// builtinStringAppend concatenates two or more string operands.
func builtinStringAppend(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := atLeastArgs("string-append", args, 2)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, form := range elems {
		v, err := Evaluate(env, sink, form)
		if err != nil {
			return nil, err
		}
		if !v.Is(KindString) {
			return nil, newArgumentError(errorLine(form, args), "builtin:string-append",
				"'string-append' requires string operands, but got a %s", v.Kind())
		}
		s, err := v.AsString()
		if err != nil {
			return nil, err
		}
		b.WriteString(s)
	}
	return NewString(-1, b.String()), nil
}

func init() {
	RegisterBuiltin("string-append", builtinStringAppend)
}
