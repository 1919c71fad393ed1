package crisp

// builtinIf evaluates its condition and then exactly one of the two
// branches. The untaken branch is never evaluated. A condition that
// does not evaluate to a bool surfaces the accessor's type error.
func builtinIf(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("if", args, 3)
	if err != nil {
		return nil, err
	}
	cond, err := Evaluate(env, sink, elems[0])
	if err != nil {
		return nil, err
	}
	b, err := cond.AsBool()
	if err != nil {
		return nil, err
	}
	if b {
		return Evaluate(env, sink, elems[1])
	}
	return Evaluate(env, sink, elems[2])
}

func init() {
	RegisterBuiltin("if", builtinIf)
}
