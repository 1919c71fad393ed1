package crisp

// builtinNot negates its single boolean operand.
func builtinNot(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("not", args, 1)
	if err != nil {
		return nil, err
	}
	v, err := Evaluate(env, sink, elems[0])
	if err != nil {
		return nil, err
	}
	b, err := v.AsBool()
	if err != nil {
		return nil, err
	}
	return NewBool(!b), nil
}

// builtinAnd evaluates its operands left to right and short-circuits
// at the first false one. Operands past the decisive one are never
// evaluated. The 0- and 1-operand forms are rejected.
func builtinAnd(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := atLeastArgs("and", args, 2)
	if err != nil {
		return nil, err
	}
	for _, form := range elems {
		v, err := Evaluate(env, sink, form)
		if err != nil {
			return nil, err
		}
		b, err := v.AsBool()
		if err != nil {
			return nil, err
		}
		if !b {
			return False, nil
		}
	}
	return True, nil
}

// builtinOr evaluates its operands left to right and short-circuits at
// the first true one.
func builtinOr(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := atLeastArgs("or", args, 2)
	if err != nil {
		return nil, err
	}
	for _, form := range elems {
		v, err := Evaluate(env, sink, form)
		if err != nil {
			return nil, err
		}
		b, err := v.AsBool()
		if err != nil {
			return nil, err
		}
		if b {
			return True, nil
		}
	}
	return False, nil
}

func init() {
	RegisterBuiltin("not", builtinNot)
	RegisterBuiltin("and", builtinAnd)
	RegisterBuiltin("or", builtinOr)
}
