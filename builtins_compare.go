package crisp

// builtinEqual is the '=' relation: same tag and value-equal for the
// atom kinds, mixed int/float compared numerically, everything else
// (lists included) false.
func builtinEqual(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("=", args, 2)
	if err != nil {
		return nil, err
	}
	a, err := Evaluate(env, sink, elems[0])
	if err != nil {
		return nil, err
	}
	b, err := Evaluate(env, sink, elems[1])
	if err != nil {
		return nil, err
	}
	return NewBool(a.Equal(b)), nil
}

// numericPair extracts both operands as floats for ordering. ok is
// false when either operand is not a number; the comparison operators
// answer False in that case rather than erroring.
func numericPair(a, b *Value) (x, y float32, bothInt, ok bool) {
	switch a.Kind() {
	case KindInt:
		x = float32(a.integer)
	case KindFloat:
		x = a.float
	default:
		return 0, 0, false, false
	}
	switch b.Kind() {
	case KindInt:
		y = float32(b.integer)
	case KindFloat:
		y = b.float
	default:
		return 0, 0, false, false
	}
	return x, y, a.Is(KindInt) && b.Is(KindInt), true
}

// compareBuiltin builds one of the four ordering operators.
func compareBuiltin(name string, holds func(x, y float32) bool, holdsInt func(x, y int32) bool) BuiltinFunction {
	return func(env *Environment, sink Sink, args *Value) (*Value, error) {
		elems, err := exactArgs(name, args, 2)
		if err != nil {
			return nil, err
		}
		a, err := Evaluate(env, sink, elems[0])
		if err != nil {
			return nil, err
		}
		b, err := Evaluate(env, sink, elems[1])
		if err != nil {
			return nil, err
		}
		x, y, bothInt, ok := numericPair(a, b)
		if !ok {
			return False, nil
		}
		if bothInt {
			return NewBool(holdsInt(a.integer, b.integer)), nil
		}
		return NewBool(holds(x, y)), nil
	}
}

func init() {
	RegisterBuiltin("=", builtinEqual)
	RegisterBuiltin(">", compareBuiltin(">",
		func(x, y float32) bool { return x > y },
		func(x, y int32) bool { return x > y }))
	RegisterBuiltin("<", compareBuiltin("<",
		func(x, y float32) bool { return x < y },
		func(x, y int32) bool { return x < y }))
	RegisterBuiltin(">=", compareBuiltin(">=",
		func(x, y float32) bool { return x >= y },
		func(x, y int32) bool { return x >= y }))
	RegisterBuiltin("<=", compareBuiltin("<=",
		func(x, y float32) bool { return x <= y },
		func(x, y int32) bool { return x <= y }))
}
