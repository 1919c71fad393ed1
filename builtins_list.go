package crisp

// builtinCar returns the first element of a non-empty list.
func builtinCar(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("car", args, 1)
	if err != nil {
		return nil, err
	}
	v, err := Evaluate(env, sink, elems[0])
	if err != nil {
		return nil, err
	}
	if !v.Is(KindList) {
		return nil, newArgumentError(errorLine(elems[0], args), "builtin:car",
			"'car' requires a list, but got a %s", v.Kind())
	}
	if v.Len() == 0 {
		return nil, newArgumentError(errorLine(elems[0], args), "builtin:car",
			"'car' of an empty list")
	}
	return v.Index(0)
}

// builtinCdr returns a fresh list of everything after the first
// element; the cdr of an empty list is an empty list.
func builtinCdr(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("cdr", args, 1)
	if err != nil {
		return nil, err
	}
	v, err := Evaluate(env, sink, elems[0])
	if err != nil {
		return nil, err
	}
	if !v.Is(KindList) {
		return nil, newArgumentError(errorLine(elems[0], args), "builtin:cdr",
			"'cdr' requires a list, but got a %s", v.Kind())
	}
	children, err := v.AsList()
	if err != nil {
		return nil, err
	}
	rest := NewList(-1)
	if len(children) > 1 {
		rest.Append(children[1:]...)
	}
	return rest, nil
}

// builtinEmpty reports whether a list has no elements.
func builtinEmpty(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("empty?", args, 1)
	if err != nil {
		return nil, err
	}
	v, err := Evaluate(env, sink, elems[0])
	if err != nil {
		return nil, err
	}
	if !v.Is(KindList) {
		return nil, newArgumentError(errorLine(elems[0], args), "builtin:empty?",
			"'empty?' requires a list, but got a %s", v.Kind())
	}
	return NewBool(v.Len() == 0), nil
}

func init() {
	RegisterBuiltin("car", builtinCar)
	RegisterBuiltin("cdr", builtinCdr)
	RegisterBuiltin("empty?", builtinEmpty)
}
