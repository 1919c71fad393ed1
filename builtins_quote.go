package crisp

// builtinQuote returns its single argument unchanged, never evaluated.
func builtinQuote(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("quote", args, 1)
	if err != nil {
		return nil, err
	}
	return elems[0], nil
}

func init() {
	RegisterBuiltin("quote", builtinQuote)
}
