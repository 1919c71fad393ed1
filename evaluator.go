package crisp

// Evaluate is the tree-walking interpreter. A list argument is treated
// as a sequence of forms whose last result is returned (None when the
// sequence is empty); an identifier resolves as a bare reference; any
// other atom evaluates to itself.
//
// Within a forms list:
//   - a list headed by an identifier is evaluated by re-entering the
//     evaluator, so identifier dispatch fires on its head;
//   - any other list is returned literally, which is how quoted and raw
//     list data propagates through let bodies and map templates;
//   - an identifier consumes every sibling form after it as the
//     unevaluated argument list of a call.
func Evaluate(env *Environment, sink Sink, v *Value) (*Value, error) {
	if v == nil {
		return None, nil
	}
	if !v.Is(KindList) {
		if v.Is(KindIdent) {
			return dispatch(env, sink, v, nil)
		}
		return v, nil
	}
	forms, err := v.AsList()
	if err != nil {
		return nil, err
	}
	result := None
	for i, f := range forms {
		switch {
		case f.Is(KindList):
			if head := f.head(); head != nil && head.Is(KindIdent) {
				result, err = Evaluate(env, sink, f)
				if err != nil {
					return nil, err
				}
			} else {
				result = f
			}
		case f.Is(KindIdent):
			return dispatch(env, sink, f, forms[i+1:])
		default:
			result = f
		}
	}
	return result, nil
}

// dispatch resolves an identifier in call position. With arguments the
// resolution order is built-in, then user function; a bare identifier
// additionally falls through to variables, and a bare callable is
// invoked with an empty argument list.
func dispatch(env *Environment, sink Sink, ident *Value, rest []*Value) (*Value, error) {
	name, err := ident.AsIdent()
	if err != nil {
		return nil, err
	}
	if logger.IsTraceEnabled() {
		logger.Tracef("dispatch %q with %d argument(s) (line %d)", name, len(rest), ident.Line())
	}

	if len(rest) > 0 {
		args := NewListOf(ident.Line(), rest...)
		if fn, ok := lookupBuiltin(name); ok {
			return fn(env, sink, args)
		}
		if fn, ok := env.UserFunction(name); ok {
			return fn.Call(env, sink, args)
		}
		return nil, newNotFoundError(ident.Line(), name)
	}

	empty := NewList(ident.Line())
	if fn, ok := lookupBuiltin(name); ok {
		return fn(env, sink, empty)
	}
	if fn, ok := env.UserFunction(name); ok {
		return fn.Call(env, sink, empty)
	}
	if v, ok := env.Variable(name); ok {
		return v, nil
	}
	return nil, newNotFoundError(ident.Line(), name)
}
