package crisp

// templateForms unwraps a map/fold call template. A bare identifier is
// a direct function reference; a list is a partial application whose
// elements become the call prefix. The iterators append the
// per-element arguments to a fresh copy on every round, so the
// template itself is never mutated.
func templateForms(name string, v, args *Value) ([]*Value, error) {
	switch v.Kind() {
	case KindIdent:
		return []*Value{v}, nil
	case KindList:
		return v.AsList()
	default:
		return nil, newArgumentError(errorLine(v, args), "builtin:"+name,
			"the call template of '%s' must be an identifier or a list, not a %s", name, v.Kind())
	}
}

// applyTemplate builds and evaluates one call: the template prefix
// followed by the extra arguments.
func applyTemplate(env *Environment, sink Sink, tmpl []*Value, extra ...*Value) (*Value, error) {
	call := NewList(-1)
	call.Append(tmpl...)
	call.Append(extra...)
	return Evaluate(env, sink, call)
}

// builtinMap evaluates the template once per element of the iterated
// list, with the element appended as the last argument, and collects
// the results. The iterated list is consumed literally.
func builtinMap(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("map", args, 2)
	if err != nil {
		return nil, err
	}
	tmpl, err := templateForms("map", elems[0], args)
	if err != nil {
		return nil, err
	}
	if !elems[1].Is(KindList) {
		return nil, newArgumentError(errorLine(elems[1], args), "builtin:map",
			"'map' iterates a list, but got a %s", elems[1].Kind())
	}
	items, err := elems[1].AsList()
	if err != nil {
		return nil, err
	}
	out := NewList(-1)
	for _, item := range items {
		r, err := applyTemplate(env, sink, tmpl, item)
		if err != nil {
			return nil, err
		}
		out.Append(r)
	}
	return out, nil
}

// foldDirection runs a fold. Each round evaluates the template with
// the element as second-to-last argument and the accumulator as last;
// the round's result becomes the next accumulator.
func foldDirection(name string, rightToLeft bool) BuiltinFunction {
	return func(env *Environment, sink Sink, args *Value) (*Value, error) {
		elems, err := exactArgs(name, args, 3)
		if err != nil {
			return nil, err
		}
		tmpl, err := templateForms(name, elems[0], args)
		if err != nil {
			return nil, err
		}
		acc := elems[1]
		if !elems[2].Is(KindList) {
			return nil, newArgumentError(errorLine(elems[2], args), "builtin:"+name,
				"'%s' iterates a list, but got a %s", name, elems[2].Kind())
		}
		items, err := elems[2].AsList()
		if err != nil {
			return nil, err
		}
		for i := range items {
			item := items[i]
			if rightToLeft {
				item = items[len(items)-1-i]
			}
			acc, err = applyTemplate(env, sink, tmpl, item, acc)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}
}

func init() {
	RegisterBuiltin("map", builtinMap)
	RegisterBuiltin("foldl", foldDirection("foldl", false))
	RegisterBuiltin("foldr", foldDirection("foldr", true))
}
