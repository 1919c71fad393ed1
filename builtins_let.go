package crisp

// builtinLet creates an inner scope. The binding spine, a list of
// (ident expr) pairs, is consumed literally; each pair's expression is
// evaluated in the OUTER environment and the name bound in the inner
// one. The body forms run in the inner environment and the last one's
// value is the result (None for an empty body). Pairs with the wrong
// shape are silently skipped.
func builtinLet(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := atLeastArgs("let", args, 1)
	if err != nil {
		return nil, err
	}
	if !elems[0].Is(KindList) {
		return nil, newArgumentError(errorLine(elems[0], args), "builtin:let",
			"the binding spine of 'let' must be a list, not a %s", elems[0].Kind())
	}
	spine, err := elems[0].AsList()
	if err != nil {
		return nil, err
	}

	inner := NewChildEnvironment(env)
	for _, pair := range spine {
		if !pair.Is(KindList) || pair.Len() != 2 {
			continue
		}
		nameForm, err := pair.Index(0)
		if err != nil {
			return nil, err
		}
		if !nameForm.Is(KindIdent) {
			continue
		}
		name, err := nameForm.AsIdent()
		if err != nil {
			return nil, err
		}
		exprForm, err := pair.Index(1)
		if err != nil {
			return nil, err
		}
		v, err := Evaluate(env, sink, exprForm)
		if err != nil {
			return nil, err
		}
		inner.SetVariable(name, v)
	}

	body := NewListOf(args.Line(), elems[1:]...)
	return Evaluate(inner, sink, body)
}

func init() {
	RegisterBuiltin("let", builtinLet)
}
