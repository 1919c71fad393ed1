package crisp

// builtinDefine binds a variable in the current frame. Both arguments
// are consumed literally: (define x 3) binds the atom 3, and
// (define xs (1 2)) binds the raw list (1 2).
func builtinDefine(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("define", args, 2)
	if err != nil {
		return nil, err
	}
	if !elems[0].Is(KindIdent) {
		return nil, newArgumentError(errorLine(elems[0], args), "builtin:define",
			"the first argument to 'define' must be an identifier, not a %s", elems[0].Kind())
	}
	name, err := elems[0].AsIdent()
	if err != nil {
		return nil, err
	}
	env.SetVariable(name, elems[1])
	return None, nil
}

// builtinDefineFunc stores a user function: a name, a parameter-name
// list and a body of one or more forms, all consumed literally.
func builtinDefineFunc(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := atLeastArgs("define-func", args, 3)
	if err != nil {
		return nil, err
	}
	if !elems[0].Is(KindIdent) {
		return nil, newArgumentError(errorLine(elems[0], args), "builtin:define-func",
			"the first argument to 'define-func' must be an identifier, not a %s", elems[0].Kind())
	}
	name, err := elems[0].AsIdent()
	if err != nil {
		return nil, err
	}
	if !elems[1].Is(KindList) {
		return nil, newArgumentError(errorLine(elems[1], args), "builtin:define-func",
			"the parameter list of '%s' must be a list, not a %s", name, elems[1].Kind())
	}
	paramForms, err := elems[1].AsList()
	if err != nil {
		return nil, err
	}
	params := make([]string, 0, len(paramForms))
	for _, form := range paramForms {
		if !form.Is(KindIdent) {
			return nil, newArgumentError(errorLine(form, args), "builtin:define-func",
				"parameter names of '%s' must be identifiers, not %s", name, form.Kind())
		}
		param, err := form.AsIdent()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	body := NewListOf(args.Line(), elems[2:]...)
	env.SetUserFunction(name, NewUserFunction(name, params, body))
	return None, nil
}

func init() {
	RegisterBuiltin("define", builtinDefine)
	RegisterBuiltin("define-func", builtinDefineFunc)
}
