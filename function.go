package crisp

// UserFunction is a named, parameterised callable defined by
// define-func. The body is a list of forms evaluated in order on each
// call; the last form's result is the call's result.
type UserFunction struct {
	name   string
	params []string
	body   *Value
}

// NewUserFunction creates a user function.
func NewUserFunction(name string, params []string, body *Value) *UserFunction {
	return &UserFunction{
		name:   name,
		params: params,
		body:   body,
	}
}

// Name returns the name the function was defined under.
func (f *UserFunction) Name() string {
	return f.name
}

// Arity returns the number of declared parameters.
func (f *UserFunction) Arity() int {
	return len(f.params)
}

// Call invokes the function with the given unevaluated argument list.
// A fresh frame is chained to the caller's environment (free variables
// resolve dynamically through the call chain, there is no closure over
// the definition site). Arguments are evaluated inside the fresh frame,
// in order, so a parameter bound earlier shadows names referenced by a
// later argument expression.
func (f *UserFunction) Call(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := args.AsList()
	if err != nil {
		return nil, err
	}
	if len(elems) != len(f.params) {
		return nil, newArgumentError(args.Line(), "function:"+f.name,
			"'%s' takes %d argument(s), but %d were given", f.name, len(f.params), len(elems))
	}
	inner := NewChildEnvironment(env)
	for i, param := range f.params {
		v, err := Evaluate(inner, sink, elems[i])
		if err != nil {
			return nil, err
		}
		inner.SetVariable(param, v)
	}
	return Evaluate(inner, sink, f.body)
}
