package crisp

import (
	"math"
)

// number is the running value of an arithmetic fold. The fold stays
// integral until a float operand is seen, after which it is widened
// and remains float.
type number struct {
	isFloat bool
	i       int32
	f       float32
}

func numberOf(v *Value) (number, bool) {
	switch v.Kind() {
	case KindInt:
		return number{i: v.integer}, true
	case KindFloat:
		return number{isFloat: true, f: v.float}, true
	default:
		return number{}, false
	}
}

func (n number) widen() float32 {
	if n.isFloat {
		return n.f
	}
	return float32(n.i)
}

func (n number) isZero() bool {
	if n.isFloat {
		return n.f == 0
	}
	return n.i == 0
}

func (n number) value() *Value {
	if n.isFloat {
		return NewFloat(-1, n.f)
	}
	return NewInt(-1, n.i)
}

func (n number) add(m number) number {
	if n.isFloat || m.isFloat {
		return number{isFloat: true, f: n.widen() + m.widen()}
	}
	return number{i: n.i + m.i}
}

func (n number) sub(m number) number {
	if n.isFloat || m.isFloat {
		return number{isFloat: true, f: n.widen() - m.widen()}
	}
	return number{i: n.i - m.i}
}

func (n number) mul(m number) number {
	if n.isFloat || m.isFloat {
		return number{isFloat: true, f: n.widen() * m.widen()}
	}
	return number{i: n.i * m.i}
}

// div truncates for an all-integer fold and widens otherwise. The
// divisor is known to be non-zero.
func (n number) div(m number) number {
	if n.isFloat || m.isFloat {
		return number{isFloat: true, f: n.widen() / m.widen()}
	}
	return number{i: n.i / m.i}
}

// evalNumber evaluates one operand of an arithmetic built-in and
// requires the result to be numeric.
func evalNumber(env *Environment, sink Sink, name string, form, args *Value) (number, error) {
	v, err := Evaluate(env, sink, form)
	if err != nil {
		return number{}, err
	}
	n, ok := numberOf(v)
	if !ok {
		return number{}, newArgumentError(errorLine(form, args), "builtin:"+name,
			"'%s' requires numeric operands, but got a %s", name, v.Kind())
	}
	return n, nil
}

// builtinAdd sums its operands; (+) is 0.
func builtinAdd(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := args.AsList()
	if err != nil {
		return nil, err
	}
	acc := number{}
	for _, form := range elems {
		n, err := evalNumber(env, sink, "+", form, args)
		if err != nil {
			return nil, err
		}
		acc = acc.add(n)
	}
	return acc.value(), nil
}

// builtinMul multiplies its operands; (*) is 1.
func builtinMul(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := args.AsList()
	if err != nil {
		return nil, err
	}
	acc := number{i: 1}
	for _, form := range elems {
		n, err := evalNumber(env, sink, "*", form, args)
		if err != nil {
			return nil, err
		}
		acc = acc.mul(n)
	}
	return acc.value(), nil
}

// builtinSub subtracts the remaining operands from the first. Called
// with no operands at all it answers 0.
func builtinSub(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := args.AsList()
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return NewInt(-1, 0), nil
	}
	acc, err := evalNumber(env, sink, "-", elems[0], args)
	if err != nil {
		return nil, err
	}
	for _, form := range elems[1:] {
		n, err := evalNumber(env, sink, "-", form, args)
		if err != nil {
			return nil, err
		}
		acc = acc.sub(n)
	}
	return acc.value(), nil
}

// builtinDiv divides the first operand by each of the rest in order.
// An all-integer chain truncates at every step. Called with no
// operands at all it answers 0.
func builtinDiv(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := args.AsList()
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return NewInt(-1, 0), nil
	}
	acc, err := evalNumber(env, sink, "/", elems[0], args)
	if err != nil {
		return nil, err
	}
	for _, form := range elems[1:] {
		n, err := evalNumber(env, sink, "/", form, args)
		if err != nil {
			return nil, err
		}
		if n.isZero() {
			return nil, newArgumentError(errorLine(form, args), "builtin:/",
				"cannot divide by zero")
		}
		acc = acc.div(n)
	}
	return acc.value(), nil
}

// builtinPow raises its first operand to its second. The result is an
// int iff both operands are ints.
func builtinPow(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("pow", args, 2)
	if err != nil {
		return nil, err
	}
	base, err := evalNumber(env, sink, "pow", elems[0], args)
	if err != nil {
		return nil, err
	}
	exp, err := evalNumber(env, sink, "pow", elems[1], args)
	if err != nil {
		return nil, err
	}
	result := math.Pow(float64(base.widen()), float64(exp.widen()))
	if !base.isFloat && !exp.isFloat {
		return NewInt(-1, int32(result)), nil
	}
	return NewFloat(-1, float32(result)), nil
}

// builtinSqrt takes the square root of a non-negative operand. An int
// operand yields a truncated int.
func builtinSqrt(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := exactArgs("sqrt", args, 1)
	if err != nil {
		return nil, err
	}
	n, err := evalNumber(env, sink, "sqrt", elems[0], args)
	if err != nil {
		return nil, err
	}
	if n.widen() < 0 {
		return nil, newArgumentError(errorLine(elems[0], args), "builtin:sqrt",
			"cannot take the square root of a negative number")
	}
	root := math.Sqrt(float64(n.widen()))
	if !n.isFloat {
		return NewInt(-1, int32(root)), nil
	}
	return NewFloat(-1, float32(root)), nil
}

func init() {
	RegisterBuiltin("+", builtinAdd)
	RegisterBuiltin("-", builtinSub)
	RegisterBuiltin("*", builtinMul)
	RegisterBuiltin("/", builtinDiv)
	RegisterBuiltin("pow", builtinPow)
	RegisterBuiltin("sqrt", builtinSqrt)
}
