package crisp

import (
	"io"
)

// writeOperand renders one print operand to the sink, followed by a
// single space. Lists and identifiers are evaluated first; every other
// atom prints as-is.
func writeOperand(env *Environment, sink Sink, form *Value) error {
	v := form
	if form.Is(KindList) || form.Is(KindIdent) {
		var err error
		v, err = Evaluate(env, sink, form)
		if err != nil {
			return err
		}
	}
	if _, err := io.WriteString(sink, v.String()); err != nil {
		return err
	}
	_, err := io.WriteString(sink, " ")
	return err
}

// builtinPrint writes its operands' textual forms to the sink, each
// followed by a space, and flushes so the host sees output in program
// order.
func builtinPrint(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := args.AsList()
	if err != nil {
		return nil, err
	}
	for _, form := range elems {
		if err := writeOperand(env, sink, form); err != nil {
			return nil, err
		}
	}
	if err := sink.Flush(); err != nil {
		return nil, err
	}
	return None, nil
}

// builtinPrintLine is print with a trailing newline.
func builtinPrintLine(env *Environment, sink Sink, args *Value) (*Value, error) {
	elems, err := args.AsList()
	if err != nil {
		return nil, err
	}
	for _, form := range elems {
		if err := writeOperand(env, sink, form); err != nil {
			return nil, err
		}
	}
	if _, err := io.WriteString(sink, "\n"); err != nil {
		return nil, err
	}
	if err := sink.Flush(); err != nil {
		return nil, err
	}
	return None, nil
}

func init() {
	RegisterBuiltin("print", builtinPrint)
	RegisterBuiltin("print-line", builtinPrintLine)
}
