// A small Lisp-family interpreter with a parenthesised S-expression
// syntax, dynamic typing and a fixed catalogue of built-in operators.
//
// Current caveats
//   - Free variables in user functions resolve through the caller's
//     environment chain, not the definition environment. This is the
//     language's intended behaviour, not an accident.
//   - Numbers are machine precision: 32-bit signed integers and 32-bit
//     IEEE-754 floats. There is no bignum tower.
//
// A tiny example:
//
//	prog, err := crisp.FromString(`(print-line (+ 1 2 3 4))`)
//	if err != nil {
//	    panic(err)
//	}
//	sink := crisp.NewBufferedSink(os.Stdout)
//	_, err = prog.Run(nil, sink) // writes "10 \n"
//	if err != nil {
//	    panic(err)
//	}
package crisp
