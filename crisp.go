package crisp

// Version string
const Version = "1.0"

// Must panics if a program could not be compiled. This is how you
// would use it:
//
//	var prog = crisp.Must(crisp.FromString("(print-line (+ 1 2))"))
func Must(p *Program, err error) *Program {
	if err != nil {
		panic(err)
	}
	return p
}

// RunString compiles and runs src in one step against a fresh root
// environment.
func RunString(src string, sink Sink) (*Value, error) {
	prog, err := FromString(src)
	if err != nil {
		return nil, err
	}
	return prog.Run(nil, sink)
}
