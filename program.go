package crisp

// Program is a compiled source text: tokenised and parsed once at
// construction, runnable any number of times against different
// environments and sinks.
type Program struct {
	// Input
	name string
	src  string

	// Calculation
	tokens []*Token

	// The single top-level list holding every form of the program.
	root *Value
}

// FromString compiles source text under the name "<string>".
func FromString(src string) (*Program, error) {
	return FromNamedString("<string>", src)
}

// FromNamedString compiles source text; the name shows up in error
// messages.
func FromNamedString(name, src string) (*Program, error) {
	p := &Program{
		name: name,
		src:  src,
	}

	// Tokenize it
	tokens, err := lex(name, src)
	if err != nil {
		return nil, err
	}
	p.tokens = tokens

	// Parse it
	root, err := newParser(name, tokens).parseDocument()
	if err != nil {
		return nil, err
	}
	p.root = root

	return p, nil
}

// Name returns the name the program was compiled under.
func (p *Program) Name() string {
	return p.name
}

// Root returns the top-level forms list.
func (p *Program) Root() *Value {
	return p.root
}

// Run evaluates the program and returns the value of its last
// top-level form. A nil environment gets a fresh root environment, so
// successive programs can share definitions by sharing an environment.
func (p *Program) Run(env *Environment, sink Sink) (*Value, error) {
	if env == nil {
		env = NewEnvironment()
	}
	result, err := Evaluate(env, sink, p.root)
	if err != nil {
		if e, ok := AsError(err); ok && e.Filename == "" {
			e.Filename = p.name
		}
		return nil, err
	}
	return result, nil
}
