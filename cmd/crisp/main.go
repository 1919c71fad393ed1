// Program crisp runs Lisp source files, or expressions given on the
// command line, against a single shared environment.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pborman/getopt"

	"github.com/crisplang/crisp"
)

func main() {
	var (
		expr  string
		debug bool
		help  bool
	)
	getopt.StringVarLong(&expr, "eval", 'e', "evaluate EXPR before any source files", "EXPR")
	getopt.BoolVarLong(&debug, "debug", 'd', "enable interpreter debug logging")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[SOURCE ...]")
	getopt.Parse()

	if help {
		getopt.PrintUsage(os.Stdout)
		return
	}
	crisp.SetDebug(debug)

	env := crisp.NewEnvironment()
	sink := crisp.NewBufferedSink(os.Stdout)
	defer sink.Flush()

	run := func(name, src string) {
		prog, err := crisp.FromNamedString(name, src)
		if err == nil {
			_, err = prog.Run(env, sink)
		}
		if err != nil {
			sink.Flush()
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if expr != "" {
		run("<eval>", expr)
	}
	for _, path := range getopt.Args() {
		src, err := ioutil.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		run(path, string(src))
	}
}
