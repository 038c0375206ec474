// goscheme is the interpreter's entry point: invoked with zero arguments
// it starts the REPL; with one or more arguments the first is a script
// path (batch mode) and the rest are exposed to the script as the
// Scheme-level `args` variable.
package main

import (
	"os"

	"github.com/leinonen/go-scheme/pkg/driver"
	"github.com/leinonen/go-scheme/pkg/eval"
	"github.com/leinonen/go-scheme/pkg/repl"
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		environment := eval.NewGlobalEnvironment()
		if err := repl.Run(environment); err != nil {
			os.Exit(1)
		}
		return
	}

	driver.RunFile(args[0], args[1:])
}
