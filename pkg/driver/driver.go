// Package driver implements batch (file) mode: evaluate `(load <script>)`
// against a fresh global environment with the Scheme-level `args`
// variable bound, and print the result or error string to stderr.
package driver

import (
	"fmt"
	"os"

	"github.com/leinonen/go-scheme/pkg/eval"
	"github.com/leinonen/go-scheme/pkg/types"
)

// RunFile evaluates scriptPath in batch mode. extraArgs are the
// remaining command-line arguments, exposed to the script as the
// Scheme-level variable `args` bound to a List of Strings.
func RunFile(scriptPath string, extraArgs []string) {
	environment := eval.NewGlobalEnvironment()

	argValues := make([]types.Value, len(extraArgs))
	for i, a := range extraArgs {
		argValues[i] = types.String(a)
	}
	environment.Define("args", types.NewList(argValues...))

	loadForm := types.NewList(types.Atom("load"), types.String(scriptPath))
	result, err := eval.Eval(environment, loadForm)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	fmt.Fprintln(os.Stderr, result.String())
}
