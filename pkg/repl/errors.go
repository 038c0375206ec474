// Package repl implements the interactive prompt: a fixed-prompt,
// line-oriented read-eval-print loop with `quit`/EOF termination,
// layered over colorized output and line editing.
package repl

import (
	"strings"

	"github.com/fatih/color"
	"github.com/leinonen/go-scheme/pkg/schemerr"
)

// errorColor picks a color for an error by its schemerr kind.
func errorColor(err error) *color.Color {
	switch err.(type) {
	case *schemerr.ParserError:
		return color.New(color.FgRed, color.Bold)
	case *schemerr.UnboundVarError:
		return color.New(color.FgYellow, color.Bold)
	case *schemerr.TypeMismatchError:
		return color.New(color.FgCyan, color.Bold)
	case *schemerr.NotFunctionError:
		return color.New(color.FgMagenta, color.Bold)
	case *schemerr.NumArgsError:
		return color.New(color.FgMagenta, color.Bold)
	case *schemerr.BadSpecialFormError:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite, color.Bold)
	}
}

// formatError renders err the way EvalString would (err.Error()) but
// with a colored prefix label for the interactive prompt. Batch mode
// (pkg/driver) uses the plain err.Error() string instead; there is no
// terminal to color it for.
func formatError(err error) string {
	c := errorColor(err)
	msg := err.Error()
	if idx := strings.IndexByte(msg, ':'); idx >= 0 {
		return c.Sprint(msg[:idx]) + msg[idx:]
	}
	return c.Sprint(msg)
}
