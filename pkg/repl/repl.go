package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/leinonen/go-scheme/pkg/eval"
	"github.com/leinonen/go-scheme/pkg/reader"
	"github.com/leinonen/go-scheme/pkg/types"
)

// prompt is the fixed prompt string printed before each input line.
const prompt = "scheme> "

// goodbye is the fixed goodbye line printed on `quit` or end-of-input.
const goodbye = "Goodbye."

// Run starts the interactive read-eval-print loop against environment,
// reading from a readline-backed stdin (line editing and history) and
// writing results to stdout. It returns when the user types the literal
// line "quit" or supplies end-of-input, having already printed the
// goodbye line.
func Run(environment types.Environment) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return runPlain(environment, bufio.NewScanner(os.Stdin))
	}
	defer rl.Close()

	resultColor := color.New(color.FgGreen)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" {
			break
		}

		printResult(environment, line, resultColor)
	}

	fmt.Println(goodbye)
	return nil
}

// runPlain is the bufio.Scanner-backed fallback used when readline
// cannot initialize the terminal (e.g. when stdin is not a TTY).
func runPlain(environment types.Environment, scanner *bufio.Scanner) error {
	resultColor := color.New(color.FgGreen)
	fmt.Print(prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Print(prompt)
			continue
		}
		if line == "quit" {
			break
		}
		printResult(environment, line, resultColor)
		fmt.Print(prompt)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return err
	}
	fmt.Println(goodbye)
	return nil
}

func printResult(environment types.Environment, line string, resultColor *color.Color) {
	val, err := reader.ReadExpr(line)
	if err != nil {
		fmt.Println(formatError(err))
		return
	}
	result, err := eval.Eval(environment, val)
	if err != nil {
		fmt.Println(formatError(err))
		return
	}
	fmt.Printf("=> %s\n", resultColor.Sprint(result.String()))
}
