// Command lispizzle runs a Lispizzle program from a file, or starts an
// interactive REPL when given none.
package main

import (
	"fmt"
	"os"

	"github.com/lispizzle/lispizzle/pkg/core"
	"github.com/lispizzle/lispizzle/pkg/repl"
)

func main() {
	if len(os.Args) < 2 {
		env := core.NewRootEnvironmentWithPrelude()
		if err := repl.Run(env, repl.Options{EnableColors: true, HistoryFile: historyFilePath()}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runFile(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.lispizzle_history"
}

// runFile implements the file-eval mode of spec §6: read the file, parse
// it as a sequence of top-level forms, and macro-expand then evaluate
// each in order against a shared root environment, printing a reader or
// runtime error (with backtrace) and a non-zero exit on failure.
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	forms, readErr := core.NewReader(path, string(src)).ReadAll()
	if readErr != nil {
		return readErr
	}

	env := core.NewRootEnvironmentWithPrelude()
	ctx := core.NewContext()

	for _, form := range forms {
		expanded, evalErr := core.Macroexpand(form, ctx, env, true)
		if evalErr != nil {
			return formatRuntimeError(evalErr)
		}
		if _, evalErr = core.Eval(expanded, ctx, env, true); evalErr != nil {
			return formatRuntimeError(evalErr)
		}
	}
	return nil
}

func formatRuntimeError(err *core.LispError) error {
	msg := err.Error()
	for _, f := range err.Trace.Frames() {
		msg += "\n  at " + f.String()
	}
	return fmt.Errorf("%s", msg)
}
