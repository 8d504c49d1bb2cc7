package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lispizzle/lispizzle/pkg/core"
)

// Options configures a REPL run.
type Options struct {
	EnableColors bool
	HistoryFile  string
}

// Run starts an interactive read-eval-print loop against env, using
// readline for line editing, history, and tab completion. It blocks
// until the user exits (EOF, "quit", or "exit").
func Run(env *core.Environment, opts Options) error {
	if !opts.EnableColors {
		color.NoColor = true
	}

	completer := &lispCompleter{provider: NewCompletionProvider(env)}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lispizzle> ",
		HistoryFile:     opts.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	printWelcome(opts.EnableColors)
	formatter := NewErrorFormatter()
	ctx := core.NewContext()

	for {
		input, err := readBalancedExpression(rl)
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				break
			}
			fmt.Printf("input error: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == "quit" || trimmed == "exit" {
			break
		}

		result, evalErr := evalSource(ctx, env, trimmed)
		if evalErr != nil {
			switch e := evalErr.(type) {
			case *core.ReadError:
				fmt.Println(formatter.FormatReadError(e))
			case *core.LispError:
				fmt.Println(formatter.FormatLispError(e))
			default:
				fmt.Println(evalErr)
			}
			continue
		}

		resultColor := color.New(color.FgGreen)
		fmt.Printf("=> %s\n", resultColor.Sprint(result.String()))
	}

	printGoodbye(opts.EnableColors)
	return nil
}

// evalSource reads every top-level form in src against env and returns the
// value of the last one, macro-expanding and evaluating each in turn the
// same way the file-eval CLI mode does (spec §6).
func evalSource(ctx core.Context, env *core.Environment, src string) (core.Value, error) {
	forms, readErr := core.NewReader("", src).ReadAll()
	if readErr != nil {
		return nil, readErr
	}
	if len(forms) == 0 {
		return core.Unspecified{}, nil
	}

	var result core.Value = core.Unspecified{}
	for _, form := range forms {
		expanded, err := core.Macroexpand(form, ctx, env, true)
		if err != nil {
			return nil, err
		}
		result, err = core.Eval(expanded, ctx, env, true)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// readBalancedExpression reads lines until parentheses balance and at
// least one non-comment, non-whitespace token has been seen, respecting
// string literals and escapes so that a paren inside a string never
// counts.
func readBalancedExpression(rl *readline.Instance) (string, error) {
	var lines []string
	depth := 0
	inString := false
	escaped := false
	first := true

	for {
		if first {
			rl.SetPrompt("lispizzle> ")
			first = false
		} else {
			rl.SetPrompt("........ ")
		}

		line, err := rl.Readline()
		if err != nil {
			return strings.Join(lines, "\n"), err
		}
		lines = append(lines, line)

		trimmed := strings.TrimSpace(line)
		if len(lines) == 1 && (trimmed == "quit" || trimmed == "exit") {
			return trimmed, nil
		}

		for _, ch := range line {
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				if inString {
					escaped = true
				}
			case '"':
				inString = !inString
			case '(':
				if !inString {
					depth++
				}
			case ')':
				if !inString {
					depth--
				}
			}
		}

		joined := strings.Join(lines, "\n")
		if depth <= 0 && hasContent(joined) {
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}

// hasContent reports whether src has any non-comment, non-whitespace text.
func hasContent(src string) bool {
	for _, line := range strings.Split(src, "\n") {
		inString := false
		escaped := false
	scan:
		for i, ch := range line {
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				if inString {
					escaped = true
				}
			case '"':
				inString = !inString
			case ';':
				if !inString {
					line = line[:i]
					break scan
				}
			}
		}
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}

func printWelcome(enableColors bool) {
	title := color.New(color.FgCyan, color.Bold)
	instr := color.New(color.FgYellow)
	if !enableColors {
		color.NoColor = true
	}
	title.Println("lispizzle")
	instr.Println("Type expressions to evaluate them, or 'quit' to exit.")
	fmt.Println()
}

func printGoodbye(enableColors bool) {
	color.New(color.FgMagenta, color.Bold).Println("Goodbye!")
}
