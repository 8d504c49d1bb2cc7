package repl

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lispizzle/lispizzle/pkg/core"
)

// CompletionProvider offers tab completion over every name reachable in
// an Environment's lexical chain — prelude bindings plus anything the
// user has def'd at the REPL so far.
type CompletionProvider struct {
	env *core.Environment
}

func NewCompletionProvider(env *core.Environment) *CompletionProvider {
	return &CompletionProvider{env: env}
}

// GetCompletions returns every bound name starting with prefix, sorted.
func (cp *CompletionProvider) GetCompletions(prefix string) []string {
	var out []string
	for _, n := range cp.env.Names() {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// lispCompleter adapts CompletionProvider to readline.AutoCompleter,
// completing the word immediately preceding the cursor.
type lispCompleter struct {
	provider *CompletionProvider
}

func (c *lispCompleter) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && isWordRune(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])

	var out [][]rune
	for _, name := range c.provider.GetCompletions(prefix) {
		out = append(out, []rune(name[len(prefix):]))
	}
	return out, pos - start
}

func isWordRune(r rune) bool {
	return !strings.ContainsRune(" \t\n()\"'`,;", r)
}

var _ readline.AutoCompleter = (*lispCompleter)(nil)
