// Package repl implements the interactive read-eval-print loop: balanced
// multi-line input, colorized output, tab completion, and error
// formatting on top of pkg/core.
package repl

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/lispizzle/lispizzle/pkg/core"
)

// ErrorFormatter renders a *core.LispError with a color keyed to its
// symbolic name, plus the backtrace top-to-bottom.
type ErrorFormatter struct {
	colors      map[string]*color.Color
	defaultColor *color.Color
	prefixColor *color.Color
	frameColor  *color.Color
}

// NewErrorFormatter creates a formatter with one color per taxonomy entry
// of spec §7.
func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		colors: map[string]*color.Color{
			core.ErrSyntax:        color.New(color.FgRed, color.Bold),
			core.ErrWrongType:     color.New(color.FgCyan, color.Bold),
			core.ErrWrongArgCount: color.New(color.FgMagenta, color.Bold),
			core.ErrUnbound:       color.New(color.FgYellow, color.Bold),
			core.ErrOutOfRange:    color.New(color.FgBlue, color.Bold),
		},
		defaultColor: color.New(color.FgWhite, color.Bold),
		prefixColor:  color.New(color.FgRed, color.Bold),
		frameColor:   color.New(color.FgHiBlack),
	}
}

func (ef *ErrorFormatter) colorFor(name string) *color.Color {
	if c, ok := ef.colors[name]; ok {
		return c
	}
	return ef.defaultColor
}

// FormatLispError renders a runtime error: its symbolic name, its
// argument list if present, and the backtrace top-to-bottom (spec §6's
// diagnostic format).
func (ef *ErrorFormatter) FormatLispError(e *core.LispError) string {
	c := ef.colorFor(e.Name.Raw())
	var b strings.Builder
	b.WriteString(ef.prefixColor.Sprint("error:"))
	b.WriteString(" ")
	b.WriteString(c.Sprint(e.Name.Raw()))
	if e.Args != nil {
		b.WriteString(" ")
		b.WriteString(e.Args.String())
	}
	if e.Trace != nil {
		for _, f := range e.Trace.Frames() {
			b.WriteString("\n  ")
			b.WriteString(ef.frameColor.Sprint("at " + f.String()))
		}
	}
	return b.String()
}

// FormatReadError renders a reader diagnostic in path:line:column form
// with the offending source line and a caret.
func (ef *ErrorFormatter) FormatReadError(e *core.ReadError) string {
	return ef.prefixColor.Sprint("read error: ") + fmt.Sprint(e)
}
