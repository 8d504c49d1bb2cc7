package core

import "fmt"

// setupIO installs print/println, the only observable blocking primitives
// in the language (spec §5).
func setupIO(env *Environment) {
	defNative(env, "print", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		for i, a := range args {
			if i > 0 {
				fmt.Fprint(ctx.Out(), " ")
			}
			fmt.Fprint(ctx.Out(), displayString(a))
		}
		return Unspecified{}, nil
	})

	defNative(env, "println", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		for i, a := range args {
			if i > 0 {
				fmt.Fprint(ctx.Out(), " ")
			}
			fmt.Fprint(ctx.Out(), displayString(a))
		}
		fmt.Fprintln(ctx.Out())
		return Unspecified{}, nil
	})
}

// displayString renders a Value the way print/println show it: strings
// lose their surrounding quotes, everything else uses its normal String
// form.
func displayString(v Value) string {
	if s, ok := v.(Str); ok {
		return s.S.Raw()
	}
	return v.String()
}
