package js

import (
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
)

// consoleAPI implements console.log/warn/error for page scripts, writing
// to a single output stream.
type consoleAPI struct {
	out io.Writer
}

func (c *consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", c.printer(""))
	console.Set("warn", c.printer("warn: "))
	console.Set("error", c.printer("error: "))
	vm.Set("console", console)
}

func (c *consoleAPI) printer(prefix string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		fmt.Fprintln(c.out, prefix+strings.Join(parts, " "))
		return goja.Undefined()
	}
}
