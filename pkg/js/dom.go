package js

import (
	"github.com/dop251/goja"

	"stickybar/pkg/html"
)

// elementObject builds the element view handed to page callbacks: enough
// of the DOM surface for spacing functions and event handlers to inspect
// the sidebar. Geometry accessors measure live through the engine's
// measurer.
func (e *Engine) elementObject(node *html.Node) *goja.Object {
	vm := e.vm
	obj := vm.NewObject()

	obj.Set("tagName", node.TagName)
	if id, ok := node.GetAttribute("id"); ok {
		obj.Set("id", id)
	} else {
		obj.Set("id", "")
	}
	obj.Set("getAttribute", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		val, ok := node.GetAttribute(call.Arguments[0].String())
		if !ok {
			return goja.Null()
		}
		return vm.ToValue(val)
	})
	obj.Set("hasClass", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return vm.ToValue(false)
		}
		return vm.ToValue(node.HasClass(call.Arguments[0].String()))
	})

	obj.DefineAccessorProperty("offsetWidth", vm.ToValue(func(goja.FunctionCall) goja.Value {
		r, _ := e.measurer.Rect(node)
		return vm.ToValue(r.Width)
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("offsetHeight", vm.ToValue(func(goja.FunctionCall) goja.Value {
		r, _ := e.measurer.Rect(node)
		return vm.ToValue(r.Height)
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	return obj
}
