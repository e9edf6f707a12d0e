package js

import (
	"github.com/dop251/goja"

	"stickybar/pkg/html"
	"stickybar/pkg/measure"
	"stickybar/pkg/sticky"
)

// registerStickySidebar installs the StickySidebar constructor:
//
//	var s = new StickySidebar("#sidebar", {
//	    containerSelector: "#container",
//	    topSpacing: 20,                       // or function (el) { ... }
//	    bottomSpacing: 0,
//	    minWidth: 480,
//	});
//	s.on("affixed.viewport-top", function (name) { ... });
func (e *Engine) registerStickySidebar(doc *html.Document) {
	vm := e.vm
	vm.Set("StickySidebar", func(call goja.ConstructorCall) *goja.Object {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("StickySidebar: selector argument required"))
		}
		selector := call.Arguments[0].String()

		opts := sticky.Options{Capabilities: e.caps}
		if len(call.Arguments) > 1 {
			e.readOptions(call.Arguments[1], &opts)
		}

		s, err := sticky.Bind(doc, selector, opts, e.measurer)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		e.sidebars = append(e.sidebars, s)

		return e.sidebarObject(s)
	})
}

// readOptions copies recognized fields from a JS options object.
// topSpacing/bottomSpacing accept numbers or functions of the sidebar
// element; anything non-numeric resolves to 0 at evaluation time.
func (e *Engine) readOptions(v goja.Value, opts *sticky.Options) {
	obj := v.ToObject(e.vm)
	if obj == nil {
		return
	}
	for _, key := range obj.Keys() {
		val := obj.Get(key)
		switch key {
		case "containerSelector":
			opts.ContainerSelector = val.String()
		case "innerWrapperClass":
			opts.InnerWrapperClass = val.String()
		case "stuckClass":
			opts.StuckClass = val.String()
		case "minWidth":
			opts.MinWidth = val.ToFloat()
		case "topSpacing":
			opts.TopSpacing = e.spacingOption(val)
		case "bottomSpacing":
			opts.BottomSpacing = e.spacingOption(val)
		}
	}
}

func (e *Engine) spacingOption(val goja.Value) measure.Spacing {
	if fn, ok := goja.AssertFunction(val); ok {
		return measure.Spacing{Func: func(sidebar *html.Node) float64 {
			res, err := fn(goja.Undefined(), e.elementObject(sidebar))
			if err != nil {
				return 0
			}
			// NaN from non-numeric results is sanitized by the snapshot.
			return res.ToFloat()
		}}
	}
	return measure.Spacing{Value: val.ToFloat()}
}

// sidebarObject wraps a bound sidebar for page scripts.
func (e *Engine) sidebarObject(s *sticky.Sidebar) *goja.Object {
	vm := e.vm
	obj := vm.NewObject()

	obj.Set("updateSticky", func(goja.FunctionCall) goja.Value {
		s.HandleResize()
		return goja.Undefined()
	})
	obj.Set("destroy", func(goja.FunctionCall) goja.Value {
		s.Destroy()
		return goja.Undefined()
	})
	obj.Set("on", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(vm.NewTypeError("on: event name and handler required"))
		}
		name := call.Arguments[0].String()
		fn, ok := goja.AssertFunction(call.Arguments[1])
		if !ok {
			panic(vm.NewTypeError("on: handler must be a function"))
		}
		s.On(name, func(ev sticky.Event) {
			fn(goja.Undefined(), vm.ToValue(ev.Name), vm.ToValue(ev.Mode.String()))
		})
		return goja.Undefined()
	})
	obj.DefineAccessorProperty("affixedType", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return vm.ToValue(s.Mode().String())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	return obj
}
