// Package js exposes the sticky engine to page scripts through a goja
// runtime: pages construct StickySidebar instances, supply spacing
// callbacks, and listen for affix events.
package js

import (
	"fmt"
	"io"
	"os"

	"github.com/dop251/goja"

	"stickybar/pkg/affix"
	"stickybar/pkg/html"
	"stickybar/pkg/measure"
	"stickybar/pkg/sticky"
)

// Engine executes a document's scripts against the sticky engine.
type Engine struct {
	vm       *goja.Runtime
	measurer measure.Measurer
	caps     affix.Capabilities
	console  *consoleAPI
	sidebars []*sticky.Sidebar
}

// New creates an engine whose StickySidebar instances measure through m
// and resolve styles with the given transform capabilities.
func New(m measure.Measurer, caps affix.Capabilities) *Engine {
	vm := goja.New()
	e := &Engine{vm: vm, measurer: m, caps: caps}

	e.console = &consoleAPI{out: os.Stdout}
	e.console.register(vm)

	return e
}

// SetConsoleOutput redirects console.* output.
func (e *Engine) SetConsoleOutput(w io.Writer) {
	e.console.out = w
}

// Run evaluates one script in the engine's runtime, after Execute has
// bound the document. Used by hosts to poke at page state.
func (e *Engine) Run(script string) (goja.Value, error) {
	return e.vm.RunString(script)
}

// Execute runs all scripts from the document in order. The StickySidebar
// constructor is bound to this document's DOM. Script errors are returned
// but leave already-constructed sidebars usable.
func (e *Engine) Execute(doc *html.Document) error {
	e.registerStickySidebar(doc)

	for i, script := range doc.Scripts {
		if _, err := e.vm.RunString(script); err != nil {
			return fmt.Errorf("script %d: %w", i, err)
		}
	}
	return nil
}

// Sidebars returns every sidebar page scripts have constructed, in
// construction order. The host drives these from its scroll source.
func (e *Engine) Sidebars() []*sticky.Sidebar {
	return e.sidebars
}
