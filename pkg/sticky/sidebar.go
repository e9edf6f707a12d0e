// Package sticky binds the affix engine to a DOM sidebar: it owns the
// wrapper elements, runs one evaluation per scroll/resize tick, applies
// the resolved styles, and dispatches affix events.
package sticky

import (
	"fmt"

	"stickybar/pkg/affix"
	"stickybar/pkg/css"
	"stickybar/pkg/html"
	"stickybar/pkg/measure"
)

const (
	DefaultInnerWrapperClass = "inner-wrapper-sticky"
	DefaultStuckClass        = "is-affixed"
)

// Options configures one sticky sidebar.
type Options struct {
	TopSpacing    measure.Spacing
	BottomSpacing measure.Spacing

	// MinWidth suspends sticky behavior while the viewport is this wide
	// or narrower. Zero or negative disables the breakpoint.
	MinWidth float64

	// ContainerSelector names the bounding ancestor. Empty selects the
	// sidebar's parent element.
	ContainerSelector string

	InnerWrapperClass string
	StuckClass        string

	Capabilities affix.Capabilities
}

// Event is an affix transition notification. Before-notifications are
// named "affix.<mode>", after-notifications "affixed.<mode>".
type Event struct {
	Name string
	Mode affix.Mode
}

type Handler func(Event)

// Sidebar is the orchestrator for one sticky element.
type Sidebar struct {
	node      *html.Node // the sidebar element (outer wrapper)
	inner     *html.Node // installed inner wrapper
	container *html.Node
	measurer  measure.Measurer
	opts      Options

	state    *affix.State
	applied  affix.Mode
	handlers map[string][]Handler

	destroyed bool
}

// Bind locates the sidebar and its container, installs the inner wrapper,
// and returns a ready sidebar. Configuration errors (selector matches
// nothing, container is not an ancestor) surface here, before any
// evaluation runs.
func Bind(doc *html.Document, selector string, opts Options, m measure.Measurer) (*Sidebar, error) {
	node := html.Find(doc.Root, selector)
	if node == nil {
		return nil, fmt.Errorf("sticky: no element matches %q", selector)
	}

	var container *html.Node
	if opts.ContainerSelector != "" {
		container = html.Closest(node.Parent, opts.ContainerSelector)
		if container == nil {
			return nil, fmt.Errorf("sticky: no ancestor of %q matches container selector %q",
				selector, opts.ContainerSelector)
		}
	} else {
		container = node.Parent
		if container == nil || container.TagName == "document" {
			return nil, fmt.Errorf("sticky: element %q has no parent container", selector)
		}
	}

	if opts.InnerWrapperClass == "" {
		opts.InnerWrapperClass = DefaultInnerWrapperClass
	}
	if opts.StuckClass == "" {
		opts.StuckClass = DefaultStuckClass
	}

	return &Sidebar{
		node:      node,
		inner:     node.WrapChildren("div", opts.InnerWrapperClass),
		container: container,
		measurer:  m,
		opts:      opts,
		state:     affix.NewState(),
		handlers:  make(map[string][]Handler),
	}, nil
}

// On registers a handler for a named event ("affix.<mode>",
// "affixed.<mode>") or for every event with "*".
func (s *Sidebar) On(name string, h Handler) {
	s.handlers[name] = append(s.handlers[name], h)
}

func (s *Sidebar) emit(prefix string, mode affix.Mode) {
	ev := Event{Name: prefix + "." + mode.String(), Mode: mode}
	for _, h := range s.handlers[ev.Name] {
		h(ev)
	}
	for _, h := range s.handlers["*"] {
		h(ev)
	}
}

// HandleScroll runs one evaluation tick for a scroll notification.
func (s *Sidebar) HandleScroll() {
	s.tick(false)
}

// HandleResize runs one tick with a forced style refresh: a resize can
// change geometry without changing the mode.
func (s *Sidebar) HandleResize() {
	s.tick(true)
}

// tick is the single evaluation path: breakpoint check, dimension refresh,
// evaluate, resolve, apply. Strictly in that order, all synchronous.
func (s *Sidebar) tick(force bool) {
	if s.destroyed {
		return
	}

	s.state.Breakpoint = s.opts.MinWidth > 0 && s.measurer.Viewport().Width <= s.opts.MinWidth
	if s.state.Breakpoint {
		s.enterBreakpoint()
		return
	}

	snap := measure.Take(s.measurer, s.node, s.container, s.opts.TopSpacing, s.opts.BottomSpacing)
	mode, translateY, _ := affix.Evaluate(snap, s.state)
	sets := affix.Resolve(mode, snap, translateY, s.opts.Capabilities)

	if mode != s.applied || force {
		s.emit("affix", mode)
		s.node.ApplyStyle(sets.Outer)
		s.inner.ApplyStyle(sets.Inner)
		s.node.ToggleClass(s.opts.StuckClass, mode != affix.Static)
		s.applied = mode
		s.emit("affixed", mode)
		return
	}

	// Same mode: only the horizontal offset can have drifted.
	if left, ok := sets.Inner.Get("left"); ok {
		patch := css.NewStyle()
		patch.Set("left", left)
		s.inner.ApplyStyle(patch)
	}
}

// enterBreakpoint suspends sticky behavior: static mode, cleared styles,
// cleared inner wrapper styling, no stuck marker.
func (s *Sidebar) enterBreakpoint() {
	snap := measure.Snapshot{ViewportTop: s.measurer.Viewport().Top}
	affix.Evaluate(snap, s.state)

	if s.applied != affix.Static {
		s.emit("affix", affix.Static)
		s.applied = affix.Static
		s.emit("affixed", affix.Static)
	}
	s.clearApplied()
}

// clearApplied removes every engine-managed property from the sidebar,
// leaving author styling untouched, and wipes the engine-owned inner
// wrapper entirely.
func (s *Sidebar) clearApplied() {
	empty := affix.Resolve(affix.Static, measure.Snapshot{}, 0, affix.Capabilities{})
	s.node.ApplyStyle(empty.Outer)
	s.inner.ClearStyle()
	s.node.RemoveClass(s.opts.StuckClass)
}

// Mode returns the mode currently applied to the DOM.
func (s *Sidebar) Mode() affix.Mode {
	return s.applied
}

// TranslateY returns the sidebar's current offset within its container.
func (s *Sidebar) TranslateY() float64 {
	return s.state.TranslateY
}

func (s *Sidebar) Node() *html.Node {
	return s.node
}

func (s *Sidebar) Inner() *html.Node {
	return s.inner
}

func (s *Sidebar) Container() *html.Node {
	return s.container
}

// Destroy resets all applied styling, removes the stuck marker and the
// inner wrapper, and drops every handler. Safe to call more than once.
func (s *Sidebar) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.clearApplied()
	html.Unwrap(s.inner)
	s.handlers = make(map[string][]Handler)
}
