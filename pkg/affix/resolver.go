package affix

import (
	"fmt"

	"stickybar/pkg/css"
	"stickybar/pkg/measure"
)

// Capabilities reports which transform features the rendering platform
// supports. When neither is available the resolver falls back to absolute
// positioning.
type Capabilities struct {
	Transform   bool
	Transform3D bool
}

// StyleSets holds the styles to apply to the sidebar element (outer) and
// its inner wrapper for one resolved mode.
type StyleSets struct {
	Outer *css.Style
	Inner *css.Style
}

// Resolve maps a mode to concrete wrapper styles. Every result starts from
// the full static reset set and overlays only the fields the mode needs,
// so a mode switch can never leave a stale property behind.
func Resolve(mode Mode, snap measure.Snapshot, translateY float64, caps Capabilities) StyleSets {
	inner := resetInner(caps)
	outer := resetOuter()

	switch mode {
	case ViewportTop:
		inner.Set("position", "fixed")
		inner.Set("top", css.FormatLength(snap.TopSpacing))
		inner.Set("left", css.FormatLength(snap.SidebarLeft-snap.ViewportLeft))
		inner.Set("width", css.FormatLength(snap.SidebarWidth))
		sizeOuter(outer, snap)

	case ViewportBottom:
		inner.Set("position", "fixed")
		inner.Set("top", "auto")
		inner.Set("left", css.FormatLength(snap.SidebarLeft))
		inner.Set("bottom", css.FormatLength(snap.BottomSpacing))
		inner.Set("width", css.FormatLength(snap.SidebarWidth))
		sizeOuter(outer, snap)

	case ContainerBottom, ViewportUnbottom:
		switch {
		case caps.Transform3D:
			inner.Set("transform", fmt.Sprintf("translate3d(0, %s, 0)", css.FormatLength(translateY)))
		case caps.Transform:
			inner.Set("transform", fmt.Sprintf("translate(0, %s)", css.FormatLength(translateY)))
		default:
			inner.Set("position", "absolute")
			inner.Set("top", css.FormatLength(snap.ContainerTop+translateY))
		}
		sizeOuter(outer, snap)
	}

	return StyleSets{Outer: outer, Inner: inner}
}

// resetInner is the static style set: relative flow position, cleared
// offsets and width, identity transform (phrased for the best supported
// transform feature).
func resetInner(caps Capabilities) *css.Style {
	s := css.NewStyle()
	s.Set("position", "relative")
	s.Set("top", "")
	s.Set("left", "")
	s.Set("bottom", "")
	s.Set("width", "")
	switch {
	case caps.Transform3D:
		s.Set("transform", "translate3d(0, 0, 0)")
	case caps.Transform:
		s.Set("transform", "translate(0, 0)")
	default:
		s.Set("transform", "")
	}
	return s
}

func resetOuter() *css.Style {
	s := css.NewStyle()
	s.Set("height", "")
	s.Set("position", "")
	return s
}

// sizeOuter reserves the sidebar's flow space on the outer element while
// the inner wrapper is fixed or translated out of flow.
func sizeOuter(outer *css.Style, snap measure.Snapshot) {
	outer.Set("height", css.FormatLength(snap.SidebarHeight))
	outer.Set("position", "relative")
}
