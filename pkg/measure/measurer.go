package measure

import "stickybar/pkg/html"

// Rect is a document-relative rectangle.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Viewport describes the browsing viewport: scroll offsets plus visible size.
type Viewport struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Measurer is the platform boundary the engine measures through. Rect
// reports false for nodes the measurer cannot locate.
type Measurer interface {
	Viewport() Viewport
	Rect(n *html.Node) (Rect, bool)
}

// Spacing is a configured top or bottom spacing: a fixed value, or a
// per-tick function of the sidebar node. Func wins when both are set.
type Spacing struct {
	Value float64
	Func  func(*html.Node) float64
}

// Resolve evaluates the spacing for one tick. Non-finite results become 0.
func (sp Spacing) Resolve(sidebar *html.Node) float64 {
	if sp.Func != nil {
		return sanitize(sp.Func(sidebar))
	}
	return sanitize(sp.Value)
}

// Take builds a Snapshot for the sidebar/container pair. Spacing functions
// are evaluated exactly once per call.
func Take(m Measurer, sidebar, container *html.Node, top, bottom Spacing) Snapshot {
	vp := m.Viewport()
	side, _ := m.Rect(sidebar)
	cont, _ := m.Rect(container)

	return Snapshot{
		ViewportTop:     vp.Top,
		ViewportHeight:  vp.Height,
		ViewportLeft:    vp.Left,
		ContainerTop:    cont.Top,
		ContainerHeight: cont.Height,
		SidebarHeight:   side.Height,
		SidebarWidth:    side.Width,
		SidebarLeft:     side.Left,
		TopSpacing:      top.Resolve(sidebar),
		BottomSpacing:   bottom.Resolve(sidebar),
	}
}
