package affix

// Mode is the positioning regime currently applied to the sidebar. Every
// mode is reachable from every other; transitions are driven purely by
// geometry and scroll direction.
type Mode int

const (
	// Static leaves the sidebar in normal flow at the container top.
	Static Mode = iota
	// ViewportTop pins the sidebar's top edge to the viewport top.
	ViewportTop
	// ViewportBottom pins the sidebar's bottom edge to the viewport bottom.
	ViewportBottom
	// ContainerBottom rests the sidebar on the container's bottom edge.
	ContainerBottom
	// ViewportUnbottom releases an oversized sidebar from the viewport
	// bottom so it scrolls with the page until an edge is reached again.
	ViewportUnbottom
)

func (m Mode) String() string {
	switch m {
	case Static:
		return "static"
	case ViewportTop:
		return "viewport-top"
	case ViewportBottom:
		return "viewport-bottom"
	case ContainerBottom:
		return "container-bottom"
	case ViewportUnbottom:
		return "viewport-unbottom"
	}
	return "unknown"
}

// Direction is the scroll direction inferred between two consecutive
// evaluations.
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}
