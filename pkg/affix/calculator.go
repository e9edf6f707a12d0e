package affix

import "stickybar/pkg/measure"

// Evaluate runs one tick of the affix state machine. It decides the mode
// and translation for the given geometry, updates st in place, and reports
// the inferred scroll direction.
//
// The decision branches split along two axes: scroll direction, and
// whether the sidebar fits inside the viewport. Each of the four regimes
// pins against a different edge (top spacing vs. bottom spacing, container
// top vs. container bottom), which is what keeps the sidebar from
// outrunning its container or jumping when the scroll direction flips.
// When no branch matches, the previous mode and translation are held
// unchanged; that is a valid outcome, not an error.
func Evaluate(snap measure.Snapshot, st *State) (Mode, float64, Direction) {
	scrollingUp := snap.ViewportTop < st.LastViewportTop
	dir := Down
	if scrollingUp {
		dir = Up
	}

	if st.Breakpoint {
		st.Mode = Static
		st.TranslateY = 0
		st.LastViewportTop = snap.ViewportTop
		return st.Mode, st.TranslateY, dir
	}

	sidebarBottom := snap.SidebarHeight + snap.ContainerTop
	colliderTop := snap.ViewportTop + snap.TopSpacing
	colliderBottom := snap.ViewportBottom() - snap.BottomSpacing
	fitsViewport := snap.SidebarHeight < snap.ViewportHeight

	mode := st.Mode
	translateY := st.TranslateY

	switch {
	case scrollingUp:
		switch {
		case colliderTop <= snap.ContainerTop:
			mode = Static
			translateY = 0
		case colliderTop <= translateY+snap.ContainerTop:
			mode = ViewportTop
			translateY = colliderTop - snap.ContainerTop
		case !fitsViewport && snap.ContainerTop <= colliderTop:
			mode = ViewportBottom
		}

	case fitsViewport:
		switch {
		case snap.SidebarHeight+colliderTop >= snap.ContainerBottom():
			mode = ContainerBottom
			translateY = snap.ContainerBottom() - sidebarBottom
		case colliderTop >= snap.ContainerTop:
			mode = ViewportTop
			translateY = colliderTop - snap.ContainerTop
		}

	default:
		switch {
		case snap.ContainerBottom() <= colliderBottom:
			mode = ContainerBottom
			translateY = snap.ContainerBottom() - sidebarBottom
		case sidebarBottom+translateY <= colliderBottom:
			mode = ViewportBottom
			translateY = colliderBottom - sidebarBottom
		case snap.ContainerTop+translateY <= colliderTop:
			mode = ViewportUnbottom
		}
	}

	if translateY < 0 {
		translateY = 0
	}
	if translateY > snap.ContainerHeight {
		translateY = snap.ContainerHeight
	}

	st.Mode = mode
	st.TranslateY = translateY
	// Recorded after direction inference, never before.
	st.LastViewportTop = snap.ViewportTop

	return mode, translateY, dir
}
