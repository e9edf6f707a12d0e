package affix

import (
	"testing"

	"stickybar/pkg/measure"
)

// snap builds a snapshot with the geometry fields the calculator reads.
func snap(viewportTop, viewportHeight, containerTop, containerHeight, sidebarHeight, topSpacing, bottomSpacing float64) measure.Snapshot {
	return measure.Snapshot{
		ViewportTop:     viewportTop,
		ViewportHeight:  viewportHeight,
		ContainerTop:    containerTop,
		ContainerHeight: containerHeight,
		SidebarHeight:   sidebarHeight,
		TopSpacing:      topSpacing,
		BottomSpacing:   bottomSpacing,
	}
}

// scrollTo runs one evaluation at the given scroll offset.
func scrollTo(st *State, viewportTop float64, base measure.Snapshot) (Mode, float64, Direction) {
	s := base
	s.ViewportTop = viewportTop
	return Evaluate(s, st)
}

func TestOversizedSidebarScrollDown(t *testing.T) {
	// Sidebar taller than the viewport inside a 3000px container.
	base := snap(0, 800, 0, 3000, 2000, 0, 0)
	st := NewState()

	// Early in the scroll nothing pins: the sidebar scrolls with the page.
	mode, ty, dir := scrollTo(st, 500, base)
	if mode != ViewportUnbottom || ty != 0 {
		t.Fatalf("at 500: mode = %v, translateY = %v", mode, ty)
	}
	if dir != Down {
		t.Fatalf("at 500: direction = %v", dir)
	}

	// The sidebar's bottom meets the viewport bottom at 1200
	// (sidebarBottom 2000 == colliderBottom 1200+800).
	mode, ty, _ = scrollTo(st, 1200, base)
	if mode != ViewportBottom || ty != 0 {
		t.Fatalf("at 1200: mode = %v, translateY = %v", mode, ty)
	}

	// Further down it stays pinned, translation following the overshoot.
	mode, ty, _ = scrollTo(st, 1500, base)
	if mode != ViewportBottom || ty != 300 {
		t.Fatalf("at 1500: mode = %v, translateY = %v", mode, ty)
	}
}

func TestFittingSidebarScrollDown(t *testing.T) {
	base := snap(0, 800, 100, 2000, 400, 0, 0)
	st := NewState()

	// Above the container: nothing matches, the initial static mode holds.
	mode, ty, _ := scrollTo(st, 0, base)
	if mode != Static || ty != 0 {
		t.Fatalf("at 0: mode = %v, translateY = %v", mode, ty)
	}

	// Past the container top the sidebar pins to the viewport top.
	mode, ty, _ = scrollTo(st, 200, base)
	if mode != ViewportTop || ty != 100 {
		t.Fatalf("at 200: mode = %v, translateY = %v", mode, ty)
	}

	// At 1700 the sidebar would cross the container bottom (400+1700 >=
	// 2100): it rests on the container bottom instead.
	mode, ty, _ = scrollTo(st, 1700, base)
	if mode != ContainerBottom || ty != 1600 {
		t.Fatalf("at 1700: mode = %v, translateY = %v", mode, ty)
	}
	if ty < 0 || ty > base.ContainerHeight {
		t.Fatalf("translateY %v outside [0, %v]", ty, base.ContainerHeight)
	}
}

func TestDirectionReversalTakesEffectImmediately(t *testing.T) {
	base := snap(0, 800, 100, 2000, 400, 0, 0)
	st := NewState()

	scrollTo(st, 200, base) // pinned to viewport top, translateY 100
	if st.Mode != ViewportTop {
		t.Fatalf("setup: mode = %v", st.Mode)
	}

	// First upward tick must already use the upward branch: the collider
	// is still below the sidebar's offset, so it stays pinned but the
	// translation tracks the collider.
	mode, ty, dir := scrollTo(st, 150, base)
	if dir != Up {
		t.Fatalf("direction = %v, want up", dir)
	}
	if mode != ViewportTop || ty != 50 {
		t.Fatalf("after reversal: mode = %v, translateY = %v", mode, ty)
	}

	// Above the container top everything resets.
	mode, ty, _ = scrollTo(st, 50, base)
	if mode != Static || ty != 0 {
		t.Fatalf("above container: mode = %v, translateY = %v", mode, ty)
	}
}

func TestOversizedReversalPinsToViewportBottom(t *testing.T) {
	base := snap(0, 800, 0, 3000, 2000, 0, 0)
	st := NewState()

	scrollTo(st, 1500, base) // ViewportBottom, translateY 300
	if st.Mode != ViewportBottom || st.TranslateY != 300 {
		t.Fatalf("setup: mode = %v, translateY = %v", st.Mode, st.TranslateY)
	}

	// Scrolling back up: collider top (1400) is above translateY +
	// containerTop? No (1400 > 300), but the container top is above the
	// collider, so the oversized sidebar re-pins to the viewport bottom.
	mode, ty, dir := scrollTo(st, 1400, base)
	if dir != Up {
		t.Fatalf("direction = %v, want up", dir)
	}
	if mode != ViewportBottom || ty != 300 {
		t.Fatalf("after reversal: mode = %v, translateY = %v", mode, ty)
	}

	// Far enough up the collider catches the sidebar's top edge.
	mode, ty, _ = scrollTo(st, 250, base)
	if mode != ViewportTop || ty != 250 {
		t.Fatalf("further up: mode = %v, translateY = %v", mode, ty)
	}
}

func TestIdempotentEvaluation(t *testing.T) {
	base := snap(0, 800, 100, 2000, 400, 20, 10)
	st := NewState()
	scrollTo(st, 600, base)

	mode1, ty1, _ := scrollTo(st, 600, base)
	mode2, ty2, _ := scrollTo(st, 600, base)
	if mode1 != mode2 || ty1 != ty2 {
		t.Errorf("re-evaluation changed result: %v/%v then %v/%v", mode1, ty1, mode2, ty2)
	}
}

func TestHoldWhenNoBranchMatches(t *testing.T) {
	base := snap(0, 800, 100, 2000, 400, 0, 0)
	st := NewState()
	scrollTo(st, 200, base) // ViewportTop

	// Scrolling down while the collider is above the container top matches
	// no branch: the previous mode and offset persist.
	st.LastViewportTop = 40
	mode, ty, _ := scrollTo(st, 50, base)
	if mode != ViewportTop || ty != 100 {
		t.Errorf("hold: mode = %v, translateY = %v", mode, ty)
	}
}

func TestBreakpointForcesStatic(t *testing.T) {
	base := snap(0, 800, 0, 3000, 2000, 0, 0)
	st := NewState()
	scrollTo(st, 1500, base)
	st.Breakpoint = true

	mode, ty, _ := scrollTo(st, 1600, base)
	if mode != Static || ty != 0 {
		t.Errorf("breakpoint: mode = %v, translateY = %v", mode, ty)
	}
	if st.LastViewportTop != 1600 {
		t.Errorf("LastViewportTop = %v, want 1600", st.LastViewportTop)
	}
}

func TestTranslateYAlwaysClamped(t *testing.T) {
	// Sweep a mix of geometries and scroll paths; translateY must stay
	// inside [0, containerHeight] at every step.
	bases := []measure.Snapshot{
		snap(0, 800, 0, 3000, 2000, 0, 0),
		snap(0, 800, 100, 2000, 400, 20, 10),
		snap(0, 600, 50, 700, 650, 0, 30),
		snap(0, 400, 0, 300, 500, 10, 10),
		snap(0, 800, 200, 0, 100, 0, 0),
	}
	path := []float64{0, 100, 700, 1500, 2600, 2400, 900, 120, 0, 3000}

	for i, base := range bases {
		st := NewState()
		for _, vt := range path {
			_, ty, _ := scrollTo(st, vt, base)
			if ty < 0 || ty > base.ContainerHeight {
				t.Fatalf("case %d at %v: translateY %v outside [0, %v]",
					i, vt, ty, base.ContainerHeight)
			}
		}
	}
}

func TestSpacingShiftsColliders(t *testing.T) {
	base := snap(0, 800, 100, 2000, 400, 30, 0)
	st := NewState()

	// With topSpacing 30 the pin point moves up: at 100 the collider top
	// (130) is already past the container top.
	mode, ty, _ := scrollTo(st, 100, base)
	if mode != ViewportTop || ty != 30 {
		t.Errorf("with spacing: mode = %v, translateY = %v", mode, ty)
	}
}
