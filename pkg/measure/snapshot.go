package measure

import "math"

// Snapshot is a read-only record of the geometry one affix evaluation
// needs. All lengths are document pixels. Snapshots are rebuilt every
// tick and never mutated in place.
type Snapshot struct {
	ViewportTop    float64
	ViewportHeight float64
	ViewportLeft   float64

	ContainerTop    float64
	ContainerHeight float64

	SidebarHeight float64
	SidebarWidth  float64
	SidebarLeft   float64

	TopSpacing    float64
	BottomSpacing float64
}

func (s Snapshot) ViewportBottom() float64 {
	return s.ViewportTop + s.ViewportHeight
}

func (s Snapshot) ContainerBottom() float64 {
	return s.ContainerTop + s.ContainerHeight
}

// sanitize maps NaN and infinities to 0 so misconfigured spacing callbacks
// never leak into the state machine.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
