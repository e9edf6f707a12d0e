package affix

// State carries the affix state of one sidebar between evaluations.
// It is created once per sidebar and mutated only by Evaluate; threading
// it explicitly keeps independent sidebars independent.
type State struct {
	// Mode is the regime applied by the last evaluation.
	Mode Mode
	// TranslateY is the sidebar's vertical offset from the container top,
	// always within [0, containerHeight]. It accumulates across ticks:
	// evaluations compute it relative to its previous value, not from the
	// scroll position alone.
	TranslateY float64
	// LastViewportTop is the scroll offset seen by the previous
	// evaluation, used only to infer scroll direction.
	LastViewportTop float64
	// Breakpoint suspends sticky behavior entirely while true.
	Breakpoint bool
}

// NewState returns the initial state: static at the container top.
func NewState() *State {
	return &State{}
}
