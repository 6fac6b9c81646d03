package navigation

// State holds the visible window over the option list
type State struct {
	Offset int // index of the first visible option
	Height int // number of visible rows, 0 means unbounded
	Total  int
}

// Window is the half-open range [Start, End) of visible options
type Window struct {
	Start int
	End   int
}

// MoreAbove reports whether options are hidden above the window
func (w Window) MoreAbove() bool {
	return w.Start > 0
}

// Len returns the number of visible options
func (w Window) Len() int {
	return w.End - w.Start
}
