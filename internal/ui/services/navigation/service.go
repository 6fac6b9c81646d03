package navigation

// Service keeps the highlighted option inside a scrolling window. It never
// moves the cursor itself; the selection state owns that.
type Service struct {
	state *State
}

// NewService creates a viewport over total options showing height rows
func NewService(total, height int) *Service {
	s := &Service{state: &State{Total: total}}
	s.SetHeight(height)
	return s
}

// SetHeight updates the number of visible rows
func (s *Service) SetHeight(height int) {
	if height < 0 {
		height = 0
	}
	s.state.Height = height
	s.clamp()
}

// Height returns the number of visible rows, 0 when unbounded
func (s *Service) Height() int {
	return s.state.Height
}

// Offset returns the index of the first visible option
func (s *Service) Offset() int {
	return s.state.Offset
}

// Follow scrolls just enough to make cursor visible. A wrap from the first
// to the last option jumps the window to the end of the list.
func (s *Service) Follow(cursor int) {
	if s.state.Height == 0 {
		s.state.Offset = 0
		return
	}

	if cursor < s.state.Offset {
		s.state.Offset = cursor
	} else if cursor >= s.state.Offset+s.state.Height {
		s.state.Offset = cursor - s.state.Height + 1
	}
	s.clamp()
}

// Window returns the range of visible options
func (s *Service) Window() Window {
	if s.state.Height == 0 || s.state.Height >= s.state.Total {
		return Window{Start: 0, End: s.state.Total}
	}
	return Window{Start: s.state.Offset, End: s.state.Offset + s.state.Height}
}

// MoreBelow reports whether options are hidden below the window
func (s *Service) MoreBelow() bool {
	return s.Window().End < s.state.Total
}

func (s *Service) clamp() {
	maxOffset := s.state.Total - s.state.Height
	if s.state.Height == 0 || maxOffset < 0 {
		maxOffset = 0
	}
	if s.state.Offset > maxOffset {
		s.state.Offset = maxOffset
	}
	if s.state.Offset < 0 {
		s.state.Offset = 0
	}
}
