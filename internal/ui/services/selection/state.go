package selection

import (
	"fmt"

	"multiselect/internal/catalog"
	"multiselect/internal/eventbus"
)

// State is the multi-select state machine: a highlighted cursor over an
// immutable catalog plus the set of selected keys.
//
// The selected set is held twice: order keeps the sequence in which keys
// were selected (what Value returns) and members answers IsSelected. Both
// are updated together on every toggle.
type State struct {
	options     *catalog.Catalog
	highlighted int
	order       []string
	members     map[string]struct{}
	validate    Validator
	bus         eventbus.EventBus
}

// New creates the state for one prompt session. Default keys are selected
// in the given order with duplicates collapsed; keys that are not in the
// catalog are kept as they are.
func New(options *catalog.Catalog, defaults []string, validate Validator) (*State, error) {
	if options.Len() == 0 {
		return nil, fmt.Errorf("%w: no options", catalog.ErrInvalidCatalog)
	}

	s := &State{
		options:  options,
		order:    make([]string, 0, len(defaults)),
		members:  make(map[string]struct{}, len(defaults)),
		validate: validate,
	}
	for _, key := range defaults {
		if _, ok := s.members[key]; ok {
			continue
		}
		s.members[key] = struct{}{}
		s.order = append(s.order, key)
	}

	return s, nil
}

// SetBus attaches an event bus that is notified after cursor moves and
// toggles. A nil bus disables notifications.
func (s *State) SetBus(bus eventbus.EventBus) {
	s.bus = bus
}

// Options returns the catalog the state was created with
func (s *State) Options() *catalog.Catalog {
	return s.options
}

// Validator returns the validator supplied at construction, possibly nil
func (s *State) Validator() Validator {
	return s.validate
}

// Highlighted returns the cursor index
func (s *State) Highlighted() int {
	return s.highlighted
}

// Len returns the number of selected keys
func (s *State) Len() int {
	return len(s.order)
}

// Value returns the selected keys in the order they were selected
func (s *State) Value() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Labels returns the labels of selected options in catalog order. Selected
// keys that are not part of the catalog have no label and are skipped.
func (s *State) Labels() []string {
	labels := make([]string, 0, len(s.order))
	for i := 0; i < s.options.Len(); i++ {
		opt := s.options.At(i)
		if _, ok := s.members[opt.Key]; ok {
			labels = append(labels, opt.Label)
		}
	}
	return labels
}

// IsHighlighted reports whether key belongs to the option under the cursor
func (s *State) IsHighlighted(key string) bool {
	return s.options.KeyAt(s.highlighted) == key
}

// IsSelected reports whether key is selected
func (s *State) IsSelected(key string) bool {
	_, ok := s.members[key]
	return ok
}

// HighlightPrevious moves the cursor up, wrapping to the last option
func (s *State) HighlightPrevious() {
	old := s.highlighted
	if s.highlighted == 0 {
		s.highlighted = s.options.Len() - 1
	} else {
		s.highlighted--
	}
	s.publishMove(old)
}

// HighlightNext moves the cursor down, wrapping to the first option
func (s *State) HighlightNext() {
	old := s.highlighted
	if s.highlighted == s.options.Len()-1 {
		s.highlighted = 0
	} else {
		s.highlighted++
	}
	s.publishMove(old)
}

// ToggleHighlighted selects the option under the cursor, or deselects it if
// it was already selected. Newly selected keys go to the end of Value.
func (s *State) ToggleHighlighted() {
	key := s.options.KeyAt(s.highlighted)

	selected := !s.IsSelected(key)
	if selected {
		s.members[key] = struct{}{}
		s.order = append(s.order, key)
	} else {
		delete(s.members, key)
		kept := s.order[:0]
		for _, k := range s.order {
			if k != key {
				kept = append(kept, k)
			}
		}
		s.order = kept
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.SelectionChangedEvent{
			Key:      key,
			Selected: selected,
			Total:    len(s.order),
		})
	}
}

// HandleKey applies a key to the state. KeyOther is ignored.
func (s *State) HandleKey(k Key) {
	switch k {
	case KeyPrevious:
		s.HighlightPrevious()
	case KeyNext:
		s.HighlightNext()
	case KeyToggle:
		s.ToggleHighlighted()
	case KeyOther:
	}
}

// HandleKeyName classifies a key name and applies it
func (s *State) HandleKeyName(name string) {
	s.HandleKey(ParseKey(name))
}

func (s *State) publishMove(old int) {
	if s.bus == nil || old == s.highlighted {
		return
	}
	s.bus.Publish(eventbus.HighlightMovedEvent{
		OldIndex: old,
		NewIndex: s.highlighted,
		Key:      s.options.KeyAt(s.highlighted),
	})
}
