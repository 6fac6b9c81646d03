package selection

// Validator decides whether a set of selected keys may be submitted. The
// selection state only stores it; the prompt calls it on submit.
type Validator func(values []string) error

// Key is the closed set of inputs the selection state reacts to
type Key int

const (
	KeyOther Key = iota
	KeyPrevious
	KeyNext
	KeyToggle
)

func (k Key) String() string {
	switch k {
	case KeyPrevious:
		return "previous"
	case KeyNext:
		return "next"
	case KeyToggle:
		return "toggle"
	default:
		return "other"
	}
}

// ParseKey classifies a key name as produced by tea.KeyMsg.String().
// Unknown names map to KeyOther.
func ParseKey(name string) Key {
	switch name {
	case "up", "left", "k", "h":
		return KeyPrevious
	case "down", "right", "j", "l":
		return KeyNext
	case " ", "space":
		return KeyToggle
	default:
		return KeyOther
	}
}
