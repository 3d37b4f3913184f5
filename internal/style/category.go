package style

// Category is the single interaction state that governs a resolution.
type Category int

const (
	Default Category = iota
	Selected
	Focused
	Error
	Success
	Loading
	Disabled
)

// precedence is the order in which overlapping flags are considered.
var precedence = []Category{Disabled, Loading, Selected, Error, Success, Focused}

// Categories lists every category, Default first.
func Categories() []Category {
	return []Category{Default, Selected, Focused, Error, Success, Loading, Disabled}
}

func (c Category) String() string {
	switch c {
	case Default:
		return "default"
	case Selected:
		return "selected"
	case Focused:
		return "focused"
	case Error:
		return "error"
	case Success:
		return "success"
	case Loading:
		return "loading"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Flags is the loose, boolean form of interaction state accepted at the
// edges (CLI flags, showcase toggles). Families never store it.
type Flags struct {
	Disabled bool
	Loading  bool
	Selected bool
	Error    bool
	Success  bool
	Focused  bool
}

func (f Flags) has(c Category) bool {
	switch c {
	case Disabled:
		return f.Disabled
	case Loading:
		return f.Loading
	case Selected:
		return f.Selected
	case Error:
		return f.Error
	case Success:
		return f.Success
	case Focused:
		return f.Focused
	default:
		return false
	}
}

// Category collapses f into one category following
// disabled > loading > selected > error > success > focused > default.
// Flags for categories outside supported are ignored.
func (f Flags) Category(supported ...Category) Category {
	for _, candidate := range precedence {
		if !f.has(candidate) {
			continue
		}
		for _, s := range supported {
			if s == candidate {
				return candidate
			}
		}
	}
	return Default
}
