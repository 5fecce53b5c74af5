// Package viewer is the show/hide switch for a project card's embedded
// document.
package viewer

import "github.com/pkg/errors"

// State is whether the document is shown. The zero value is hidden.
type State bool

const (
	Hidden State = false
	Shown  State = true
)

// Toggle flips the state.
func (s State) Toggle() State {
	return !s
}

// Label is the text of the control that toggles s.
func (s State) Label() string {
	if s {
		return "Hide Document"
	}
	return "View Document"
}

// Param is the query value that requests s.
func (s State) Param() string {
	if s {
		return "shown"
	}
	return "hidden"
}

// ParseState reads a query value. The empty string is hidden.
func ParseState(v string) (State, error) {
	switch v {
	case "", "hidden":
		return Hidden, nil
	case "shown":
		return Shown, nil
	default:
		return Hidden, errors.Errorf("unknown document state %q", v)
	}
}
