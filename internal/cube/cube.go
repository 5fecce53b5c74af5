// Package cube holds the state of the decorative cube shown in the hero
// section: which palette its faces use, how large it is drawn and how far it
// has spun.
package cube

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
)

// Faces in the order palettes are applied.
const (
	FacePosX = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	FaceCount
)

// Palette is one colour per face, in face order.
type Palette [FaceCount]string

var (
	DefaultPalette = Palette{
		"#b2d8d8", // light cyan
		"#a1c4c4", // green-blue
		"#b3e0e0", // light teal
		"#c9e2e2", // very light blue
		"#d0f2f2", // pale teal
		"#d9ffff", // pale blue
	}
	HoveredPalette = Palette{
		"#f4b6a6",
		"#e8a390",
		"#f7c8a8",
		"#f9d9c0",
		"#fbe6d4",
		"#fff2e6",
	}
)

const (
	// Step is the rotation added to both axes every frame, in radians.
	Step = 0.01

	ScaleIdle    = 1.0
	ScaleClicked = 1.5

	DefaultFPS = 60
)

// Event is a pointer interaction with the cube.
type Event int

const (
	PointerEnter Event = iota
	PointerLeave
	Click
)

func (e Event) String() string {
	switch e {
	case PointerEnter:
		return "pointerenter"
	case PointerLeave:
		return "pointerleave"
	case Click:
		return "click"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// ParseEvent maps a DOM event name to an Event.
func ParseEvent(name string) (Event, error) {
	switch name {
	case "mouseenter", "pointerenter", "mouseover", "pointerover":
		return PointerEnter, nil
	case "mouseleave", "pointerleave", "mouseout", "pointerout":
		return PointerLeave, nil
	case "click":
		return Click, nil
	default:
		return 0, errors.Errorf("unknown cube event %q", name)
	}
}

// State is the interactive part of the cube. Hovered and Clicked are
// independent; every transition can be undone.
type State struct {
	Hovered bool
	Clicked bool
}

// Handle returns the state after e.
func (s State) Handle(e Event) State {
	switch e {
	case PointerEnter:
		s.Hovered = true
	case PointerLeave:
		s.Hovered = false
	case Click:
		s.Clicked = !s.Clicked
	}
	return s
}

// Params is what a renderer needs to draw the cube in a given state.
type Params struct {
	Palette Palette
	Scale   float64
}

// Params maps the state to its palette and scale.
func (s State) Params() Params {
	p := Params{Palette: DefaultPalette, Scale: ScaleIdle}
	if s.Hovered {
		p.Palette = HoveredPalette
	}
	if s.Clicked {
		p.Scale = ScaleClicked
	}
	return p
}

// Rotation is the accumulated spin in radians. It only grows; wrapping is
// left to whoever takes its sine and cosine.
type Rotation struct {
	X, Y float64
}

// Advance moves the rotation forward by one frame.
func (r *Rotation) Advance() {
	r.X += Step
	r.Y += Step
}

// After returns the rotation reached after n frames from zero.
func After(n int) Rotation {
	return Rotation{X: float64(n) * Step, Y: float64(n) * Step}
}

// SpinPeriod is how long one full turn takes at fps frames per second.
func SpinPeriod(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	seconds := 2 * math.Pi / (Step * float64(fps))
	return time.Duration(seconds * float64(time.Second))
}
