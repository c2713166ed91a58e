package sandbox

import (
	"fmt"

	"honnef.co/go/valley"
)

// EventKind is the kind of an input event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerUp
	PointerMove
	Quit
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case PointerMove:
		return "pointer-move"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Button is a pointer button.
type Button int

const (
	Primary Button = iota
	Secondary
)

// Event is one input event, in scene coordinates. Button is only meaningful
// for PointerDown and PointerUp.
type Event struct {
	Kind   EventKind
	Button Button
	Pos    valley.Point
}

func (ev Event) String() string {
	return fmt.Sprintf("%s(%d)%s", ev.Kind, ev.Button, ev.Pos)
}

// Input is the pointer state accumulated from events. The held state persists
// across ticks; the pressed flags only describe the current tick.
type Input struct {
	Pointer     valley.Point
	PrimaryHeld bool

	PrimaryPressed    bool
	PrimaryPressPos   valley.Point
	SecondaryPressed  bool
	SecondaryPressPos valley.Point
	QuitRequested     bool
}

// BeginTick clears the per-tick flags.
func (in *Input) BeginTick() {
	in.PrimaryPressed = false
	in.SecondaryPressed = false
	in.QuitRequested = false
}

// Apply folds ev into the input state.
func (in *Input) Apply(ev Event) {
	switch ev.Kind {
	case PointerMove:
		in.Pointer = ev.Pos
	case PointerDown:
		in.Pointer = ev.Pos
		switch ev.Button {
		case Primary:
			in.PrimaryHeld = true
			if !in.PrimaryPressed {
				in.PrimaryPressed = true
				in.PrimaryPressPos = ev.Pos
			}
		case Secondary:
			if !in.SecondaryPressed {
				in.SecondaryPressed = true
				in.SecondaryPressPos = ev.Pos
			}
		}
	case PointerUp:
		in.Pointer = ev.Pos
		if ev.Button == Primary {
			in.PrimaryHeld = false
		}
	case Quit:
		in.QuitRequested = true
	}
}
