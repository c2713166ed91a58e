package terrain

import (
	"fmt"

	"honnef.co/go/valley"
)

// PointID identifies a control point. IDs are assigned sequentially, starting
// at 1, in insertion order.
type PointID int

// State is the interaction state of a control point.
type State int

const (
	Neutral State = iota
	MousedOver
	Selected
)

func (s State) String() string {
	switch s {
	case Neutral:
		return "neutral"
	case MousedOver:
		return "moused-over"
	case Selected:
		return "selected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ControlPoint is one vertex of the control polygon.
type ControlPoint struct {
	ID     PointID
	Pos    valley.Point
	State  State
	Static bool // static points are anchors that cannot be selected or moved
}

// HitArea returns the circle in which the pointer is considered to be over the
// point.
func (cp ControlPoint) HitArea(radius float64) valley.Circle {
	return valley.Circle{Center: cp.Pos, Radius: radius}
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("#%d%s(%s)", cp.ID, cp.Pos, cp.State)
}
