package terrain

import (
	"errors"
	"fmt"

	"honnef.co/go/valley"
	"honnef.co/go/valley/physics"
)

const (
	DefaultDegree     = 2
	DefaultSmoothness = 10
	DefaultHitRadius  = 6.0
	DefaultFriction   = 1.0
)

var (
	ErrUnknownPoint = errors.New("unknown control point")
	ErrStaticPoint  = errors.New("control point is static")
)

// InputState is the pointer state for one tick.
type InputState struct {
	Pointer     valley.Point
	PointerDown bool
}

// World is the part of the physics world a Set needs to maintain terrain
// colliders. It is satisfied by *physics.World.
type World interface {
	AddStaticSegment(l valley.Line, friction float64) *physics.Collider
	RemoveCollider(c *physics.Collider)
}

// Config configures curve evaluation and point interaction.
type Config struct {
	Degree     int     // B-spline degree
	Smoothness int     // samples per control point interval
	HitRadius  float64 // radius of a point's hit area
	Friction   float64 // friction of terrain segments
}

// DefaultConfig returns the configuration used by the sandbox.
func DefaultConfig() Config {
	return Config{
		Degree:     DefaultDegree,
		Smoothness: DefaultSmoothness,
		HitRadius:  DefaultHitRadius,
		Friction:   DefaultFriction,
	}
}

// Segment is one static terrain collider between two consecutive curve samples.
type Segment struct {
	Line     valley.Line
	Friction float64

	collider *physics.Collider
}

// Collider returns the physics collider backing the segment.
func (seg Segment) Collider() *physics.Collider { return seg.collider }

// Set is the ordered list of control points and the terrain built from them.
type Set struct {
	cfg      Config
	points   []ControlPoint
	dirty    bool
	curve    valley.Polyline
	segments []Segment
	rebuilds int
}

// NewSet returns an empty set. It panics if cfg has a degree or smoothness
// below 1.
func NewSet(cfg Config) *Set {
	if cfg.Degree < 1 {
		panic(fmt.Sprintf("terrain: invalid degree %d", cfg.Degree))
	}
	if cfg.Smoothness < 1 {
		panic(fmt.Sprintf("terrain: invalid smoothness %d", cfg.Smoothness))
	}
	return &Set{cfg: cfg}
}

// Config returns the set's configuration.
func (s *Set) Config() Config { return s.cfg }

// AddPoint appends a movable control point at pos. The new point starts out
// moused over, so that holding the pointer down after creating it drags it.
func (s *Set) AddPoint(pos valley.Point) PointID {
	return s.add(pos, MousedOver, false)
}

// AddStaticPoint appends an anchor point that never changes state and cannot be
// moved.
func (s *Set) AddStaticPoint(pos valley.Point) PointID {
	return s.add(pos, Neutral, true)
}

func (s *Set) add(pos valley.Point, state State, static bool) PointID {
	id := PointID(len(s.points) + 1)
	s.points = append(s.points, ControlPoint{ID: id, Pos: pos, State: state, Static: static})
	s.dirty = true
	tracer().Debugf("added control point %s", s.points[id-1])
	return id
}

// Move sets the position of a movable control point.
func (s *Set) Move(id PointID, pos valley.Point) error {
	if id < 1 || int(id) > len(s.points) {
		return fmt.Errorf("move %d: %w", id, ErrUnknownPoint)
	}
	cp := &s.points[id-1]
	if cp.Static {
		return fmt.Errorf("move %d: %w", id, ErrStaticPoint)
	}
	if cp.Pos != pos {
		cp.Pos = pos
		s.dirty = true
	}
	return nil
}

// UpdateSelection updates the interaction state of every movable point from the
// pointer, and moves the selected point, if any, to the pointer.
//
// While the pointer is down, a selected point keeps the selection, even when
// the pointer passes over other points. Otherwise the first point in insertion
// order that was moused over after the previous call becomes selected. Releasing
// the pointer deselects.
func (s *Set) UpdateSelection(in InputState) {
	target := -1
	if in.PointerDown {
		target = s.dragTarget()
	}
	for i := range s.points {
		cp := &s.points[i]
		if cp.Static {
			continue
		}
		if i == target {
			if cp.State != Selected {
				tracer().Debugf("selected control point #%d", cp.ID)
			}
			cp.State = Selected
			if cp.Pos != in.Pointer {
				cp.Pos = in.Pointer
				s.dirty = true
			}
			continue
		}
		if cp.HitArea(s.cfg.HitRadius).Contains(in.Pointer) {
			cp.State = MousedOver
		} else {
			cp.State = Neutral
		}
	}
}

// dragTarget returns the index of the point to drag: the selected point if
// there is one, else the first moused-over point, else -1.
func (s *Set) dragTarget() int {
	hovered := -1
	for i, cp := range s.points {
		if cp.Static {
			continue
		}
		switch {
		case cp.State == Selected:
			return i
		case cp.State == MousedOver && hovered < 0:
			hovered = i
		}
	}
	return hovered
}

// PointAt returns the first movable point whose hit area contains pos.
func (s *Set) PointAt(pos valley.Point) (PointID, bool) {
	for _, cp := range s.points {
		if !cp.Static && cp.HitArea(s.cfg.HitRadius).Contains(pos) {
			return cp.ID, true
		}
	}
	return 0, false
}

// Selected returns the currently selected point, if any.
func (s *Set) Selected() (ControlPoint, bool) {
	for _, cp := range s.points {
		if cp.State == Selected {
			return cp, true
		}
	}
	return ControlPoint{}, false
}

// RebuildIfDirty replaces the terrain colliders in w if the set changed since
// the last rebuild. It reports whether it rebuilt. With fewer than two points
// there is no curve, and the set stays dirty.
func (s *Set) RebuildIfDirty(w World) bool {
	if !s.dirty {
		return false
	}
	if len(s.points) < 2 {
		tracer().Debugf("terrain rebuild skipped: %d control points", len(s.points))
		return false
	}
	spline := make(valley.BSpline, len(s.points))
	for i, cp := range s.points {
		spline[i] = cp.Pos
	}
	curve := spline.Sample(s.cfg.Degree, s.cfg.Smoothness)

	for _, seg := range s.segments {
		w.RemoveCollider(seg.collider)
	}
	removed := len(s.segments)
	segments := make([]Segment, 0, curve.NumSegments())
	for l := range curve.Segments() {
		segments = append(segments, Segment{
			Line:     l,
			Friction: s.cfg.Friction,
			collider: w.AddStaticSegment(l, s.cfg.Friction),
		})
	}
	s.segments = segments
	s.curve = curve
	s.dirty = false
	s.rebuilds++
	tracer().Debugf("terrain rebuilt from %d points: %d segments removed, %d added",
		len(s.points), removed, len(segments))
	return true
}

// Points returns a copy of the control points in insertion order.
func (s *Set) Points() []ControlPoint {
	out := make([]ControlPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Point returns the control point with the given ID.
func (s *Set) Point(id PointID) (ControlPoint, bool) {
	if id < 1 || int(id) > len(s.points) {
		return ControlPoint{}, false
	}
	return s.points[id-1], true
}

// Curve returns the curve sampled by the last rebuild. The caller must not
// modify it.
func (s *Set) Curve() valley.Polyline { return s.curve }

// Segments returns a copy of the current terrain segments.
func (s *Set) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the number of control points.
func (s *Set) Len() int { return len(s.points) }

// Dirty reports whether the terrain is out of date with the control points.
func (s *Set) Dirty() bool { return s.dirty }

// Rebuilds returns the number of rebuilds performed so far.
func (s *Set) Rebuilds() int { return s.rebuilds }
