package vehicle

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"honnef.co/go/valley"
	"honnef.co/go/valley/physics"
)

// ErrNonFinite is returned when spawning at a position that is not finite.
var ErrNonFinite = errors.New("non-finite position")

const (
	// DefaultWheelFriction is multiplied with the terrain friction at contacts.
	// Against terrain friction 1 the car moves on slopes steeper than about 6°.
	DefaultWheelFriction = 0.1

	// FacingDeadband is the horizontal speed below which the vehicle counts as
	// being at rest and keeps its facing.
	FacingDeadband = 1e-3
)

// World is the part of the physics world needed to spawn a vehicle. It is
// satisfied by *physics.World.
type World interface {
	AddBody(pos valley.Point, mass, moment float64) *physics.Body
}

// Wheel describes one wheel collider. Offset is relative to the body origin, in
// scene orientation (y down).
type Wheel struct {
	Offset   valley.Vec2
	Radius   float64
	Mass     float64
	Friction float64
}

// Config describes the vehicle's shape and mass distribution.
type Config struct {
	ChassisSize     valley.Size
	ChassisMass     float64
	ChassisFriction float64
	Wheels          [2]Wheel // front, rear
}

// DefaultConfig returns a small car with wheels below the front and rear of the
// chassis. Wheel friction is low so that the car does not stick to slopes.
func DefaultConfig() Config {
	return Config{
		ChassisSize:     valley.Sz(50, 16),
		ChassisMass:     1,
		ChassisFriction: 0.7,
		Wheels: [2]Wheel{
			{Offset: valley.Vec(18, 10), Radius: 9, Mass: 0.5, Friction: DefaultWheelFriction},
			{Offset: valley.Vec(-18, 10), Radius: 9, Mass: 0.5, Friction: DefaultWheelFriction},
		},
	}
}

// Presentation is the vehicle state needed to draw it.
type Presentation struct {
	Position        valley.Point
	FacingLeft      bool
	RotationDegrees float64 // counter-clockwise as seen on screen
}

// Vehicle is a spawned car.
type Vehicle struct {
	cfg        Config
	body       *physics.Body
	facingLeft bool
}

// Spawn creates the vehicle's body at pos in w.
func Spawn(pos valley.Point, w World, cfg Config) (*Vehicle, error) {
	if !pos.IsFinite() {
		return nil, fmt.Errorf("spawn vehicle at %s: %w", pos, ErrNonFinite)
	}
	size := cfg.ChassisSize
	body := w.AddBody(pos, cfg.ChassisMass, cp.MomentForBox(cfg.ChassisMass, size.Width, size.Height))
	body.AddBox(size, cfg.ChassisMass, cfg.ChassisFriction)
	for _, wh := range cfg.Wheels {
		body.AddCircle(wh.Offset, wh.Radius, wh.Mass, wh.Friction)
	}
	tracer().Infof("vehicle spawned at %s, mass %g", pos, body.Mass())
	return &Vehicle{cfg: cfg, body: body}, nil
}

// Body returns the vehicle's physics body.
func (v *Vehicle) Body() *physics.Body { return v.body }

// SyncPresentation reads the body's state after a physics step. A vehicle
// moving left faces left; a vehicle at rest keeps its previous facing.
func (v *Vehicle) SyncPresentation() Presentation {
	v.facingLeft = facingLeft(v.facingLeft, v.body.Velocity().X)
	return Presentation{
		Position:        v.body.Position(),
		FacingLeft:      v.facingLeft,
		RotationDegrees: v.body.Angle() * 180 / math.Pi,
	}
}

func facingLeft(prev bool, vx float64) bool {
	switch {
	case vx <= -FacingDeadband:
		return true
	case vx >= FacingDeadband:
		return false
	}
	return prev
}

// WheelPositions returns the scene positions of the front and rear wheel
// centers.
func (v *Vehicle) WheelPositions() [2]valley.Point {
	var out [2]valley.Point
	for i, wh := range v.cfg.Wheels {
		out[i] = v.body.LocalToScene(wh.Offset)
	}
	return out
}

// WheelRadii returns the radii of the front and rear wheels.
func (v *Vehicle) WheelRadii() [2]float64 {
	return [2]float64{v.cfg.Wheels[0].Radius, v.cfg.Wheels[1].Radius}
}

// Chassis returns the chassis outline as a polygon in scene coordinates.
func (v *Vehicle) Chassis() [4]valley.Point {
	p := v.body.Position()
	// Rotate turns clockwise in the y-down scene, Angle is counter-clockwise.
	aff := valley.Rotate(-v.body.Angle()).ThenTranslate(valley.Vec(p.X, p.Y))
	hw, hh := v.cfg.ChassisSize.Width/2, v.cfg.ChassisSize.Height/2
	return [4]valley.Point{
		valley.Pt(-hw, -hh).Transform(aff),
		valley.Pt(hw, -hh).Transform(aff),
		valley.Pt(hw, hh).Transform(aff),
		valley.Pt(-hw, hh).Transform(aff),
	}
}
