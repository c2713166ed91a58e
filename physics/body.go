package physics

import (
	"github.com/jakecoffman/cp"

	"honnef.co/go/valley"
)

// Collider is a collision shape attached either to the world's static body or
// to a dynamic Body.
type Collider struct {
	shape   *cp.Shape
	world   *World
	static  bool
	removed bool
	line    valley.Line
}

// Static reports whether the collider is attached to the static body.
func (c *Collider) Static() bool { return c.static }

// Removed reports whether the collider has been removed from its world.
func (c *Collider) Removed() bool { return c.removed }

// Friction returns the collider's friction coefficient.
func (c *Collider) Friction() float64 { return c.shape.Friction() }

// Line returns the scene-space line of a static segment collider.
func (c *Collider) Line() valley.Line { return c.line }

// Body is a dynamic rigid body. All accessors return scene coordinates.
type Body struct {
	body      *cp.Body
	world     *World
	colliders []*Collider
}

// AddCircle attaches a circle collider centered at offset from the body origin.
// offset is in the body's local frame, using scene orientation (y down).
func (b *Body) AddCircle(offset valley.Vec2, radius, mass, friction float64) *Collider {
	off := offset.Transform(valley.FlipY)
	shape := cp.NewCircle(b.body, radius, cp.Vector{X: off.X, Y: off.Y})
	return b.attach(shape, mass, friction)
}

// AddBox attaches a box collider of the given size centered on the body origin.
func (b *Body) AddBox(size valley.Size, mass, friction float64) *Collider {
	shape := cp.NewBox(b.body, size.Width, size.Height, 0)
	return b.attach(shape, mass, friction)
}

func (b *Body) attach(shape *cp.Shape, mass, friction float64) *Collider {
	shape.SetFriction(friction)
	b.world.space.AddShape(shape)
	// Set after adding, so that the body accumulates this shape's mass too.
	shape.SetMass(mass)
	c := &Collider{shape: shape, world: b.world}
	b.colliders = append(b.colliders, c)
	return c
}

// Colliders returns the number of colliders attached to the body.
func (b *Body) Colliders() int {
	return len(b.colliders)
}

// Position returns the body origin.
func (b *Body) Position() valley.Point {
	return b.world.ToScene(point(b.body.Position()))
}

// Angle returns the body's orientation in radians, counter-clockwise as seen on
// screen.
func (b *Body) Angle() float64 {
	return b.body.Angle()
}

// Velocity returns the linear velocity in scene orientation.
func (b *Body) Velocity() valley.Vec2 {
	v := b.body.Velocity()
	return valley.Vec(v.X, v.Y).Transform(valley.FlipY)
}

// AngularVelocity returns the angular velocity in radians per second,
// counter-clockwise as seen on screen.
func (b *Body) AngularVelocity() float64 {
	return b.body.AngularVelocity()
}

// Mass returns the body's total mass.
func (b *Body) Mass() float64 {
	return b.body.Mass()
}

// LocalToScene maps an offset in the body's local frame (scene orientation) to
// a scene position, taking the body's current position and rotation into
// account.
func (b *Body) LocalToScene(offset valley.Vec2) valley.Point {
	off := offset.Transform(valley.FlipY)
	return b.world.ToScene(point(b.body.LocalToWorld(cp.Vector{X: off.X, Y: off.Y})))
}
