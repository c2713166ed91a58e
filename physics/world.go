package physics

import (
	"github.com/jakecoffman/cp"

	"honnef.co/go/valley"
)

const (
	DefaultGravity       = 981.0      // scene units per second², pointing down the screen
	DefaultTimeStep      = 1.0 / 60.0 // seconds
	DefaultSceneHeight   = 600.0
	DefaultSegmentRadius = 1.0
)

// Config configures a World.
type Config struct {
	Gravity       float64 // magnitude; gravity pulls towards increasing scene y
	TimeStep      float64 // fixed step used by the sandbox loop
	SceneHeight   float64 // height of the y-down scene, for the y-flip
	SegmentRadius float64 // thickness of static line colliders
}

// DefaultConfig returns the configuration used by the sandbox.
func DefaultConfig() Config {
	return Config{
		Gravity:       DefaultGravity,
		TimeStep:      DefaultTimeStep,
		SceneHeight:   DefaultSceneHeight,
		SegmentRadius: DefaultSegmentRadius,
	}
}

// World is a physics space holding static colliders and dynamic bodies.
type World struct {
	cfg       Config
	space     *cp.Space
	toPhysics valley.Affine
	toScene   valley.Affine
	statics   map[*Collider]struct{}
	bodies    []*Body
	steps     uint64
}

// NewWorld creates an empty world with gravity applied.
func NewWorld(cfg Config) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: -cfg.Gravity})
	toPhysics := valley.FlipY.ThenTranslate(valley.Vec(0, cfg.SceneHeight))
	w := &World{
		cfg:       cfg,
		space:     space,
		toPhysics: toPhysics,
		toScene:   toPhysics.Invert(),
		statics:   make(map[*Collider]struct{}),
	}
	tracer().Debugf("physics world created: gravity=%g, dt=%g, height=%g",
		cfg.Gravity, cfg.TimeStep, cfg.SceneHeight)
	return w
}

// TimeStep returns the configured fixed time step.
func (w *World) TimeStep() float64 {
	return w.cfg.TimeStep
}

// Steps returns the number of completed calls to Step.
func (w *World) Steps() uint64 {
	return w.steps
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
	w.steps++
}

// AddStaticSegment adds an immovable line collider between the end points of l,
// given in scene coordinates. Zero-length lines are accepted.
func (w *World) AddStaticSegment(l valley.Line, friction float64) *Collider {
	pl := l.Transform(w.toPhysics)
	shape := cp.NewSegment(w.space.StaticBody, w.vector(pl.P0), w.vector(pl.P1), w.cfg.SegmentRadius)
	shape.SetFriction(friction)
	w.space.AddShape(shape)
	c := &Collider{shape: shape, world: w, static: true, line: l}
	w.statics[c] = struct{}{}
	return c
}

// RemoveCollider removes c from the world. Removing a collider twice is a no-op.
func (w *World) RemoveCollider(c *Collider) {
	if c == nil || c.removed {
		return
	}
	if c.world != w {
		panic("collider belongs to a different world")
	}
	w.space.RemoveShape(c.shape)
	c.removed = true
	if c.static {
		delete(w.statics, c)
	}
}

// StaticColliders returns the number of static colliders added through this
// World and not yet removed.
func (w *World) StaticColliders() int {
	return len(w.statics)
}

// SpaceStaticShapes counts the static shapes the underlying space actually
// holds. It agrees with StaticColliders unless the space was modified behind
// the World's back.
func (w *World) SpaceStaticShapes() int {
	var n int
	w.space.EachShape(func(shape *cp.Shape) {
		if shape.Body() == w.space.StaticBody {
			n++
		}
	})
	return n
}

// AddBody adds a dynamic body at pos. mass and moment are initial values; once
// colliders with their own mass are attached, the body's mass properties are
// accumulated from them.
func (w *World) AddBody(pos valley.Point, mass, moment float64) *Body {
	body := cp.NewBody(mass, moment)
	body.SetPosition(w.vector(pos.Transform(w.toPhysics)))
	w.space.AddBody(body)
	b := &Body{body: body, world: w}
	w.bodies = append(w.bodies, b)
	tracer().Debugf("dynamic body added at %s", pos)
	return b
}

// Bodies returns the number of dynamic bodies.
func (w *World) Bodies() int {
	return len(w.bodies)
}

// ToScene maps a point in physics space to scene coordinates.
func (w *World) ToScene(pt valley.Point) valley.Point {
	return pt.Transform(w.toScene)
}

// ToPhysics maps a point in scene coordinates to physics space.
func (w *World) ToPhysics(pt valley.Point) valley.Point {
	return pt.Transform(w.toPhysics)
}

func (w *World) vector(pt valley.Point) cp.Vector {
	return cp.Vector{X: pt.X, Y: pt.Y}
}

func point(v cp.Vector) valley.Point {
	return valley.Pt(v.X, v.Y)
}
