package sandbox

import (
	"errors"

	"honnef.co/go/valley"
	"honnef.co/go/valley/physics"
	"honnef.co/go/valley/terrain"
	"honnef.co/go/valley/vehicle"
)

// ErrQuit is returned by Update when the user asked to quit.
var ErrQuit = errors.New("quit requested")

const (
	DefaultSceneWidth  = 600.0
	DefaultSceneHeight = 600.0
)

// Config aggregates the configuration of all parts of the sandbox.
type Config struct {
	SceneSize valley.Size
	Terrain   terrain.Config
	Vehicle   vehicle.Config
	Physics   physics.Config
	Anchors   []valley.Point // static control points added at start
}

// DefaultConfig returns the sandbox's standard configuration.
func DefaultConfig() Config {
	phys := physics.DefaultConfig()
	phys.SceneHeight = DefaultSceneHeight
	return Config{
		SceneSize: valley.Sz(DefaultSceneWidth, DefaultSceneHeight),
		Terrain:   terrain.DefaultConfig(),
		Vehicle:   vehicle.DefaultConfig(),
		Physics:   phys,
	}
}

// Frame is what a tick hands to the presentation layer.
type Frame struct {
	Tick    uint64
	Curve   valley.Polyline // empty until there are two control points
	Points  []terrain.ControlPoint
	Vehicle *vehicle.Presentation // nil until spawned
	Wheels  []valley.Point
	Rebuilt bool // the terrain was rebuilt this tick
}

// Sandbox owns the control points, the physics world and the vehicle.
type Sandbox struct {
	cfg     Config
	input   Input
	points  *terrain.Set
	world   *physics.World
	vehicle *vehicle.Vehicle
	tick    uint64
}

// New creates a sandbox with an empty scene, apart from cfg.Anchors.
func New(cfg Config) *Sandbox {
	sb := &Sandbox{
		cfg:    cfg,
		points: terrain.NewSet(cfg.Terrain),
		world:  physics.NewWorld(cfg.Physics),
	}
	for _, pos := range cfg.Anchors {
		sb.points.AddStaticPoint(pos)
	}
	tracer().Infof("sandbox created: scene %s, %d anchors", cfg.SceneSize, len(cfg.Anchors))
	return sb
}

// Update runs one tick with the events received since the previous tick.
func (sb *Sandbox) Update(events []Event) (Frame, error) {
	// (1) input
	sb.input.BeginTick()
	for _, ev := range events {
		sb.input.Apply(ev)
	}
	if sb.input.QuitRequested {
		tracer().Infof("quit requested at tick %d", sb.tick)
		return Frame{Tick: sb.tick}, ErrQuit
	}
	// (2) mutation
	sb.mutate()
	// (3) rebuild
	rebuilt := sb.points.RebuildIfDirty(sb.world)
	// (4) physics
	sb.world.Step(sb.world.TimeStep())
	sb.tick++
	// (5) presentation
	return sb.frame(rebuilt), nil
}

func (sb *Sandbox) mutate() {
	in := &sb.input
	if in.PrimaryPressed {
		// refresh hover state at the press position before deciding
		sb.points.UpdateSelection(terrain.InputState{Pointer: in.PrimaryPressPos})
		if _, over := sb.points.PointAt(in.PrimaryPressPos); !over {
			id := sb.points.AddPoint(in.PrimaryPressPos)
			tracer().Debugf("tick %d: control point #%d added at %s", sb.tick, id, in.PrimaryPressPos)
		}
	}
	sb.points.UpdateSelection(terrain.InputState{
		Pointer:     in.Pointer,
		PointerDown: in.PrimaryHeld,
	})
	if in.SecondaryPressed {
		sb.spawn(in.SecondaryPressPos)
	}
}

func (sb *Sandbox) spawn(pos valley.Point) {
	if sb.vehicle != nil {
		tracer().Debugf("tick %d: vehicle already spawned, ignoring request at %s", sb.tick, pos)
		return
	}
	v, err := vehicle.Spawn(pos, sb.world, sb.cfg.Vehicle)
	if err != nil {
		tracer().Errorf("tick %d: %v", sb.tick, err)
		return
	}
	sb.vehicle = v
}

func (sb *Sandbox) frame(rebuilt bool) Frame {
	f := Frame{
		Tick:    sb.tick,
		Curve:   sb.points.Curve().Clone(),
		Points:  sb.points.Points(),
		Rebuilt: rebuilt,
	}
	if sb.vehicle != nil {
		p := sb.vehicle.SyncPresentation()
		f.Vehicle = &p
		wheels := sb.vehicle.WheelPositions()
		f.Wheels = wheels[:]
	}
	return f
}

// Config returns the sandbox configuration.
func (sb *Sandbox) Config() Config { return sb.cfg }

// Terrain returns the control point set.
func (sb *Sandbox) Terrain() *terrain.Set { return sb.points }

// World returns the physics world.
func (sb *Sandbox) World() *physics.World { return sb.world }

// Vehicle returns the vehicle, or nil if none has been spawned.
func (sb *Sandbox) Vehicle() *vehicle.Vehicle { return sb.vehicle }

// Tick returns the number of completed ticks.
func (sb *Sandbox) Tick() uint64 { return sb.tick }
