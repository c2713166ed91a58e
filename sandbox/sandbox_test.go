package sandbox

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/valley"
	"honnef.co/go/valley/terrain"
)

func click(pos valley.Point, button Button) []Event {
	return []Event{
		{Kind: PointerMove, Pos: pos},
		{Kind: PointerDown, Button: button, Pos: pos},
		{Kind: PointerUp, Button: button, Pos: pos},
	}
}

func TestEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "valley.sandbox")
	defer teardown()
	//
	sb := New(DefaultConfig())
	f, err := sb.Update(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Curve)
	assert.Empty(t, f.Points)
	assert.False(t, f.Rebuilt)
	assert.Nil(t, f.Vehicle)
	//
	for _, pos := range []valley.Point{valley.Pt(100, 500), valley.Pt(300, 400), valley.Pt(500, 500)} {
		f, err = sb.Update(click(pos, Primary))
		require.NoError(t, err)
	}
	assert.True(t, f.Rebuilt)
	assert.Equal(t, uint64(4), f.Tick)
	require.Len(t, f.Points, 3)
	cfg := DefaultConfig().Terrain
	want := (3+cfg.Degree)*cfg.Smoothness + 1
	require.Equal(t, want, f.Curve.Len())
	assert.Equal(t, 51, want)
	assert.Equal(t, valley.Pt(100, 500), f.Curve.First())
	last := f.Curve.Last()
	assert.InDelta(t, 500.0, last.X, 1e-9)
	assert.InDelta(t, 500.0, last.Y, 1e-9)
	assert.Len(t, sb.Terrain().Segments(), want-1)
	assert.Equal(t, want-1, sb.World().StaticColliders())
	// nothing changes without input
	f, err = sb.Update(nil)
	require.NoError(t, err)
	assert.False(t, f.Rebuilt)
	assert.Equal(t, want-1, sb.World().StaticColliders())
}

func TestDragPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "valley.sandbox")
	defer teardown()
	//
	sb := New(DefaultConfig())
	sb.Update(click(valley.Pt(100, 500), Primary))
	sb.Update(click(valley.Pt(500, 500), Primary))
	require.Equal(t, 2, sb.Terrain().Len())
	// press on the second point and drag it
	f, err := sb.Update([]Event{{Kind: PointerDown, Button: Primary, Pos: valley.Pt(502, 501)}})
	require.NoError(t, err)
	assert.Equal(t, 2, sb.Terrain().Len(), "pressing over a point must not add one")
	assert.Equal(t, terrain.Selected, f.Points[1].State)
	assert.Equal(t, valley.Pt(502, 501), f.Points[1].Pos)
	f, _ = sb.Update([]Event{{Kind: PointerMove, Pos: valley.Pt(450, 300)}})
	assert.Equal(t, terrain.Selected, f.Points[1].State)
	assert.Equal(t, valley.Pt(450, 300), f.Points[1].Pos)
	assert.True(t, f.Rebuilt)
	assert.InDelta(t, 450.0, f.Curve.Last().X, 1e-9)
	assert.InDelta(t, 300.0, f.Curve.Last().Y, 1e-9)
	// release
	f, _ = sb.Update([]Event{{Kind: PointerUp, Button: Primary, Pos: valley.Pt(450, 300)}})
	assert.NotEqual(t, terrain.Selected, f.Points[1].State)
	assert.False(t, f.Rebuilt)
	f, _ = sb.Update([]Event{{Kind: PointerMove, Pos: valley.Pt(10, 10)}})
	assert.Equal(t, valley.Pt(450, 300), f.Points[1].Pos)
	assert.Equal(t, terrain.Neutral, f.Points[1].State)
}

func TestPressAwayFromHoveredPointAddsPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "valley.sandbox")
	defer teardown()
	//
	sb := New(DefaultConfig())
	sb.Update(click(valley.Pt(100, 100), Primary))
	// the first point is still moused over from the previous tick
	f, _ := sb.Update([]Event{{Kind: PointerDown, Button: Primary, Pos: valley.Pt(300, 300)}})
	require.Len(t, f.Points, 2)
	assert.Equal(t, valley.Pt(100, 100), f.Points[0].Pos)
	assert.Equal(t, terrain.Neutral, f.Points[0].State)
	assert.Equal(t, terrain.Selected, f.Points[1].State)
}

func TestQuit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "valley.sandbox")
	defer teardown()
	//
	sb := New(DefaultConfig())
	events := append(click(valley.Pt(100, 100), Primary), Event{Kind: Quit})
	_, err := sb.Update(events)
	assert.True(t, errors.Is(err, ErrQuit))
	assert.Equal(t, 0, sb.Terrain().Len())
	assert.Equal(t, uint64(0), sb.Tick())
	assert.Equal(t, uint64(0), sb.World().Steps())
}

func TestSingleVehicle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "valley.sandbox")
	defer teardown()
	//
	sb := New(DefaultConfig())
	f, err := sb.Update(click(valley.Pt(300, 100), Secondary))
	require.NoError(t, err)
	require.NotNil(t, sb.Vehicle())
	require.NotNil(t, f.Vehicle)
	assert.Len(t, f.Wheels, 2)
	assert.Equal(t, 0, sb.Terrain().Len(), "secondary press must not add points")
	first := sb.Vehicle()
	sb.Update(click(valley.Pt(200, 100), Secondary))
	assert.Same(t, first, sb.Vehicle())
	assert.Equal(t, 1, sb.World().Bodies())
}

func TestSpawnRejectsNonFinite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "valley.sandbox")
	defer teardown()
	//
	sb := New(DefaultConfig())
	f, err := sb.Update([]Event{{Kind: PointerDown, Button: Secondary, Pos: valley.Pt(math.NaN(), 0)}})
	require.NoError(t, err)
	assert.Nil(t, sb.Vehicle())
	assert.Nil(t, f.Vehicle)
}

func TestAnchors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "valley.sandbox")
	defer teardown()
	//
	cfg := DefaultConfig()
	cfg.Anchors = []valley.Point{valley.Pt(0, 450), valley.Pt(600, 450)}
	sb := New(cfg)
	f, err := sb.Update(nil)
	require.NoError(t, err)
	assert.True(t, f.Rebuilt)
	for _, p := range f.Points {
		assert.True(t, p.Static)
	}
	// anchors cannot be dragged; pressing on one adds a point instead
	f, _ = sb.Update([]Event{{Kind: PointerDown, Button: Primary, Pos: valley.Pt(0, 450)}})
	require.Len(t, f.Points, 3)
	assert.Equal(t, valley.Pt(0, 450), f.Points[0].Pos)
}

func TestVehicleStaysInValley(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "valley.sandbox")
	defer teardown()
	//
	cfg := DefaultConfig()
	cfg.Anchors = []valley.Point{valley.Pt(50, 300), valley.Pt(300, 550), valley.Pt(550, 300)}
	sb := New(cfg)
	_, err := sb.Update(click(valley.Pt(300, 350), Secondary))
	require.NoError(t, err)
	var f Frame
	for range 600 {
		f, err = sb.Update(nil)
		require.NoError(t, err)
	}
	require.NotNil(t, f.Vehicle)
	pos := f.Vehicle.Position
	assert.True(t, pos.IsFinite())
	assert.Less(t, pos.Y, 560.0)
	assert.Greater(t, pos.X, 50.0)
	assert.Less(t, pos.X, 550.0)
}

func TestInputAccumulates(t *testing.T) {
	var in Input
	in.Apply(Event{Kind: PointerDown, Button: Primary, Pos: valley.Pt(1, 1)})
	in.Apply(Event{Kind: PointerDown, Button: Primary, Pos: valley.Pt(2, 2)})
	in.Apply(Event{Kind: PointerMove, Pos: valley.Pt(3, 3)})
	assert.True(t, in.PrimaryHeld)
	assert.True(t, in.PrimaryPressed)
	assert.Equal(t, valley.Pt(1, 1), in.PrimaryPressPos)
	assert.Equal(t, valley.Pt(3, 3), in.Pointer)
	in.BeginTick()
	assert.False(t, in.PrimaryPressed)
	assert.True(t, in.PrimaryHeld)
	in.Apply(Event{Kind: PointerUp, Button: Secondary, Pos: valley.Pt(3, 3)})
	assert.True(t, in.PrimaryHeld)
	in.Apply(Event{Kind: PointerUp, Button: Primary, Pos: valley.Pt(3, 3)})
	assert.False(t, in.PrimaryHeld)
	assert.Equal(t, "pointer-down", PointerDown.String())
	assert.Equal(t, "quit", Quit.String())
}

func TestDragAcrossOtherPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "valley.sandbox")
	defer teardown()
	//
	sb := New(DefaultConfig())
	sb.Update(click(valley.Pt(100, 400), Primary))
	sb.Update(click(valley.Pt(300, 400), Primary))
	sb.Update([]Event{{Kind: PointerDown, Button: Primary, Pos: valley.Pt(300, 400)}})
	var f Frame
	for _, x := range []float64{200, 101, 100, 99, 50} {
		f, _ = sb.Update([]Event{{Kind: PointerMove, Pos: valley.Pt(x, 400)}})
		require.Len(t, f.Points, 2)
		assert.Equal(t, terrain.Selected, f.Points[1].State, "x=%g", x)
		assert.Equal(t, valley.Pt(x, 400), f.Points[1].Pos, "x=%g", x)
		assert.Equal(t, valley.Pt(100, 400), f.Points[0].Pos, "x=%g", x)
	}
	assert.InDelta(t, 50.0, f.Curve.Last().X, 1e-9)
}

func TestFrameCurveIsACopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "valley.sandbox")
	defer teardown()
	//
	sb := New(DefaultConfig())
	sb.Update(click(valley.Pt(100, 500), Primary))
	f, err := sb.Update(click(valley.Pt(500, 500), Primary))
	require.NoError(t, err)
	require.NotEmpty(t, f.Curve)
	f.Curve[0] = valley.Pt(-1, -1)
	assert.Equal(t, valley.Pt(100, 500), sb.Terrain().Curve().First())
}
