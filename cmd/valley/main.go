// Command valley is an interactive terrain sandbox. Click to place control
// points, drag them to reshape the curve, and right-click to drop a car onto
// the terrain. Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"honnef.co/go/valley"
	"honnef.co/go/valley/sandbox"
	"honnef.co/go/valley/terrain"
)

// tracer traces with key 'valley.sandbox'
func tracer() tracing.Trace {
	return tracing.Select("valley.sandbox")
}

var (
	background = color.RGBA{0x1e, 0x3a, 0x8a, 0xff}
	curveColor = color.White
	wheelColor = color.RGBA{0x33, 0x33, 0x33, 0xff}
	bodyColor  = color.RGBA{0xd9, 0x48, 0x2b, 0xff}
	frontColor = color.RGBA{0xf5, 0xd0, 0x42, 0xff}
	innerColor = color.RGBA{0xe0, 0x20, 0x20, 0xff}
	plumbColor = color.RGBA{0x9a, 0xb8, 0xe8, 0xff}
)

// markerColors maps a control point's state to its marker ring.
var markerColors = map[terrain.State]color.Color{
	terrain.Neutral:    color.RGBA{0xff, 0xa5, 0x00, 0xff},
	terrain.MousedOver: color.RGBA{0xff, 0xff, 0x00, 0xff},
	terrain.Selected:   color.RGBA{0x00, 0xff, 0x00, 0xff},
}

const staticMarker = 0x80 // gray level of anchor markers

type game struct {
	sb      *sandbox.Sandbox
	frame   sandbox.Frame
	chassis *ebiten.Image
	face    text.Face
	pointer valley.Point
}

func newGame(cfg sandbox.Config) *game {
	size := cfg.Vehicle.ChassisSize
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	chassis := ebiten.NewImage(w, h)
	chassis.Fill(bodyColor)
	// mark the front so that mirroring is visible
	vector.DrawFilledRect(chassis, float32(w)-6, 0, 6, float32(h), frontColor, false)
	return &game{
		sb:      sandbox.New(cfg),
		chassis: chassis,
		face:    text.NewGoXFace(bitmapfont.Face),
	}
}

// events polls ebiten's input state and translates it into sandbox events.
func (g *game) events() []sandbox.Event {
	var evs []sandbox.Event
	x, y := ebiten.CursorPosition()
	pos := valley.Pt(float64(x), float64(y))
	if pos != g.pointer {
		evs = append(evs, sandbox.Event{Kind: sandbox.PointerMove, Pos: pos})
		g.pointer = pos
	}
	buttons := []struct {
		mb ebiten.MouseButton
		b  sandbox.Button
	}{
		{ebiten.MouseButtonLeft, sandbox.Primary},
		{ebiten.MouseButtonRight, sandbox.Secondary},
	}
	for _, btn := range buttons {
		if inpututil.IsMouseButtonJustPressed(btn.mb) {
			evs = append(evs, sandbox.Event{Kind: sandbox.PointerDown, Button: btn.b, Pos: pos})
		}
		if inpututil.IsMouseButtonJustReleased(btn.mb) {
			evs = append(evs, sandbox.Event{Kind: sandbox.PointerUp, Button: btn.b, Pos: pos})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		evs = append(evs, sandbox.Event{Kind: sandbox.Quit})
	}
	return evs
}

func (g *game) Update() error {
	frame, err := g.sb.Update(g.events())
	if errors.Is(err, sandbox.ErrQuit) {
		return ebiten.Termination
	} else if err != nil {
		return err
	}
	g.frame = frame
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.drawCurve(screen)
	g.drawPoints(screen)
	g.drawVehicle(screen)
	g.drawHUD(screen)
}

func (g *game) drawCurve(screen *ebiten.Image) {
	for l := range g.frame.Curve.Segments() {
		if l.IsDegenerate() {
			continue
		}
		vector.StrokeLine(screen,
			float32(l.P0.X), float32(l.P0.Y), float32(l.P1.X), float32(l.P1.Y),
			2, curveColor, true)
	}
}

func (g *game) drawPoints(screen *ebiten.Image) {
	r := float32(g.sb.Config().Terrain.HitRadius) / 2
	for _, p := range g.frame.Points {
		var ring color.Color = color.Gray{Y: staticMarker}
		if !p.Static {
			ring = markerColors[p.State]
		}
		x, y := float32(p.Pos.X), float32(p.Pos.Y)
		vector.DrawFilledCircle(screen, x, y, r+1, ring, true)
		vector.DrawFilledCircle(screen, x, y, r, innerColor, true)
	}
}

func (g *game) drawVehicle(screen *ebiten.Image) {
	pres := g.frame.Vehicle
	if pres == nil {
		return
	}
	if foot, d := g.frame.Curve.Nearest(pres.Position); !math.IsInf(d, 1) {
		vector.StrokeLine(screen,
			float32(pres.Position.X), float32(pres.Position.Y), float32(foot.X), float32(foot.Y),
			1, plumbColor, true)
	}
	v := g.sb.Vehicle()
	radii := v.WheelRadii()
	for i, wp := range g.frame.Wheels {
		vector.DrawFilledCircle(screen, float32(wp.X), float32(wp.Y), float32(radii[i]), wheelColor, true)
	}
	bounds := g.chassis.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	if pres.FacingLeft {
		op.GeoM.Scale(-1, 1)
	}
	// GeoM rotates clockwise on screen
	op.GeoM.Rotate(-pres.RotationDegrees * math.Pi / 180)
	op.GeoM.Translate(pres.Position.X, pres.Position.Y)
	screen.DrawImage(g.chassis, op)
}

func (g *game) drawHUD(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "tick %d  points %d  segments %d",
		g.frame.Tick, len(g.frame.Points), g.frame.Curve.NumSegments())
	if pres := g.frame.Vehicle; pres != nil {
		clearance := g.frame.Curve.Clearance(pres.Position)
		fmt.Fprintf(&b, "\ncar %s  %.0f°  clearance %.1f", pres.Position, pres.RotationDegrees, clearance)
	} else {
		b.WriteString("\nleft click: add or drag point, right click: drop car, esc: quit")
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 14
	text.Draw(screen, b.String(), g.face, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sb.Config().SceneSize
	return int(size.Width), int(size.Height)
}

func main() {
	initDisplay()

	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.valley.sandbox": *tlevel,
		"trace.valley.terrain": *tlevel,
		"trace.valley.physics": *tlevel,
		"trace.valley.vehicle": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		pterm.Error.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the valley sandbox") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)

	cfg := sandbox.DefaultConfig()
	ebiten.SetWindowSize(int(cfg.SceneSize.Width), int(cfg.SceneSize.Height))
	ebiten.SetWindowTitle("valley")
	ebiten.SetTPS(int(math.Round(1 / cfg.Physics.TimeStep)))
	if err := ebiten.RunGame(newGame(cfg)); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	pterm.Info.Println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
