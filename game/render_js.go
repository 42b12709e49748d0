//go:build js
// +build js

package game

import (
	"math"
	"sort"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// CanvasRenderer draws the scene onto a 2D canvas with a simple perspective
// projection. It is immediate mode: every frame it walks the live object set
// on the game, so Add/Remove/Recolor only need to exist to satisfy the
// interface.
type CanvasRenderer struct {
	canvas *js.Object
	ctx    *js.Object

	width  float64
	height float64

	playerVisible bool
}

// NewCanvasRenderer wraps a canvas element and grabs its 2D context.
func NewCanvasRenderer(canvas *js.Object) *CanvasRenderer {
	r := &CanvasRenderer{
		canvas:        canvas,
		ctx:           canvas.Call("getContext", "2d"),
		playerVisible: true,
	}
	r.Resize()
	return r
}

// Resize snaps the canvas backing store to the window size. Call it once at
// startup and again from the window resize handler.
func (r *CanvasRenderer) Resize() {
	r.width = js.Global.Get("window").Get("innerWidth").Float()
	r.height = js.Global.Get("window").Get("innerHeight").Float()
	r.canvas.Set("width", r.width)
	r.canvas.Set("height", r.height)
}

func (r *CanvasRenderer) AddObject(o *TrackObject)    {}
func (r *CanvasRenderer) RemoveObject(o *TrackObject) {}
func (r *CanvasRenderer) RecolorObject(o *TrackObject) {}

func (r *CanvasRenderer) SetPlayerVisible(visible bool) {
	r.playerVisible = visible
}

func (r *CanvasRenderer) AddExplosion(e *Explosion)    {}
func (r *CanvasRenderer) RemoveExplosion(e *Explosion) {}

// focalLength controls the perspective strength, in world units mapped to
// canvas pixels at depth 1.
const focalLength = 420.0

// project maps a world point to screen space relative to the camera. ok is
// false when the point sits behind the near plane.
func (r *CanvasRenderer) project(cam CameraPose, x, y, z float64) (sx, sy, scale float64, ok bool) {
	depth := cam.Z - z
	if depth < 1 {
		return 0, 0, 0, false
	}
	scale = focalLength / depth
	sx = r.width/2 + (x-cam.X)*scale
	sy = r.height/2 - (y-cam.Y)*scale
	return sx, sy, scale, true
}

// Render draws one full frame.
func (r *CanvasRenderer) Render(g *Game) {
	cam := g.Player.Camera()

	r.drawSky(cam)

	// Far to near so nearer objects paint over farther ones.
	order := make([]*TrackObject, len(g.Objects))
	copy(order, g.Objects)
	sort.Slice(order, func(i, j int) bool { return order[i].Z < order[j].Z })

	for _, o := range order {
		sx, sy, scale, ok := r.project(cam, o.X, o.Y, o.Z)
		if !ok {
			continue
		}
		switch o.Kind {
		case KindHoop:
			r.drawHoop(o, sx, sy, scale)
		case KindWall:
			r.drawBox(sx, sy, WallHalfWidth*scale, WallHalfHeight*scale, Theme.WallColor)
		case KindLog:
			r.drawBox(sx, sy, LogHalfWidth*scale, LogHalfHeight*scale, Theme.LogColor)
		case KindFan:
			r.drawFan(o, sx, sy, scale)
		}
	}

	if r.playerVisible {
		r.drawPlayer(g, cam)
	}

	for _, e := range g.Explosions {
		r.drawExplosion(cam, e)
	}
}

func (r *CanvasRenderer) drawSky(cam CameraPose) {
	ctx := r.ctx
	grad := ctx.Call("createLinearGradient", 0, 0, 0, r.height)
	grad.Call("addColorStop", 0, Theme.SkyTop)
	grad.Call("addColorStop", 1, Theme.SkyBottom)
	ctx.Set("fillStyle", grad)
	ctx.Call("fillRect", 0, 0, r.width, r.height)

	// Ground plane: everything below the projected horizon for y=0.
	_, horizon, _, ok := r.project(cam, cam.X, 0, cam.Z-focalLength)
	if !ok {
		horizon = r.height * 0.75
	}
	ctx.Set("fillStyle", Theme.GroundColor)
	ctx.Call("fillRect", 0, horizon, r.width, r.height-horizon)
}

func (r *CanvasRenderer) drawHoop(o *TrackObject, sx, sy, scale float64) {
	ctx := r.ctx
	color := Theme.HoopColor
	if o.Passed {
		color = Theme.HoopPassedColor
	} else if o.Missed {
		color = Theme.HoopMissedColor
	}
	ctx.Set("strokeStyle", color)
	ctx.Set("lineWidth", math.Max(1, HoopThickness*scale))
	ctx.Call("beginPath")
	ctx.Call("ellipse", sx, sy, HoopRadius*scale, HoopRadius*scale*0.92, 0, 0, math.Pi*2)
	ctx.Call("stroke")
}

func (r *CanvasRenderer) drawBox(sx, sy, hw, hh float64, color string) {
	ctx := r.ctx
	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", sx-hw, sy-hh, hw*2, hh*2)
}

func (r *CanvasRenderer) drawFan(o *TrackObject, sx, sy, scale float64) {
	ctx := r.ctx
	radius := FanRange * 0.6 * scale
	ctx.Set("strokeStyle", Theme.FanColor)
	ctx.Set("lineWidth", math.Max(1, 0.8*scale))
	ctx.Call("beginPath")
	ctx.Call("arc", sx, sy, radius, 0, math.Pi*2)
	ctx.Call("stroke")
	// Three blades rotated by the object's spin phase.
	for i := 0; i < 3; i++ {
		a := o.Rotation + float64(i)*math.Pi*2/3
		ctx.Call("beginPath")
		ctx.Call("moveTo", sx, sy)
		ctx.Call("lineTo", sx+math.Cos(a)*radius, sy+math.Sin(a)*radius)
		ctx.Call("stroke")
	}
}

func (r *CanvasRenderer) drawPlayer(g *Game, cam CameraPose) {
	p := g.Player
	sx, sy, scale, ok := r.project(cam, p.X, p.Y, p.Z)
	if !ok {
		return
	}
	ctx := r.ctx
	flap := WingFlap(g.State.Distance / PlayerSpeedBase)
	span := 6.0 * scale
	body := 2.5 * scale

	ctx.Call("save")
	ctx.Call("translate", sx, sy)
	ctx.Call("rotate", p.Bank)

	ctx.Set("fillStyle", Theme.PlayerColor)
	ctx.Call("beginPath")
	ctx.Call("ellipse", 0, 0, body, body*0.6, 0, 0, math.Pi*2)
	ctx.Call("fill")

	// Wings pivot about the body with the flap phase.
	ctx.Set("strokeStyle", Theme.PlayerGlow)
	ctx.Set("lineWidth", math.Max(1, 0.8*scale))
	ctx.Call("beginPath")
	ctx.Call("moveTo", -span, -flap*span*0.5)
	ctx.Call("lineTo", 0, 0)
	ctx.Call("lineTo", span, -flap*span*0.5)
	ctx.Call("stroke")

	ctx.Call("restore")
}

func (r *CanvasRenderer) drawExplosion(cam CameraPose, e *Explosion) {
	ctx := r.ctx
	alpha := e.Alpha()
	ctx.Call("save")
	ctx.Set("globalAlpha", alpha)
	ctx.Set("fillStyle", Theme.ExplosionColor)
	for i := range e.Particles {
		p := &e.Particles[i]
		sx, sy, scale, ok := r.project(cam, p.X, p.Y, p.Z)
		if !ok {
			continue
		}
		size := math.Max(1, 0.8*scale)
		ctx.Call("fillRect", sx-size/2, sy-size/2, size, size)
	}
	ctx.Call("restore")
}

// DOMUI mirrors game state into HUD elements and toggles the overlay panels
// by element id.
type DOMUI struct {
	score  *js.Object
	misses *js.Object
	speed  *js.Object
	panels map[Panel]*js.Object
}

// NewDOMUI looks up the HUD and panel elements once. Missing elements stay
// nil and updates to them are skipped.
func NewDOMUI() *DOMUI {
	doc := js.Global.Get("document")
	get := func(id string) *js.Object {
		el := doc.Call("getElementById", id)
		if el == js.Undefined || el == nil {
			return nil
		}
		return el
	}
	return &DOMUI{
		score:  get("hud-score"),
		misses: get("hud-misses"),
		speed:  get("hud-speed"),
		panels: map[Panel]*js.Object{
			PanelStart:    get("panel-start"),
			PanelPause:    get("panel-pause"),
			PanelGameOver: get("panel-gameover"),
		},
	}
}

func setText(el *js.Object, s string) {
	if el != nil {
		el.Set("textContent", s)
	}
}

func (u *DOMUI) SetScore(score int)     { setText(u.score, strconv.Itoa(score)) }
func (u *DOMUI) SetMisses(misses int)   { setText(u.misses, strconv.Itoa(misses)) }
func (u *DOMUI) SetSpeedPercent(pct int) { setText(u.speed, strconv.Itoa(pct)+"%") }

func (u *DOMUI) ShowPanel(p Panel) {
	if el := u.panels[p]; el != nil {
		el.Get("style").Set("display", "flex")
	}
}

func (u *DOMUI) HidePanel(p Panel) {
	if el := u.panels[p]; el != nil {
		el.Get("style").Set("display", "none")
	}
}
