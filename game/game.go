package game

import (
	"github.com/mkalens/skyhoops/common"
)

// Game owns the complete simulation state: run state, player, the active
// object and explosion sets, and the optional collaborators. Everything is
// mutated only from the frame-tick context, so no locking is needed; any
// change introducing other goroutines must serialize access to State,
// Objects and Explosions.
type Game struct {
	State      GameState
	Player     *Player
	Objects    []*TrackObject
	Explosions []*Explosion

	Rng *common.SeededRNG

	// Input wiring. The browser glue maintains Keys from events; Tick
	// snapshots them into Input at the top of each frame. Tests set Input
	// directly.
	Keys  map[int]bool
	Input Input

	// TouchControls selects the reduced-precision control layout. Set once
	// at startup from the initial viewport width.
	TouchControls bool

	// Collaborators; each may be nil and is then silently skipped.
	Renderer Renderer
	UI       UI
	Audio    AudioSink

	// Frame scheduling hooks, armed by the browser glue. Halt stops the
	// frame driver from re-arming; Resume re-arms it. Pausing is cooperative:
	// the only task is the self-rescheduling tick, so cancelling it is the
	// whole mechanism.
	Halt   func()
	Resume func()

	// Animation bookkeeping used by the js frame driver.
	AnimationFrameID int
	LastFrameTime    float64
}

// NewGame creates a game in the idle state with the given seed.
func NewGame(seed uint32) *Game {
	g := &Game{
		Player:  &Player{},
		Objects: make([]*TrackObject, 0, 32),
		Rng:     common.NewSeededRNG(seed),
		Keys:    make(map[int]bool),
	}
	g.State.reset()
	g.Player.reset()
	return g
}

// Start begins a new run (or restarts after game over): counters reset, the
// corridor is cleared and re-seeded, the player becomes visible again, audio
// starts, and frame scheduling resumes.
func (g *Game) Start() {
	g.Reset()
	g.State.Running = true

	if g.Renderer != nil {
		g.Renderer.SetPlayerVisible(true)
	}
	if g.UI != nil {
		g.UI.HidePanel(PanelStart)
		g.UI.HidePanel(PanelPause)
		g.UI.HidePanel(PanelGameOver)
		g.UI.SetScore(0)
		g.UI.SetMisses(0)
		g.UI.SetSpeedPercent(g.State.SpeedPercent())
	}
	if g.Audio != nil {
		g.Audio.SetIntensity(0)
		g.Audio.Start()
	}
	g.resume()
}

// Reset clears all run state: counters, the active object set and any
// explosions still playing out.
func (g *Game) Reset() {
	for i := len(g.Objects) - 1; i >= 0; i-- {
		g.removeObject(i)
	}
	for i := len(g.Explosions) - 1; i >= 0; i-- {
		g.removeExplosion(i)
	}
	g.State.reset()
	g.Player.reset()
	g.State.LastSpawnZ = g.Player.Z
}

// TogglePause flips the manual pause. It is a no-op unless a run is in
// progress.
func (g *Game) TogglePause() {
	if !g.State.Running || g.State.GameOver {
		return
	}
	g.setPaused(!g.State.Paused, false)
}

// HandleVisibility reacts to the hosting environment gaining or losing
// foreground visibility. Losing it while running auto-pauses; regaining it
// only resumes if the pause was automatic, so a visibility blip never undoes
// a manual pause.
func (g *Game) HandleVisibility(visible bool) {
	if !visible {
		if g.State.Running && !g.State.Paused && !g.State.GameOver {
			g.setPaused(true, true)
		}
		return
	}
	if g.State.Paused && g.State.AutoPaused {
		g.setPaused(false, false)
	}
}

func (g *Game) setPaused(paused, auto bool) {
	if g.State.Paused == paused {
		return
	}
	g.State.Paused = paused
	g.State.AutoPaused = paused && auto

	if paused {
		if g.UI != nil {
			g.UI.ShowPanel(PanelPause)
		}
		if g.Audio != nil {
			g.Audio.Stop()
		}
		g.halt()
	} else {
		if g.UI != nil {
			g.UI.HidePanel(PanelPause)
		}
		if g.Audio != nil {
			g.Audio.Start()
		}
		g.resume()
	}
}

// triggerGameOver ends the run. Idempotent: a second trigger in the same or
// a later tick does nothing, so the miss-limit and a collision landing in one
// frame still produce one explosion and one cue sequence.
func (g *Game) triggerGameOver() {
	if g.State.GameOver {
		return
	}
	g.State.GameOver = true
	g.State.Running = false
	g.State.Paused = false
	g.State.AutoPaused = false

	g.Explode(g.Player.X, g.Player.Y, g.Player.Z)

	if g.Renderer != nil {
		g.Renderer.SetPlayerVisible(false)
	}
	if g.Audio != nil {
		g.Audio.PlayCrash()
		g.Audio.PlayGameOver()
		g.Audio.Stop()
	}
	if g.UI != nil {
		g.UI.ShowPanel(PanelGameOver)
	}
}

// onScore is the bookkeeping shared by every scoring event: speed step, UI
// readouts and the audio intensity signal.
func (g *Game) onScore() {
	g.State.Score++
	g.State.Speed++
	if g.State.Speed > PlayerSpeedMax {
		g.State.Speed = PlayerSpeedMax
	}
	if g.UI != nil {
		g.UI.SetScore(g.State.Score)
		g.UI.SetSpeedPercent(g.State.SpeedPercent())
	}
	if g.Audio != nil {
		g.Audio.PlayCollect()
		g.Audio.SetIntensity(g.State.Intensity())
	}
}

// onMiss is the bookkeeping for a missed hoop, including the miss-limit
// check. Misses only ever go up while running.
func (g *Game) onMiss() {
	g.State.Misses++
	if g.UI != nil {
		g.UI.SetMisses(g.State.Misses)
	}
	if g.Audio != nil {
		g.Audio.SetIntensity(g.State.Intensity())
	}
	if g.State.Misses >= MaxMisses {
		g.triggerGameOver()
	}
}

func (g *Game) halt() {
	if g.Halt != nil {
		g.Halt()
	}
}

func (g *Game) resume() {
	if g.Resume != nil {
		g.Resume()
	}
}
