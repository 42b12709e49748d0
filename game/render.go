package game

// Renderer is the rendering collaborator. The core asks it to mirror the
// active object set and per-frame poses; it owns nothing visual itself. A nil
// renderer is fine and the core silently skips the calls, which is what the
// native tests rely on.
type Renderer interface {
	// AddObject and RemoveObject keep the scene in sync with the active set.
	AddObject(o *TrackObject)
	RemoveObject(o *TrackObject)
	// RecolorObject gives pass/miss feedback on a resolved hoop.
	RecolorObject(o *TrackObject)

	SetPlayerVisible(visible bool)

	AddExplosion(e *Explosion)
	RemoveExplosion(e *Explosion)

	// Render draws one frame: objects, player (with flap phase), explosions,
	// and the trailing camera.
	Render(g *Game)
}

// Panel identifies the UI panels the core shows and hides.
type Panel int

const (
	PanelStart Panel = iota
	PanelPause
	PanelGameOver
)

// UI is the HUD/panel collaborator. The core treats it as a sink; it never
// reads state back from it. Nil means headless.
type UI interface {
	SetScore(score int)
	SetMisses(misses int)
	SetSpeedPercent(pct int)
	ShowPanel(p Panel)
	HidePanel(p Panel)
}

// AudioSink is the audio collaborator as the core sees it: an intensity knob,
// a beat clock to start and stop, and the one-shot cues. *audio.Engine
// satisfies it; nil means silent.
type AudioSink interface {
	Start()
	Stop()
	SetIntensity(v float64)
	PlayCollect()
	PlayCrash()
	PlayGameOver()
}
