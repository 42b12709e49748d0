package audio

import (
	"github.com/mkalens/skyhoops/common"
)

// CuePlayer extends Output with the one-shot cues the game triggers outside
// the beat grid.
type CuePlayer interface {
	Output
	Collect()
	Crash()
	GameOver()
}

// Engine is the audio facade the game talks to. It owns the sequencer and
// forwards the one-shot cues to the underlying player. The game only sees
// this type, never the web audio plumbing.
type Engine struct {
	seq  *Sequencer
	cues CuePlayer
}

// NewEngine builds the engine around a cue player and its clock sources.
func NewEngine(cues CuePlayer, rng *common.SeededRNG, now func() float64, after func(ms int, fn func())) *Engine {
	return &Engine{
		seq:  NewSequencer(cues, rng, now, after),
		cues: cues,
	}
}

// Sequencer exposes the beat clock, mainly for tests and the debug console.
func (e *Engine) Sequencer() *Sequencer {
	return e.seq
}

// Start runs the beat clock.
func (e *Engine) Start() {
	e.seq.Start()
}

// Stop halts the beat clock. One-shot cues still play after a stop.
func (e *Engine) Stop() {
	e.seq.Stop()
}

// SetIntensity feeds the game tension into the music.
func (e *Engine) SetIntensity(v float64) {
	e.seq.SetIntensity(v)
}

// PlayCollect fires the pickup cue.
func (e *Engine) PlayCollect() {
	e.cues.Collect()
}

// PlayCrash fires the impact cue.
func (e *Engine) PlayCrash() {
	e.cues.Crash()
}

// PlayGameOver fires the failure chord.
func (e *Engine) PlayGameOver() {
	e.cues.GameOver()
}
