package audio

import (
	"github.com/mkalens/skyhoops/common"
)

// Output receives the notes the sequencer schedules. t is an absolute time
// on the audio clock, in seconds. The web audio implementation turns these
// into oscillator voices; tests record them.
type Output interface {
	Kick(t float64)
	Hat(t float64)
	Drone(t float64)
	Note(t, freq float64)
}

// Sequencer is the beat clock. It runs a sixteenth-note grid ahead of the
// audio clock, scheduling each step slightly before it is due so timer
// jitter never lands inside the mix. The clock and timer are injected so the
// whole thing runs under native tests with a fake time source.
type Sequencer struct {
	out   Output
	rng   *common.SeededRNG
	now   func() float64          // current audio clock time in seconds
	after func(ms int, fn func()) // re-arm timer

	playing      bool
	intensity    float64
	nextNoteTime float64
	tick         int
}

// NewSequencer wires a sequencer to its output and clock sources.
func NewSequencer(out Output, rng *common.SeededRNG, now func() float64, after func(ms int, fn func())) *Sequencer {
	return &Sequencer{
		out:   out,
		rng:   rng,
		now:   now,
		after: after,
	}
}

// Playing reports whether the beat clock is running.
func (s *Sequencer) Playing() bool {
	return s.playing
}

// Intensity returns the current clamped intensity.
func (s *Sequencer) Intensity() float64 {
	return s.intensity
}

// SetIntensity updates the tension knob. Values are clamped to [0, 1]. It
// takes effect on the next scheduled step, not retroactively.
func (s *Sequencer) SetIntensity(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.intensity = v
}

// Tempo returns the current tempo in BPM. Intensity pushes it from the base
// up through the full range.
func (s *Sequencer) Tempo() float64 {
	return AudioConfig.BaseTempo + s.intensity*AudioConfig.TempoRange
}

// stepDuration is the length of one grid step in seconds at the current
// tempo.
func (s *Sequencer) stepDuration() float64 {
	return 60 / s.Tempo() / float64(AudioConfig.StepsPerBeat)
}

// Start begins the beat clock from step zero. Starting an already running
// sequencer is a no-op.
func (s *Sequencer) Start() {
	if s.playing {
		return
	}
	s.playing = true
	s.tick = 0
	s.nextNoteTime = s.now()
	s.schedule()
}

// Stop halts the clock. Already scheduled notes ring out; nothing new is
// queued.
func (s *Sequencer) Stop() {
	s.playing = false
}

// schedule fills the lookahead window and re-arms itself. A Stop between
// timer fires drops out here because the playing flag is checked first.
func (s *Sequencer) schedule() {
	if !s.playing {
		return
	}
	horizon := s.now() + AudioConfig.LookaheadSec
	for s.nextNoteTime < horizon {
		s.playStep(s.nextNoteTime)
		s.nextNoteTime += s.stepDuration()
		s.tick++
	}
	s.after(AudioConfig.TimerMs, s.schedule)
}

// playStep emits the voices due on one grid step at audio time t.
func (s *Sequencer) playStep(t float64) {
	if s.tick%8 == 0 {
		s.out.Kick(t)
	}
	if s.tick%2 == 0 && s.intensity > AudioConfig.HatThreshold {
		s.out.Hat(t)
	}
	if s.tick%16 == 0 && s.intensity > AudioConfig.DroneThreshold {
		s.out.Drone(t)
	}

	chance := AudioConfig.MelodyChance
	if s.intensity > AudioConfig.MelodyTenseAt {
		chance = AudioConfig.MelodyChanceTense
	}
	if s.rng.Random() < chance {
		s.out.Note(t, s.pickNote())
	}
}

// pickNote draws a melody pitch. The dissonant palette takes over with
// probability equal to the intensity, so a calm run stays consonant and a
// tense one sours.
func (s *Sequencer) pickNote() float64 {
	palette := ConsonantNotes
	if s.rng.Random() < s.intensity {
		palette = DissonantNotes
	}
	freq := palette[s.rng.RandomInt(0, len(palette))]
	return freq * Octaves[s.rng.RandomInt(0, len(Octaves))]
}
