package audio

// Config holds every tunable knob of the music engine in one struct so the
// whole mix can be rebalanced from a single place.
type Config struct {
	// Master settings
	MasterVolume float64 // 0.0 - 1.0

	// Sequencer timing
	BaseTempo    float64 // BPM at zero intensity
	TempoRange   float64 // Extra BPM added at full intensity
	LookaheadSec float64 // How far ahead notes are scheduled
	TimerMs      int     // Scheduler re-arm interval in milliseconds
	StepsPerBeat int     // Subdivision of a beat (4 = sixteenth notes)

	// Pattern thresholds
	HatThreshold      float64 // Intensity above which hats play
	DroneThreshold    float64 // Intensity above which the drone plays
	MelodyChance      float64 // Base chance of a melody note per step
	MelodyChanceTense float64 // Melody chance above MelodyTenseAt
	MelodyTenseAt     float64 // Intensity where the denser melody kicks in

	// Voice levels
	KickVolume   float64
	HatVolume    float64
	DroneVolume  float64
	MelodyVolume float64

	// Voice envelopes, in seconds
	KickDecay   float64
	HatDecay    float64
	DroneLength float64
	NoteLength  float64

	// Drone voice
	DroneFreq   float64 // Base drone frequency
	DroneDetune float64 // Second drone oscillator offset in Hz

	// Game over cue
	GameOverVoices int     // Oscillators in the failure chord
	GameOverLength float64 // Seconds before the chord dies out
	GameOverDropHz float64 // How far each voice pitches down
	GameOverVolume float64
}
