package audio

// AudioConfig is the live configuration. The defaults are tuned by ear.
var AudioConfig = Config{
	// Master settings
	MasterVolume: 0.7,

	// Sequencer timing
	BaseTempo:    100,
	TempoRange:   60,
	LookaheadSec: 0.1,
	TimerMs:      25,
	StepsPerBeat: 4,

	// Pattern thresholds
	HatThreshold:      0.3,
	DroneThreshold:    0.7,
	MelodyChance:      0.3,
	MelodyChanceTense: 0.6,
	MelodyTenseAt:     0.5,

	// Voice levels
	KickVolume:   0.5,
	HatVolume:    0.12,
	DroneVolume:  0.1,
	MelodyVolume: 0.18,

	// Voice envelopes
	KickDecay:   0.25,
	HatDecay:    0.05,
	DroneLength: 2.0,
	NoteLength:  0.3,

	// Drone voice
	DroneFreq:   55,
	DroneDetune: 1.5,

	// Game over cue
	GameOverVoices: 4,
	GameOverLength: 1.8,
	GameOverDropHz: 80,
	GameOverVolume: 0.2,
}

// ConsonantNotes is the calm melody palette: an A minor pentatonic spread
// around A4, in Hz.
var ConsonantNotes = []float64{
	220.00, // A3
	261.63, // C4
	293.66, // D4
	329.63, // E4
	392.00, // G4
	440.00, // A4
}

// DissonantNotes is the tense palette: tritones and minor seconds against
// the same root.
var DissonantNotes = []float64{
	233.08, // A#3
	311.13, // D#4
	349.23, // F4
	466.16, // A#4
	622.25, // D#5
}

// Octaves holds the multipliers a melody note may be shifted by.
var Octaves = []float64{0.5, 1, 2}
