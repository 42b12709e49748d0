package audio

// Sound effect ids, indexing SfxData.
const (
	SfxCollect = iota
	SfxCrash
)

// SfxData holds the synth presets for the one-shot cues. Collect is a short
// rising chirp, crash a low noise burst.
var SfxData = []SfxParams{
	SfxCollect: {
		WaveType:   WaveSquare,
		Attack:     0.0,
		Sustain:    0.08,
		Punch:      0.4,
		Decay:      0.22,
		StartFreq:  520,
		Slide:      2400,
		SquareDuty: 0.5,
		Volume:     0.5,
	},
	SfxCrash: {
		WaveType:  WaveNoise,
		Attack:    0.0,
		Sustain:   0.1,
		Punch:     0.6,
		Decay:     0.45,
		StartFreq: 140,
		Slide:     -120,
		Volume:    0.6,
	},
}
