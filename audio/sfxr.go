package audio

import (
	"encoding/base64"
	"math"
)

// Wave types for the sfx synth.
const (
	WaveSquare = iota
	WaveSaw
	WaveSine
	WaveNoise
)

const sfxSampleRate = 44100

// SfxParams describes one synthesized effect. Times are in seconds and
// frequencies in Hz.
type SfxParams struct {
	WaveType int

	// Envelope
	Attack  float64 // ramp up to full volume
	Sustain float64 // hold at full volume
	Punch   float64 // extra volume at sustain start (0-1)
	Decay   float64 // fade to silence

	// Pitch
	StartFreq float64 // base frequency
	Slide     float64 // frequency change per second

	SquareDuty float64 // duty cycle for square waves (0-1)
	Volume     float64 // master volume (0-1)
}

// noisePRNG is a tiny xorshift used only for the noise wave so renders are
// repeatable.
type noisePRNG struct{ state uint32 }

func (n *noisePRNG) next() float64 {
	n.state ^= n.state << 13
	n.state ^= n.state >> 17
	n.state ^= n.state << 5
	return float64(n.state)/2147483648.0 - 1
}

// Synthesize renders the effect to mono float samples in [-1, 1].
func Synthesize(p SfxParams) []float64 {
	attack := int(p.Attack * sfxSampleRate)
	sustain := int(p.Sustain * sfxSampleRate)
	decay := int(p.Decay * sfxSampleRate)
	total := attack + sustain + decay
	if total == 0 {
		return nil
	}

	samples := make([]float64, total)
	noise := noisePRNG{state: 0x2F6E2B1}

	freq := p.StartFreq
	phase := 0.0
	noiseVal := noise.next()

	for i := 0; i < total; i++ {
		freq += p.Slide / sfxSampleRate
		if freq < 1 {
			freq = 1
		}

		prevPhase := phase
		phase += freq / sfxSampleRate
		if phase >= 1 {
			phase -= 1
		}

		var v float64
		switch p.WaveType {
		case WaveSquare:
			if phase < p.SquareDuty {
				v = 0.5
			} else {
				v = -0.5
			}
		case WaveSaw:
			v = 1 - phase*2
		case WaveSine:
			v = math.Sin(phase * 2 * math.Pi)
		case WaveNoise:
			// New noise value once per oscillator cycle.
			if phase < prevPhase {
				noiseVal = noise.next()
			}
			v = noiseVal
		}

		var env float64
		switch {
		case i < attack:
			env = float64(i) / float64(attack)
		case i < attack+sustain:
			progress := float64(i-attack) / float64(sustain)
			env = 1 + p.Punch*(1-progress)
		default:
			progress := float64(i-attack-sustain) / float64(decay)
			env = 1 - progress
		}

		samples[i] = v * env * p.Volume
	}

	return samples
}

// WavDataURL renders the effect as a 16-bit mono WAV wrapped in a base64
// data URL, ready for decodeAudioData.
func WavDataURL(p SfxParams) string {
	samples := Synthesize(p)
	dataSize := len(samples) * 2
	data := make([]byte, 44+dataSize)
	writeWavHeader(data, dataSize)

	for i, s := range samples {
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		v := int16(s * 32767)
		data[44+i*2] = byte(v)
		data[44+i*2+1] = byte(v >> 8)
	}

	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(data)
}

// writeWavHeader fills in a canonical 44-byte RIFF/WAVE header for 16-bit
// mono PCM at the synth sample rate.
func writeWavHeader(data []byte, dataSize int) {
	copy(data[0:4], "RIFF")
	writeUint32LE(data, 4, uint32(36+dataSize))
	copy(data[8:12], "WAVE")

	copy(data[12:16], "fmt ")
	writeUint32LE(data, 16, 16) // chunk size
	writeUint16LE(data, 20, 1)  // PCM
	writeUint16LE(data, 22, 1)  // mono
	writeUint32LE(data, 24, sfxSampleRate)
	writeUint32LE(data, 28, sfxSampleRate*2) // byte rate
	writeUint16LE(data, 32, 2)               // block align
	writeUint16LE(data, 34, 16)              // bits per sample

	copy(data[36:40], "data")
	writeUint32LE(data, 40, uint32(dataSize))
}

func writeUint16LE(data []byte, offset int, value uint16) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
}

func writeUint32LE(data []byte, offset int, value uint32) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
	data[offset+2] = byte(value >> 16)
	data[offset+3] = byte(value >> 24)
}
