package audio

import (
	"encoding/base64"
	"math"
	"strings"
	"testing"
)

// TestSynthesize_LengthMatchesEnvelope tests the rendered sample count.
func TestSynthesize_LengthMatchesEnvelope(t *testing.T) {
	p := SfxParams{
		WaveType:  WaveSine,
		Attack:    0.1,
		Sustain:   0.2,
		Decay:     0.3,
		StartFreq: 440,
		Volume:    0.5,
	}

	samples := Synthesize(p)

	want := int(0.6 * sfxSampleRate)
	if len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
}

// TestSynthesize_NotSilent tests that the presets produce audible output.
func TestSynthesize_NotSilent(t *testing.T) {
	for id, p := range SfxData {
		samples := Synthesize(p)
		peak := 0.0
		for _, s := range samples {
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
		if peak < 0.05 {
			t.Errorf("Sfx %d is effectively silent, peak %v", id, peak)
		}
	}
}

// TestSynthesize_DecaysToSilence tests that the envelope closes cleanly.
func TestSynthesize_DecaysToSilence(t *testing.T) {
	for id, p := range SfxData {
		samples := Synthesize(p)
		if len(samples) == 0 {
			t.Fatalf("Sfx %d rendered empty", id)
		}
		tail := samples[len(samples)-1]
		if math.Abs(tail) > 0.01 {
			t.Errorf("Sfx %d ends hot (%v), expect a click", id, tail)
		}
	}
}

// TestSynthesize_SamplesInRange tests that no sample needs clipping.
func TestSynthesize_SamplesInRange(t *testing.T) {
	for id, p := range SfxData {
		for i, s := range Synthesize(p) {
			if s < -1.01 || s > 1.01 {
				t.Fatalf("Sfx %d sample %d out of range: %v", id, i, s)
			}
		}
	}
}

// TestWavDataURL_Header tests the data URL wrapper and the RIFF header.
func TestWavDataURL_Header(t *testing.T) {
	url := WavDataURL(SfxData[SfxCollect])

	const prefix = "data:audio/wav;base64,"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("Expected data URL prefix, got %q", url[:32])
	}

	raw, err := base64.StdEncoding.DecodeString(url[len(prefix):])
	if err != nil {
		t.Fatalf("Data URL payload is not valid base64: %v", err)
	}
	if len(raw) < 44 {
		t.Fatalf("WAV shorter than its header: %d bytes", len(raw))
	}

	if string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		t.Error("Missing RIFF/WAVE magic")
	}
	if string(raw[12:16]) != "fmt " || string(raw[36:40]) != "data" {
		t.Error("Missing fmt/data chunks")
	}

	channels := int(raw[22]) | int(raw[23])<<8
	if channels != 1 {
		t.Errorf("Expected mono, got %d channels", channels)
	}
	rate := int(raw[24]) | int(raw[25])<<8 | int(raw[26])<<16 | int(raw[27])<<24
	if rate != sfxSampleRate {
		t.Errorf("Expected sample rate %d, got %d", sfxSampleRate, rate)
	}
	bits := int(raw[34]) | int(raw[35])<<8
	if bits != 16 {
		t.Errorf("Expected 16-bit samples, got %d", bits)
	}

	dataSize := int(raw[40]) | int(raw[41])<<8 | int(raw[42])<<16 | int(raw[43])<<24
	if dataSize != len(raw)-44 {
		t.Errorf("Data chunk size %d does not match payload %d", dataSize, len(raw)-44)
	}
}

// TestSynthesize_Deterministic tests that renders are repeatable, which the
// noise PRNG exists to guarantee.
func TestSynthesize_Deterministic(t *testing.T) {
	a := Synthesize(SfxData[SfxCrash])
	b := Synthesize(SfxData[SfxCrash])

	if len(a) != len(b) {
		t.Fatalf("Lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
