//go:build js
// +build js

package audio

import (
	"github.com/gopherjs/gopherjs/js"
)

// WebAudioPlayer implements CuePlayer on the Web Audio API. Beat voices are
// plain oscillator nodes with gain envelopes; the one-shot cues play
// pre-synthesized buffers decoded from data URLs.
type WebAudioPlayer struct {
	ctx        *js.Object
	masterGain *js.Object
	buffers    map[int]*js.Object
	ready      bool
}

// NewWebAudioPlayer creates the player. Call Init before use.
func NewWebAudioPlayer() *WebAudioPlayer {
	return &WebAudioPlayer{
		buffers: make(map[int]*js.Object),
	}
}

// Init creates the audio context and kicks off sound decoding. Safe to call
// more than once.
func (w *WebAudioPlayer) Init() {
	if w.ctx != nil {
		return
	}

	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return
	}

	w.ctx = audioCtx.New()
	w.masterGain = w.ctx.Call("createGain")
	w.masterGain.Call("connect", w.ctx.Get("destination"))
	w.masterGain.Get("gain").Set("value", AudioConfig.MasterVolume)
	w.ready = true

	for id, params := range SfxData {
		w.loadSound(id, WavDataURL(params))
	}
}

// loadSound fetches and decodes one synthesized cue from its data URL.
func (w *WebAudioPlayer) loadSound(id int, dataURL string) {
	fetchPromise := js.Global.Call("fetch", dataURL)
	fetchPromise.Call("then", func(response *js.Object) {
		arrayBufferPromise := response.Call("arrayBuffer")
		arrayBufferPromise.Call("then", func(arrayBuffer *js.Object) {
			decodePromise := w.ctx.Call("decodeAudioData", arrayBuffer)
			decodePromise.Call("then", func(audioBuffer *js.Object) {
				w.buffers[id] = audioBuffer
			})
		})
	})
}

// Resume unsuspends the context. Browsers gate audio behind a user gesture,
// so this is called from the first click or key press.
func (w *WebAudioPlayer) Resume() {
	if w.ctx == nil {
		return
	}
	if w.ctx.Get("state").String() == "suspended" {
		w.ctx.Call("resume")
	}
}

// Now returns the audio clock time in seconds. Zero before Init.
func (w *WebAudioPlayer) Now() float64 {
	if w.ctx == nil {
		return 0
	}
	return w.ctx.Get("currentTime").Float()
}

// After schedules fn on the browser timer. Used as the sequencer's re-arm
// source.
func After(ms int, fn func()) {
	js.Global.Call("setTimeout", fn, ms)
}

// voice spawns one oscillator wired through its own gain node to the master
// bus.
func (w *WebAudioPlayer) voice(waveType string) (osc, gain *js.Object) {
	osc = w.ctx.Call("createOscillator")
	osc.Set("type", waveType)
	gain = w.ctx.Call("createGain")
	osc.Call("connect", gain)
	gain.Call("connect", w.masterGain)
	return osc, gain
}

// Kick plays a pitched-down sine thump at audio time t.
func (w *WebAudioPlayer) Kick(t float64) {
	if !w.ready {
		return
	}
	osc, gain := w.voice("sine")
	osc.Get("frequency").Call("setValueAtTime", 150, t)
	osc.Get("frequency").Call("linearRampToValueAtTime", 40, t+AudioConfig.KickDecay)
	gain.Get("gain").Call("setValueAtTime", AudioConfig.KickVolume, t)
	gain.Get("gain").Call("linearRampToValueAtTime", 0.0001, t+AudioConfig.KickDecay)
	osc.Call("start", t)
	osc.Call("stop", t+AudioConfig.KickDecay)
}

// Hat plays a short high tick at audio time t.
func (w *WebAudioPlayer) Hat(t float64) {
	if !w.ready {
		return
	}
	osc, gain := w.voice("square")
	osc.Get("frequency").Call("setValueAtTime", 8000, t)
	gain.Get("gain").Call("setValueAtTime", AudioConfig.HatVolume, t)
	gain.Get("gain").Call("linearRampToValueAtTime", 0.0001, t+AudioConfig.HatDecay)
	osc.Call("start", t)
	osc.Call("stop", t+AudioConfig.HatDecay)
}

// Drone plays the low pad, two slightly detuned sines swelling in and out.
func (w *WebAudioPlayer) Drone(t float64) {
	if !w.ready {
		return
	}
	length := AudioConfig.DroneLength
	for _, freq := range []float64{AudioConfig.DroneFreq, AudioConfig.DroneFreq + AudioConfig.DroneDetune} {
		osc, gain := w.voice("sine")
		osc.Get("frequency").Call("setValueAtTime", freq, t)
		gain.Get("gain").Call("setValueAtTime", 0.0001, t)
		gain.Get("gain").Call("linearRampToValueAtTime", AudioConfig.DroneVolume, t+length*0.3)
		gain.Get("gain").Call("linearRampToValueAtTime", 0.0001, t+length)
		osc.Call("start", t)
		osc.Call("stop", t+length)
	}
}

// Note plays one melody note at audio time t.
func (w *WebAudioPlayer) Note(t, freq float64) {
	if !w.ready {
		return
	}
	osc, gain := w.voice("triangle")
	osc.Get("frequency").Call("setValueAtTime", freq, t)
	gain.Get("gain").Call("setValueAtTime", 0.0001, t)
	gain.Get("gain").Call("linearRampToValueAtTime", AudioConfig.MelodyVolume, t+0.02)
	gain.Get("gain").Call("linearRampToValueAtTime", 0.0001, t+AudioConfig.NoteLength)
	osc.Call("start", t)
	osc.Call("stop", t+AudioConfig.NoteLength)
}

// playBuffer fires a decoded one-shot cue immediately.
func (w *WebAudioPlayer) playBuffer(id int) {
	if !w.ready {
		return
	}
	buffer, ok := w.buffers[id]
	if !ok || buffer == nil {
		return
	}
	w.Resume()
	source := w.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Call("connect", w.masterGain)
	source.Call("start", 0)
}

// Collect plays the pickup chirp.
func (w *WebAudioPlayer) Collect() {
	w.playBuffer(SfxCollect)
}

// Crash plays the impact burst.
func (w *WebAudioPlayer) Crash() {
	w.playBuffer(SfxCrash)
}

// GameOver plays the failure chord, a dissonant cluster where every voice
// sags downward in pitch as it fades.
func (w *WebAudioPlayer) GameOver() {
	if !w.ready {
		return
	}
	w.Resume()
	t := w.Now()
	length := AudioConfig.GameOverLength
	for i := 0; i < AudioConfig.GameOverVoices; i++ {
		freq := DissonantNotes[i%len(DissonantNotes)]
		osc, gain := w.voice("sawtooth")
		osc.Get("frequency").Call("setValueAtTime", freq, t)
		osc.Get("frequency").Call("linearRampToValueAtTime", freq-AudioConfig.GameOverDropHz*(1+float64(i)*0.2), t+length)
		gain.Get("gain").Call("setValueAtTime", AudioConfig.GameOverVolume, t)
		gain.Get("gain").Call("linearRampToValueAtTime", 0.0001, t+length)
		osc.Call("start", t)
		osc.Call("stop", t+length)
	}
}
