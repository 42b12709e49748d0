package audio

import (
	"testing"

	"github.com/mkalens/skyhoops/common"
)

// recordingCues wraps recordingOutput with the one-shot cue counters.
type recordingCues struct {
	recordingOutput
	collects, crashes, gameOvers int
}

func (c *recordingCues) Collect()  { c.collects++ }
func (c *recordingCues) Crash()    { c.crashes++ }
func (c *recordingCues) GameOver() { c.gameOvers++ }

// TestEngine_ForwardsCues tests the one-shot cue plumbing.
func TestEngine_ForwardsCues(t *testing.T) {
	cues := &recordingCues{}
	clock := &testClock{}
	e := NewEngine(cues, common.NewSeededRNG(1), clock.now, clock.after)

	e.PlayCollect()
	e.PlayCrash()
	e.PlayGameOver()
	e.PlayCollect()

	if cues.collects != 2 || cues.crashes != 1 || cues.gameOvers != 1 {
		t.Errorf("Cue counts wrong: collect=%d crash=%d gameover=%d",
			cues.collects, cues.crashes, cues.gameOvers)
	}
}

// TestEngine_TransportControlsSequencer tests Start/Stop/SetIntensity
// reaching the beat clock.
func TestEngine_TransportControlsSequencer(t *testing.T) {
	cues := &recordingCues{}
	clock := &testClock{}
	e := NewEngine(cues, common.NewSeededRNG(1), clock.now, clock.after)

	e.SetIntensity(0.4)
	if got := e.Sequencer().Intensity(); got != 0.4 {
		t.Errorf("Expected intensity 0.4, got %v", got)
	}

	e.Start()
	if !e.Sequencer().Playing() {
		t.Error("Start should run the beat clock")
	}
	if len(cues.kicks) == 0 {
		t.Error("Starting should schedule the first kick")
	}

	e.Stop()
	if e.Sequencer().Playing() {
		t.Error("Stop should halt the beat clock")
	}
}
