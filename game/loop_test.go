package game

import (
	"testing"
)

// TestTick_RunningFrameAdvancesWorld tests one whole frame: travel, corridor
// population and state.
func TestTick_RunningFrameAdvancesWorld(t *testing.T) {
	g, _, _ := newTestGame()

	g.Tick(1.0 / 60.0)

	if g.Player.Z >= 0 {
		t.Error("Frame should move the player forward")
	}
	if len(g.Objects) == 0 {
		t.Error("Frame should populate the corridor ahead")
	}
}

// TestTick_IdleFrameStillRendersExplosions tests that a finished run keeps
// animating its death burst but never simulates.
func TestTick_IdleFrameStillRendersExplosions(t *testing.T) {
	g, _, _ := newTestGame()
	g.triggerGameOver()
	z := g.Player.Z

	g.Tick(0.1)

	if g.Player.Z != z {
		t.Error("Player must not move after game over")
	}
	if len(g.Explosions) != 1 {
		t.Errorf("Death burst should still be alive, got %d explosions", len(g.Explosions))
	}

	// Let the burst expire.
	for i := 0; i < 20; i++ {
		g.Tick(0.1)
	}
	if len(g.Explosions) != 0 {
		t.Errorf("Expired burst should be removed, got %d explosions", len(g.Explosions))
	}
}

// TestStep_CollisionHappensAfterSpawnAndUpdate tests that a frame resolves a
// hoop the player reaches this tick even though spawning ran first.
func TestStep_CollisionHappensAfterSpawnAndUpdate(t *testing.T) {
	g, _, _ := newTestGame()
	hoop := addHoop(g, 0, 0, -PlayerSpeedBase*0.01)

	g.Step(0.01)

	if !hoop.Passed {
		t.Error("Hoop on this frame's path should resolve within the frame")
	}
}

// TestTick_LongRunSurvives runs a few simulated seconds end to end as a
// smoke test: no panics, counters sane, object set bounded.
func TestTick_LongRunSurvives(t *testing.T) {
	g, _, _ := newTestGame()

	for i := 0; i < 600; i++ {
		g.Keys[KeyLeft] = i%3 == 0
		g.Keys[KeyUp] = i%5 == 0
		g.Tick(1.0 / 60.0)
		if g.State.GameOver {
			break
		}
	}

	if len(g.Objects) > 64 {
		t.Errorf("Object set should stay bounded, got %d", len(g.Objects))
	}
	if g.State.Misses > MaxMisses {
		t.Errorf("Misses exceeded the limit: %d", g.State.Misses)
	}
}
