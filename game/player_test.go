package game

import (
	"math"
	"testing"
)

const testDt = 1.0 / 60.0

// TestMove_LateralSteering tests a single frame of left steering at 60fps.
func TestMove_LateralSteering(t *testing.T) {
	g := NewGame(42)

	g.Player.Move(g, Input{Left: true}, testDt)

	want := -PlayerTurnSpeed * testDt
	if math.Abs(g.Player.X-want) > 1e-9 {
		t.Errorf("Expected X=%v after one left frame, got %v", want, g.Player.X)
	}
}

// TestMove_VerticalHalfRate tests that climb and dive run at half the
// lateral rate.
func TestMove_VerticalHalfRate(t *testing.T) {
	g := NewGame(42)
	y := g.Player.Y

	g.Player.Move(g, Input{Up: true}, testDt)

	want := y + PlayerTurnSpeed*testDt*0.5
	if math.Abs(g.Player.Y-want) > 1e-9 {
		t.Errorf("Expected Y=%v, got %v", want, g.Player.Y)
	}
}

// TestMove_ClampsToFlightBox tests the hard position clamp on every axis.
func TestMove_ClampsToFlightBox(t *testing.T) {
	g := NewGame(42)

	g.Player.X = PlayerMinX
	for i := 0; i < 120; i++ {
		g.Player.Move(g, Input{Left: true}, testDt)
	}
	if g.Player.X < PlayerMinX {
		t.Errorf("X escaped the box: %v < %v", g.Player.X, PlayerMinX)
	}

	g.Player.Y = PlayerMaxY
	for i := 0; i < 120; i++ {
		g.Player.Move(g, Input{Up: true}, testDt)
	}
	if g.Player.Y > PlayerMaxY {
		t.Errorf("Y escaped the box: %v > %v", g.Player.Y, PlayerMaxY)
	}
}

// TestMove_ForwardTravel tests forward motion and the distance counter.
func TestMove_ForwardTravel(t *testing.T) {
	g := NewGame(42)

	g.Player.Move(g, Input{}, testDt)

	wantZ := -PlayerSpeedBase * testDt
	if math.Abs(g.Player.Z-wantZ) > 1e-9 {
		t.Errorf("Expected Z=%v, got %v", wantZ, g.Player.Z)
	}
	if math.Abs(g.State.Distance-PlayerSpeedBase*testDt) > 1e-9 {
		t.Errorf("Distance should mirror travel, got %v", g.State.Distance)
	}
}

// TestMove_BoostAddsFlatSpeed tests that accelerate is a flat bonus, not
// integrated across frames.
func TestMove_BoostAddsFlatSpeed(t *testing.T) {
	g := NewGame(42)

	g.Player.Move(g, Input{Boost: true}, 1.0)
	z1 := g.Player.Z
	g.Player.Move(g, Input{Boost: true}, 1.0)

	d1 := -z1
	d2 := z1 - g.Player.Z
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Boost must not accumulate: first frame %v, second %v", d1, d2)
	}
	if math.Abs(d1-(PlayerSpeedBase+PlayerAccel)) > 1e-9 {
		t.Errorf("Expected boosted travel %v, got %v", PlayerSpeedBase+PlayerAccel, d1)
	}
}

// TestMove_BankApproachesTargetWithoutOvershoot tests the exponential bank
// damping.
func TestMove_BankApproachesTargetWithoutOvershoot(t *testing.T) {
	g := NewGame(42)

	for i := 0; i < 300; i++ {
		g.Player.Move(g, Input{Left: true}, testDt)
		if g.Player.Bank > BankAngle+1e-9 {
			t.Fatalf("Bank overshot target: %v > %v", g.Player.Bank, BankAngle)
		}
	}
	if g.Player.Bank < BankAngle*0.95 {
		t.Errorf("Bank should settle near %v, got %v", BankAngle, g.Player.Bank)
	}

	// Release: bank decays back toward level.
	for i := 0; i < 300; i++ {
		g.Player.Move(g, Input{}, testDt)
	}
	if math.Abs(g.Player.Bank) > 0.05 {
		t.Errorf("Bank should decay toward 0, got %v", g.Player.Bank)
	}
}

// TestMove_TouchControlsReduceTurnRate tests the touch layout's gentler
// steering.
func TestMove_TouchControlsReduceTurnRate(t *testing.T) {
	g := NewGame(42)
	g.TouchControls = true

	g.Player.Move(g, Input{Right: true}, testDt)

	want := PlayerTurnSpeed * TouchTurnFactor * testDt
	if math.Abs(g.Player.X-want) > 1e-9 {
		t.Errorf("Expected X=%v with touch controls, got %v", want, g.Player.X)
	}
}

// TestCamera_TrailsPlayer tests the trailing camera offsets.
func TestCamera_TrailsPlayer(t *testing.T) {
	p := &Player{X: 40, Y: 20, Z: -100}

	cam := p.Camera()

	if cam.X != 20 {
		t.Errorf("Camera should pan at half the player's X, got %v", cam.X)
	}
	if cam.Y != 28 {
		t.Errorf("Expected camera Y 28, got %v", cam.Y)
	}
	if cam.Z != -75 {
		t.Errorf("Camera should trail 25 units behind, got %v", cam.Z)
	}
	if cam.LookZ != -120 {
		t.Errorf("Camera should look 20 units ahead, got %v", cam.LookZ)
	}
}
