package game

import "math"

// Player holds the eagle's simulated state. Only the bank angle is simulated
// rotation; pitch and wing flap are visual.
type Player struct {
	X, Y, Z float64
	Bank    float64
	// Speed is the forward speed actually flown this frame, base plus any
	// accelerate boost.
	Speed float64
}

// reset restores the player to the start of the corridor.
func (p *Player) reset() {
	p.X = 0
	p.Y = (PlayerMinY + PlayerMaxY) / 2
	p.Z = 0
	p.Bank = 0
	p.Speed = PlayerSpeedBase
}

// Move applies one frame of input to the player: steering, the hard clamp
// into the legal box, bank damping and forward travel.
func (p *Player) Move(g *Game, in Input, dt float64) {
	turn := PlayerTurnSpeed
	if g.TouchControls {
		turn *= TouchTurnFactor
	}

	if in.Up {
		p.Y += turn * dt * 0.5
	}
	if in.Down {
		p.Y -= turn * dt * 0.5
	}
	if in.Left {
		p.X -= turn * dt
	}
	if in.Right {
		p.X += turn * dt
	}

	// Hard clamp, every frame, regardless of intent.
	p.clamp()

	// Bank toward +-BankAngle while steering, damped exponentially so there
	// is no overshoot.
	target := 0.0
	if in.Left {
		target = BankAngle
	} else if in.Right {
		target = -BankAngle
	}
	p.Bank += (target - p.Bank) * BankGain * dt

	// Accelerate is a flat boost on top of the base speed, not integrated.
	p.Speed = g.State.Speed
	if in.Boost {
		p.Speed += PlayerAccel
	}

	// Travel is toward decreasing Z.
	p.Z -= p.Speed * dt
	g.State.Distance += p.Speed * dt
}

// clamp forces the player back into the legal flight box.
func (p *Player) clamp() {
	if p.X < PlayerMinX {
		p.X = PlayerMinX
	}
	if p.X > PlayerMaxX {
		p.X = PlayerMaxX
	}
	if p.Y < PlayerMinY {
		p.Y = PlayerMinY
	}
	if p.Y > PlayerMaxY {
		p.Y = PlayerMaxY
	}
}

// WingFlap returns the wing flap phase for wall-clock time t in seconds. It
// has no gameplay effect; the renderer uses it to animate the wings.
func WingFlap(t float64) float64 {
	return math.Sin(t*10) * 0.6
}

// CameraPose is the trailing camera derived from the player each frame: a
// fixed vertical and longitudinal offset, a damped lateral pan at half the
// player's lateral position, looking 20 units ahead.
type CameraPose struct {
	X, Y, Z      float64
	LookX, LookY float64
	LookZ        float64
}

// Camera computes the current trailing camera pose.
func (p *Player) Camera() CameraPose {
	return CameraPose{
		X:     p.X * 0.5,
		Y:     p.Y + 8,
		Z:     p.Z + 25,
		LookX: p.X,
		LookY: p.Y,
		LookZ: p.Z - 20,
	}
}
