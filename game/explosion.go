package game

// Particle is one fragment of an explosion with its own random velocity.
type Particle struct {
	X, Y, Z    float64
	VX, VY, VZ float64
}

// Explosion is a short-lived burst of particles sharing one countdown timer;
// the whole set is destroyed as a unit when the timer expires.
type Explosion struct {
	Timer     float64
	MaxTimer  float64
	Particles []Particle
}

// Alpha reports the remaining life fraction, for fade-out rendering.
func (e *Explosion) Alpha() float64 {
	if e.MaxTimer <= 0 {
		return 0
	}
	return e.Timer / e.MaxTimer
}

// Explode spawns an explosion effect at the given position.
func (g *Game) Explode(x, y, z float64) *Explosion {
	e := &Explosion{
		Timer:     ExplosionLifetime,
		MaxTimer:  ExplosionLifetime,
		Particles: make([]Particle, ExplosionParticles),
	}
	for i := range e.Particles {
		e.Particles[i] = Particle{
			X:  x,
			Y:  y,
			Z:  z,
			VX: g.Rng.RandomFloat(ExplosionSpeedMin, ExplosionSpeedMax) * g.Rng.RandomSign(),
			VY: g.Rng.RandomFloat(ExplosionSpeedMin, ExplosionSpeedMax) * g.Rng.RandomSign(),
			VZ: g.Rng.RandomFloat(ExplosionSpeedMin, ExplosionSpeedMax) * g.Rng.RandomSign(),
		}
	}
	g.Explosions = append(g.Explosions, e)
	if g.Renderer != nil {
		g.Renderer.AddExplosion(e)
	}
	return e
}

// UpdateExplosions advances every active explosion and removes the ones whose
// timer has run out.
func (g *Game) UpdateExplosions(dt float64) {
	for i := len(g.Explosions) - 1; i >= 0; i-- {
		e := g.Explosions[i]
		e.Timer -= dt
		if e.Timer <= 0 {
			g.removeExplosion(i)
			continue
		}
		for j := range e.Particles {
			pt := &e.Particles[j]
			pt.X += pt.VX * dt
			pt.Y += pt.VY * dt
			pt.Z += pt.VZ * dt
		}
	}
}

// removeExplosion removes by index using swap-and-pop.
func (g *Game) removeExplosion(index int) {
	e := g.Explosions[index]
	last := len(g.Explosions) - 1
	if index != last {
		g.Explosions[index] = g.Explosions[last]
	}
	g.Explosions = g.Explosions[:last]
	if g.Renderer != nil {
		g.Renderer.RemoveExplosion(e)
	}
}
