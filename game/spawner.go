package game

// ObstacleChance is the probability that a hoop slot also gets an obstacle.
// It rises linearly with score and is capped.
func ObstacleChance(score int) float64 {
	c := ObstacleChanceBase + ObstacleChancePerScore*float64(score)
	if c > ObstacleChanceMax {
		c = ObstacleChanceMax
	}
	return c
}

// SpawnAhead emits new track objects until the corridor is populated up to
// the spawn horizon. Travel is toward decreasing Z, so the horizon is
// SpawnDistance in front of the player and each slot sits HoopSpawnInterval
// beyond the previous one.
func (g *Game) SpawnAhead() {
	horizon := g.Player.Z - SpawnDistance
	for g.State.LastSpawnZ-horizon >= HoopSpawnInterval {
		z := g.State.LastSpawnZ - HoopSpawnInterval
		g.spawnSlot(z)
		g.State.LastSpawnZ = z
	}
}

// spawnSlot places exactly one hoop at the slot, plus at most one obstacle
// contesting it.
func (g *Game) spawnSlot(z float64) {
	hoop := &TrackObject{
		Kind:   KindHoop,
		Active: true,
		X:      g.Rng.RandomFloat(HoopMinX, HoopMaxX),
		Y:      g.Rng.RandomFloat(HoopMinY, HoopMaxY),
		Z:      z,
	}
	g.addObject(hoop)

	if g.Rng.Random() < ObstacleChance(g.State.Score) {
		g.spawnObstacle(hoop)
	}
}

// spawnObstacle picks a wall, fan or log (roughly a third each) and offsets
// it from the hoop so it partially contests the hoop's airspace.
func (g *Game) spawnObstacle(hoop *TrackObject) {
	o := &TrackObject{
		Active: true,
		Z:      hoop.Z + g.Rng.RandomFloat(-10, 10),
	}

	switch r := g.Rng.Random(); {
	case r < 0.33:
		o.Kind = KindWall
		o.Moving = true
		o.Speed = g.Rng.RandomFloat(WallSpeedMin, WallSpeedMax) * g.Rng.RandomSign()
		o.X = hoop.X + g.Rng.RandomFloat(-WallHalfWidth, WallHalfWidth)
		o.Y = hoop.Y
	case r < 0.66:
		o.Kind = KindFan
		o.Force = g.Rng.RandomFloat(FanForceMin, FanForceMax)
		o.X = hoop.X + g.Rng.RandomFloat(-20, 20)
		o.Y = hoop.Y + g.Rng.RandomFloat(-10, 10)
	default:
		o.Kind = KindLog
		o.Swinging = true
		o.Angle = g.Rng.RandomFloat(0, 6.28)
		o.X = hoop.X
		o.Y = hoop.Y + g.Rng.RandomFloat(-5, 5)
	}

	if o.Y < PlayerMinY {
		o.Y = PlayerMinY
	}

	g.addObject(o)
}
