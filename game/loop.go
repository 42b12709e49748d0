package game

// Tick advances one frame by dt seconds. Explosions keep animating through
// game over so the death burst plays out, but the simulation itself only
// runs while the game is running and unpaused.
func (g *Game) Tick(dt float64) {
	if g.State.Paused {
		return
	}

	g.Input = InputFromKeys(g.Keys)

	if g.State.Running {
		g.Step(dt)
	}

	g.UpdateExplosions(dt)

	if g.Renderer != nil {
		g.Renderer.Render(g)
	}
}

// Step runs one simulation frame in the fixed order the design guarantees:
// player movement, spawning, behavior update, cleanup, then collision. Newly
// spawned objects are therefore never collided against in the tick that
// created them, and destroyed objects never receive a late behavior update.
func (g *Game) Step(dt float64) {
	g.Player.Move(g, g.Input, dt)
	g.SpawnAhead()
	g.UpdateObjects(dt)
	g.PruneObjects()
	g.CheckCollisions()
}
