package game

import "math"

// CheckCollisions runs the two collision phases for the frame. The miss pass
// always runs first and over the whole active set; the proximity pass only
// looks at objects within ProximityWindow of the player. Ties within one
// frame resolve in object iteration order.
func (g *Game) CheckCollisions() {
	g.checkMisses()
	if g.State.GameOver {
		return
	}
	g.checkProximity()
}

// checkMisses marks any unresolved hoop the player has drifted past as
// missed. Independent of proximity: a hoop missed by a wide margin still
// counts the moment it falls behind the tolerance.
func (g *Game) checkMisses() {
	for _, o := range g.Objects {
		if o.Kind != KindHoop || !o.Active || o.Passed || o.Missed {
			continue
		}
		if o.Z > g.Player.Z+MissTolerance {
			o.Missed = true
			o.Active = false
			if g.Renderer != nil {
				g.Renderer.RecolorObject(o)
			}
			g.onMiss()
			if g.State.GameOver {
				return
			}
		}
	}
}

// checkProximity handles hoop passage, obstacle hits and fan push for objects
// near the player's plane.
func (g *Game) checkProximity() {
	p := g.Player
	for _, o := range g.Objects {
		if !o.Active {
			continue
		}
		dz := o.Z - p.Z
		if dz > ProximityWindow || dz < -ProximityWindow {
			continue
		}
		dx := p.X - o.X
		dy := p.Y - o.Y

		switch o.Kind {
		case KindHoop:
			// Inside the radius is not enough: the player must also be near
			// the hoop's plane for the pass to count.
			if dx*dx+dy*dy < HoopRadius*HoopRadius && math.Abs(dz) < HoopPlaneTolerance {
				o.Passed = true
				o.Active = false
				if g.Renderer != nil {
					g.Renderer.RecolorObject(o)
				}
				g.onScore()
			}
		case KindWall:
			if math.Abs(dx) < WallHalfWidth && math.Abs(dy) < WallHalfHeight {
				g.triggerGameOver()
				return
			}
		case KindLog:
			if math.Abs(dx) < LogHalfWidth && math.Abs(dy) < LogHalfHeight {
				g.triggerGameOver()
				return
			}
		case KindFan:
			distSq := dx*dx + dy*dy
			if distSq < FanRange*FanRange {
				dist := math.Sqrt(distSq)
				// Proximity-weighted push away from the fan's axis, full at
				// the center, zero at the edge of the range.
				push := o.Force * (1 - dist/FanRange)
				if dx < 0 {
					push = -push
				}
				p.X += push
				p.clamp()
			}
		}
	}
}
