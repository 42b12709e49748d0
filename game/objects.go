package game

import "math"

// ObjectKind tags the track object variants.
type ObjectKind int

const (
	KindHoop ObjectKind = iota
	KindWall
	KindFan
	KindLog
)

func (k ObjectKind) String() string {
	switch k {
	case KindHoop:
		return "Hoop"
	case KindWall:
		return "Wall"
	case KindFan:
		return "Fan"
	case KindLog:
		return "Log"
	default:
		return "Unknown"
	}
}

// TrackObject is a hoop or obstacle in the corridor. Shared fields are
// factored out; the per-kind fields below are only meaningful for their
// variant and behavior dispatches on Kind.
type TrackObject struct {
	Kind    ObjectKind
	X, Y, Z float64
	// Active marks the object as eligible for collision checks. Resolved
	// hoops stay in the set briefly for the visual feedback but are inert.
	Active bool

	// Hoop.
	Passed bool
	Missed bool

	// Wall: lateral patrol at a signed speed.
	Moving bool
	Speed  float64

	// Fan: push strength and cosmetic blade rotation.
	Force    float64
	Rotation float64

	// Log: vertical sway driven by an accumulating phase.
	Swinging bool
	Angle    float64
}

// Update advances the object's behavior by dt seconds. Player position is
// needed because the wall patrol is player-relative.
func (o *TrackObject) Update(playerX float64, dt float64) {
	switch o.Kind {
	case KindWall:
		if !o.Moving {
			return
		}
		o.X += o.Speed * dt
		// Soft bounce: reverse once the wall drifts too far from where the
		// player currently is.
		if math.Abs(o.X-playerX) > WallBounceRange {
			o.Speed = -o.Speed
		}
	case KindLog:
		if !o.Swinging {
			return
		}
		// The phase accumulates and the sway is added every tick without a
		// balancing term, so the log's mean height drifts slowly. Observed
		// behavior, kept as is.
		o.Angle += 2 * dt
		o.Y += math.Sin(o.Angle) * 0.1
	case KindFan:
		// Blade spin is purely visual; the push force is independent of it.
		o.Rotation += 10 * dt
	}
}

// UpdateObjects runs per-object behavior for every active track object.
func (g *Game) UpdateObjects(dt float64) {
	for _, o := range g.Objects {
		o.Update(g.Player.X, dt)
	}
}

// PruneObjects destroys objects that have scrolled out of relevance, bounding
// memory and collision cost to a rolling window around the player. Resolved
// hoops go as soon as they are fully past the player.
func (g *Game) PruneObjects() {
	for i := len(g.Objects) - 1; i >= 0; i-- {
		o := g.Objects[i]
		behind := o.Z - g.Player.Z
		resolved := o.Kind == KindHoop && (o.Passed || o.Missed)
		if behind > RemoveDistance || (resolved && behind > HoopRadius) {
			g.removeObject(i)
		}
	}
}

// addObject appends the object to the active set and hands it to the renderer.
func (g *Game) addObject(o *TrackObject) {
	g.Objects = append(g.Objects, o)
	if g.Renderer != nil {
		g.Renderer.AddObject(o)
	}
}

// removeObject removes by index using swap-and-pop.
func (g *Game) removeObject(index int) {
	o := g.Objects[index]
	last := len(g.Objects) - 1
	if index != last {
		g.Objects[index] = g.Objects[last]
	}
	g.Objects = g.Objects[:last]
	if g.Renderer != nil {
		g.Renderer.RemoveObject(o)
	}
}
