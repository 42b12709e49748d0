//go:build js
// +build js

package game

import "github.com/gopherjs/gopherjs/js"

// FrameDtMax caps a single frame's delta so a long stall (devtools, GC) does
// not teleport the player through the corridor.
const FrameDtMax = 0.1

// AttachScheduler wires the frame driver's cancellation hooks. Pausing halts
// the self-rescheduling tick by cancelling the armed frame; resuming re-arms
// it on the next frame boundary with a fresh timestamp.
func (g *Game) AttachScheduler() {
	g.Halt = func() {
		if g.AnimationFrameID != 0 {
			js.Global.Call("cancelAnimationFrame", g.AnimationFrameID)
			g.AnimationFrameID = 0
		}
	}
	g.Resume = func() {
		if g.AnimationFrameID == 0 {
			g.LastFrameTime = 0
			g.armFrame()
		}
	}
}

func (g *Game) armFrame() {
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", g.frame).Int()
}

// frame is the requestAnimationFrame callback: re-arm, compute the delta,
// advance one tick.
func (g *Game) frame(now float64) {
	g.armFrame()

	if g.LastFrameTime == 0 {
		g.LastFrameTime = now
		return
	}
	dt := (now - g.LastFrameTime) / 1000
	g.LastFrameTime = now

	if dt > FrameDtMax {
		dt = FrameDtMax
	}

	Debug("frame dt:", dt, "objects:", len(g.Objects), "score:", g.State.Score)
	g.Tick(dt)
}
