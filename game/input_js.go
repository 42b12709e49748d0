//go:build js
// +build js

package game

import (
	"math"

	"github.com/gopherjs/gopherjs/js"
)

// SwipeThreshold is the minimum travel in CSS pixels before a touch drag
// counts as a directional swipe.
const SwipeThreshold = 24.0

// SetupInputHandlers wires keyboard, touch and visibility events into the
// game. The key handlers maintain the pressed-key set that Tick snapshots;
// pause and start are edge-triggered here.
func (g *Game) SetupInputHandlers() {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		keyCode := TranslateKeyCode(event.Get("keyCode").Int())
		g.Keys[keyCode] = true

		if keyCode == KeyPause {
			g.TogglePause()
			event.Call("preventDefault")
			return
		}

		if keyCode >= KeyLeft && keyCode <= KeyDown || keyCode == KeyBoost {
			event.Call("preventDefault")
		}

		// Any control key starts or restarts from the idle/game-over screens.
		if !g.State.Running {
			g.Start()
		}
	})

	doc.Call("addEventListener", "keyup", func(event *js.Object) {
		keyCode := TranslateKeyCode(event.Get("keyCode").Int())
		g.Keys[keyCode] = false
	})

	doc.Call("addEventListener", "click", func(event *js.Object) {
		if !g.State.Running {
			g.Start()
		}
	})

	g.setupTouchHandlers(doc)
	g.setupVisibilityHandler(doc)
}

// setupTouchHandlers wires the swipe gestures and the two-finger pause
// toggle. The on-screen pad buttons are wired separately by BindPadButton.
func (g *Game) setupTouchHandlers(doc *js.Object) {
	var startX, startY float64
	var swiping bool

	doc.Call("addEventListener", "touchstart", func(event *js.Object) {
		touches := event.Get("touches")
		if touches.Get("length").Int() >= 2 {
			// Two-finger tap toggles pause, same as the P key.
			g.TogglePause()
			swiping = false
			return
		}
		t := touches.Index(0)
		startX = t.Get("clientX").Float()
		startY = t.Get("clientY").Float()
		swiping = true

		if !g.State.Running && !g.State.Paused {
			g.Start()
		}
	})

	doc.Call("addEventListener", "touchmove", func(event *js.Object) {
		if !swiping {
			return
		}
		t := event.Get("touches").Index(0)
		dx := t.Get("clientX").Float() - startX
		dy := t.Get("clientY").Float() - startY

		g.Keys[KeyLeft] = dx < -SwipeThreshold
		g.Keys[KeyRight] = dx > SwipeThreshold
		g.Keys[KeyUp] = dy < -SwipeThreshold
		g.Keys[KeyDown] = dy > SwipeThreshold
		// A long vertical drag downward doubles as the accelerate intent on
		// touch layouts.
		g.Keys[KeyBoost] = dy > SwipeThreshold*3 && math.Abs(dx) < SwipeThreshold

		event.Call("preventDefault")
	})

	doc.Call("addEventListener", "touchend", func(event *js.Object) {
		if event.Get("touches").Get("length").Int() > 0 {
			return
		}
		swiping = false
		g.Keys[KeyLeft] = false
		g.Keys[KeyRight] = false
		g.Keys[KeyUp] = false
		g.Keys[KeyDown] = false
		g.Keys[KeyBoost] = false
	})
}

// setupVisibilityHandler auto-pauses when the page loses foreground
// visibility and auto-resumes when it returns, without ever undoing a manual
// pause.
func (g *Game) setupVisibilityHandler(doc *js.Object) {
	doc.Call("addEventListener", "visibilitychange", func(event *js.Object) {
		hidden := doc.Get("hidden").Bool()
		g.HandleVisibility(!hidden)
	})
}

// BindPadButton wires one on-screen directional button (by element id) to a
// canonical key code, pressing on touchstart/mousedown and releasing on
// touchend/mouseup.
func (g *Game) BindPadButton(elementID string, keyCode int) {
	el := js.Global.Get("document").Call("getElementById", elementID)
	if el == nil || el == js.Undefined {
		return
	}
	press := func(event *js.Object) {
		g.Keys[keyCode] = true
		event.Call("preventDefault")
	}
	release := func(event *js.Object) {
		g.Keys[keyCode] = false
		event.Call("preventDefault")
	}
	el.Call("addEventListener", "touchstart", press)
	el.Call("addEventListener", "touchend", release)
	el.Call("addEventListener", "mousedown", press)
	el.Call("addEventListener", "mouseup", release)
}
