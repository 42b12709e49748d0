//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/mkalens/skyhoops/audio"
	"github.com/mkalens/skyhoops/common"
	"github.com/mkalens/skyhoops/game"
)

// touchWidthCutoff is the viewport width below which the touch control
// layout is selected at startup.
const touchWidthCutoff = 900

func main() {
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	seed := uint32(js.Global.Get("Date").Call("now").Int64())
	g := game.NewGame(seed)
	g.TouchControls = js.Global.Get("window").Get("innerWidth").Float() < touchWidthCutoff

	renderer := game.NewCanvasRenderer(canvas)
	g.Renderer = renderer
	g.UI = game.NewDOMUI()

	player := audio.NewWebAudioPlayer()
	g.Audio = audio.NewEngine(player, common.NewSeededRNG(seed^0xA5A5A5A5), player.Now, audio.After)

	// Audio contexts start suspended until a user gesture, so the context is
	// created and resumed on the first interaction.
	unlock := func(event *js.Object) {
		player.Init()
		player.Resume()
	}
	doc.Call("addEventListener", "click", unlock)
	doc.Call("addEventListener", "keydown", unlock)
	doc.Call("addEventListener", "touchstart", unlock)

	g.SetupInputHandlers()
	g.BindPadButton("pad-left", game.KeyLeft)
	g.BindPadButton("pad-right", game.KeyRight)
	g.BindPadButton("pad-up", game.KeyUp)
	g.BindPadButton("pad-down", game.KeyDown)
	g.BindPadButton("pad-boost", game.KeyBoost)

	js.Global.Get("window").Call("addEventListener", "resize", func(event *js.Object) {
		renderer.Resize()
	})

	if g.UI != nil {
		g.UI.ShowPanel(game.PanelStart)
	}

	// The frame driver keeps itself armed; pause and resume go through the
	// hooks it installs on the game.
	g.AttachScheduler()
	g.Resume()

	select {}
}
