//go:build js
// +build js

package game

import "github.com/gopherjs/gopherjs/js"

var EnableDebug = false

// Debug logs to the browser console when debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("log", args...)
	}
}

// DebugWarn logs a warning to the browser console when debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("warn", args...)
	}
}
