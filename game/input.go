package game

// Input is the per-tick snapshot of control intents. The source (keyboard,
// on-screen buttons, touch pad, swipes) is wiring in the browser glue; the
// core only ever sees this snapshot.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Boost bool
}

// Canonical control key codes. Alternative keys are translated onto these.
const (
	KeyLeft  = 37
	KeyUp    = 38
	KeyRight = 39
	KeyDown  = 40
	KeyBoost = 88 // X
	KeyPause = 80 // P
)

// KeyMap maps alternative keys to canonical control codes.
var KeyMap = map[int]int{
	27: KeyPause, // Esc
	16: KeyBoost, // Shift
	32: KeyBoost, // Space
	65: KeyLeft,  // A
	68: KeyRight, // D
	73: KeyUp,    // I
	74: KeyLeft,  // J
	75: KeyDown,  // K
	76: KeyRight, // L
	83: KeyDown,  // S
	87: KeyUp,    // W
}

// TranslateKeyCode converts alternative key codes to canonical control codes.
func TranslateKeyCode(keyCode int) int {
	if mapped, ok := KeyMap[keyCode]; ok {
		return mapped
	}
	return keyCode
}

// InputFromKeys builds the intent snapshot from the pressed-key set.
func InputFromKeys(keys map[int]bool) Input {
	return Input{
		Up:    keys[KeyUp],
		Down:  keys[KeyDown],
		Left:  keys[KeyLeft],
		Right: keys[KeyRight],
		Boost: keys[KeyBoost],
	}
}
