package game

import (
	"testing"
)

// TestTranslateKeyCode_Alternates tests the alternative key mappings.
func TestTranslateKeyCode_Alternates(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"A maps to left", 65, KeyLeft},
		{"D maps to right", 68, KeyRight},
		{"W maps to up", 87, KeyUp},
		{"S maps to down", 83, KeyDown},
		{"J maps to left", 74, KeyLeft},
		{"L maps to right", 76, KeyRight},
		{"I maps to up", 73, KeyUp},
		{"K maps to down", 75, KeyDown},
		{"Shift maps to boost", 16, KeyBoost},
		{"Space maps to boost", 32, KeyBoost},
		{"Esc maps to pause", 27, KeyPause},
	}
	for _, c := range cases {
		if got := TranslateKeyCode(c.in); got != c.want {
			t.Errorf("%s: TranslateKeyCode(%d) = %d, want %d", c.name, c.in, got, c.want)
		}
	}
}

// TestTranslateKeyCode_PassThrough tests that canonical and unmapped codes
// come back unchanged.
func TestTranslateKeyCode_PassThrough(t *testing.T) {
	for _, code := range []int{KeyLeft, KeyUp, KeyRight, KeyDown, KeyBoost, KeyPause, 90, 13} {
		if got := TranslateKeyCode(code); got != code {
			t.Errorf("TranslateKeyCode(%d) = %d, expected pass-through", code, got)
		}
	}
}

// TestInputFromKeys_Snapshot tests the intent snapshot.
func TestInputFromKeys_Snapshot(t *testing.T) {
	keys := map[int]bool{
		KeyLeft:  true,
		KeyBoost: true,
		KeyDown:  false,
	}

	in := InputFromKeys(keys)

	if !in.Left || !in.Boost {
		t.Errorf("Expected left and boost pressed, got %+v", in)
	}
	if in.Right || in.Up || in.Down {
		t.Errorf("Unpressed intents leaked through: %+v", in)
	}
}

// TestInputFromKeys_EmptyMap tests the all-released snapshot.
func TestInputFromKeys_EmptyMap(t *testing.T) {
	in := InputFromKeys(map[int]bool{})
	if in != (Input{}) {
		t.Errorf("Expected zero input, got %+v", in)
	}
}
