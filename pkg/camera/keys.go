package camera

import (
	"fmt"
	"strings"
)

// Key identifies a physical key independent of the windowing backend
type Key int

const (
	KeyUnknown Key = iota

	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	keyCount
)

var namedKeys = map[Key]string{
	KeyUnknown: "UNKNOWN",
	KeyEscape:  "ESCAPE",
	KeySpace:   "SPACE",
	KeyEnter:   "ENTER",
	KeyTab:     "TAB",
	KeyLeft:    "LEFT",
	KeyRight:   "RIGHT",
	KeyUp:      "UP",
	KeyDown:    "DOWN",
}

// String returns the canonical upper-case name used in configuration files
func (k Key) String() string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	}
	if name, ok := namedKeys[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey resolves a key name such as "W", "1" or "escape"
func ParseKey(name string) (Key, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= '0' && c <= '9':
			return Key0 + Key(c-'0'), nil
		case c >= 'A' && c <= 'Z':
			return KeyA + Key(c-'A'), nil
		}
	}
	for k, n := range namedKeys {
		if k != KeyUnknown && n == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}
