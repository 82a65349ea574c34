package adb

import "sort"

// keyCodes maps the supported symbolic Android key names to their key-event codes.
var keyCodes = map[string]int{
	"KEYCODE_HOME":            3,
	"KEYCODE_BACK":            4,
	"KEYCODE_DPAD_UP":         19,
	"KEYCODE_DPAD_DOWN":       20,
	"KEYCODE_DPAD_LEFT":       21,
	"KEYCODE_DPAD_RIGHT":      22,
	"KEYCODE_DPAD_CENTER":     23,
	"KEYCODE_DPAD_UP_LEFT":    268,
	"KEYCODE_DPAD_DOWN_LEFT":  269,
	"KEYCODE_DPAD_UP_RIGHT":   270,
	"KEYCODE_DPAD_DOWN_RIGHT": 271,
}

// KeyCode returns the key-event code for a symbolic key name.
func KeyCode(name string) (int, bool) {
	code, ok := keyCodes[name]
	return code, ok
}

// KeyName returns the symbolic name for a key-event code.
func KeyName(code int) (string, bool) {
	for name, candidate := range keyCodes {
		if candidate == code {
			return name, true
		}
	}
	return "", false
}

// KeyNames returns all supported key names ordered by key-event code.
func KeyNames() []string {
	names := make([]string, 0, len(keyCodes))
	for name := range keyCodes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return keyCodes[names[i]] < keyCodes[names[j]]
	})
	return names
}
