package adb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCode(t *testing.T) {
	var testCases = []struct {
		name string
		code int
	}{
		{name: "KEYCODE_HOME", code: 3},
		{name: "KEYCODE_BACK", code: 4},
		{name: "KEYCODE_DPAD_UP", code: 19},
		{name: "KEYCODE_DPAD_DOWN", code: 20},
		{name: "KEYCODE_DPAD_LEFT", code: 21},
		{name: "KEYCODE_DPAD_RIGHT", code: 22},
		{name: "KEYCODE_DPAD_CENTER", code: 23},
		{name: "KEYCODE_DPAD_UP_LEFT", code: 268},
		{name: "KEYCODE_DPAD_DOWN_LEFT", code: 269},
		{name: "KEYCODE_DPAD_UP_RIGHT", code: 270},
		{name: "KEYCODE_DPAD_DOWN_RIGHT", code: 271},
	}
	for _, testCase := range testCases {
		code, ok := KeyCode(testCase.name)
		assert.True(t, ok, testCase.name)
		assert.Equal(t, testCase.code, code, testCase.name)
		name, ok := KeyName(code)
		assert.True(t, ok, testCase.name)
		assert.Equal(t, testCase.name, name)
	}
	assert.Len(t, KeyNames(), len(testCases))
}

func TestKeyNames_RoundTrip(t *testing.T) {
	names := KeyNames()
	for i, name := range names {
		code, ok := KeyCode(name)
		assert.True(t, ok)
		back, ok := KeyName(code)
		assert.True(t, ok)
		assert.Equal(t, name, back)
		if i > 0 {
			prev, _ := KeyCode(names[i-1])
			assert.Less(t, prev, code, "names should be ordered by code")
		}
	}
}

func TestKeyCode_Unknown(t *testing.T) {
	_, ok := KeyCode("KEYCODE_POWER")
	assert.False(t, ok)
	_, ok = KeyCode("keycode_home")
	assert.False(t, ok)
	_, ok = KeyName(26)
	assert.False(t, ok)
}
