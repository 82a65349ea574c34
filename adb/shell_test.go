package adb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellQuote(t *testing.T) {
	var testCases = []struct {
		input  string
		expect string
	}{
		{input: "adb", expect: `'adb'`},
		{input: "", expect: `''`},
		{input: "emulator-5554", expect: `'emulator-5554'`},
		{input: "x; rm -rf /", expect: `'x; rm -rf /'`},
		{input: "it's", expect: `'it'\''s'`},
		{input: "$(reboot)", expect: `'$(reboot)'`},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, ShellQuote(testCase.input), testCase.input)
	}
}

func TestShellCommand(t *testing.T) {
	assert.Equal(t, `'adb' '-s' 'a b' 'shell' 'input' 'keyevent' '3'`, ShellCommand("adb", "-s", "a b", "shell", "input", "keyevent", "3"))
}
