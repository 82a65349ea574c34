// Package adbtest provides a scripted stand-in for the adb binary so tests can
// exercise real process spawning without a device.
package adbtest

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const script = `#!/bin/sh
dir="$(dirname "$0")"
echo "$*" >> "$dir/calls.log"
if [ "$1" = "-s" ]; then
	shift 2
fi
case "$1" in
version)
	echo "Android Debug Bridge version 1.0.41"
	;;
devices)
	cat "$dir/devices.txt" 2>/dev/null
	;;
exec-out)
	if [ -f "$dir/exec-out.fail" ]; then
		echo "error: device offline" >&2
		exit 1
	fi
	cat "$dir/screen.png" 2>/dev/null
	;;
shell)
	if [ -f "$dir/shell.fail" ]; then
		echo "error: no devices/emulators found" >&2
		exit 1
	fi
	;;
*)
	echo "adb: unknown command $1" >&2
	exit 1
	;;
esac
exit 0
`

// Stub is an executable shell script answering a subset of adb commands.
type Stub struct {
	t    testing.TB
	Dir  string
	Path string
}

// SetScreen sets the bytes written by `exec-out screencap -p`.
func (s *Stub) SetScreen(data []byte) {
	s.write("screen.png", data)
}

// SetDevices sets the output of `adb devices`.
func (s *Stub) SetDevices(output string) {
	s.write("devices.txt", []byte(output))
}

// Fail makes the given subcommand (exec-out, shell) exit with status 1.
func (s *Stub) Fail(subcommand string) {
	s.write(subcommand+".fail", nil)
}

// Calls returns the argument lines the stub was invoked with.
func (s *Stub) Calls() []string {
	data, err := os.ReadFile(filepath.Join(s.Dir, "calls.log"))
	if err != nil {
		return nil
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func (s *Stub) write(name string, data []byte) {
	s.t.Helper()
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		s.t.Fatalf("failed to write %v: %v", name, err)
	}
}

// NewStub installs the stub script into a fresh temp directory.
func NewStub(t testing.TB) *Stub {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("adb stub requires a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "adb")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write adb stub: %v", err)
	}
	return &Stub{t: t, Dir: dir, Path: path}
}

// PNG returns an encoded width x height gradient image.
func PNG(t testing.TB, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}
