package adb

import (
	"bufio"
	"strings"
)

// StatusOnline is the state adb reports for a connected, authorised device.
const StatusOnline = "device"

// Device represents a single line of `adb devices` output.
type Device struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Online returns true if the device is ready to accept commands.
func (d *Device) Online() bool {
	return d.Status == StatusOnline
}

// ParseDevices parses `adb devices` output into id/status pairs.
// The header, blank lines and daemon notices are skipped.
func ParseDevices(output string) []*Device {
	var result []*Device
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "List of devices") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		result = append(result, &Device{ID: fields[0], Status: fields[1]})
	}
	return result
}

// OnlineDevices filters devices down to those with status "device".
func OnlineDevices(devices []*Device) []*Device {
	var result []*Device
	for _, device := range devices {
		if device.Online() {
			result = append(result, device)
		}
	}
	return result
}
