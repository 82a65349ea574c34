// Package resource exposes the connected devices and stored screenshots as
// MCP resources.
package resource
