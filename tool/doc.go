// Package tool implements the screenshot and pressKey tools on top of the adb
// bridge and the screenshot scratch store.
package tool
