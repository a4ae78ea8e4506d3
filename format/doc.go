// Package format enumerates the textual formats the converter reads and
// writes: TOON and JSON.
package format
