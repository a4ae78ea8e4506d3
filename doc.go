// Package toon converts documents between JSON and TOON, a line-oriented
// text format that collapses uniform arrays of objects into tabular
// blocks:
//
//	users[2]{id,name,role}:
//	1,Alice,admin
//	2,Bob,user
//
// The engine is pure: every call parses its own input, owns its own
// value tree, and returns a fresh result, so the three entry points
// (JSONToToon, ToonToJSON, ValidateToon) are safe to call concurrently
// with no coordination.
//
// Conversions round-trip exactly, including object key order and the
// integer/float class of numeric literals.
package toon
