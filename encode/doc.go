// Package encode renders ir.Node trees as TOON or JSON text.
//
// TOON output applies the tabular collapsing rule: a uniform array of
// objects (every element an object, same non-empty field set, all field
// values scalar) becomes a counted header plus one comma-separated row per
// element. Anything else falls back to a nested block form. The quoting of
// cells mirrors the parser's decoding rules exactly so that output parses
// back to an equal tree.
package encode
