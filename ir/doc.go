// Package ir provides the intermediate representation (IR) shared by the
// TOON parser, the TOON serializer and the schema validator.
//
// # Overview
//
// All documents, whether parsed from TOON text or from JSON, are represented
// as an ir.Node tree. The IR works as a recursive tagged union, where values
// are placed in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64, float64 or literal)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always as many fields as values. Fields are string typed and
// their slice order is the document order of the keys. Key order is
// significant: it decides the field list of any tabular TOON block derived
// from the object, and it takes part in Compare and Equal.
//
// Number values are placed under:
//   - Int64: if the literal is an integer fitting 64-bit signed
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: the raw literal when neither representation is exact,
//     for example integers beyond int64 range
//
// This split is what makes numeric round-trips lossless: emission prefers
// Int64, then Float64, then the literal, so an integer never degrades to a
// float and a huge integer never loses digits.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object
//   - ParentField: field name if parent is object
//
// # Thread Safety
//
// Node trees are created fresh per conversion call and owned by the caller.
// They are not synchronized; clone a tree before sharing it across
// goroutines.
package ir
