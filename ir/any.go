package ir

import (
	"fmt"
	"strconv"
)

// ToAny converts a node to plain Go values, objects becoming
// map[string]any. Key order is lost.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values, as produced by generic YAML or JSON
// decoding, to a node. Map keys come out sorted.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t.Clone(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		if t > uint64(1<<63-1) {
			return FromNumberLiteral(strconv.FormatUint(t, 10)), nil
		}
		return FromInt(int64(t)), nil
	case float64:
		return FromFloat(t), nil
	case []any:
		arr := &Node{Type: ArrayType}
		for _, elt := range t {
			ev, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			ev.Parent = arr
			ev.ParentIndex = len(arr.Values)
			arr.Values = append(arr.Values, ev)
		}
		return arr, nil
	case map[string]any:
		m := make(map[string]*Node, len(t))
		for k, mv := range t {
			nv, err := FromAny(mv)
			if err != nil {
				return nil, err
			}
			m[k] = nv
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: cannot represent %T", ErrParse, v)
	}
}
