// Package ir holds the in-memory representation of decoded documents:
// a closed union of the JSON value kinds with an explicit Type
// discriminant. Object nodes keep their fields in document order in
// parallel Fields/Values slices.
package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object node preserving the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		kv.Key.ParentField = kv.Key.String
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key.String
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap builds an object node with fields in sorted key order.
func FromMap(m map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: FromString(key), Val: m[key]}
	}
	return FromKeyVals(kvs)
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Visit walks the node and its values depth first. f is called before
// and after each node with isPost indicating which; returning false
// from the pre call skips the node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
