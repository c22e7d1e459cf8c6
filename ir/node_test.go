package ir

import (
	"testing"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{name: "null", node: Null(), want: "null"},
		{name: "true", node: FromBool(true), want: "true"},
		{name: "false", node: FromBool(false), want: "false"},
		{name: "int", node: FromInt(42), want: "42"},
		{name: "negative int", node: FromInt(-7), want: "-7"},
		{name: "float", node: FromFloat(1.5), want: "1.5"},
		{name: "float canonical", node: FromFloat(0.1), want: "0.1"},
		{name: "whole float", node: FromFloat(2.0), want: "2"},
		{name: "string", node: FromString("hello"), want: "hello"},
		{name: "object has no literal", node: FromMap(nil), want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Literal(); got != tt.want {
				t.Errorf("Literal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	n := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
		"c": FromInt(3),
	})
	want := []string{"a", "b", "c"}
	for i, key := range want {
		if n.Fields[i].String != key {
			t.Errorf("field %d = %q, want %q", i, n.Fields[i].String, key)
		}
		if n.Values[i].ParentField != key {
			t.Errorf("value %d parent field = %q, want %q", i, n.Values[i].ParentField, key)
		}
	}
}

func TestFromKeyValsPreservesOrder(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: FromString("z"), Val: FromInt(1)},
		{Key: FromString("a"), Val: FromInt(2)},
	})
	if n.Fields[0].String != "z" || n.Fields[1].String != "a" {
		t.Errorf("fields = %q, %q, want z, a", n.Fields[0].String, n.Fields[1].String)
	}
}

func TestVisitSkipsFieldNames(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"a": FromInt(1),
		"b": FromSlice([]*Node{FromInt(2), FromInt(3)}),
	})
	leaves := 0
	doc.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if n.Type.IsLeaf() {
			leaves++
		}
		return true, nil
	})
	if leaves != 3 {
		t.Errorf("visited %d leaves, want 3", leaves)
	}
}
