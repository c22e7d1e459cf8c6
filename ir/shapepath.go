package ir

// ShapePath returns the index-independent path string of this node's
// position in the tree: ".{key}" per object field step and "[]" per
// array element step, so all elements of an array share one path.
//
// Examples:
//   - Root node → ""
//   - Object field "a" → ".{a}"
//   - Any array element → "[]"
//   - Nested → ".{a}[].{b}", arrays of arrays → "[][]"
func (node *Node) ShapePath() string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case ObjectType:
		return node.Parent.ShapePath() + ".{" + node.ParentField + "}"
	case ArrayType:
		return node.Parent.ShapePath() + "[]"
	default:
		panic("parent but not in container")
	}
}
