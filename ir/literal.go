package ir

import "strconv"

// Literal returns the canonical literal string of a leaf node.
// Floats are formatted with the shortest round-trip representation so
// equal floats always produce the same string. Containers have no
// literal and return "".
func (y *Node) Literal() string {
	switch y.Type {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case IntType:
		return strconv.FormatInt(y.Int64, 10)
	case FloatType:
		return strconv.FormatFloat(y.Float64, 'g', -1, 64)
	case StringType:
		return y.String
	default:
		return ""
	}
}
