package parse

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/mbafford/cli-tools/ir"
)

func parseYAML(data []byte) (*ir.Node, error) {
	var v any
	// ordered maps so field order matches the document
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch vv := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(vv), nil
	case int:
		return ir.FromInt(int64(vv)), nil
	case int64:
		return ir.FromInt(vv), nil
	case uint64:
		if vv > math.MaxInt64 {
			return ir.FromFloat(float64(vv)), nil
		}
		return ir.FromInt(int64(vv)), nil
	case float64:
		return ir.FromFloat(vv), nil
	case string:
		return ir.FromString(vv), nil
	case []any:
		vals := make([]*ir.Node, len(vv))
		for i, el := range vv {
			n, err := fromYAML(el)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(vv))
		for i, item := range vv {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: ir.FromString(fmt.Sprint(item.Key)), Val: val}
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("unsupported yaml value of type %T", v)
	}
}
