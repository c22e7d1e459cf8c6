// Package parse decodes raw document bytes into the ir union.
package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mbafford/cli-tools/format"
	"github.com/mbafford/cli-tools/ir"
)

// Parse decodes one complete document. The default format is JSON;
// use ParseYAML or ParseFormat to select another.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.YAMLFormat:
		return parseYAML(data)
	default:
		return parseJSON(data)
	}
}

func parseJSON(data []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	root, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding json: empty document")
		}
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding json: trailing data after document")
	}
	return root, nil
}

func decodeValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFrom(dec, tok)
}

func decodeFrom(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v.String())
	case string:
		return ir.FromString(v), nil
	case bool:
		return ir.FromBool(v), nil
	case nil:
		return ir.Null(), nil
	case json.Number:
		return numberNode(v)
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func numberNode(num json.Number) (*ir.Node, error) {
	if i, err := num.Int64(); err == nil {
		return ir.FromInt(i), nil
	}
	f, err := num.Float64()
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", num, err)
	}
	return ir.FromFloat(f), nil
}

func decodeObject(dec *json.Decoder) (*ir.Node, error) {
	var kvs []ir.KeyVal
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ir.FromKeyVals(kvs), nil
}

func decodeArray(dec *json.Decoder) (*ir.Node, error) {
	var vals []*ir.Node
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ir.FromSlice(vals), nil
}
