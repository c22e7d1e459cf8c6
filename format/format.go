// Package format names the input formats the tools understand.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
	}
	return f, nil
}

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	}
	return "<unknown format>"
}
