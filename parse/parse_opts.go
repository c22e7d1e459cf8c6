package parse

import (
	"github.com/mbafford/cli-tools/format"
)

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
