package summarize

import "github.com/fatih/color"

type Colors struct {
	Count func(string, ...any) string
	Path  func(string, ...any) string
	Value func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Count: color.RGB(128, 216, 236).SprintfFunc(),
		Path:  color.RGB(196, 96, 16).SprintfFunc(),
		Value: color.BlueString,
	}
}
