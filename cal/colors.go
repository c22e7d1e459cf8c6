package cal

import "github.com/fatih/color"

type Colors struct {
	Marked func(string, ...any) string
	Header func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Marked: color.RGB(255, 0, 196).SprintfFunc(),
		Header: color.BlueString,
	}
}
