package entity

import "github.com/marcos-nsantos/image-toolbox/internal/domain"

type Tool string

const (
	ToolCompress Tool = "compress"
	ToolResize   Tool = "resize"
)

type ToolInfo struct {
	ID          Tool
	Title       string
	Description string
}

var Tools = []ToolInfo{
	{
		ID:          ToolCompress,
		Title:       "Image compression",
		Description: "Shrink the file size while keeping good visual quality",
	},
	{
		ID:          ToolResize,
		Title:       "Image resize",
		Description: "Change the pixel dimensions, optionally keeping the aspect ratio",
	},
}

func ParseTool(s string) (Tool, error) {
	switch Tool(s) {
	case ToolCompress, ToolResize:
		return Tool(s), nil
	default:
		return "", domain.ErrUnknownTool
	}
}

func (t Tool) Operation() Operation {
	if t == ToolResize {
		return OpResize
	}
	return OpCompress
}
