package valueobject

import (
	"math"

	"github.com/marcos-nsantos/image-toolbox/internal/domain"
)

type Dimensions struct {
	Width  int
	Height int
}

func NewDimensions(width, height int) Dimensions {
	return Dimensions{Width: width, Height: height}
}

func (d Dimensions) IsValid() bool {
	return d.Width > 0 && d.Height > 0
}

// Within reports whether d is valid and its longer edge is at most maxEdge.
// A non-positive maxEdge means no cap.
func (d Dimensions) Within(maxEdge int) bool {
	return d.IsValid() && (maxEdge <= 0 || d.LongEdge() <= maxEdge)
}

func (d Dimensions) LongEdge() int {
	return max(d.Width, d.Height)
}

// FitWithin scales d down proportionally so that the longer edge is at most
// maxEdge. Dimensions already inside the bound are returned unchanged.
func (d Dimensions) FitWithin(maxEdge int) Dimensions {
	if maxEdge <= 0 || d.LongEdge() <= maxEdge || !d.IsValid() {
		return d
	}
	if d.Width >= d.Height {
		return Dimensions{
			Width:  maxEdge,
			Height: max(1, int(math.Round(float64(d.Height)*float64(maxEdge)/float64(d.Width)))),
		}
	}
	return Dimensions{
		Width:  max(1, int(math.Round(float64(d.Width)*float64(maxEdge)/float64(d.Height)))),
		Height: maxEdge,
	}
}

func (d Dimensions) Scale(factor float64) Dimensions {
	return Dimensions{
		Width:  max(1, int(float64(d.Width)*factor)),
		Height: max(1, int(float64(d.Height)*factor)),
	}
}

// ParseDimension converts a user-entered value into a pixel count. NaN,
// infinities, fractions and non-positive values are rejected.
func ParseDimension(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v <= 0 || v > math.MaxInt32 {
		return 0, domain.ErrInvalidDimensions
	}
	return int(v), nil
}
