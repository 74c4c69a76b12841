package valueobject

import "github.com/marcos-nsantos/image-toolbox/internal/domain"

const (
	MinQuality     = 10
	MaxQuality     = 100
	DefaultQuality = 80
)

type Quality int

func NewQuality(q int) (Quality, error) {
	quality := Quality(q)
	if !quality.IsValid() {
		return 0, domain.ErrInvalidQuality
	}
	return quality, nil
}

func (q Quality) IsValid() bool {
	return q >= MinQuality && q <= MaxQuality
}

func (q Quality) Int() int {
	return int(q)
}

// Scale returns q multiplied by factor, never dropping below 1.
func (q Quality) Scale(factor float64) Quality {
	scaled := Quality(float64(q) * factor)
	if scaled < 1 {
		return 1
	}
	return scaled
}
