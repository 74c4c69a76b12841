package imageproc

import (
	"context"
	"fmt"

	"github.com/marcos-nsantos/image-toolbox/internal/adapter/engine"
	"github.com/marcos-nsantos/image-toolbox/internal/domain"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/config"
)

type Resizer struct {
	jpegQuality int
	maxEdge     int
	resampler   Resampler
}

func NewResizer(cfg config.ResizeConfig, resampler Resampler) *Resizer {
	return &Resizer{
		jpegQuality: cfg.JPEGQuality,
		maxEdge:     cfg.MaxEdge,
		resampler:   resampler,
	}
}

// Resize resamples src onto exactly width x height pixels and re-encodes it in
// the source's own encoding. Both dimensions are taken as final.
func (r *Resizer) Resize(ctx context.Context, src *entity.SourceImage, width, height int) (*engine.Result, error) {
	dims := valueobject.NewDimensions(width, height)
	if !dims.Within(r.maxEdge) {
		return nil, fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimensions, width, height)
	}
	if src == nil || src.Image == nil {
		return nil, domain.ErrNoSource
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resizing: %w", err)
	}

	img := src.Image
	if width != src.Width || height != src.Height {
		img = r.resampler.Resample(src.Image, width, height)
	}

	data, err := encode(img, src.MimeType, r.jpegQuality)
	if err != nil {
		return nil, err
	}

	return &engine.Result{
		Data:     data,
		MimeType: src.MimeType,
		Width:    width,
		Height:   height,
		Quality:  r.jpegQuality,
	}, nil
}
