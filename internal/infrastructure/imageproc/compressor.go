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

// shrinkFactor is applied to the dimensions (and the JPEG quality) on every
// pass that still exceeds the size ceiling.
const shrinkFactor = 0.95

type Compressor struct {
	maxSizeBytes  int64
	maxEdge       int
	maxIterations int
	resampler     Resampler
}

func NewCompressor(cfg config.CompressConfig, resampler Resampler) *Compressor {
	return &Compressor{
		maxSizeBytes:  cfg.MaxSizeBytes(),
		maxEdge:       cfg.MaxEdge,
		maxIterations: cfg.MaxIterations,
		resampler:     resampler,
	}
}

// Compress re-encodes src at the given quality with its longer edge capped at
// maxEdge. The size ceiling is best-effort: while the output is too big and
// passes remain, dimensions shrink and JPEG quality drops. PNG output is
// lossless, so only its dimensions can be traded.
func (c *Compressor) Compress(ctx context.Context, src *entity.SourceImage, quality int) (*engine.Result, error) {
	q, err := valueobject.NewQuality(quality)
	if err != nil {
		return nil, err
	}
	if src == nil || src.Image == nil {
		return nil, domain.ErrNoSource
	}

	native := valueobject.NewDimensions(src.Width, src.Height)
	target := native.FitWithin(c.maxEdge)

	img := src.Image
	if target != native {
		img = c.resampler.Resample(src.Image, target.Width, target.Height)
	}

	data, err := encode(img, src.MimeType, q.Int())
	if err != nil {
		return nil, err
	}

	for i := 0; i < c.maxIterations && c.maxSizeBytes > 0 && int64(len(data)) > c.maxSizeBytes; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("compressing: %w", err)
		}

		target = target.Scale(shrinkFactor)
		if src.MimeType == entity.MimeJPEG {
			q = q.Scale(shrinkFactor)
		}

		img = c.resampler.Resample(src.Image, target.Width, target.Height)
		if data, err = encode(img, src.MimeType, q.Int()); err != nil {
			return nil, err
		}
	}

	if target == native && int64(len(data)) > src.ByteSize {
		data = src.Data
	}

	return &engine.Result{
		Data:     data,
		MimeType: src.MimeType,
		Width:    target.Width,
		Height:   target.Height,
		Quality:  q.Int(),
	}, nil
}
