package imageproc

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/marcos-nsantos/image-toolbox/internal/domain"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
)

type Decoder struct {
	maxPixels int
}

func NewDecoder(maxPixels int) *Decoder {
	return &Decoder{maxPixels: maxPixels}
}

// Decode checks that data really is in the declared encoding and within the
// pixel budget before decoding it. EXIF orientation is applied, so the
// returned bounds are the dimensions a viewer would display.
func (d *Decoder) Decode(ctx context.Context, data []byte, mimeType entity.MimeType) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrDecode)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", domain.ErrDecode, err)
	}
	if format != mimeType.Format() {
		return nil, fmt.Errorf("%w: content is %s but declared as %s", domain.ErrDecode, format, mimeType)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", domain.ErrDecode, cfg.Width, cfg.Height)
	}
	if d.maxPixels > 0 && cfg.Width*cfg.Height > d.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", domain.ErrFileTooLarge, cfg.Width, cfg.Height, d.maxPixels)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	return img, nil
}
