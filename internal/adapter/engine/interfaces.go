package engine

import (
	"context"
	"image"

	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/engine_mocks.go -package=mocks

// Result is what an engine run hands back: encoded bytes plus the pixel
// dimensions they decode to. Engines never touch handles.
type Result struct {
	Data     []byte
	MimeType entity.MimeType
	Width    int
	Height   int
	Quality  int
}

type Decoder interface {
	Decode(ctx context.Context, data []byte, mimeType entity.MimeType) (image.Image, error)
}

type Compressor interface {
	Compress(ctx context.Context, src *entity.SourceImage, quality int) (*Result, error)
}

type Resizer interface {
	Resize(ctx context.Context, src *entity.SourceImage, width, height int) (*Result, error)
}
