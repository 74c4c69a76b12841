package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-toolbox/internal/adapter/engine"
	"github.com/marcos-nsantos/image-toolbox/internal/domain"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
)

type Service struct {
	decoder  engine.Decoder
	maxBytes int64
	logger   *zap.Logger
}

func NewService(decoder engine.Decoder, maxBytes int64, logger *zap.Logger) *Service {
	return &Service{
		decoder:  decoder,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Validate turns an uploaded file into a decoded SourceImage. Only supported,
// decodable images within the byte cap pass. The returned source has no
// handle yet.
func (s *Service) Validate(ctx context.Context, file entity.UploadFile) (*entity.SourceImage, error) {
	mimeType, ok := entity.ParseMimeType(file.ContentType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, file.ContentType)
	}

	if s.maxBytes > 0 && int64(len(file.Data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", domain.ErrFileTooLarge, len(file.Data))
	}

	img, err := s.decoder.Decode(ctx, file.Data, mimeType)
	if err != nil {
		return nil, err
	}

	src := entity.NewSourceImage(file.Name, file.Data, mimeType, img)

	s.logger.Info("source image validated",
		zap.String("source_id", src.ID.String()),
		zap.String("name", src.Name),
		zap.String("mime_type", string(src.MimeType)),
		zap.Int64("bytes", src.ByteSize),
		zap.Int("width", src.Width),
		zap.Int("height", src.Height),
	)

	return src, nil
}
