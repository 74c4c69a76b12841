package imageproc

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/marcos-nsantos/image-toolbox/internal/domain"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
)

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

func encode(img image.Image, mimeType entity.MimeType, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch mimeType {
	case entity.MimeJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("%w: encoding jpeg: %w", domain.ErrEncode, err)
		}
	case entity.MimePNG:
		if err := pngEncoder.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: encoding png: %w", domain.ErrEncode, err)
		}
	default:
		return nil, fmt.Errorf("%w: no encoder for %q", domain.ErrEncode, mimeType)
	}

	return buf.Bytes(), nil
}
