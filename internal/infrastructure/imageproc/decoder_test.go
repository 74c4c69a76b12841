package imageproc_test

import (
	"bytes"
	"context"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/image-toolbox/internal/domain"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/imageproc"
)

func TestDecoder_Decode(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes a jpeg", func(t *testing.T) {
		data := encodeJPEG(t, gradientImage(40, 30), 90)

		img, err := imageproc.NewDecoder(0).Decode(ctx, data, entity.MimeJPEG)

		require.NoError(t, err)
		assert.Equal(t, 40, img.Bounds().Dx())
		assert.Equal(t, 30, img.Bounds().Dy())
	})

	t.Run("rejects empty data", func(t *testing.T) {
		_, err := imageproc.NewDecoder(0).Decode(ctx, nil, entity.MimePNG)
		assert.ErrorIs(t, err, domain.ErrDecode)
	})

	t.Run("rejects corrupt data", func(t *testing.T) {
		_, err := imageproc.NewDecoder(0).Decode(ctx, []byte("definitely not a png"), entity.MimePNG)
		assert.ErrorIs(t, err, domain.ErrDecode)
	})

	t.Run("rejects content that does not match the declared type", func(t *testing.T) {
		data := encodePNG(t, gradientImage(10, 10))

		_, err := imageproc.NewDecoder(0).Decode(ctx, data, entity.MimeJPEG)
		assert.ErrorIs(t, err, domain.ErrDecode)
	})

	t.Run("rejects a gif declared as png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, gif.Encode(&buf, gradientImage(10, 10), nil))

		_, err := imageproc.NewDecoder(0).Decode(ctx, buf.Bytes(), entity.MimePNG)
		assert.ErrorIs(t, err, domain.ErrDecode)
	})

	t.Run("rejects images over the pixel budget", func(t *testing.T) {
		data := encodePNG(t, gradientImage(100, 100))

		_, err := imageproc.NewDecoder(5000).Decode(ctx, data, entity.MimePNG)
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})
}
