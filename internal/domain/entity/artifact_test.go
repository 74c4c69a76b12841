package entity_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
)

func TestParseMimeType(t *testing.T) {
	tests := []struct {
		in   string
		want entity.MimeType
		ok   bool
	}{
		{"image/jpeg", entity.MimeJPEG, true},
		{"image/png", entity.MimePNG, true},
		{"IMAGE/PNG", entity.MimePNG, true},
		{"image/jpeg; charset=binary", entity.MimeJPEG, true},
		{"image/gif", "", false},
		{"image/webp", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := entity.ParseMimeType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSourceImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1200, 600))
	src := entity.NewSourceImage("photo.png", []byte("data"), entity.MimePNG, img)

	assert.NotEqual(t, src.ID.String(), "")
	assert.Equal(t, 1200, src.Width)
	assert.Equal(t, 600, src.Height)
	assert.Equal(t, int64(4), src.ByteSize)
	assert.InDelta(t, 2.0, src.AspectRatio(), 1e-9)
}

func TestDerivedArtifact_FileName(t *testing.T) {
	src := &entity.SourceImage{Name: "cat.jpg"}

	compressed := &entity.DerivedArtifact{Source: src, Operation: entity.OpCompress}
	resized := &entity.DerivedArtifact{Source: src, Operation: entity.OpResize}

	assert.Equal(t, "compressed_cat.jpg", compressed.FileName())
	assert.Equal(t, "resized_cat.jpg", resized.FileName())
}

func TestCompressionRatio(t *testing.T) {
	src := &entity.SourceImage{ByteSize: 2000}

	t.Run("zero without a derived artifact", func(t *testing.T) {
		assert.Zero(t, entity.CompressionRatio(src, nil))
		assert.Zero(t, entity.CompressionRatio(nil, nil))
	})

	t.Run("rounds to one decimal", func(t *testing.T) {
		derived := &entity.DerivedArtifact{ByteSize: 1330}
		assert.InDelta(t, 33.5, entity.CompressionRatio(src, derived), 1e-9)
	})

	t.Run("negative when the artifact grew", func(t *testing.T) {
		derived := &entity.DerivedArtifact{ByteSize: 3000}
		assert.InDelta(t, -50.0, entity.CompressionRatio(src, derived), 1e-9)
	})
}

func TestParseTool(t *testing.T) {
	tool, err := entity.ParseTool("resize")
	assert.NoError(t, err)
	assert.Equal(t, entity.ToolResize, tool)
	assert.Equal(t, entity.OpResize, tool.Operation())

	_, err = entity.ParseTool("crop")
	assert.Error(t, err)
}
