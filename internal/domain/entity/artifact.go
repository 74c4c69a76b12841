package entity

import (
	"image"
	"math"
	"mime"
	"time"

	"github.com/google/uuid"
)

type MimeType string

const (
	MimeJPEG MimeType = "image/jpeg"
	MimePNG  MimeType = "image/png"
)

// ParseMimeType accepts a declared media type (parameters are ignored) and
// reports whether it is one of the supported raster encodings.
func ParseMimeType(contentType string) (MimeType, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	switch MimeType(mediaType) {
	case MimeJPEG:
		return MimeJPEG, true
	case MimePNG:
		return MimePNG, true
	default:
		return "", false
	}
}

func (m MimeType) Format() string {
	switch m {
	case MimeJPEG:
		return "jpeg"
	case MimePNG:
		return "png"
	default:
		return ""
	}
}

type Role string

const (
	RoleOriginal Role = "original"
	RoleDerived  Role = "derived"
)

type Operation string

const (
	OpCompress Operation = "compress"
	OpResize   Operation = "resize"
)

func (o Operation) FilePrefix() string {
	switch o {
	case OpCompress:
		return "compressed_"
	case OpResize:
		return "resized_"
	default:
		return ""
	}
}

type Handle struct {
	ID  uuid.UUID
	URL string
}

func (h Handle) IsZero() bool {
	return h.ID == uuid.Nil
}

type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

type SourceImage struct {
	ID        uuid.UUID
	Name      string
	Data      []byte
	MimeType  MimeType
	ByteSize  int64
	Width     int
	Height    int
	Image     image.Image
	Handle    Handle
	CreatedAt time.Time
}

func NewSourceImage(name string, data []byte, mimeType MimeType, img image.Image) *SourceImage {
	bounds := img.Bounds()
	return &SourceImage{
		ID:        uuid.New(),
		Name:      name,
		Data:      data,
		MimeType:  mimeType,
		ByteSize:  int64(len(data)),
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Image:     img,
		CreatedAt: time.Now().UTC(),
	}
}

func (s *SourceImage) AspectRatio() float64 {
	if s.Height == 0 {
		return 0
	}
	return float64(s.Width) / float64(s.Height)
}

type DerivedArtifact struct {
	Data      []byte
	MimeType  MimeType
	ByteSize  int64
	Width     int
	Height    int
	Handle    Handle
	Source    *SourceImage
	Operation Operation
	Quality   int
	Seq       uint64
	CreatedAt time.Time
}

func (d *DerivedArtifact) FileName() string {
	return d.Operation.FilePrefix() + d.Source.Name
}

// CompressionRatio is the percentage saved by derived relative to source,
// rounded to one decimal place. It is 0 until a derived artifact exists.
func CompressionRatio(source *SourceImage, derived *DerivedArtifact) float64 {
	if source == nil || derived == nil || source.ByteSize == 0 {
		return 0
	}
	ratio := (1 - float64(derived.ByteSize)/float64(source.ByteSize)) * 100
	return math.Round(ratio*10) / 10
}
