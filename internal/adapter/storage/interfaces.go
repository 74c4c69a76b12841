package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type Object struct {
	Data     []byte
	MimeType entity.MimeType
}

type HandleStore interface {
	Put(ctx context.Context, data []byte, mimeType entity.MimeType) (entity.Handle, error)
	Get(ctx context.Context, id uuid.UUID) (*Object, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetURL(id uuid.UUID) string
	Len() int
}

type Downloader interface {
	Save(ctx context.Context, name string, mimeType entity.MimeType, data []byte) error
}
