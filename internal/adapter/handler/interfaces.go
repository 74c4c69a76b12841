package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-toolbox/internal/adapter/storage"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
	"github.com/marcos-nsantos/image-toolbox/internal/usecase/session"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type SessionService interface {
	Start(ctx context.Context, tool entity.Tool) session.Snapshot
	End(ctx context.Context) session.Snapshot
	Snapshot() session.Snapshot
	Upload(ctx context.Context, file entity.UploadFile) (session.Snapshot, error)
	SetQuality(ctx context.Context, quality int) (session.Snapshot, error)
	SetDimensions(ctx context.Context, width, height *float64) (session.Snapshot, error)
	SetAspectLock(ctx context.Context, locked bool) (session.Snapshot, error)
	Apply(ctx context.Context) (*entity.DerivedArtifact, error)
	Download(ctx context.Context, d storage.Downloader) (string, error)
}

type ArtifactService interface {
	Open(ctx context.Context, id uuid.UUID) (*storage.Object, error)
}

type DiskSaver interface {
	storage.Downloader
	Dir() string
}
