package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-toolbox/internal/adapter/storage"
	"github.com/marcos-nsantos/image-toolbox/internal/domain"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/config"
)

// MemoryStore is the process-local handle table. Objects live only as long as
// the process and are addressed by an opaque URL under urlPrefix.
type MemoryStore struct {
	mu        sync.RWMutex
	objects   map[uuid.UUID]storage.Object
	urlPrefix string
}

func NewMemoryStore(cfg config.StorageConfig) *MemoryStore {
	return &MemoryStore{
		objects:   make(map[uuid.UUID]storage.Object),
		urlPrefix: strings.TrimRight(cfg.ArtifactURLPrefix, "/"),
	}
}

func (s *MemoryStore) Put(ctx context.Context, data []byte, mimeType entity.MimeType) (entity.Handle, error) {
	if err := ctx.Err(); err != nil {
		return entity.Handle{}, err
	}

	id := uuid.New()

	s.mu.Lock()
	s.objects[id] = storage.Object{Data: data, MimeType: mimeType}
	s.mu.Unlock()

	return entity.Handle{ID: id, URL: s.GetURL(id)}, nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*storage.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[id]
	if !ok {
		return nil, domain.ErrHandleNotFound
	}
	return &obj, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	delete(s.objects, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) GetURL(id uuid.UUID) string {
	return fmt.Sprintf("%s/%s", s.urlPrefix, id)
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
