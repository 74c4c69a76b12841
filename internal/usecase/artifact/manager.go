package artifact

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-toolbox/internal/adapter/storage"
	"github.com/marcos-nsantos/image-toolbox/internal/domain"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
)

type Gauge interface {
	SetLiveHandles(n int)
}

// Manager owns every display/download handle. Each role has at most one live
// handle; a handle is never removed from the store while a download still
// reads from it, its deletion is deferred until the last download returns.
type Manager struct {
	mu      sync.Mutex
	store   storage.HandleStore
	live    map[entity.Role]entity.Handle
	pins    map[uuid.UUID]int
	retired map[uuid.UUID]struct{}
	gauge   Gauge
	logger  *zap.Logger
}

func NewManager(store storage.HandleStore, gauge Gauge, logger *zap.Logger) *Manager {
	return &Manager{
		store:   store,
		live:    make(map[entity.Role]entity.Handle),
		pins:    make(map[uuid.UUID]int),
		retired: make(map[uuid.UUID]struct{}),
		gauge:   gauge,
		logger:  logger,
	}
}

// Install creates a handle for data and makes it the live handle for role.
// The previous handle for role is released only after the new one exists.
func (m *Manager) Install(ctx context.Context, role entity.Role, data []byte, mimeType entity.MimeType) (entity.Handle, error) {
	handle, err := m.store.Put(ctx, data, mimeType)
	if err != nil {
		return entity.Handle{}, fmt.Errorf("creating %s handle: %w", role, err)
	}

	m.mu.Lock()
	prev, hadPrev := m.live[role]
	m.live[role] = handle
	if hadPrev {
		m.dispose(ctx, prev)
	}
	m.mu.Unlock()

	m.logger.Debug("handle installed",
		zap.String("role", string(role)),
		zap.String("handle", handle.ID.String()),
		zap.Int("bytes", len(data)),
	)
	m.report()

	return handle, nil
}

// Release drops the live handle for role. Releasing an empty role is a no-op.
func (m *Manager) Release(ctx context.Context, role entity.Role) {
	m.mu.Lock()
	handle, ok := m.live[role]
	if ok {
		delete(m.live, role)
		m.dispose(ctx, handle)
	}
	m.mu.Unlock()

	if ok {
		m.logger.Debug("handle released", zap.String("role", string(role)), zap.String("handle", handle.ID.String()))
		m.report()
	}
}

func (m *Manager) ReleaseAll(ctx context.Context) {
	m.Release(ctx, entity.RoleDerived)
	m.Release(ctx, entity.RoleOriginal)
}

func (m *Manager) Current(role entity.Role) (entity.Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.live[role]
	return h, ok
}

// Open returns the bytes behind a live handle.
func (m *Manager) Open(ctx context.Context, id uuid.UUID) (*storage.Object, error) {
	m.mu.Lock()
	isLive := m.isLive(id)
	m.mu.Unlock()

	if !isLive {
		return nil, domain.ErrHandleNotFound
	}
	return m.store.Get(ctx, id)
}

// Download hands the current bytes behind handle to d. The handle is pinned
// for the duration so a concurrent Install or Release cannot delete it.
func (m *Manager) Download(ctx context.Context, handle entity.Handle, name string, d storage.Downloader) error {
	m.mu.Lock()
	if !m.isLive(handle.ID) {
		m.mu.Unlock()
		return domain.ErrHandleNotFound
	}
	m.pins[handle.ID]++
	m.mu.Unlock()

	defer m.unpin(ctx, handle.ID)

	obj, err := m.store.Get(ctx, handle.ID)
	if err != nil {
		return fmt.Errorf("reading handle: %w", err)
	}

	if err := d.Save(ctx, name, obj.MimeType, obj.Data); err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	return nil
}

func (m *Manager) Live() int {
	return m.store.Len()
}

func (m *Manager) unpin(ctx context.Context, id uuid.UUID) {
	m.mu.Lock()
	m.pins[id]--
	deleted := false
	if m.pins[id] <= 0 {
		delete(m.pins, id)
		if _, ok := m.retired[id]; ok {
			delete(m.retired, id)
			m.delete(ctx, id)
			deleted = true
		}
	}
	m.mu.Unlock()

	if deleted {
		m.report()
	}
}

// dispose must be called with mu held.
func (m *Manager) dispose(ctx context.Context, handle entity.Handle) {
	if m.pins[handle.ID] > 0 {
		m.retired[handle.ID] = struct{}{}
		return
	}
	m.delete(ctx, handle.ID)
}

func (m *Manager) delete(ctx context.Context, id uuid.UUID) {
	if err := m.store.Delete(context.WithoutCancel(ctx), id); err != nil {
		m.logger.Warn("failed to delete handle", zap.String("handle", id.String()), zap.Error(err))
	}
}

func (m *Manager) isLive(id uuid.UUID) bool {
	for _, h := range m.live {
		if h.ID == id {
			return true
		}
	}
	return false
}

func (m *Manager) report() {
	if m.gauge != nil {
		m.gauge.SetLiveHandles(m.store.Len())
	}
}
