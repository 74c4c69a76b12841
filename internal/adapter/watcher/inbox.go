package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
	"github.com/marcos-nsantos/image-toolbox/internal/usecase/session"
)

type Uploader interface {
	Upload(ctx context.Context, file entity.UploadFile) (session.Snapshot, error)
}

// Inbox feeds images dropped into a directory to the session as uploads.
// Writes to the same file are coalesced until it has been quiet for settle.
type Inbox struct {
	dir      string
	settle   time.Duration
	maxBytes int64
	uploader Uploader
	logger   *zap.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewInbox(dir string, settle time.Duration, maxBytes int64, uploader Uploader, logger *zap.Logger) *Inbox {
	return &Inbox{
		dir:      dir,
		settle:   settle,
		maxBytes: maxBytes,
		uploader: uploader,
		logger:   logger,
		timers:   make(map[string]*time.Timer),
	}
}

// Run watches the inbox until ctx is cancelled.
func (in *Inbox) Run(ctx context.Context) error {
	if err := os.MkdirAll(in.dir, 0o755); err != nil {
		return fmt.Errorf("creating inbox %s: %w", in.dir, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(in.dir); err != nil {
		return fmt.Errorf("watching %s: %w", in.dir, err)
	}
	in.logger.Info("watching inbox", zap.String("dir", in.dir), zap.Duration("settle", in.settle))

	defer in.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if ignored(event.Name) {
				continue
			}
			in.schedule(ctx, event.Name)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			in.logger.Warn("inbox watcher error", zap.Error(err))
		}
	}
}

func (in *Inbox) schedule(ctx context.Context, path string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if t, ok := in.timers[path]; ok {
		t.Stop()
	}
	in.timers[path] = time.AfterFunc(in.settle, func() {
		in.mu.Lock()
		delete(in.timers, path)
		in.mu.Unlock()

		in.ingest(ctx, path)
	})
}

func (in *Inbox) stopTimers() {
	in.mu.Lock()
	defer in.mu.Unlock()

	for path, t := range in.timers {
		t.Stop()
		delete(in.timers, path)
	}
}

func (in *Inbox) ingest(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}
	if info.Size() > in.maxBytes {
		in.logger.Warn("inbox file too large", zap.String("path", path), zap.Int64("bytes", info.Size()))
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		in.logger.Warn("reading inbox file", zap.String("path", path), zap.Error(err))
		return
	}

	file := entity.UploadFile{
		Name:        filepath.Base(path),
		ContentType: mimetype.Detect(data).String(),
		Size:        int64(len(data)),
		Data:        data,
	}

	if _, err := in.uploader.Upload(ctx, file); err != nil {
		in.logger.Warn("inbox upload rejected", zap.String("path", path), zap.Error(err))
		return
	}
	in.logger.Info("inbox file loaded", zap.String("path", path), zap.Int64("bytes", file.Size))
}

// ignored skips hidden and partially written files.
func ignored(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~") {
		return true
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".tmp", ".part", ".crdownload", ".swp":
		return true
	}
	return false
}
