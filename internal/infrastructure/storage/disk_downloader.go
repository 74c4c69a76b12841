package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
)

const maxNameAttempts = 1000

type DiskDownloader struct {
	dir    string
	logger *zap.Logger
}

func NewDiskDownloader(dir string, logger *zap.Logger) (*DiskDownloader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating download dir: %w", err)
	}
	return &DiskDownloader{dir: dir, logger: logger}, nil
}

func (d *DiskDownloader) Dir() string {
	return d.dir
}

// Save writes data under dir without overwriting anything already there;
// clashing names get a " (n)" suffix before the extension.
func (d *DiskDownloader) Save(ctx context.Context, name string, _ entity.MimeType, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(d.dir, ".download-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	path, err := d.claim(filepath.Base(name))
	if err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(path)
		return fmt.Errorf("moving download into place: %w", err)
	}

	d.logger.Info("artifact saved", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// claim reserves a free file name by creating it exclusively.
func (d *DiskDownloader) claim(name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(d.dir, candidate)

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("reserving %s: %w", candidate, err)
		}
		f.Close()
		return path, nil
	}
	return "", fmt.Errorf("no free file name for %s", name)
}
