// Package storage keeps delivered files on the local disk or in a MinIO bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/briggittemora/Gestion-de-tareas/internal/config"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
)

type Storage interface {
	Save(ctx context.Context, name string, r io.Reader, size int64) error
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
	Exists(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, name string) error
}

// New builds the backend selected by cfg.Storage.Provider.
func New(cfg *config.Config, logger zerolog.Logger) (Storage, error) {
	switch cfg.Storage.Provider {
	case "local":
		return NewLocalStorage(afero.NewOsFs(), cfg.Storage.Directory, logger)
	case "minio":
		return NewMinIOStorage(cfg.MinIO, cfg.Storage.BucketName, cfg.Storage.Region, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}
}

// GenerateName returns a stored name for an upload: entrega-<unix millis>-<random><ext>.
// Only the extension of the client file name survives.
func GenerateName(originalName string) string {
	return generateName(originalName, time.Now(), rand.Intn(1_000_000_000))
}

func generateName(originalName string, now time.Time, random int) string {
	return fmt.Sprintf("entrega-%d-%d%s", now.UnixMilli(), random, filepath.Ext(originalName))
}

// validName rejects anything that is not a bare file name.
func validName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return ErrInvalidName
	}
	return nil
}
