package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

const vaultFileExtension = ".vault"

// sessionVaultFileStore is the filesystem implementation of
// [SessionVaultStore]. Each browser session gets one JSON file in the cache
// directory, named by an opaque identifier derived outside this package.
//
// Writes are atomic: the file is written to a temp name in the same
// directory, fsynced, then renamed over the target. A crashed write can
// therefore never leave a half-written vault behind.
type sessionVaultFileStore struct {
	dir    string
	logger *logger.Logger
}

// NewSessionVaultFileStore constructs a [SessionVaultStore] rooted at dir,
// creating the directory if needed.
func NewSessionVaultFileStore(dir string, logger *logger.Logger) (SessionVaultStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		logger.Err(err).Str("func", "NewSessionVaultFileStore").Msg("error creating cache directory")
		return nil, fmt.Errorf("error creating cache directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating session vault file store")
	return &sessionVaultFileStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// Load reads and decodes the vault file for the given identifier.
//
// Error handling:
//   - Missing file → [ErrVaultFileNotFound].
//   - Unreadable or undecodable file → the underlying error, wrapped.
func (s *sessionVaultFileStore) Load(ctx context.Context, id string) (models.SessionVaultFile, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.SessionVaultFile{}, ErrVaultFileNotFound
		}
		log.Err(err).Str("func", "*sessionVaultFileStore.Load").Msg("error reading vault file")
		return models.SessionVaultFile{}, fmt.Errorf("error reading vault file: %w", err)
	}

	var file models.SessionVaultFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Err(err).Str("func", "*sessionVaultFileStore.Load").Msg("error decoding vault file")
		return models.SessionVaultFile{}, fmt.Errorf("error decoding vault file: %w", err)
	}

	return file, nil
}

// Store writes the vault file atomically: temp file in the same directory,
// fsync, rename over the final name.
func (s *sessionVaultFileStore) Store(ctx context.Context, id string, file models.SessionVaultFile) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(file)
	if err != nil {
		log.Err(err).Str("func", "*sessionVaultFileStore.Store").Msg("error encoding vault file")
		return fmt.Errorf("error encoding vault file: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "vault-*.tmp")
	if err != nil {
		log.Err(err).Str("func", "*sessionVaultFileStore.Store").Msg("error creating temp vault file")
		return fmt.Errorf("error creating temp vault file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing temp vault file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error syncing temp vault file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing temp vault file: %w", err)
	}

	if err := os.Rename(tmpName, s.path(id)); err != nil {
		os.Remove(tmpName)
		log.Err(err).Str("func", "*sessionVaultFileStore.Store").Msg("error renaming vault file into place")
		return fmt.Errorf("error renaming vault file into place: %w", err)
	}

	return nil
}

// Delete removes the vault file. Deleting a missing file is not an error.
func (s *sessionVaultFileStore) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionVaultFileStore.Delete").Msg("error deleting vault file")
		return fmt.Errorf("error deleting vault file: %w", err)
	}

	return nil
}

// Sweep deletes vault files older than ttl and returns how many were
// removed. Stray temp files are cleaned up on the way.
func (s *sessionVaultFileStore) Sweep(ctx context.Context, ttl time.Duration) (int, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Err(err).Str("func", "*sessionVaultFileStore.Sweep").Msg("error reading cache directory")
		return 0, fmt.Errorf("error reading cache directory: %w", err)
	}

	deadline := time.Now().Add(-ttl)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, vaultFileExtension) && !strings.HasSuffix(name, ".tmp") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(deadline) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			log.Warn().Err(err).Str("file", name).Msg("error removing expired vault file")
			continue
		}
		removed++
	}

	return removed, nil
}

func (s *sessionVaultFileStore) path(id string) string {
	return filepath.Join(s.dir, id+vaultFileExtension)
}
