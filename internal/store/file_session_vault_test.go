package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

func newTestVaultStore(t *testing.T) (SessionVaultStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewSessionVaultFileStore(dir, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create vault store: %v", err)
	}
	return store, dir
}

func TestSessionVaultStore_RoundTrip(t *testing.T) {
	store, _ := newTestVaultStore(t)
	ctx := context.Background()

	file := models.SessionVaultFile{
		KeyMaterial: []byte{0x01, 0x02},
		WrappedKey:  []byte{0x03, 0x04},
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	if err := store.Store(ctx, "abc123", file); err != nil {
		t.Fatalf("Store error: %v", err)
	}

	loaded, err := store.Load(ctx, "abc123")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !bytes.Equal(loaded.KeyMaterial, file.KeyMaterial) || !bytes.Equal(loaded.WrappedKey, file.WrappedKey) {
		t.Fatalf("round-trip mismatch: %+v vs %+v", loaded, file)
	}
	if !loaded.CreatedAt.Equal(file.CreatedAt) {
		t.Fatalf("created_at mismatch: %v vs %v", loaded.CreatedAt, file.CreatedAt)
	}
}

func TestSessionVaultStore_LoadMissing(t *testing.T) {
	store, _ := newTestVaultStore(t)

	_, err := store.Load(context.Background(), "never-written")
	if !errors.Is(err, ErrVaultFileNotFound) {
		t.Fatalf("expected ErrVaultFileNotFound, got %v", err)
	}
}

func TestSessionVaultStore_StoreOverwritesAtomically(t *testing.T) {
	store, dir := newTestVaultStore(t)
	ctx := context.Background()

	first := models.SessionVaultFile{KeyMaterial: []byte("first"), CreatedAt: time.Now()}
	second := models.SessionVaultFile{KeyMaterial: []byte("second"), CreatedAt: time.Now()}

	if err := store.Store(ctx, "id", first); err != nil {
		t.Fatalf("Store error: %v", err)
	}
	if err := store.Store(ctx, "id", second); err != nil {
		t.Fatalf("Store error: %v", err)
	}

	loaded, err := store.Load(ctx, "id")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !bytes.Equal(loaded.KeyMaterial, []byte("second")) {
		t.Fatalf("expected overwrite to win, got %q", loaded.KeyMaterial)
	}

	// No temp files may survive a successful write.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("stray temp file left behind: %s", e.Name())
		}
	}
}

func TestSessionVaultStore_DeleteIdempotent(t *testing.T) {
	store, _ := newTestVaultStore(t)
	ctx := context.Background()

	if err := store.Store(ctx, "id", models.SessionVaultFile{CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Store error: %v", err)
	}

	if err := store.Delete(ctx, "id"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := store.Delete(ctx, "id"); err != nil {
		t.Fatalf("second Delete error: %v", err)
	}

	if _, err := store.Load(ctx, "id"); !errors.Is(err, ErrVaultFileNotFound) {
		t.Fatalf("expected ErrVaultFileNotFound after delete, got %v", err)
	}
}

func TestSessionVaultStore_SweepRemovesOnlyExpired(t *testing.T) {
	store, dir := newTestVaultStore(t)
	ctx := context.Background()

	if err := store.Store(ctx, "old", models.SessionVaultFile{CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Store error: %v", err)
	}
	if err := store.Store(ctx, "fresh", models.SessionVaultFile{CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Store error: %v", err)
	}

	// Age the first file past the TTL.
	past := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(filepath.Join(dir, "old"+vaultFileExtension), past, past); err != nil {
		t.Fatalf("Chtimes error: %v", err)
	}

	removed, err := store.Sweep(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	if _, err := store.Load(ctx, "old"); !errors.Is(err, ErrVaultFileNotFound) {
		t.Fatalf("expected old vault gone, got %v", err)
	}
	if _, err := store.Load(ctx, "fresh"); err != nil {
		t.Fatalf("expected fresh vault to survive, got %v", err)
	}
}

func TestSessionVaultStore_SweepIgnoresForeignFiles(t *testing.T) {
	store, dir := newTestVaultStore(t)

	foreign := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(foreign, []byte("keep me"), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	past := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(foreign, past, past); err != nil {
		t.Fatalf("Chtimes error: %v", err)
	}

	removed, err := store.Sweep(context.Background(), 24*time.Hour)
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected 0 removed, got %d", removed)
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Fatalf("foreign file should survive sweep: %v", err)
	}
}
