package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

// sessionVaultService caches one encryption key per browser session in a
// vault file sealed under a fingerprint-derived key. The cache fails open:
// any problem reading, unsealing, or validating an existing file is treated
// as a cache miss and the vault is regenerated in place.
type sessionVaultService struct {
	files   store.SessionVaultStore
	keyring crypto.KeyRingService
	salt    []byte
	ttl     time.Duration
	logger  *logger.Logger
}

// NewSessionVaultService constructs a [SessionVaultService]. ttl bounds the
// lifetime of a vault file; files older than ttl are regenerated on access
// and collected by the janitor between accesses.
func NewSessionVaultService(files store.SessionVaultStore, keyring crypto.KeyRingService, salt []byte, ttl time.Duration, logger *logger.Logger) SessionVaultService {
	return &sessionVaultService{
		files:   files,
		keyring: keyring,
		salt:    salt,
		ttl:     ttl,
		logger:  logger,
	}
}

// GetKey implements [SessionVaultService].
func (s *sessionVaultService) GetKey(ctx context.Context, cookieSeed string, fp models.Fingerprint) ([]byte, error) {
	log := logger.FromContext(ctx)

	if cookieSeed == "" {
		return nil, ErrInvalidDataProvided
	}

	id := s.vaultFileID(cookieSeed)
	fpKey := s.keyring.FingerprintKey(fp, s.salt)
	defer zero(fpKey)

	if key, ok := s.loadExisting(ctx, id, fpKey); ok {
		return key, nil
	}

	key, err := s.regenerate(ctx, id, fpKey)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("vaultFileID", id).Msg("session vault regenerated")
	return key, nil
}

// Invalidate implements [SessionVaultService].
func (s *sessionVaultService) Invalidate(ctx context.Context, cookieSeed string) error {
	if cookieSeed == "" {
		return ErrInvalidDataProvided
	}

	if err := s.files.Delete(ctx, s.vaultFileID(cookieSeed)); err != nil {
		return fmt.Errorf("deleting session vault failed: %w", err)
	}

	return nil
}

// vaultFileID maps the opaque cookie seed onto a stable file identifier.
// Deriving the name keeps raw cookie values out of the filesystem.
func (s *sessionVaultService) vaultFileID(cookieSeed string) string {
	data := make([]byte, 0, len(s.salt)+len(cookieSeed))
	data = append(data, s.salt...)
	data = append(data, cookieSeed...)
	return utils.DeterministicUUID(uuid.NameSpaceOID, data)
}

// loadExisting attempts the cache-hit path. Every failure mode collapses to
// a miss: the caller regenerates and the old file is overwritten.
func (s *sessionVaultService) loadExisting(ctx context.Context, id string, fpKey []byte) ([]byte, bool) {
	log := logger.FromContext(ctx)

	file, err := s.files.Load(ctx, id)
	if err != nil {
		return nil, false
	}

	if time.Since(file.CreatedAt) > s.ttl {
		log.Debug().Str("vaultFileID", id).Msg("session vault expired")
		return nil, false
	}

	key, err := s.keyring.Unwrap(file.WrappedKey, file.KeyMaterial, fpKey)
	if err != nil {
		// Fingerprint changed or the file is damaged. Either way the cached
		// key is unrecoverable and a fresh one is minted.
		log.Debug().Str("vaultFileID", id).Msg("session vault unseal failed")
		return nil, false
	}

	return key, true
}

func (s *sessionVaultService) regenerate(ctx context.Context, id string, fpKey []byte) ([]byte, error) {
	key, err := s.keyring.NewRandomKey()
	if err != nil {
		return nil, fmt.Errorf("session key generation failed: %w", err)
	}

	keyMaterial, wrapped, err := s.keyring.Wrap(key, fpKey)
	if err != nil {
		return nil, fmt.Errorf("wrapping session key failed: %w", err)
	}

	file := models.SessionVaultFile{
		KeyMaterial: keyMaterial,
		WrappedKey:  wrapped,
		CreatedAt:   time.Now(),
	}
	if err := s.files.Store(ctx, id, file); err != nil {
		return nil, fmt.Errorf("storing session vault failed: %w", err)
	}

	return key, nil
}
