// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/models"
)

// txRunner is the slice of the database handle the rotation needs. Satisfied
// by [store.DB].
type txRunner interface {
	WithinTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error
}

// rotationService implements [RotationService]. A rotation mints a brand new
// master key, re-wraps the user's record under the new password, and walks
// every registered re-encryptable store moving each row's wrapped key
// material from the old master key to the new one. The payload ciphertext of
// those rows never moves.
type rotationService struct {
	db         txRunner
	users      store.UserRepository
	masterKeys store.MasterKeyRepository
	params     store.ParamRepository
	stores     []store.ReencryptableStore
	keyring    crypto.KeyRingService
	salt       []byte
	logger     *logger.Logger

	// mu serializes rotations. TryLock lets concurrent callers fail fast
	// instead of queueing behind a long re-encryption pass.
	mu sync.Mutex
}

// NewRotationService constructs a [RotationService] over the given
// re-encryptable stores.
func NewRotationService(
	db txRunner,
	users store.UserRepository,
	masterKeys store.MasterKeyRepository,
	params store.ParamRepository,
	stores []store.ReencryptableStore,
	keyring crypto.KeyRingService,
	salt []byte,
	logger *logger.Logger,
) RotationService {
	return &rotationService{
		db:         db,
		users:      users,
		masterKeys: masterKeys,
		params:     params,
		stores:     stores,
		keyring:    keyring,
		salt:       salt,
		logger:     logger,
	}
}

// InProgress implements [RotationService].
func (s *rotationService) InProgress() bool {
	if s.mu.TryLock() {
		s.mu.Unlock()
		return false
	}
	return true
}

// Rotate implements [RotationService].
func (s *rotationService) Rotate(ctx context.Context, login, currentPassword, newPassword string) (models.RotationReport, error) {
	log := logger.FromContext(ctx)

	if login == "" || currentPassword == "" || newPassword == "" {
		return models.RotationReport{}, ErrInvalidDataProvided
	}
	if currentPassword == newPassword {
		return models.RotationReport{}, ErrInvalidDataProvided
	}

	if !s.mu.TryLock() {
		return models.RotationReport{}, ErrRotationInProgress
	}
	defer s.mu.Unlock()

	user, err := s.users.FindUserByLogin(ctx, login)
	if err != nil {
		return models.RotationReport{}, fmt.Errorf("user search by login failed: %w", err)
	}

	oldMaster, err := s.recoverMasterKey(ctx, user.UserID, login, currentPassword)
	if err != nil {
		return models.RotationReport{}, err
	}
	defer zero(oldMaster)

	newMaster, err := s.keyring.NewRandomKey()
	if err != nil {
		return models.RotationReport{}, fmt.Errorf("master key generation failed: %w", err)
	}
	defer zero(newMaster)

	target, err := s.targetVersion(ctx)
	if err != nil {
		return models.RotationReport{}, err
	}

	newVerifier, err := s.keyring.VerifierHash(newMaster)
	if err != nil {
		return models.RotationReport{}, fmt.Errorf("verifier hash failed: %w", err)
	}

	total, err := s.countRows(ctx, user.UserID)
	if err != nil {
		return models.RotationReport{}, err
	}

	rotatedAt := time.Now()
	report := models.RotationReport{}

	txErr := s.db.WithinTransaction(ctx, func(tx *sql.Tx) error {
		// Counts restart on retry; only the final attempt's progress is
		// reported.
		report = models.RotationReport{}

		if err := s.saveMasterRecordTx(ctx, tx, user.UserID, newMaster, login, newPassword, rotatedAt); err != nil {
			return err
		}

		for _, st := range s.stores {
			if err := s.rewrapStore(ctx, tx, st, user.UserID, target, oldMaster, newMaster, &report); err != nil {
				return err
			}
		}

		if err := s.params.SetTx(ctx, tx, models.ParamMasterVerifier, newVerifier); err != nil {
			return fmt.Errorf("saving verifier failed: %w", err)
		}
		if err := s.params.SetTx(ctx, tx, models.ParamLastRotation, rotatedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("saving rotation timestamp failed: %w", err)
		}
		if err := s.params.SetTx(ctx, tx, models.ParamKeyVersion, strconv.Itoa(target)); err != nil {
			return fmt.Errorf("saving key version failed: %w", err)
		}

		return nil
	})
	if txErr != nil {
		report.Failed = total - report.Succeeded
		log.Err(txErr).
			Int("succeeded", report.Succeeded).
			Int("failed", report.Failed).
			Msg("rotation rolled back")
		return report, fmt.Errorf("rotation failed: %w", txErr)
	}

	report.VerifierHash = newVerifier
	report.RotatedAt = rotatedAt
	log.Info().
		Int("succeeded", report.Succeeded).
		Int("keyVersion", target).
		Msg("rotation completed")
	return report, nil
}

// recoverMasterKey unwraps the user's current master key with the supplied
// password and checks it against the installation verifier. Any
// cryptographic mismatch maps to [ErrWrongMasterPassword].
func (s *rotationService) recoverMasterKey(ctx context.Context, userID int64, login, password string) ([]byte, error) {
	record, err := s.masterKeys.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("master key lookup failed: %w", err)
	}

	derived := s.keyring.Derive(login, password, s.salt)
	defer zero(derived)

	var masterKey []byte
	switch record.WrapScheme {
	case models.WrapSchemeEnvelopeV1:
		masterKey, err = s.keyring.Unwrap(record.WrappedMasterKey, record.KeyMaterial, derived)
	case models.WrapSchemeLegacyV0:
		masterKey, err = s.keyring.UnwrapDirect(record.WrappedMasterKey, derived)
	default:
		return nil, fmt.Errorf("%w: unknown wrap scheme %q", crypto.ErrCorruptData, record.WrapScheme)
	}
	if errors.Is(err, crypto.ErrAuthentication) {
		return nil, ErrWrongMasterPassword
	}
	if err != nil {
		return nil, fmt.Errorf("unwrapping master key failed: %w", err)
	}

	param, err := s.params.Get(ctx, models.ParamMasterVerifier)
	if err == nil && !s.keyring.VerifyHash(param.Value, masterKey) {
		zero(masterKey)
		return nil, ErrWrongMasterPassword
	}
	if err != nil && !errors.Is(err, store.ErrParamNotFound) {
		zero(masterKey)
		return nil, fmt.Errorf("verifier lookup failed: %w", err)
	}

	return masterKey, nil
}

// targetVersion reads the current key generation and returns the next one.
// A missing param means no rotation ever ran; the first target is 1.
func (s *rotationService) targetVersion(ctx context.Context) (int, error) {
	param, err := s.params.Get(ctx, models.ParamKeyVersion)
	if errors.Is(err, store.ErrParamNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("key version lookup failed: %w", err)
	}

	current, err := strconv.Atoi(param.Value)
	if err != nil {
		return 0, fmt.Errorf("malformed key version %q: %w", param.Value, err)
	}

	return current + 1, nil
}

func (s *rotationService) countRows(ctx context.Context, userID int64) (int, error) {
	total := 0
	for _, st := range s.stores {
		n, err := st.CountByUser(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("counting rows of %s failed: %w", st.Name(), err)
		}
		total += n
	}
	return total, nil
}

func (s *rotationService) saveMasterRecordTx(ctx context.Context, tx *sql.Tx, userID int64, masterKey []byte, login, password string, rotatedAt time.Time) error {
	derived := s.keyring.Derive(login, password, s.salt)
	defer zero(derived)

	keyMaterial, wrapped, err := s.keyring.Wrap(masterKey, derived)
	if err != nil {
		return fmt.Errorf("wrapping master key failed: %w", err)
	}

	record := models.MasterKeyRecord{
		UserID:           userID,
		WrappedMasterKey: wrapped,
		KeyMaterial:      keyMaterial,
		WrapScheme:       models.WrapSchemeEnvelopeV1,
		LastRotated:      rotatedAt,
	}
	if err := s.masterKeys.SaveTx(ctx, tx, record); err != nil {
		return fmt.Errorf("saving master key record failed: %w", err)
	}

	return nil
}

// rewrapStore moves every pending row of one store from oldMaster to
// newMaster. Rows already stamped with the target version are not selected,
// so a retried rotation never touches them twice.
func (s *rotationService) rewrapStore(ctx context.Context, tx *sql.Tx, st store.ReencryptableStore, userID int64, target int, oldMaster, newMaster []byte, report *models.RotationReport) error {
	rows, err := st.SelectPending(ctx, tx, userID, target)
	if err != nil {
		return fmt.Errorf("selecting pending rows of %s failed: %w", st.Name(), err)
	}

	for _, row := range rows {
		keyMaterial, err := s.keyring.RewrapKey(row.KeyMaterial, oldMaster, newMaster)
		if err != nil {
			return fmt.Errorf("re-wrapping row %d of %s failed: %w", row.ID, st.Name(), err)
		}
		if err := st.UpdateKeyMaterial(ctx, tx, row.ID, keyMaterial, target); err != nil {
			return fmt.Errorf("updating row %d of %s failed: %w", row.ID, st.Name(), err)
		}
		report.Succeeded++
	}

	return nil
}
