// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/models"
)

// masterKeyService is the concrete implementation of [MasterKeyService].
//
// The master key exists in cleartext only inside this service's call frames
// and in the [MasterKeyContext] the caller supplies. It is never persisted,
// never logged, and never returned except through that context.
type masterKeyService struct {
	users      store.UserRepository
	masterKeys store.MasterKeyRepository
	params     store.ParamRepository
	keyring    crypto.KeyRingService

	// rotation lets unlocks fail fast while a rotation is rewriting records.
	rotation RotationService

	// salt is the per-installation derivation salt.
	salt []byte

	logger *logger.Logger
}

// NewMasterKeyService constructs a [MasterKeyService].
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewMasterKeyService(
	users store.UserRepository,
	masterKeys store.MasterKeyRepository,
	params store.ParamRepository,
	keyring crypto.KeyRingService,
	rotation RotationService,
	salt []byte,
	logger *logger.Logger,
) MasterKeyService {
	return &masterKeyService{
		users:      users,
		masterKeys: masterKeys,
		params:     params,
		keyring:    keyring,
		rotation:   rotation,
		salt:       salt,
		logger:     logger,
	}
}

// Install implements [MasterKeyService]. It mints the user row if the login
// is unknown, generates a fresh random master key, wraps it under the
// password-derived key, and stores the installation verifier.
func (s *masterKeyService) Install(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.users.FindUserByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		user, err = s.users.CreateUser(ctx, models.User{Login: login})
	}
	if err != nil {
		log.Err(err).Str("login", login).Msg("user lookup/creation failed")
		return models.User{}, fmt.Errorf("user lookup/creation failed: %w", err)
	}

	if _, err := s.masterKeys.Get(ctx, user.UserID); err == nil {
		return models.User{}, ErrMasterKeyAlreadySet
	} else if !errors.Is(err, store.ErrMasterKeyNotFound) {
		return models.User{}, fmt.Errorf("master key lookup failed: %w", err)
	}

	masterKey, err := s.keyring.NewRandomKey()
	if err != nil {
		return models.User{}, fmt.Errorf("master key generation failed: %w", err)
	}
	defer zero(masterKey)

	if err := s.wrapAndSave(ctx, user.UserID, masterKey, login, password); err != nil {
		return models.User{}, err
	}

	verifier, err := s.keyring.VerifierHash(masterKey)
	if err != nil {
		return models.User{}, fmt.Errorf("verifier hash failed: %w", err)
	}
	if err := s.params.Set(ctx, models.ParamMasterVerifier, verifier); err != nil {
		return models.User{}, fmt.Errorf("saving verifier failed: %w", err)
	}

	log.Info().Int64("userID", user.UserID).Msg("master key installed")
	return user, nil
}

// Unlock implements [MasterKeyService]. All cryptographic outcomes map to a
// status; only infrastructure failures become errors.
func (s *masterKeyService) Unlock(ctx context.Context, login, password string, keys *MasterKeyContext) (models.MasterPassStatus, models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" || keys == nil {
		return "", models.User{}, ErrInvalidDataProvided
	}
	if s.rotation != nil && s.rotation.InProgress() {
		return "", models.User{}, ErrRotationInProgress
	}

	user, err := s.users.FindUserByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.StatusNotSet, models.User{}, nil
	}
	if err != nil {
		return "", models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	record, err := s.masterKeys.Get(ctx, user.UserID)
	if errors.Is(err, store.ErrMasterKeyNotFound) {
		return models.StatusNotSet, user, nil
	}
	if err != nil {
		return "", user, fmt.Errorf("master key lookup failed: %w", err)
	}

	derived := s.keyring.Derive(login, password, s.salt)
	defer zero(derived)

	masterKey, upgraded, err := s.unwrapRecord(record, derived)
	if errors.Is(err, crypto.ErrAuthentication) {
		log.Warn().Int64("userID", user.UserID).Msg("unlock failed envelope authentication")
		return models.StatusWrong, user, nil
	}
	if err != nil {
		return "", user, fmt.Errorf("unwrapping master key failed: %w", err)
	}
	defer zero(masterKey)

	if status, err := s.checkVerifier(ctx, masterKey); status != models.StatusValid || err != nil {
		return status, user, err
	}

	// Legacy records are re-wrapped in the current scheme after the first
	// successful unlock.
	if upgraded {
		if err := s.wrapAndSave(ctx, user.UserID, masterKey, login, password); err != nil {
			log.Err(err).Int64("userID", user.UserID).Msg("legacy record upgrade failed")
			return "", user, err
		}
		log.Info().Int64("userID", user.UserID).Msg("legacy master key record upgraded")
	}

	keys.Set(masterKey)
	return models.StatusValid, user, nil
}

// unwrapRecord dispatches on the record's explicit scheme discriminant. The
// second return value reports whether the record needs a format upgrade.
func (s *masterKeyService) unwrapRecord(record models.MasterKeyRecord, derived []byte) ([]byte, bool, error) {
	switch record.WrapScheme {
	case models.WrapSchemeEnvelopeV1:
		masterKey, err := s.keyring.Unwrap(record.WrappedMasterKey, record.KeyMaterial, derived)
		return masterKey, false, err
	case models.WrapSchemeLegacyV0:
		masterKey, err := s.keyring.UnwrapDirect(record.WrappedMasterKey, derived)
		return masterKey, err == nil, err
	default:
		return nil, false, fmt.Errorf("%w: unknown wrap scheme %q", crypto.ErrCorruptData, record.WrapScheme)
	}
}

// checkVerifier compares the recovered key against the installation
// verifier. A missing verifier (fresh installation mid-setup) passes.
func (s *masterKeyService) checkVerifier(ctx context.Context, masterKey []byte) (models.MasterPassStatus, error) {
	param, err := s.params.Get(ctx, models.ParamMasterVerifier)
	if errors.Is(err, store.ErrParamNotFound) {
		return models.StatusValid, nil
	}
	if err != nil {
		return "", fmt.Errorf("verifier lookup failed: %w", err)
	}

	if !s.keyring.VerifyHash(param.Value, masterKey) {
		return models.StatusChanged, nil
	}

	return models.StatusValid, nil
}

func (s *masterKeyService) wrapAndSave(ctx context.Context, userID int64, masterKey []byte, login, password string) error {
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
		LastRotated:      time.Now(),
	}
	if err := s.masterKeys.Save(ctx, record); err != nil {
		return fmt.Errorf("saving master key record failed: %w", err)
	}

	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
