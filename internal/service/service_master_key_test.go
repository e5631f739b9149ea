// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

type masterKeyFixture struct {
	svc        MasterKeyService
	users      *fakeUserRepo
	masterKeys *fakeMasterKeyRepo
	params     *fakeParamRepo
	keyring    crypto.KeyRingService
	guard      *fakeRotationGuard
	salt       []byte
}

func newMasterKeyFixture(t *testing.T) *masterKeyFixture {
	t.Helper()

	f := &masterKeyFixture{
		users:      newFakeUserRepo(),
		masterKeys: newFakeMasterKeyRepo(),
		params:     newFakeParamRepo(),
		keyring:    crypto.NewKeyRingService(),
		guard:      &fakeRotationGuard{},
		salt:       []byte("test-installation-salt"),
	}
	f.svc = NewMasterKeyService(f.users, f.masterKeys, f.params, f.keyring, f.guard, f.salt, logger.Nop())
	return f
}

func TestMasterKeyService_InstallAndUnlock(t *testing.T) {
	f := newMasterKeyFixture(t)
	ctx := context.Background()

	user, err := f.svc.Install(ctx, "alice", "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.NotZero(t, user.UserID)

	record, err := f.masterKeys.Get(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.WrapSchemeEnvelopeV1, record.WrapScheme)
	assert.NotEmpty(t, record.KeyMaterial)

	keys := NewMasterKeyContext()
	status, unlockedUser, err := f.svc.Unlock(ctx, "alice", "correct horse battery staple", keys)
	require.NoError(t, err)
	assert.Equal(t, models.StatusValid, status)
	assert.Equal(t, user.UserID, unlockedUser.UserID)

	key, ok := keys.Get()
	require.True(t, ok)
	assert.Len(t, key, 32)

	// A second unlock with the same password recovers the same key.
	keys2 := NewMasterKeyContext()
	status, _, err = f.svc.Unlock(ctx, "alice", "correct horse battery staple", keys2)
	require.NoError(t, err)
	require.Equal(t, models.StatusValid, status)
	key2, ok := keys2.Get()
	require.True(t, ok)
	assert.Equal(t, key, key2)
}

func TestMasterKeyService_UnlockWrongPassword(t *testing.T) {
	f := newMasterKeyFixture(t)
	ctx := context.Background()

	_, err := f.svc.Install(ctx, "alice", "right password")
	require.NoError(t, err)

	keys := NewMasterKeyContext()
	status, _, err := f.svc.Unlock(ctx, "alice", "wrong password", keys)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWrong, status)

	_, ok := keys.Get()
	assert.False(t, ok)
}

func TestMasterKeyService_UnlockUnknownLogin(t *testing.T) {
	f := newMasterKeyFixture(t)

	keys := NewMasterKeyContext()
	status, _, err := f.svc.Unlock(context.Background(), "nobody", "whatever", keys)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotSet, status)
}

func TestMasterKeyService_UnlockNoRecordYet(t *testing.T) {
	f := newMasterKeyFixture(t)
	ctx := context.Background()

	// User exists but never installed a master key.
	_, err := f.users.CreateUser(ctx, models.User{Login: "bob"})
	require.NoError(t, err)

	keys := NewMasterKeyContext()
	status, _, err := f.svc.Unlock(ctx, "bob", "whatever", keys)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotSet, status)
}

func TestMasterKeyService_InstallTwice(t *testing.T) {
	f := newMasterKeyFixture(t)
	ctx := context.Background()

	_, err := f.svc.Install(ctx, "alice", "first password")
	require.NoError(t, err)

	_, err = f.svc.Install(ctx, "alice", "second password")
	assert.ErrorIs(t, err, ErrMasterKeyAlreadySet)
}

func TestMasterKeyService_UnlockVerifierMismatch(t *testing.T) {
	f := newMasterKeyFixture(t)
	ctx := context.Background()

	_, err := f.svc.Install(ctx, "alice", "password")
	require.NoError(t, err)

	// Another node rotated the master key: the stored verifier no longer
	// matches the key this record unwraps to.
	otherKey, err := f.keyring.NewRandomKey()
	require.NoError(t, err)
	verifier, err := f.keyring.VerifierHash(otherKey)
	require.NoError(t, err)
	require.NoError(t, f.params.Set(ctx, models.ParamMasterVerifier, verifier))

	keys := NewMasterKeyContext()
	status, _, err := f.svc.Unlock(ctx, "alice", "password", keys)
	require.NoError(t, err)
	assert.Equal(t, models.StatusChanged, status)

	_, ok := keys.Get()
	assert.False(t, ok)
}

func TestMasterKeyService_LegacyRecordUpgradedOnUnlock(t *testing.T) {
	f := newMasterKeyFixture(t)
	ctx := context.Background()

	user, err := f.users.CreateUser(ctx, models.User{Login: "alice"})
	require.NoError(t, err)

	masterKey, err := f.keyring.NewRandomKey()
	require.NoError(t, err)

	derived := f.keyring.Derive("alice", "password", f.salt)
	require.NoError(t, f.masterKeys.Save(ctx, models.MasterKeyRecord{
		UserID:           user.UserID,
		WrappedMasterKey: gcmSeal(t, masterKey, derived),
		WrapScheme:       models.WrapSchemeLegacyV0,
	}))

	verifier, err := f.keyring.VerifierHash(masterKey)
	require.NoError(t, err)
	require.NoError(t, f.params.Set(ctx, models.ParamMasterVerifier, verifier))

	keys := NewMasterKeyContext()
	status, _, err := f.svc.Unlock(ctx, "alice", "password", keys)
	require.NoError(t, err)
	require.Equal(t, models.StatusValid, status)

	recovered, ok := keys.Get()
	require.True(t, ok)
	assert.Equal(t, masterKey, recovered)

	record, err := f.masterKeys.Get(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.WrapSchemeEnvelopeV1, record.WrapScheme)
	assert.NotEmpty(t, record.KeyMaterial)

	// The upgraded record still unlocks with the same password.
	keys2 := NewMasterKeyContext()
	status, _, err = f.svc.Unlock(ctx, "alice", "password", keys2)
	require.NoError(t, err)
	require.Equal(t, models.StatusValid, status)
	recovered2, ok := keys2.Get()
	require.True(t, ok)
	assert.Equal(t, masterKey, recovered2)
}

func TestMasterKeyService_UnknownWrapScheme(t *testing.T) {
	f := newMasterKeyFixture(t)
	ctx := context.Background()

	user, err := f.users.CreateUser(ctx, models.User{Login: "alice"})
	require.NoError(t, err)
	require.NoError(t, f.masterKeys.Save(ctx, models.MasterKeyRecord{
		UserID:           user.UserID,
		WrappedMasterKey: []byte("blob"),
		WrapScheme:       models.WrapScheme("envelope-v9"),
	}))

	keys := NewMasterKeyContext()
	_, _, err = f.svc.Unlock(ctx, "alice", "password", keys)
	assert.ErrorIs(t, err, crypto.ErrCorruptData)
}

func TestMasterKeyService_UnlockDuringRotation(t *testing.T) {
	f := newMasterKeyFixture(t)
	f.guard.inProgress = true

	keys := NewMasterKeyContext()
	_, _, err := f.svc.Unlock(context.Background(), "alice", "password", keys)
	assert.ErrorIs(t, err, ErrRotationInProgress)
}

func TestMasterKeyService_InvalidInput(t *testing.T) {
	f := newMasterKeyFixture(t)
	ctx := context.Background()

	_, err := f.svc.Install(ctx, "", "password")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = f.svc.Install(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, _, err = f.svc.Unlock(ctx, "alice", "password", nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// gcmSeal encrypts plaintext directly under key, producing the nonce-prefixed
// blob layout of pre-envelope records.
func gcmSeal(t *testing.T, plaintext, key []byte) []byte {
	t.Helper()

	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	nonce := make([]byte, gcm.NonceSize())
	_, err = io.ReadFull(rand.Reader, nonce)
	require.NoError(t, err)

	return append(nonce, gcm.Seal(nil, nonce, plaintext, nil)...)
}
