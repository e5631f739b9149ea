// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
)

const escrowTestAttempts = 50

type escrowFixture struct {
	svc     EscrowService
	escrows *fakeEscrowRepo
	keyring crypto.KeyRingService
	mail    *fakeMailSender
	keys    *MasterKeyContext
	master  []byte
}

func newEscrowFixture(t *testing.T) *escrowFixture {
	t.Helper()

	f := &escrowFixture{
		escrows: newFakeEscrowRepo(),
		keyring: crypto.NewKeyRingService(),
		mail:    &fakeMailSender{},
	}
	f.svc = NewEscrowService(f.escrows, f.keyring, f.mail, []byte("test-salt"), escrowTestAttempts, logger.Nop())

	master, err := f.keyring.NewRandomKey()
	require.NoError(t, err)
	f.master = master
	f.keys = NewMasterKeyContext()
	f.keys.Set(master)

	return f
}

func TestEscrowService_CreateAndRedeem(t *testing.T) {
	f := newEscrowFixture(t)
	ctx := context.Background()

	escrowKey, expiresAt, err := f.svc.Create(ctx, f.keys, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, escrowKey)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	recovered, err := f.svc.Redeem(ctx, escrowKey)
	require.NoError(t, err)
	assert.Equal(t, f.master, recovered)
}

func TestEscrowService_CreateRequiresUnlockedKey(t *testing.T) {
	f := newEscrowFixture(t)

	_, _, err := f.svc.Create(context.Background(), NewMasterKeyContext(), time.Hour)
	assert.ErrorIs(t, err, ErrMasterKeyNotUnlocked)
}

func TestEscrowService_RedeemWrongKeyBurnsAttempt(t *testing.T) {
	f := newEscrowFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.Create(ctx, f.keys, time.Hour)
	require.NoError(t, err)

	_, err = f.svc.Redeem(ctx, "not-the-escrow-key")
	assert.ErrorIs(t, err, ErrEscrowInvalidKey)
	assert.Equal(t, 1, f.escrows.record.Attempts)

	_, err = f.svc.Redeem(ctx, "still-not-it")
	assert.ErrorIs(t, err, ErrEscrowInvalidKey)
	assert.Equal(t, 2, f.escrows.record.Attempts)
}

func TestEscrowService_LockoutBeatsCorrectKey(t *testing.T) {
	f := newEscrowFixture(t)
	ctx := context.Background()

	escrowKey, _, err := f.svc.Create(ctx, f.keys, time.Hour)
	require.NoError(t, err)

	// The budget is spent. Even the genuine key must be refused: the
	// attempt count is checked before the candidate is ever compared.
	f.escrows.record.Attempts = escrowTestAttempts

	_, err = f.svc.Redeem(ctx, escrowKey)
	assert.ErrorIs(t, err, ErrEscrowLockedOut)
	assert.Equal(t, escrowTestAttempts, f.escrows.record.Attempts)
}

func TestEscrowService_ExpiryBeatsCorrectKey(t *testing.T) {
	f := newEscrowFixture(t)
	ctx := context.Background()

	escrowKey, _, err := f.svc.Create(ctx, f.keys, time.Hour)
	require.NoError(t, err)

	f.escrows.record.ExpiresAt = time.Now().Add(-time.Second)

	_, err = f.svc.Redeem(ctx, escrowKey)
	assert.ErrorIs(t, err, ErrEscrowExpired)
}

func TestEscrowService_RedeemWithoutEscrow(t *testing.T) {
	f := newEscrowFixture(t)

	_, err := f.svc.Redeem(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrEscrowExpired)
}

func TestEscrowService_CreateSupersedes(t *testing.T) {
	f := newEscrowFixture(t)
	ctx := context.Background()

	firstKey, _, err := f.svc.Create(ctx, f.keys, time.Hour)
	require.NoError(t, err)

	// Burn a few attempts, then supersede.
	_, _ = f.svc.Redeem(ctx, "miss")
	_, _ = f.svc.Redeem(ctx, "miss")

	secondKey, _, err := f.svc.Create(ctx, f.keys, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, firstKey, secondKey)
	assert.Equal(t, 0, f.escrows.record.Attempts)

	// The superseded key is dead, the fresh one works.
	_, err = f.svc.Redeem(ctx, firstKey)
	assert.ErrorIs(t, err, ErrEscrowInvalidKey)

	recovered, err := f.svc.Redeem(ctx, secondKey)
	require.NoError(t, err)
	assert.Equal(t, f.master, recovered)
}

func TestEscrowService_ExpireIsIdempotent(t *testing.T) {
	f := newEscrowFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.Create(ctx, f.keys, time.Hour)
	require.NoError(t, err)

	require.NoError(t, f.svc.Expire(ctx))
	require.NoError(t, f.svc.Expire(ctx))

	_, err = f.svc.Redeem(ctx, "anything")
	assert.ErrorIs(t, err, ErrEscrowExpired)
}

func TestEscrowService_SendByEmail(t *testing.T) {
	f := newEscrowFixture(t)
	ctx := context.Background()

	expiresAt := time.Now().Add(time.Hour)
	f.svc.SendByEmail(ctx, []string{"ops@example.com", "admin@example.com"}, "the-escrow-key", expiresAt)

	require.Len(t, f.mail.sent, 2)
	assert.Equal(t, "ops@example.com", f.mail.sent[0].To)
	assert.Contains(t, f.mail.sent[0].Body, "the-escrow-key")
	assert.Contains(t, f.mail.sent[0].Body, expiresAt.Format(time.RFC3339))
	assert.True(t, strings.EqualFold(f.mail.sent[0].Subject, "master key escrow"))
}

func TestEscrowService_SendByEmailSwallowsDeliveryError(t *testing.T) {
	f := newEscrowFixture(t)
	f.mail.err = errors.New("relay unreachable")

	// Must not panic and must not surface the error anywhere.
	f.svc.SendByEmail(context.Background(), []string{"ops@example.com"}, "key", time.Now())
	assert.Empty(t, f.mail.sent)
}
