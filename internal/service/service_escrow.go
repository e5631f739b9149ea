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

// escrowDeriveLogin is the fixed login component used when deriving the
// escrow wrapping key. Escrow keys are not tied to a user, so the login slot
// carries a constant domain-separation string instead.
const escrowDeriveLogin = "escrow"

// escrowService implements [EscrowService] over the single global escrow row.
type escrowService struct {
	escrows     store.EscrowRepository
	keyring     crypto.KeyRingService
	mail        MailSender
	salt        []byte
	maxAttempts int
	logger      *logger.Logger
}

// NewEscrowService constructs an [EscrowService]. maxAttempts is the failed
// redemption budget; once reached the active record is dead until superseded.
func NewEscrowService(escrows store.EscrowRepository, keyring crypto.KeyRingService, mail MailSender, salt []byte, maxAttempts int, logger *logger.Logger) EscrowService {
	return &escrowService{
		escrows:     escrows,
		keyring:     keyring,
		mail:        mail,
		salt:        salt,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Create implements [EscrowService]. Any previously active escrow is
// superseded: the row is replaced whole, attempts reset to zero.
func (s *escrowService) Create(ctx context.Context, keys *MasterKeyContext, validity time.Duration) (string, time.Time, error) {
	log := logger.FromContext(ctx)

	if keys == nil || validity <= 0 {
		return "", time.Time{}, ErrInvalidDataProvided
	}

	masterKey, ok := keys.Get()
	if !ok {
		return "", time.Time{}, ErrMasterKeyNotUnlocked
	}
	defer zero(masterKey)

	escrowKey, err := s.keyring.NewEscrowKey()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("escrow key generation failed: %w", err)
	}

	outer := s.keyring.Derive(escrowDeriveLogin, escrowKey, s.salt)
	defer zero(outer)

	keyMaterial, wrapped, err := s.keyring.Wrap(masterKey, outer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("wrapping master key for escrow failed: %w", err)
	}

	verifier, err := s.keyring.VerifierHash([]byte(escrowKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("escrow verifier hash failed: %w", err)
	}

	now := time.Now()
	record := models.EscrowRecord{
		WrappedMasterKey: wrapped,
		KeyMaterial:      keyMaterial,
		VerifierHash:     verifier,
		CreatedAt:        now,
		ExpiresAt:        now.Add(validity),
		Attempts:         0,
	}
	if err := s.escrows.Replace(ctx, record); err != nil {
		return "", time.Time{}, fmt.Errorf("saving escrow record failed: %w", err)
	}

	log.Info().Time("expiresAt", record.ExpiresAt).Msg("escrow created")
	return escrowKey, record.ExpiresAt, nil
}

// Redeem implements [EscrowService]. Expiry and the attempt budget are
// checked before the candidate key is ever compared, so a correct key cannot
// resurrect a dead escrow.
func (s *escrowService) Redeem(ctx context.Context, candidate string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if candidate == "" {
		return nil, ErrInvalidDataProvided
	}

	record, err := s.escrows.Get(ctx)
	if errors.Is(err, store.ErrEscrowNotFound) {
		return nil, ErrEscrowExpired
	}
	if err != nil {
		return nil, fmt.Errorf("escrow lookup failed: %w", err)
	}

	if record.Expired(time.Now()) {
		return nil, ErrEscrowExpired
	}
	if record.Attempts >= s.maxAttempts {
		return nil, ErrEscrowLockedOut
	}

	if !s.keyring.VerifyHash(record.VerifierHash, []byte(candidate)) {
		attempts, err := s.escrows.IncrementAttempts(ctx)
		if err != nil {
			return nil, fmt.Errorf("recording failed escrow attempt failed: %w", err)
		}
		log.Warn().Int("attempts", attempts).Msg("escrow redemption rejected")
		return nil, ErrEscrowInvalidKey
	}

	outer := s.keyring.Derive(escrowDeriveLogin, candidate, s.salt)
	defer zero(outer)

	masterKey, err := s.keyring.Unwrap(record.WrappedMasterKey, record.KeyMaterial, outer)
	if err != nil {
		// Verifier matched but the envelope did not open: the record is
		// damaged, not the candidate.
		return nil, fmt.Errorf("unwrapping escrowed master key failed: %w", err)
	}

	log.Info().Msg("escrow redeemed")
	return masterKey, nil
}

// Expire implements [EscrowService].
func (s *escrowService) Expire(ctx context.Context) error {
	if err := s.escrows.Delete(ctx); err != nil {
		return fmt.Errorf("deleting escrow record failed: %w", err)
	}

	return nil
}

// SendByEmail implements [EscrowService]. Delivery failures are logged and
// swallowed; the escrow key was already returned to the caller and mail is
// best effort.
func (s *escrowService) SendByEmail(ctx context.Context, recipients []string, escrowKey string, expiresAt time.Time) {
	log := logger.FromContext(ctx)

	if len(recipients) == 0 {
		return
	}
	if s.mail == nil {
		log.Warn().Int("recipients", len(recipients)).Msg("mail relay disabled, escrow key not distributed")
		return
	}

	body := fmt.Sprintf(
		"A temporary master key escrow was created.\n\nEscrow key: %s\nValid until: %s\n\nRedeem it before expiry; after %d failed attempts the escrow locks permanently.",
		escrowKey, expiresAt.Format(time.RFC3339), s.maxAttempts,
	)

	messages := make([]models.MailMessage, 0, len(recipients))
	for _, to := range recipients {
		messages = append(messages, models.MailMessage{
			To:      to,
			Subject: "Master key escrow",
			Body:    body,
		})
	}

	if err := s.mail.SendBatch(ctx, messages); err != nil {
		log.Err(err).Int("recipients", len(recipients)).Msg("sending escrow mail failed")
	}
}
