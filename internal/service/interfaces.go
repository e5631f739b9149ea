package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-key-vault/models"
)

// MasterKeyService owns the master-key lifecycle: first-time installation and
// login-time unlocking. The unlocked key is always installed into a
// caller-supplied [MasterKeyContext]; the service itself never holds key
// state between calls.
type MasterKeyService interface {
	// Install mints the user on first sight, generates a fresh master key,
	// wraps it under the password-derived key, and records the global
	// verifier hash. Installing over an existing master key is rejected.
	Install(ctx context.Context, login, password string) (models.User, error)

	// Unlock recovers the user's master key with the given password and, on
	// success, installs it into keys. The returned status mirrors the
	// outcome: Valid, NotSet (no record), Wrong (envelope authentication
	// failed), Changed (recovered key no longer matches the global
	// verifier). The user record is populated whenever the login resolved.
	// Only infrastructure failures surface as errors.
	Unlock(ctx context.Context, login, password string, keys *MasterKeyContext) (models.MasterPassStatus, models.User, error)
}

// SessionVaultService caches a per-browser-session key in a vault file tied
// to the requester's fingerprint.
type SessionVaultService interface {
	// GetKey returns the session key for the given opaque cookie seed,
	// regenerating the vault file whenever it is absent, expired, unreadable,
	// or sealed for a different fingerprint. Regeneration is silent; only
	// failures persisting a fresh vault are returned.
	GetKey(ctx context.Context, cookieSeed string, fp models.Fingerprint) ([]byte, error)

	// Invalidate removes the vault file for the given cookie seed.
	Invalidate(ctx context.Context, cookieSeed string) error
}

// EscrowService manages the single global temporary escrow of the master key.
type EscrowService interface {
	// Create supersedes any active escrow with a fresh one and returns the
	// escrow key exactly once. Requires a populated MasterKeyContext.
	Create(ctx context.Context, keys *MasterKeyContext, validity time.Duration) (string, time.Time, error)

	// Redeem exchanges a candidate escrow key for the master key. Misses
	// burn one attempt atomically; the budget and expiry are enforced before
	// the key is ever checked.
	Redeem(ctx context.Context, candidate string) ([]byte, error)

	// Expire removes the active escrow. Idempotent.
	Expire(ctx context.Context) error

	// SendByEmail mails the escrow key to the recipients. Fire-and-forget:
	// delivery failures are logged, never returned.
	SendByEmail(ctx context.Context, recipients []string, escrowKey string, expiresAt time.Time)
}

// RotationService re-keys the installation under a new master password.
type RotationService interface {
	// Rotate verifies the current password, mints a new master key, re-wraps
	// the user's record and every registered re-encryptable row, and persists
	// the new verifier. Steps after verification run in one transaction; any
	// failure rolls everything back while the report still carries the row
	// counts reached.
	Rotate(ctx context.Context, login, currentPassword, newPassword string) (models.RotationReport, error)

	// InProgress reports whether a rotation is currently running, letting
	// login and write paths fail fast.
	InProgress() bool
}

// AuthService issues and validates the bearer tokens protecting the
// administrative HTTP surface.
type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MailSender posts messages to the outbound mail relay.
type MailSender interface {
	SendBatch(ctx context.Context, messages []models.MailMessage) error
}
