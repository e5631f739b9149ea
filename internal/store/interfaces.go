package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-key-vault/models"
)

// UserRepository manages principal records. Account authentication lives in
// external backends; this subsystem only mints a row on first sight of a
// login so master-key records have something to reference.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// MasterKeyRepository stores one wrapped master key per user.
type MasterKeyRepository interface {
	Get(ctx context.Context, userID int64) (models.MasterKeyRecord, error)
	// Save upserts the record; an existing row for the same user is replaced.
	Save(ctx context.Context, record models.MasterKeyRecord) error
	// SaveTx is Save running inside the caller's transaction. Used by
	// rotation so the re-wrap commits or rolls back with the row visits.
	SaveTx(ctx context.Context, tx *sql.Tx, record models.MasterKeyRecord) error
}

// ParamRepository is the generic name/value config store backing the
// verifier hash and rotation bookkeeping.
type ParamRepository interface {
	Get(ctx context.Context, name string) (models.Param, error)
	Set(ctx context.Context, name, value string) error
	SetTx(ctx context.Context, tx *sql.Tx, name, value string) error
	Delete(ctx context.Context, name string) error
}

// EscrowRepository manages the single global escrow row.
type EscrowRepository interface {
	// Replace supersedes whatever record exists with the given one.
	Replace(ctx context.Context, record models.EscrowRecord) error
	Get(ctx context.Context) (models.EscrowRecord, error)
	// IncrementAttempts bumps the failed-redemption counter in a single
	// atomic statement and returns the new value.
	IncrementAttempts(ctx context.Context) (int, error)
	// Delete removes the record; deleting a missing record is not an error.
	Delete(ctx context.Context) error
}

// RotationRow is one re-encryptable row as seen by the rotation pass: only
// the wrapped per-secret key travels, the payload ciphertext stays put.
type RotationRow struct {
	ID          int64
	KeyMaterial []byte
}

// ReencryptableStore is a table of envelope-encrypted rows that must follow
// master-key rotations. Implementations expose only what the rotation pass
// needs: selecting rows behind the target key version and swapping in newly
// wrapped key material.
type ReencryptableStore interface {
	// Name identifies the store in logs and rotation reports.
	Name() string
	// SelectPending returns rows of the user whose key_version is behind
	// target. Rows already at target are skipped, which keeps a retried
	// rotation from double-wrapping.
	SelectPending(ctx context.Context, tx *sql.Tx, userID int64, target int) ([]RotationRow, error)
	// UpdateKeyMaterial replaces a row's wrapped key and stamps the version.
	UpdateKeyMaterial(ctx context.Context, tx *sql.Tx, id int64, keyMaterial []byte, version int) error
	// CountByUser reports how many rows the user owns, for rotation totals.
	CountByUser(ctx context.Context, userID int64) (int, error)
}

// SecretHistoryRepository is the write path for secret history snapshots.
type SecretHistoryRepository interface {
	ReencryptableStore
	Insert(ctx context.Context, record models.SecretHistoryRecord) (int64, error)
}

// CustomFieldRepository is the write path for encrypted custom fields.
type CustomFieldRepository interface {
	ReencryptableStore
	InsertField(ctx context.Context, record models.CustomFieldRecord) (int64, error)
}

// SessionVaultStore persists per-browser-session vault files.
type SessionVaultStore interface {
	Load(ctx context.Context, id string) (models.SessionVaultFile, error)
	// Store writes the vault file atomically (temp file, fsync, rename).
	Store(ctx context.Context, id string, file models.SessionVaultFile) error
	Delete(ctx context.Context, id string) error
	// Sweep removes vault files older than ttl and returns how many went.
	Sweep(ctx context.Context, ttl time.Duration) (int, error)
}
