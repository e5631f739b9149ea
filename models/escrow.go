package models

import "time"

// EscrowRecord is the single, global temporary-escrow row: a time-boxed,
// attempt-limited wrapping of the master key under a disposable escrow key.
// At most one record is active at a time; creating a new one supersedes the
// old row entirely.
type EscrowRecord struct {
	// WrappedMasterKey is the master key encrypted under the per-record key.
	WrappedMasterKey []byte `json:"-"`

	// KeyMaterial is the per-record key wrapped under the key derived from
	// the escrow key string.
	KeyMaterial []byte `json:"-"`

	// VerifierHash is the slow, salted hash of the escrow key used to check
	// redemption candidates without storing the key itself.
	VerifierHash string `json:"-"`

	// CreatedAt is the escrow creation time.
	CreatedAt time.Time `json:"-"`

	// ExpiresAt is the end of the validity window; redemption after this
	// instant fails regardless of the candidate key.
	ExpiresAt time.Time `json:"-"`

	// Attempts counts failed redemptions. Incremented atomically in the
	// store; once it reaches the configured limit the record is dead.
	Attempts int `json:"-"`
}

// TableName returns the name of the database table
// associated with the EscrowRecord model.
func (e EscrowRecord) TableName() string {
	return "escrow"
}

// Expired reports whether the validity window has closed at the given instant.
func (e EscrowRecord) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
