package models

import "time"

// Fingerprint ties a cached session key to the browser and network context
// the session was opened from. A change in either field silently invalidates
// the cached key; that is intended behavior, not an error.
type Fingerprint struct {
	// UserAgent is the raw User-Agent header of the request.
	UserAgent string

	// RemoteAddr is the client network address (host part only).
	RemoteAddr string
}

// SessionVaultFile is the on-disk representation of one browser session's
// cached encryption key. The key inside is envelope-wrapped under a key
// derived from the request fingerprint, so theft of the file alone is not
// enough to recover it.
type SessionVaultFile struct {
	// KeyMaterial is the per-file key wrapped under the fingerprint-derived key.
	KeyMaterial []byte `json:"key_material"`

	// WrappedKey is the session key encrypted under the per-file key.
	WrappedKey []byte `json:"wrapped_key"`

	// CreatedAt is the file creation time; files older than the configured
	// TTL are discarded and regenerated.
	CreatedAt time.Time `json:"created_at"`
}
