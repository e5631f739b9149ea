package crypto

import "errors"

// Sentinel errors returned by envelope operations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrAuthentication is returned when an unwrap is attempted with a key
	// that does not match the one used to wrap. Recoverable: the caller
	// re-prompts for credentials.
	ErrAuthentication = errors.New("envelope authentication failed")

	// ErrCorruptData is returned when a blob is truncated or fails its
	// integrity tag even though the outer key unwrapped cleanly. Terminal
	// for that record; surfaced to an administrator.
	ErrCorruptData = errors.New("envelope data corrupt")
)
