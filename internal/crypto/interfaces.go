package crypto

import "github.com/MKhiriev/go-key-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keyring_service_mock.go -package=mock

// KeyRingService owns every cryptographic primitive of the master-key
// subsystem. It knows nothing about the network, the database, or users;
// its only job is deriving, wrapping, and verifying keys.
//
// Scheme:
//
//	K        = Derive(login, password, salt)        (login-time)
//	km, ct   = Wrap(masterKey, K)                   (persisted side by side)
//	masterKey = Unwrap(ct, km, K)                   (unlock)
//	verifier = VerifierHash(masterKey)              (install/rotation)
type KeyRingService interface {
	// Derive turns a login/password pair and the per-installation salt into
	// a deterministic 256-bit key via Argon2id. Pure: same inputs always
	// yield the same key; garbage input simply yields a key that later
	// fails envelope authentication.
	Derive(login, password string, salt []byte) []byte

	// FingerprintKey derives a 256-bit key from a request fingerprint
	// (User-Agent + client address) and the installation salt using
	// PBKDF2-SHA256 with a fixed iteration count, slowing offline
	// brute-force of stolen session vault files.
	FingerprintKey(fp models.Fingerprint, salt []byte) []byte

	// NewRandomKey reads a fresh 32-byte key from the OS CSPRNG.
	NewRandomKey() ([]byte, error)

	// NewEscrowKey mints a random URL-safe escrow key string, meant to be
	// displayed or mailed exactly once and never stored in cleartext.
	NewEscrowKey() (string, error)

	// Wrap envelope-encrypts secret: a fresh random per-secret key encrypts
	// the payload with AES-256-GCM, then the per-secret key is wrapped under
	// key. Returns the wrapped per-secret key (keyMaterial) and the
	// ciphertext; callers persist both side by side. Rotating the outer key
	// only ever requires re-wrapping the small keyMaterial blob.
	Wrap(secret, key []byte) (keyMaterial, ciphertext []byte, err error)

	// Unwrap reverses Wrap. It fails with [ErrAuthentication] when key does
	// not match the one used to wrap, and with [ErrCorruptData] when either
	// blob is truncated or the payload fails its integrity tag under a
	// correctly unwrapped per-secret key.
	Unwrap(ciphertext, keyMaterial, key []byte) ([]byte, error)

	// UnwrapDirect decrypts a legacy-v0 blob that was encrypted straight
	// under key with no per-secret indirection. Fails with
	// [ErrAuthentication] on any tag mismatch.
	UnwrapDirect(ciphertext, key []byte) ([]byte, error)

	// RewrapKey moves wrapped key material from oldKey to newKey without the
	// caller ever touching the inner key. This is the whole point of the
	// envelope scheme: rotation re-wraps 32 bytes per row, never the payload.
	// Fails with [ErrAuthentication] when oldKey does not open the material.
	RewrapKey(keyMaterial, oldKey, newKey []byte) ([]byte, error)

	// VerifierHash computes a slow, salted, one-way hash of secret with a
	// self-describing encoding. The output validates candidate keys without
	// ever storing or comparing the key itself, and is useless as a
	// decryption key.
	VerifierHash(secret []byte) (string, error)

	// VerifyHash reports whether candidate matches the encoded verifier.
	// Comparison is constant-time; malformed encodings verify as false.
	VerifyHash(encoded string, candidate []byte) bool
}
