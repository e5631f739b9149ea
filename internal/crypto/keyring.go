// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-key-vault/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// verifierPrefix tags the self-describing verifier encoding:
// mkv1$base64(salt)$base64(digest).
const verifierPrefix = "mkv1"

// escrowKeyBytes is the entropy of a minted escrow key (240 bits).
const escrowKeyBytes = 30

// keyRingService is the private implementation of [KeyRingService].
type keyRingService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	// fingerprintIters is the PBKDF2 iteration count for fingerprint keys.
	// Fixed per installation; must stay >= 500 to keep stolen vault files
	// expensive to brute-force offline.
	fingerprintIters int
}

// NewKeyRingService constructs a [KeyRingService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyRingService() KeyRingService {
	return &keyRingService{
		argonTime:        1,
		argonMemory:      64 * 1024, // 64 MiB
		argonThreads:     4,
		argonKeyLen:      32, // 256 bits
		fingerprintIters: 1000,
	}
}

// Derive implements [KeyRingService]. Login and password are joined with a
// NUL separator so that ("ab","c") and ("a","bc") derive different keys.
func (k *keyRingService) Derive(login, password string, salt []byte) []byte {
	material := make([]byte, 0, len(login)+len(password)+1)
	material = append(material, login...)
	material = append(material, 0x00)
	material = append(material, password...)

	return argon2.IDKey(
		material,
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// FingerprintKey implements [KeyRingService]. The User-Agent and client
// address are joined with a separator that cannot appear in either value's
// meaningful prefix, then stretched with PBKDF2-SHA256.
func (k *keyRingService) FingerprintKey(fp models.Fingerprint, salt []byte) []byte {
	material := fp.UserAgent + "|" + fp.RemoteAddr
	return pbkdf2.Key([]byte(material), salt, k.fingerprintIters, int(k.argonKeyLen), sha256.New)
}

// NewRandomKey implements [KeyRingService]. It reads 32 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyRingService) NewRandomKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// NewEscrowKey implements [KeyRingService]. The key is URL-safe base64 so it
// survives being pasted into a mail body or a browser link unchanged.
func (k *keyRingService) NewEscrowKey() (string, error) {
	raw := make([]byte, escrowKeyBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Wrap implements [KeyRingService].
func (k *keyRingService) Wrap(secret, key []byte) ([]byte, []byte, error) {
	perSecretKey, err := k.NewRandomKey()
	if err != nil {
		return nil, nil, fmt.Errorf("generate per-secret key: %w", err)
	}

	ciphertext, err := seal(secret, perSecretKey)
	if err != nil {
		return nil, nil, fmt.Errorf("encrypt payload: %w", err)
	}

	keyMaterial, err := seal(perSecretKey, key)
	if err != nil {
		return nil, nil, fmt.Errorf("wrap per-secret key: %w", err)
	}

	return keyMaterial, ciphertext, nil
}

// Unwrap implements [KeyRingService]. The per-secret key is unwrapped first;
// a tag failure there almost always means the caller derived the wrong outer
// key (wrong password). A tag failure on the payload itself means the stored
// ciphertext was tampered with or truncated after writing.
func (k *keyRingService) Unwrap(ciphertext, keyMaterial, key []byte) ([]byte, error) {
	perSecretKey, err := open(keyMaterial, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	secret, err := open(ciphertext, perSecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}

	return secret, nil
}

// UnwrapDirect implements [KeyRingService].
func (k *keyRingService) UnwrapDirect(ciphertext, key []byte) ([]byte, error) {
	secret, err := open(ciphertext, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	return secret, nil
}

// RewrapKey implements [KeyRingService]. The inner key exists in memory only
// for the duration of the call and is zeroed before returning.
func (k *keyRingService) RewrapKey(keyMaterial, oldKey, newKey []byte) ([]byte, error) {
	inner, err := open(keyMaterial, oldKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	defer func() {
		for i := range inner {
			inner[i] = 0
		}
	}()

	rewrapped, err := seal(inner, newKey)
	if err != nil {
		return nil, fmt.Errorf("rewrap key material: %w", err)
	}

	return rewrapped, nil
}

// VerifierHash implements [KeyRingService].
func (k *keyRingService) VerifierHash(secret []byte) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	digest := argon2.IDKey(secret, salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)

	return verifierPrefix + "$" +
		base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(digest), nil
}

// VerifyHash implements [KeyRingService].
func (k *keyRingService) VerifyHash(encoded string, candidate []byte) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != verifierPrefix {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}

	got := argon2.IDKey(candidate, salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)

	return subtle.ConstantTimeCompare(got, want) == 1
}

// seal encrypts plaintext under key with AES-256-GCM. A random 12-byte nonce
// is prepended so the decryption side can locate it: blob = nonce ‖ ciphertext.
func seal(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// open decrypts a nonce‖ciphertext blob produced by [seal] and verifies the
// auth tag.
func open(blob, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}
