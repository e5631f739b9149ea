package models

import "time"

// WrapScheme identifies the envelope format a stored master-key record was
// written with. The concrete unwrap path is always chosen by this explicit
// discriminant, never by inspecting the blob itself.
type WrapScheme string

const (
	// WrapSchemeEnvelopeV1 is the current format: the master key is encrypted
	// under a fresh per-record key, which is in turn wrapped under the
	// password-derived key. KeyMaterial holds the wrapped per-record key.
	WrapSchemeEnvelopeV1 WrapScheme = "envelope-v1"

	// WrapSchemeLegacyV0 is the pre-envelope format: the master key is
	// encrypted directly under the password-derived key and KeyMaterial is
	// empty. Records in this format are upgraded to envelope-v1 on the first
	// successful unlock.
	WrapSchemeLegacyV0 WrapScheme = "legacy-v0"
)

// MasterKeyRecord is the per-user persisted wrapping of the installation's
// master key. The cleartext master key itself never appears in this struct.
type MasterKeyRecord struct {
	// UserID identifies the principal the wrapping belongs to.
	UserID int64 `json:"-"`

	// WrappedMasterKey is the master key encrypted under the per-record key
	// (envelope-v1) or directly under the password-derived key (legacy-v0).
	WrappedMasterKey []byte `json:"-"`

	// KeyMaterial is the per-record key wrapped under the key derived from
	// the user's login credentials. Empty for legacy-v0 records.
	KeyMaterial []byte `json:"-"`

	// WrapScheme selects the unwrap path for this record.
	WrapScheme WrapScheme `json:"-"`

	// LastRotated is the time the wrapping was last replaced, either by a
	// password change or by a master-key rotation.
	LastRotated time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the MasterKeyRecord model.
func (m MasterKeyRecord) TableName() string {
	return "master_keys"
}

// MasterPassStatus is the outcome of an unlock attempt, handed back to the
// external authenticator so it can decide whether to re-prompt the user.
type MasterPassStatus string

const (
	// StatusValid means the master key was recovered and installed into the
	// request's key context.
	StatusValid MasterPassStatus = "valid"

	// StatusNotSet means no master-key record exists for the user yet.
	StatusNotSet MasterPassStatus = "not_set"

	// StatusChanged means the stored wrapping unwrapped cleanly but the
	// recovered key no longer matches the installation verifier; the master
	// password was rotated since this record was written.
	StatusChanged MasterPassStatus = "changed"

	// StatusWrong means envelope authentication failed: the supplied
	// password does not match the one the record was wrapped under.
	StatusWrong MasterPassStatus = "wrong"
)

// RotationReport summarizes a master-key rotation run. The row counts are
// populated even when the rotation fails and rolls back, so administrators
// can see how far the re-encryption pass progressed.
type RotationReport struct {
	// Succeeded is the number of dependent ciphertext rows re-encrypted.
	Succeeded int `json:"succeeded"`

	// Failed is the number of rows whose re-encryption failed.
	Failed int `json:"failed"`

	// VerifierHash is the new verifier persisted on success; empty on failure.
	VerifierHash string `json:"-"`

	// RotatedAt is the rotation timestamp persisted on success.
	RotatedAt time.Time `json:"rotated_at,omitzero"`
}

// Names of the subsystem's entries in the generic key-value params store.
const (
	// ParamMasterVerifier holds the slow, salted verifier hash of the
	// cleartext master key.
	ParamMasterVerifier = "masterPwd"

	// ParamLastRotation holds the RFC 3339 timestamp of the last completed
	// rotation.
	ParamLastRotation = "lastupdatempass"

	// ParamKeyVersion holds the current master-key generation as a decimal
	// integer. Re-encryptable rows carry the generation that wrapped their
	// key material.
	ParamKeyVersion = "keyversion"
)
