package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrMasterKeyAlreadySet is returned by Install when the user already
	// has a master-key record; installation never overwrites key material.
	ErrMasterKeyAlreadySet = errors.New("master key already set")

	// ErrMasterKeyNotUnlocked is returned when an operation requires a
	// populated MasterKeyContext and none was provided.
	ErrMasterKeyNotUnlocked = errors.New("master key is not unlocked")

	// ErrWrongMasterPassword is returned by rotation when the current
	// password fails to recover the master key.
	ErrWrongMasterPassword = errors.New("wrong master password")

	// ErrEscrowExpired is returned when no escrow exists or its validity
	// window has passed. Expiry wins even over a correct key.
	ErrEscrowExpired = errors.New("escrow is expired")

	// ErrEscrowLockedOut is returned once the failed-redemption budget is
	// exhausted. The lockout is permanent for the record's lifetime.
	ErrEscrowLockedOut = errors.New("escrow is locked out")

	// ErrEscrowInvalidKey is returned for a candidate key that does not
	// match the escrow verifier. Each miss burns one attempt.
	ErrEscrowInvalidKey = errors.New("invalid escrow key")

	// ErrRotationInProgress is returned to callers racing an active master
	// password rotation.
	ErrRotationInProgress = errors.New("rotation is in progress")

	// ErrRotationRolledBack is surfaced to vaultctl when the server reports
	// that a rotation failed partway and was fully rolled back.
	ErrRotationRolledBack = errors.New("rotation failed and was rolled back")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
