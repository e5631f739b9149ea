// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// key-vault server handlers and the vaultctl client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The vaultctl error mapper matches on these strings to turn transport errors
// back into business errors, so the wording here is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not verify against the stored master verifier.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMasterKeyAlreadySet is returned when install is attempted on a
	// vault that already has a master verifier recorded.
	MsgMasterKeyAlreadySet = "master key already set"

	// MsgWrongMasterPassword is returned when rotation is attempted with a
	// current password that does not verify.
	MsgWrongMasterPassword = "wrong master password"

	// MsgRotationInProgress is returned to unlock attempts that arrive while
	// a key rotation holds the rotation lock.
	MsgRotationInProgress = "rotation in progress, retry later"

	// MsgRotationAlreadyInProgress is returned when a second rotation is
	// started before the first one released the lock.
	MsgRotationAlreadyInProgress = "rotation already in progress"

	// MsgRotationRolledBack is returned when a rotation failed partway and
	// every re-wrapped key was restored to the previous version.
	MsgRotationRolledBack = "rotation failed and was rolled back"

	// MsgInvalidValidityWindow is returned when an escrow create request
	// carries a validity that is not a positive duration.
	MsgInvalidValidityWindow = "invalid validity window"

	// MsgEscrowExpired is returned when redemption targets an escrow record
	// that expired or was never created.
	MsgEscrowExpired = "escrow expired"

	// MsgEscrowLockedOut is returned when the escrow attempt budget is
	// exhausted and the record no longer accepts candidates.
	MsgEscrowLockedOut = "escrow locked out"

	// MsgInvalidEscrowKey is returned when the presented escrow key does not
	// match the sealed record.
	MsgInvalidEscrowKey = "invalid escrow key"
)
