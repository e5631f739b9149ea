// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-key-vault/internal/adapter"
	"github.com/MKhiriev/go-key-vault/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided, app.MsgInvalidValidityWindow:
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword, app.MsgWrongMasterPassword:
			return ErrWrongMasterPassword
		case app.MsgInvalidEscrowKey:
			return ErrEscrowInvalidKey
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgMasterKeyAlreadySet:
			return ErrMasterKeyAlreadySet
		case app.MsgRotationInProgress, app.MsgRotationAlreadyInProgress:
			return ErrRotationInProgress
		}

	case errors.Is(err, adapter.ErrEscrowGone):
		return ErrEscrowExpired

	case errors.Is(err, adapter.ErrEscrowLocked):
		return ErrEscrowLockedOut

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgRotationRolledBack {
			return ErrRotationRolledBack
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
