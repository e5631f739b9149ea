// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP clients of the system.
//
// [ServerAdapter] is the vaultctl side: it decouples the TUI from the wire
// protocol of the go-key-vault server. [NewMailRelay] is the server side: a
// client for the outbound mail relay that distributes escrow keys.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrEscrowGone] for 410, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-key-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the transport-agnostic view of the go-key-vault server
// used by vaultctl. Implementations own serialisation, the bearer token
// lifecycle, and the mapping of transport failures onto the sentinel errors
// of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent administrative requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Install performs the first-time master-key installation. On success
	// the issued bearer token is stored via SetToken.
	Install(ctx context.Context, login, password string) error

	// Unlock submits the login/password pair and returns the resulting
	// master-password status. On a valid unlock the issued bearer token is
	// stored via SetToken.
	Unlock(ctx context.Context, login, password string) (models.MasterPassStatus, error)

	// CreateEscrow asks the server to mint a fresh escrow of the master key.
	// A zero validity leaves the window to the server's default. Recipients,
	// when non-empty, get the escrow key mailed out-of-band by the server.
	CreateEscrow(ctx context.Context, login, password string, validity time.Duration, recipients []string) (models.EscrowCreateResponse, error)

	// RedeemEscrow exchanges a candidate escrow key for the base64-encoded
	// master key. Returns [ErrEscrowGone], [ErrEscrowLocked] or
	// [ErrUnauthorized] (wrapped) on the respective server rejections.
	RedeemEscrow(ctx context.Context, escrowKey string) (string, error)

	// ExpireEscrow removes the active escrow ahead of its window.
	ExpireEscrow(ctx context.Context) error

	// Rotate runs a master-password rotation and returns the server's
	// re-encryption report.
	Rotate(ctx context.Context, login, currentPassword, newPassword string) (models.RotationReport, error)
}
