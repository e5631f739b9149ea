// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-key-vault/models"
)

// VaultClientService is the vaultctl-side view of the server API. It wraps
// the transport adapter, translates transport errors back into the service
// sentinels, and handles the encoding details (bearer tokens, base64 key
// material) so the TUI only deals in domain values.
type VaultClientService interface {
	// Install performs first-time master-key installation and keeps the
	// returned administrator token for subsequent calls.
	Install(ctx context.Context, login, password string) error

	// Unlock verifies the master password. On a Valid status the adapter
	// holds the administrator token afterwards.
	Unlock(ctx context.Context, login, password string) (models.MasterPassStatus, error)

	// CreateEscrow re-authenticates with the master credentials and mints a
	// fresh escrow with the given validity window. Recipients, when
	// non-empty, are mailed the escrow key by the server.
	CreateEscrow(ctx context.Context, login, password string, validity time.Duration, recipients []string) (models.EscrowCreateResponse, error)

	// RedeemEscrow exchanges an escrow key for the raw master key bytes.
	RedeemEscrow(ctx context.Context, escrowKey string) ([]byte, error)

	// ExpireEscrow removes the active escrow.
	ExpireEscrow(ctx context.Context) error

	// Rotate runs a master password rotation and returns the server's
	// rotation report.
	Rotate(ctx context.Context, login, currentPassword, newPassword string) (models.RotationReport, error)

	// Authenticated reports whether an administrator token is held.
	Authenticated() bool
}
