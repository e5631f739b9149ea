// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/adapter"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/validators"
	"github.com/MKhiriev/go-key-vault/models"
)

type vaultClientService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewVaultClientService wires the vaultctl business layer over the given
// server adapter. Requests are validated locally before they hit the wire so
// the TUI gets field-level errors without a round trip.
func NewVaultClientService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) VaultClientService {
	return &vaultClientService{adapter: serverAdapter, validator: validator, logger: logger}
}

func (c *vaultClientService) Install(ctx context.Context, login, password string) error {
	req := models.UnlockRequest{Login: login, Password: password}
	if err := c.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := c.adapter.Install(ctx, login, password); err != nil {
		c.logger.Err(err).Str("func", "*vaultClientService.Install").Msg("install failed")
		return mapAdapterError(err)
	}

	return nil
}

func (c *vaultClientService) Unlock(ctx context.Context, login, password string) (models.MasterPassStatus, error) {
	req := models.UnlockRequest{Login: login, Password: password}
	if err := c.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	status, err := c.adapter.Unlock(ctx, login, password)
	if err != nil {
		c.logger.Err(err).Str("func", "*vaultClientService.Unlock").Msg("unlock failed")
		return "", mapAdapterError(err)
	}

	c.logger.Debug().Str("status", string(status)).Msg("unlock attempt finished")
	return status, nil
}

func (c *vaultClientService) CreateEscrow(ctx context.Context, login, password string, validity time.Duration, recipients []string) (models.EscrowCreateResponse, error) {
	req := models.EscrowCreateRequest{Login: login, Password: password, Recipients: recipients}
	if validity != 0 {
		req.Validity = validity.String()
	}
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.EscrowCreateResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp, err := c.adapter.CreateEscrow(ctx, login, password, validity, recipients)
	if err != nil {
		c.logger.Err(err).Str("func", "*vaultClientService.CreateEscrow").Msg("escrow creation failed")
		return models.EscrowCreateResponse{}, mapAdapterError(err)
	}

	return resp, nil
}

func (c *vaultClientService) RedeemEscrow(ctx context.Context, escrowKey string) ([]byte, error) {
	escrowKey = strings.TrimSpace(escrowKey)
	if err := c.validator.Validate(ctx, models.EscrowRedeemRequest{EscrowKey: escrowKey}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	encoded, err := c.adapter.RedeemEscrow(ctx, escrowKey)
	if err != nil {
		c.logger.Err(err).Str("func", "*vaultClientService.RedeemEscrow").Msg("escrow redemption failed")
		return nil, mapAdapterError(err)
	}

	masterKey, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode master key: %w", err)
	}

	return masterKey, nil
}

func (c *vaultClientService) ExpireEscrow(ctx context.Context) error {
	if err := c.adapter.ExpireEscrow(ctx); err != nil {
		c.logger.Err(err).Str("func", "*vaultClientService.ExpireEscrow").Msg("escrow expiry failed")
		return mapAdapterError(err)
	}

	return nil
}

func (c *vaultClientService) Rotate(ctx context.Context, login, currentPassword, newPassword string) (models.RotationReport, error) {
	req := models.RotateRequest{Login: login, CurrentPassword: currentPassword, NewPassword: newPassword}
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.RotationReport{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	report, err := c.adapter.Rotate(ctx, login, currentPassword, newPassword)
	if err != nil {
		c.logger.Err(err).Str("func", "*vaultClientService.Rotate").Msg("rotation failed")
		return report, mapAdapterError(err)
	}

	c.logger.Info().Int("succeeded", report.Succeeded).Msg("rotation finished")
	return report, nil
}

func (c *vaultClientService) Authenticated() bool {
	return c.adapter.Token() != ""
}
