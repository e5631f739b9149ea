// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-key-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUnlockRequest() models.UnlockRequest {
	return models.UnlockRequest{Login: "root", Password: "correct horse"}
}

func validRotateRequest() models.RotateRequest {
	return models.RotateRequest{Login: "root", CurrentPassword: "old", NewPassword: "new"}
}

func validEscrowCreateRequest() models.EscrowCreateRequest {
	return models.EscrowCreateRequest{
		Login:      "root",
		Password:   "correct horse",
		Validity:   "24h",
		Recipients: []string{"ops@example.com"},
	}
}

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerDispatch(t *testing.T) {
	v := NewRequestValidator()
	req := validUnlockRequest()

	assert.NoError(t, v.Validate(context.Background(), &req))
}

func TestValidate_UnlockRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.UnlockRequest)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *models.UnlockRequest) {},
		},
		{
			name:    "empty login",
			mutate:  func(r *models.UnlockRequest) { r.Login = "" },
			wantErr: ErrEmptyLogin,
		},
		{
			name:    "whitespace login",
			mutate:  func(r *models.UnlockRequest) { r.Login = "   " },
			wantErr: ErrEmptyLogin,
		},
		{
			name:    "empty password",
			mutate:  func(r *models.UnlockRequest) { r.Password = "" },
			wantErr: ErrEmptyPassword,
		},
		{
			name:   "scoped to login ignores empty password",
			mutate: func(r *models.UnlockRequest) { r.Password = "" },
			fields: []string{FieldLogin},
		},
		{
			name:    "unknown field",
			mutate:  func(r *models.UnlockRequest) {},
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUnlockRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_RotateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.RotateRequest)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *models.RotateRequest) {},
		},
		{
			name:    "empty login",
			mutate:  func(r *models.RotateRequest) { r.Login = "" },
			wantErr: ErrEmptyLogin,
		},
		{
			name:    "empty current password",
			mutate:  func(r *models.RotateRequest) { r.CurrentPassword = "" },
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "empty new password",
			mutate:  func(r *models.RotateRequest) { r.NewPassword = "" },
			wantErr: ErrEmptyNewPassword,
		},
		{
			name:    "unchanged password",
			mutate:  func(r *models.RotateRequest) { r.NewPassword = r.CurrentPassword },
			wantErr: ErrPasswordUnchanged,
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRotateRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_EscrowCreateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.EscrowCreateRequest)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *models.EscrowCreateRequest) {},
		},
		{
			name:   "empty validity defers to server default",
			mutate: func(r *models.EscrowCreateRequest) { r.Validity = "" },
		},
		{
			name:   "no recipients",
			mutate: func(r *models.EscrowCreateRequest) { r.Recipients = nil },
		},
		{
			name:    "unparsable validity",
			mutate:  func(r *models.EscrowCreateRequest) { r.Validity = "tomorrow" },
			wantErr: ErrInvalidValidity,
		},
		{
			name:    "negative validity",
			mutate:  func(r *models.EscrowCreateRequest) { r.Validity = "-1h" },
			wantErr: ErrInvalidValidity,
		},
		{
			name:    "zero validity",
			mutate:  func(r *models.EscrowCreateRequest) { r.Validity = "0s" },
			wantErr: ErrInvalidValidity,
		},
		{
			name:    "recipient without at sign",
			mutate:  func(r *models.EscrowCreateRequest) { r.Recipients = []string{"ops.example.com"} },
			wantErr: ErrInvalidRecipient,
		},
		{
			name:    "recipient with empty local part",
			mutate:  func(r *models.EscrowCreateRequest) { r.Recipients = []string{"@example.com"} },
			wantErr: ErrInvalidRecipient,
		},
		{
			name:    "recipient with empty domain",
			mutate:  func(r *models.EscrowCreateRequest) { r.Recipients = []string{"ops@"} },
			wantErr: ErrInvalidRecipient,
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEscrowCreateRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_EscrowRedeemRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.EscrowRedeemRequest{EscrowKey: "abc"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.EscrowRedeemRequest{}), ErrEmptyEscrowKey)
	assert.ErrorIs(t, v.Validate(context.Background(), models.EscrowRedeemRequest{EscrowKey: "  "}), ErrEmptyEscrowKey)
}
