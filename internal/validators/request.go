package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-key-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldLogin targets the administrator login of a request.
	FieldLogin = "login"

	// FieldPassword targets the master password of a request.
	FieldPassword = "password"

	// FieldNewPassword targets the replacement password of a rotate request.
	FieldNewPassword = "new_password"

	// FieldValidity targets the escrow validity window.
	FieldValidity = "validity"

	// FieldRecipients targets the escrow mail recipient list.
	FieldRecipients = "recipients"

	// FieldEscrowKey targets the candidate escrow key of a redeem request.
	FieldEscrowKey = "escrow_key"
)

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UnlockRequest:
		return v.validateUnlockRequest(ctx, value, fields...)
	case *models.UnlockRequest:
		return v.validateUnlockRequest(ctx, *value, fields...)

	case models.RotateRequest:
		return v.validateRotateRequest(ctx, value, fields...)
	case *models.RotateRequest:
		return v.validateRotateRequest(ctx, *value, fields...)

	case models.EscrowCreateRequest:
		return v.validateEscrowCreateRequest(ctx, value, fields...)
	case *models.EscrowCreateRequest:
		return v.validateEscrowCreateRequest(ctx, *value, fields...)

	case models.EscrowRedeemRequest:
		return v.validateEscrowRedeemRequest(ctx, value, fields...)
	case *models.EscrowRedeemRequest:
		return v.validateEscrowRedeemRequest(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateUnlockRequest(_ context.Context, req models.UnlockRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldLogin:
			if strings.TrimSpace(req.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateRotateRequest(_ context.Context, req models.RotateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldNewPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldLogin:
			if strings.TrimSpace(req.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if req.CurrentPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if req.NewPassword == "" {
				return ErrEmptyNewPassword
			}
			if req.NewPassword == req.CurrentPassword {
				return ErrPasswordUnchanged
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateEscrowCreateRequest(_ context.Context, req models.EscrowCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldValidity, FieldRecipients}
	}

	for _, field := range fields {
		switch field {
		case FieldLogin:
			if strings.TrimSpace(req.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldValidity:
			// an empty validity defers to the server default
			if req.Validity == "" {
				continue
			}
			parsed, err := time.ParseDuration(req.Validity)
			if err != nil || parsed <= 0 {
				return fmt.Errorf("%w: %q", ErrInvalidValidity, req.Validity)
			}
		case FieldRecipients:
			for _, recipient := range req.Recipients {
				at := strings.Index(recipient, "@")
				if at <= 0 || at == len(recipient)-1 {
					return fmt.Errorf("%w: %q", ErrInvalidRecipient, recipient)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateEscrowRedeemRequest(_ context.Context, req models.EscrowRedeemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEscrowKey}
	}

	for _, field := range fields {
		switch field {
		case FieldEscrowKey:
			if strings.TrimSpace(req.EscrowKey) == "" {
				return ErrEmptyEscrowKey
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
