package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin        = errors.New("login is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyNewPassword  = errors.New("new password is required")
	ErrPasswordUnchanged = errors.New("new password must differ from the current one")
	ErrInvalidValidity   = errors.New("validity must be a positive duration")
	ErrInvalidRecipient  = errors.New("invalid recipient address")
	ErrEmptyEscrowKey    = errors.New("escrow key is required")
)
