package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrConflict            = errors.New("conflict")
	ErrEscrowGone          = errors.New("escrow expired or absent")
	ErrEscrowLocked        = errors.New("escrow locked out")
	ErrInternalServerError = errors.New("internal server error")
)
