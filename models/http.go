package models

import "time"

// UnlockRequest carries the login/password pair an external authenticator
// forwards after its own verification succeeded.
type UnlockRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UnlockResponse reports the master-password status for an unlock attempt.
// The HTTP layer keeps the wording generic; the status value is for the
// calling authenticator, not for end users.
type UnlockResponse struct {
	Status MasterPassStatus `json:"status"`
}

// EscrowCreateRequest asks for a new temporary escrow of the master key.
// The administrator's credentials are required because the master key must
// be unlocked server-side for the duration of the request. Validity is a Go
// duration string (e.g. "24h"); Recipients, when non-empty, get the escrow
// key mailed out-of-band.
type EscrowCreateRequest struct {
	Login      string   `json:"login"`
	Password   string   `json:"password"`
	Validity   string   `json:"validity"`
	Recipients []string `json:"recipients,omitempty"`
}

// EscrowCreateResponse returns the freshly minted escrow key. It is shown
// exactly once and never stored in cleartext anywhere.
type EscrowCreateResponse struct {
	EscrowKey string    `json:"escrow_key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EscrowRedeemRequest submits a candidate escrow key for redemption.
type EscrowRedeemRequest struct {
	EscrowKey string `json:"escrow_key"`
}

// EscrowRedeemResponse carries the recovered master key, base64-encoded.
// Returned exactly once per successful redemption; the caller is expected to
// install it and discard the response immediately.
type EscrowRedeemResponse struct {
	MasterKey string `json:"master_key"`
}

// RotateRequest asks for a master-password rotation on behalf of the
// authenticated administrator.
type RotateRequest struct {
	Login           string `json:"login"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
