package tui

import (
	"time"

	"github.com/MKhiriev/go-key-vault/models"
)

// NavigateTo switches the active page of the [RootModel] router. Payload,
// when non-nil, is delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// UnlockNotice is delivered to the menu after a finished unlock or install
// so the result survives the page switch.
type UnlockNotice struct {
	Login  string
	Status models.MasterPassStatus
}

type unlockDoneMsg struct {
	login   string
	install bool
	status  models.MasterPassStatus
	err     error
}

type escrowCreatedMsg struct {
	resp models.EscrowCreateResponse
	err  error
}

type escrowRedeemedMsg struct {
	masterKey []byte
	err       error
}

type escrowExpiredMsg struct {
	err error
}

type rotateDoneMsg struct {
	report models.RotationReport
	took   time.Duration
	err    error
}

type copiedMsg struct {
	err error
}
