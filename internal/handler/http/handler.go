package http

import (
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
)

// sessionCookieName carries the opaque seed the session vault derives its
// file identifiers from. The cookie value itself is meaningless; only its
// stability across requests matters.
const sessionCookieName = "vault_session"

type Handler struct {
	services *service.Services

	// defaultEscrowValidity applies when an escrow-create request does not
	// name a validity window.
	defaultEscrowValidity time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, defaultEscrowValidity time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:              services,
		defaultEscrowValidity: defaultEscrowValidity,
		logger:                logger,
	}
}
