// Package service holds the business logic of the master-key subsystem:
// installation and unlocking, per-session key caching, temporary escrow,
// master password rotation, and administrator token handling. Services talk
// to persistence through the store interfaces and to cryptography through
// the keyring; neither side knows about the other.
package service

import (
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	MasterKeyService    MasterKeyService
	SessionVaultService SessionVaultService
	EscrowService       EscrowService
	RotationService     RotationService
	AuthService         AuthService
}

// NewServices wires all services over the given storages, keyring, and mail
// sender. The rotation service is constructed first so the unlock path can
// consult its in-progress guard.
func NewServices(storages *store.Storages, keyring crypto.KeyRingService, mail MailSender, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	salt := []byte(cfg.App.InstallationSalt)

	rotation := NewRotationService(
		storages.DB,
		storages.UserRepository,
		storages.MasterKeyRepository,
		storages.ParamRepository,
		[]store.ReencryptableStore{
			storages.SecretHistoryRepository,
			storages.CustomFieldRepository,
		},
		keyring,
		salt,
		log,
	)

	return &Services{
		MasterKeyService: NewMasterKeyService(
			storages.UserRepository,
			storages.MasterKeyRepository,
			storages.ParamRepository,
			keyring,
			rotation,
			salt,
			log,
		),
		SessionVaultService: NewSessionVaultService(
			storages.SessionVaultStore,
			keyring,
			salt,
			cfg.Storage.Cache.ExpireTime,
			log,
		),
		EscrowService: NewEscrowService(
			storages.EscrowRepository,
			keyring,
			mail,
			salt,
			cfg.Escrow.MaxAttempts,
			log,
		),
		RotationService: rotation,
		AuthService:     NewAuthService(cfg.App, log),
	}
}
