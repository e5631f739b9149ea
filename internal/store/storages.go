package store

import (
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// Storages bundles every persistence backend the services depend on.
type Storages struct {
	DB *DB

	UserRepository          UserRepository
	MasterKeyRepository     MasterKeyRepository
	ParamRepository         ParamRepository
	EscrowRepository        EscrowRepository
	SecretHistoryRepository SecretHistoryRepository
	CustomFieldRepository   CustomFieldRepository
	SessionVaultStore       SessionVaultStore
}

// NewStorages wires all repositories over the given database connection and
// the session vault file store over the configured cache directory.
func NewStorages(db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	vaultStore, err := NewSessionVaultFileStore(cfg.Cache.Dir, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:                      db,
		UserRepository:          NewUserRepository(db, log),
		MasterKeyRepository:     NewMasterKeyRepository(db, log),
		ParamRepository:         NewParamRepository(db, log),
		EscrowRepository:        NewEscrowRepository(db, log),
		SecretHistoryRepository: NewSecretHistoryRepository(db, log),
		CustomFieldRepository:   NewCustomFieldRepository(db, log),
		SessionVaultStore:       vaultStore,
	}, nil
}
