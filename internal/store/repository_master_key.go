package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// masterKeyRepository is the database-backed implementation of
// [MasterKeyRepository]. One row per user in the "master_keys" table.
type masterKeyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMasterKeyRepository constructs a [MasterKeyRepository] backed by the
// provided database connection and logger.
func NewMasterKeyRepository(db *DB, logger *logger.Logger) MasterKeyRepository {
	logger.Debug().Msg("creating master key repository")
	return &masterKeyRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the user's master-key record.
//
// Error handling:
//   - No row for the user → [ErrMasterKeyNotFound].
//   - Scan failure → wrapped with [ErrScanningRow].
func (r *masterKeyRepository) Get(ctx context.Context, userID int64) (models.MasterKeyRecord, error) {
	log := logger.FromContext(ctx)

	var record models.MasterKeyRecord
	row := r.db.QueryRowContext(ctx, getMasterKey, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*masterKeyRepository.Get").Msg("error: row is nil")
		return models.MasterKeyRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var scheme string
	if err := row.Scan(&record.UserID, &record.WrappedMasterKey, &record.KeyMaterial, &scheme, &record.LastRotated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MasterKeyRecord{}, ErrMasterKeyNotFound
		}
		log.Err(err).Str("func", "*masterKeyRepository.Get").Msg("error: scanning error")
		return models.MasterKeyRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	record.WrapScheme = models.WrapScheme(scheme)

	return record, nil
}

// Save upserts the user's master-key record.
func (r *masterKeyRepository) Save(ctx context.Context, record models.MasterKeyRecord) error {
	return r.save(ctx, r.db.DB, record)
}

// SaveTx upserts the record inside the caller's transaction.
func (r *masterKeyRepository) SaveTx(ctx context.Context, tx *sql.Tx, record models.MasterKeyRecord) error {
	return r.save(ctx, tx, record)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *masterKeyRepository) save(ctx context.Context, db execer, record models.MasterKeyRecord) error {
	log := logger.FromContext(ctx)

	_, err := db.ExecContext(ctx, upsertMasterKey,
		record.UserID,
		record.WrappedMasterKey,
		record.KeyMaterial,
		string(record.WrapScheme),
		record.LastRotated,
	)
	if err != nil {
		log.Err(err).Str("func", "*masterKeyRepository.save").Msg("error saving master key record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
