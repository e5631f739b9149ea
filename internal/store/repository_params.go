package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// paramRepository is the database-backed implementation of [ParamRepository],
// a plain name/value store in the "params" table. The master-password
// verifier hash and the last-rotation timestamp live here.
type paramRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewParamRepository constructs a [ParamRepository] backed by the provided
// database connection and logger.
func NewParamRepository(db *DB, logger *logger.Logger) ParamRepository {
	logger.Debug().Msg("creating param repository")
	return &paramRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves a single named parameter.
//
// Error handling:
//   - No row with the given name → [ErrParamNotFound].
func (r *paramRepository) Get(ctx context.Context, name string) (models.Param, error) {
	log := logger.FromContext(ctx)

	var param models.Param
	row := r.db.QueryRowContext(ctx, getParam, name)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*paramRepository.Get").Msg("error: row is nil")
		return models.Param{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&param.Name, &param.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Param{}, ErrParamNotFound
		}
		log.Err(err).Str("func", "*paramRepository.Get").Msg("error: scanning error")
		return models.Param{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return param, nil
}

// Set upserts a named parameter.
func (r *paramRepository) Set(ctx context.Context, name, value string) error {
	return r.set(ctx, r.db.DB, name, value)
}

// SetTx upserts a named parameter inside the caller's transaction.
func (r *paramRepository) SetTx(ctx context.Context, tx *sql.Tx, name, value string) error {
	return r.set(ctx, tx, name, value)
}

func (r *paramRepository) set(ctx context.Context, db execer, name, value string) error {
	log := logger.FromContext(ctx)

	if _, err := db.ExecContext(ctx, upsertParam, name, value); err != nil {
		log.Err(err).Str("func", "*paramRepository.set").Str("param", name).Msg("error saving param")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes a named parameter. Deleting a missing parameter is not an
// error.
func (r *paramRepository) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteParam, name); err != nil {
		log.Err(err).Str("func", "*paramRepository.Delete").Str("param", name).Msg("error deleting param")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
