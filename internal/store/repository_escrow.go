package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// escrowRepository is the database-backed implementation of
// [EscrowRepository]. The "escrow" table holds at most one row (id = 1);
// creating a new escrow supersedes whatever was there.
type escrowRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEscrowRepository constructs an [EscrowRepository] backed by the provided
// database connection and logger.
func NewEscrowRepository(db *DB, logger *logger.Logger) EscrowRepository {
	logger.Debug().Msg("creating escrow repository")
	return &escrowRepository{
		db:     db,
		logger: logger,
	}
}

// Replace upserts the single escrow row, superseding any active record.
func (r *escrowRepository) Replace(ctx context.Context, record models.EscrowRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, replaceEscrow,
		record.WrappedMasterKey,
		record.KeyMaterial,
		record.VerifierHash,
		record.CreatedAt,
		record.ExpiresAt,
		record.Attempts,
	)
	if err != nil {
		log.Err(err).Str("func", "*escrowRepository.Replace").Msg("error replacing escrow record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get retrieves the escrow record.
//
// Error handling:
//   - No active record → [ErrEscrowNotFound].
func (r *escrowRepository) Get(ctx context.Context) (models.EscrowRecord, error) {
	log := logger.FromContext(ctx)

	var record models.EscrowRecord
	row := r.db.QueryRowContext(ctx, getEscrow)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*escrowRepository.Get").Msg("error: row is nil")
		return models.EscrowRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(
		&record.WrappedMasterKey,
		&record.KeyMaterial,
		&record.VerifierHash,
		&record.CreatedAt,
		&record.ExpiresAt,
		&record.Attempts,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EscrowRecord{}, ErrEscrowNotFound
		}
		log.Err(err).Str("func", "*escrowRepository.Get").Msg("error: scanning error")
		return models.EscrowRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// IncrementAttempts bumps the failed-redemption counter and returns the new
// value. The increment and the read happen in one UPDATE ... RETURNING
// statement, so two concurrent failed redemptions always observe distinct
// counter values.
//
// Error handling:
//   - No active record → [ErrEscrowNotFound].
func (r *escrowRepository) IncrementAttempts(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var attempts int
	row := r.db.QueryRowContext(ctx, incrementEscrowAttempts)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*escrowRepository.IncrementAttempts").Msg("error: row is nil")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&attempts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrEscrowNotFound
		}
		log.Err(err).Str("func", "*escrowRepository.IncrementAttempts").Msg("error: scanning error")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return attempts, nil
}

// Delete removes the escrow record. Deleting a missing record is not an
// error, which keeps expiry idempotent.
func (r *escrowRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteEscrow); err != nil {
		log.Err(err).Str("func", "*escrowRepository.Delete").Msg("error deleting escrow record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
