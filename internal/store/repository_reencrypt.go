package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// reencryptableTable implements the [ReencryptableStore] rotation surface for
// one envelope-encrypted table. The payload column never moves during a
// rotation; only key_material is rewrapped and key_version stamped.
type reencryptableTable struct {
	table  string
	logger *logger.Logger
	db     *DB
}

func (r *reencryptableTable) Name() string {
	return r.table
}

// SelectPending returns the user's rows whose key_version is behind target,
// in stable id order.
func (r *reencryptableTable) SelectPending(ctx context.Context, tx *sql.Tx, userID int64, target int) ([]RotationRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPendingRotationQuery(r.table, userID, target)
	if err != nil {
		log.Err(err).Str("func", "*reencryptableTable.SelectPending").Str("table", r.table).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reencryptableTable.SelectPending").Str("table", r.table).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var pending []RotationRow
	for rows.Next() {
		var row RotationRow
		if err := rows.Scan(&row.ID, &row.KeyMaterial); err != nil {
			log.Err(err).Str("func", "*reencryptableTable.SelectPending").Str("table", r.table).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		pending = append(pending, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pending, nil
}

// UpdateKeyMaterial swaps in newly wrapped key material and stamps the
// target version on a single row.
//
// Error handling:
//   - Zero affected rows → [ErrRowNotUpdated].
func (r *reencryptableTable) UpdateKeyMaterial(ctx context.Context, tx *sql.Tx, id int64, keyMaterial []byte, version int) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateKeyMaterialQuery(r.table, id, keyMaterial, version)
	if err != nil {
		log.Err(err).Str("func", "*reencryptableTable.UpdateKeyMaterial").Str("table", r.table).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reencryptableTable.UpdateKeyMaterial").Str("table", r.table).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s id=%d", ErrRowNotUpdated, r.table, id)
	}

	return nil
}

// CountByUser reports how many rows the user owns in this table.
func (r *reencryptableTable) CountByUser(ctx context.Context, userID int64) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByUserQuery(r.table, userID)
	if err != nil {
		log.Err(err).Str("func", "*reencryptableTable.CountByUser").Str("table", r.table).Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*reencryptableTable.CountByUser").Str("table", r.table).Msg("error scanning count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// secretHistoryRepository stores envelope-encrypted secret history snapshots.
type secretHistoryRepository struct {
	reencryptableTable
}

// NewSecretHistoryRepository constructs a [SecretHistoryRepository] over the
// "secret_history" table.
func NewSecretHistoryRepository(db *DB, logger *logger.Logger) SecretHistoryRepository {
	logger.Debug().Msg("creating secret history repository")
	return &secretHistoryRepository{reencryptableTable{
		table:  models.SecretHistoryRecord{}.TableName(),
		db:     db,
		logger: logger,
	}}
}

// Insert persists a new history snapshot and returns its id.
func (r *secretHistoryRepository) Insert(ctx context.Context, record models.SecretHistoryRecord) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	row := r.db.QueryRowContext(ctx, insertSecretHistory,
		record.UserID, record.Data, record.KeyMaterial, record.KeyVersion, record.CreatedAt)
	if err := row.Scan(&id); err != nil {
		log.Err(err).Str("func", "*secretHistoryRepository.Insert").Msg("error inserting history row")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// customFieldRepository stores envelope-encrypted custom field payloads.
type customFieldRepository struct {
	reencryptableTable
}

// NewCustomFieldRepository constructs a [CustomFieldRepository] over the
// "custom_fields" table.
func NewCustomFieldRepository(db *DB, logger *logger.Logger) CustomFieldRepository {
	logger.Debug().Msg("creating custom field repository")
	return &customFieldRepository{reencryptableTable{
		table:  models.CustomFieldRecord{}.TableName(),
		db:     db,
		logger: logger,
	}}
}

// InsertField persists a new custom field payload and returns its id.
func (r *customFieldRepository) InsertField(ctx context.Context, record models.CustomFieldRecord) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	row := r.db.QueryRowContext(ctx, insertCustomField,
		record.UserID, record.FieldName, record.Data, record.KeyMaterial, record.KeyVersion)
	if err := row.Scan(&id); err != nil {
		log.Err(err).Str("func", "*customFieldRepository.InsertField").Msg("error inserting custom field row")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}
