// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name)
    VALUES ($1, $2)
    RETURNING user_id, login, name, created_at;`

	findUserByLogin = `SELECT user_id, login, name, created_at
    FROM users
    WHERE login = $1;`

	getMasterKey = `SELECT user_id, wrapped_master_key, key_material, wrap_scheme, last_rotated
    FROM master_keys
    WHERE user_id = $1;`

	upsertMasterKey = `INSERT INTO master_keys (user_id, wrapped_master_key, key_material, wrap_scheme, last_rotated)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (user_id) DO UPDATE SET
        wrapped_master_key = EXCLUDED.wrapped_master_key,
        key_material = EXCLUDED.key_material,
        wrap_scheme = EXCLUDED.wrap_scheme,
        last_rotated = EXCLUDED.last_rotated;`

	getParam = `SELECT name, value
    FROM params
    WHERE name = $1;`

	upsertParam = `INSERT INTO params (name, value)
    VALUES ($1, $2)
    ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value;`

	deleteParam = `DELETE FROM params
    WHERE name = $1;`

	replaceEscrow = `INSERT INTO escrow (id, wrapped_master_key, key_material, verifier_hash, created_at, expires_at, attempts)
    VALUES (1, $1, $2, $3, $4, $5, $6)
    ON CONFLICT (id) DO UPDATE SET
        wrapped_master_key = EXCLUDED.wrapped_master_key,
        key_material = EXCLUDED.key_material,
        verifier_hash = EXCLUDED.verifier_hash,
        created_at = EXCLUDED.created_at,
        expires_at = EXCLUDED.expires_at,
        attempts = EXCLUDED.attempts;`

	getEscrow = `SELECT wrapped_master_key, key_material, verifier_hash, created_at, expires_at, attempts
    FROM escrow
    WHERE id = 1;`

	// The counter moves in one statement so concurrent redemption attempts
	// can never read the same value and both stay under the budget.
	incrementEscrowAttempts = `UPDATE escrow
    SET attempts = attempts + 1
    WHERE id = 1
    RETURNING attempts;`

	deleteEscrow = `DELETE FROM escrow
    WHERE id = 1;`

	insertSecretHistory = `INSERT INTO secret_history (user_id, data, key_material, key_version, created_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id;`

	insertCustomField = `INSERT INTO custom_fields (user_id, field_name, data, key_material, key_version)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id;`
)

// placeholders configures squirrel for PostgreSQL-style $N placeholders,
// which both connected drivers accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectPendingRotationQuery builds the SELECT that picks rows of a
// re-encryptable table still wrapped under an older key version. Only the
// wrapped per-secret key is fetched; payload ciphertext never moves during
// rotation.
func buildSelectPendingRotationQuery(table string, userID int64, targetVersion int) (string, []any, error) {
	return psql.
		Select("id", "key_material").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Lt{"key_version": targetVersion}).
		OrderBy("id").
		ToSql()
}

// buildUpdateKeyMaterialQuery builds the per-row UPDATE that swaps in newly
// wrapped key material and stamps the target key version.
func buildUpdateKeyMaterialQuery(table string, id int64, keyMaterial []byte, version int) (string, []any, error) {
	return psql.
		Update(table).
		Set("key_material", keyMaterial).
		Set("key_version", version).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildCountByUserQuery builds the per-table row count used for rotation
// report totals.
func buildCountByUserQuery(table string, userID int64) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
