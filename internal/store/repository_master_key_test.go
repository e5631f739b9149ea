package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

func newTestMasterKeyRepo(t *testing.T) (*masterKeyRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &masterKeyRepository{db: db, logger: logger.Nop()}, mock
}

func TestMasterKeyGet_Success(t *testing.T) {
	repo, mock := newTestMasterKeyRepo(t)

	rotated := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "wrapped_master_key", "key_material", "wrap_scheme", "last_rotated"}).
		AddRow(1, []byte{0x01}, []byte{0x02}, string(models.WrapSchemeEnvelopeV1), rotated)

	mock.ExpectQuery("SELECT user_id, wrapped_master_key").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	record, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.WrapScheme != models.WrapSchemeEnvelopeV1 {
		t.Errorf("expected wrap scheme %q, got %q", models.WrapSchemeEnvelopeV1, record.WrapScheme)
	}
	if record.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", record.UserID)
	}
}

func TestMasterKeyGet_NotFound(t *testing.T) {
	repo, mock := newTestMasterKeyRepo(t)

	mock.ExpectQuery("SELECT user_id, wrapped_master_key").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "wrapped_master_key", "key_material", "wrap_scheme", "last_rotated"}))

	_, err := repo.Get(context.Background(), 2)
	if !errors.Is(err, ErrMasterKeyNotFound) {
		t.Fatalf("expected ErrMasterKeyNotFound, got %v", err)
	}
}

func TestMasterKeySave_Upsert(t *testing.T) {
	repo, mock := newTestMasterKeyRepo(t)

	record := models.MasterKeyRecord{
		UserID:           1,
		WrappedMasterKey: []byte{0xAA},
		KeyMaterial:      []byte{0xBB},
		WrapScheme:       models.WrapSchemeEnvelopeV1,
		LastRotated:      time.Now(),
	}

	mock.ExpectExec("INSERT INTO master_keys").
		WithArgs(record.UserID, record.WrappedMasterKey, record.KeyMaterial, string(record.WrapScheme), record.LastRotated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMasterKeySaveTx_RunsInTransaction(t *testing.T) {
	repo, mock := newTestMasterKeyRepo(t)

	record := models.MasterKeyRecord{
		UserID:           1,
		WrappedMasterKey: []byte{0xAA},
		KeyMaterial:      []byte{0xBB},
		WrapScheme:       models.WrapSchemeEnvelopeV1,
		LastRotated:      time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO master_keys").
		WithArgs(record.UserID, record.WrappedMasterKey, record.KeyMaterial, string(record.WrapScheme), record.LastRotated).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.db.WithinTransaction(ctx, func(tx *sql.Tx) error {
		return repo.SaveTx(ctx, tx, record)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
