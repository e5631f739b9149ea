package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

func newTestEscrowRepo(t *testing.T) (*escrowRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &escrowRepository{db: db, logger: logger.Nop()}, mock
}

func TestEscrowReplace_Supersedes(t *testing.T) {
	repo, mock := newTestEscrowRepo(t)

	record := models.EscrowRecord{
		WrappedMasterKey: []byte{0x01},
		KeyMaterial:      []byte{0x02},
		VerifierHash:     "mkv1$abc$def",
		CreatedAt:        time.Now(),
		ExpiresAt:        time.Now().Add(24 * time.Hour),
		Attempts:         0,
	}

	mock.ExpectExec("INSERT INTO escrow").
		WithArgs(record.WrappedMasterKey, record.KeyMaterial, record.VerifierHash, record.CreatedAt, record.ExpiresAt, record.Attempts).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Replace(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEscrowGet_Success(t *testing.T) {
	repo, mock := newTestEscrowRepo(t)

	created := time.Now()
	expires := created.Add(time.Hour)
	rows := sqlmock.
		NewRows([]string{"wrapped_master_key", "key_material", "verifier_hash", "created_at", "expires_at", "attempts"}).
		AddRow([]byte{0x01}, []byte{0x02}, "mkv1$abc$def", created, expires, 3)

	mock.ExpectQuery("SELECT wrapped_master_key").WillReturnRows(rows)

	record, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Attempts != 3 {
		t.Errorf("expected attempts=3, got %d", record.Attempts)
	}
}

func TestEscrowGet_NotFound(t *testing.T) {
	repo, mock := newTestEscrowRepo(t)

	mock.ExpectQuery("SELECT wrapped_master_key").
		WillReturnRows(sqlmock.NewRows([]string{"wrapped_master_key", "key_material", "verifier_hash", "created_at", "expires_at", "attempts"}))

	_, err := repo.Get(context.Background())
	if !errors.Is(err, ErrEscrowNotFound) {
		t.Fatalf("expected ErrEscrowNotFound, got %v", err)
	}
}

func TestEscrowIncrementAttempts_ReturnsNewValue(t *testing.T) {
	repo, mock := newTestEscrowRepo(t)

	mock.ExpectQuery("UPDATE escrow").
		WillReturnRows(sqlmock.NewRows([]string{"attempts"}).AddRow(50))

	attempts, err := repo.IncrementAttempts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 50 {
		t.Errorf("expected attempts=50, got %d", attempts)
	}
}

func TestEscrowIncrementAttempts_NoRecord(t *testing.T) {
	repo, mock := newTestEscrowRepo(t)

	mock.ExpectQuery("UPDATE escrow").
		WillReturnRows(sqlmock.NewRows([]string{"attempts"}))

	_, err := repo.IncrementAttempts(context.Background())
	if !errors.Is(err, ErrEscrowNotFound) {
		t.Fatalf("expected ErrEscrowNotFound, got %v", err)
	}
}

func TestEscrowDelete_Idempotent(t *testing.T) {
	repo, mock := newTestEscrowRepo(t)

	// Two deletes in a row: the second hits nothing and still succeeds.
	mock.ExpectExec("DELETE FROM escrow").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM escrow").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background()); err != nil {
		t.Fatalf("unexpected error on first delete: %v", err)
	}
	if err := repo.Delete(context.Background()); err != nil {
		t.Fatalf("unexpected error on second delete: %v", err)
	}
}
