package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/models"
)

// In-memory doubles for the store interfaces. They keep the service tests
// focused on business rules; SQL behavior is covered by the store package's
// own sqlmock tests.

type fakeUserRepo struct {
	users  map[string]models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if _, ok := f.users[user.Login]; ok {
		return models.User{}, store.ErrLoginAlreadyExists
	}
	user.UserID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	f.users[user.Login] = user
	return user, nil
}

func (f *fakeUserRepo) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	user, ok := f.users[login]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

type fakeMasterKeyRepo struct {
	records map[int64]models.MasterKeyRecord
}

func newFakeMasterKeyRepo() *fakeMasterKeyRepo {
	return &fakeMasterKeyRepo{records: map[int64]models.MasterKeyRecord{}}
}

func (f *fakeMasterKeyRepo) Get(_ context.Context, userID int64) (models.MasterKeyRecord, error) {
	record, ok := f.records[userID]
	if !ok {
		return models.MasterKeyRecord{}, store.ErrMasterKeyNotFound
	}
	return record, nil
}

func (f *fakeMasterKeyRepo) Save(_ context.Context, record models.MasterKeyRecord) error {
	f.records[record.UserID] = record
	return nil
}

func (f *fakeMasterKeyRepo) SaveTx(ctx context.Context, _ *sql.Tx, record models.MasterKeyRecord) error {
	return f.Save(ctx, record)
}

type fakeParamRepo struct {
	params map[string]string
}

func newFakeParamRepo() *fakeParamRepo {
	return &fakeParamRepo{params: map[string]string{}}
}

func (f *fakeParamRepo) Get(_ context.Context, name string) (models.Param, error) {
	value, ok := f.params[name]
	if !ok {
		return models.Param{}, store.ErrParamNotFound
	}
	return models.Param{Name: name, Value: value}, nil
}

func (f *fakeParamRepo) Set(_ context.Context, name, value string) error {
	f.params[name] = value
	return nil
}

func (f *fakeParamRepo) SetTx(ctx context.Context, _ *sql.Tx, name, value string) error {
	return f.Set(ctx, name, value)
}

func (f *fakeParamRepo) Delete(_ context.Context, name string) error {
	delete(f.params, name)
	return nil
}

type fakeEscrowRepo struct {
	record *models.EscrowRecord
}

func newFakeEscrowRepo() *fakeEscrowRepo { return &fakeEscrowRepo{} }

func (f *fakeEscrowRepo) Replace(_ context.Context, record models.EscrowRecord) error {
	f.record = &record
	return nil
}

func (f *fakeEscrowRepo) Get(_ context.Context) (models.EscrowRecord, error) {
	if f.record == nil {
		return models.EscrowRecord{}, store.ErrEscrowNotFound
	}
	return *f.record, nil
}

func (f *fakeEscrowRepo) IncrementAttempts(_ context.Context) (int, error) {
	if f.record == nil {
		return 0, store.ErrEscrowNotFound
	}
	f.record.Attempts++
	return f.record.Attempts, nil
}

func (f *fakeEscrowRepo) Delete(_ context.Context) error {
	f.record = nil
	return nil
}

// fakeReencryptableStore holds envelope rows keyed by ID. failUpdateAfter
// injects an error once that many updates have gone through, for rollback
// tests.
type fakeReencryptableStore struct {
	name            string
	rows            map[int64]store.RotationRow
	versions        map[int64]int
	updates         int
	failUpdateAfter int
	failUpdateErr   error

	// selectStarted/selectRelease let a test hold a rotation mid-flight.
	selectStarted chan struct{}
	selectRelease chan struct{}
}

func newFakeReencryptableStore(name string) *fakeReencryptableStore {
	return &fakeReencryptableStore{
		name:            name,
		rows:            map[int64]store.RotationRow{},
		versions:        map[int64]int{},
		failUpdateAfter: -1,
	}
}

func (f *fakeReencryptableStore) Name() string { return f.name }

func (f *fakeReencryptableStore) SelectPending(_ context.Context, _ *sql.Tx, _ int64, target int) ([]store.RotationRow, error) {
	if f.selectStarted != nil {
		close(f.selectStarted)
		f.selectStarted = nil
		<-f.selectRelease
	}

	var pending []store.RotationRow
	for id, row := range f.rows {
		if f.versions[id] < target {
			pending = append(pending, row)
		}
	}
	return pending, nil
}

func (f *fakeReencryptableStore) UpdateKeyMaterial(_ context.Context, _ *sql.Tx, id int64, keyMaterial []byte, version int) error {
	if f.failUpdateAfter >= 0 && f.updates >= f.failUpdateAfter {
		return f.failUpdateErr
	}
	f.updates++

	row := f.rows[id]
	row.KeyMaterial = keyMaterial
	f.rows[id] = row
	f.versions[id] = version
	return nil
}

func (f *fakeReencryptableStore) CountByUser(_ context.Context, _ int64) (int, error) {
	return len(f.rows), nil
}

func (f *fakeReencryptableStore) snapshot() map[int64]store.RotationRow {
	out := make(map[int64]store.RotationRow, len(f.rows))
	for id, row := range f.rows {
		km := make([]byte, len(row.KeyMaterial))
		copy(km, row.KeyMaterial)
		out[id] = store.RotationRow{ID: row.ID, KeyMaterial: km}
	}
	return out
}

func (f *fakeReencryptableStore) restore(snap map[int64]store.RotationRow) {
	f.rows = snap
	f.versions = map[int64]int{}
}

// fakeTxRunner imitates transactional semantics over the in-memory fakes:
// the caller supplies snapshot/restore hooks and any error from fn triggers
// a restore, mirroring a rollback.
type fakeTxRunner struct {
	snapshot func() func()
}

func (f *fakeTxRunner) WithinTransaction(_ context.Context, fn func(tx *sql.Tx) error) error {
	var restore func()
	if f.snapshot != nil {
		restore = f.snapshot()
	}
	if err := fn(nil); err != nil {
		if restore != nil {
			restore()
		}
		return err
	}
	return nil
}

type fakeMailSender struct {
	sent []models.MailMessage
	err  error
}

func (f *fakeMailSender) SendBatch(_ context.Context, messages []models.MailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, messages...)
	return nil
}

// fakeRotationGuard satisfies RotationService where only InProgress matters.
type fakeRotationGuard struct {
	inProgress bool
}

func (f *fakeRotationGuard) Rotate(context.Context, string, string, string) (models.RotationReport, error) {
	return models.RotationReport{}, nil
}

func (f *fakeRotationGuard) InProgress() bool { return f.inProgress }
