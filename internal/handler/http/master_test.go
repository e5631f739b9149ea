// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/mock"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// handlerMocks bundles the service doubles a Handler test needs.
type handlerMocks struct {
	master   *mock.MockMasterKeyService
	vault    *mock.MockSessionVaultService
	escrow   *mock.MockEscrowService
	rotation *mock.MockRotationService
	auth     *mock.MockAuthService
}

// newTestHandler builds a Handler wired to fresh gomock doubles and a
// one-hour default escrow validity.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, handlerMocks) {
	t.Helper()

	m := handlerMocks{
		master:   mock.NewMockMasterKeyService(ctrl),
		vault:    mock.NewMockSessionVaultService(ctrl),
		escrow:   mock.NewMockEscrowService(ctrl),
		rotation: mock.NewMockRotationService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
	}

	svcs := &service.Services{
		MasterKeyService:    m.master,
		SessionVaultService: m.vault,
		EscrowService:       m.escrow,
		RotationService:     m.rotation,
		AuthService:         m.auth,
	}

	return NewHandler(svcs, time.Hour, logger.Nop()), m
}

// injectNopLogger puts a nop logger into the request context, standing in for
// the trace-ID middleware.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// ─────────────────────────────────────────────
// install
// ─────────────────────────────────────────────

// TestInstall_Success verifies that a first-time installation answers 200 OK
// with the issued Bearer token in the Authorization header.
func TestInstall_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	admin := models.User{UserID: 1, Login: "admin"}

	mocks.master.EXPECT().Install(gomock.Any(), "admin", "correct horse").Return(admin, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), admin).Return(stubToken(signedToken), nil)

	body := jsonBody(t, models.UnlockRequest{Login: "admin", Password: "correct horse"})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/install", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.install(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

// TestInstall_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestInstall_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/install", strings.NewReader("{invalid json}")))
	rec := httptest.NewRecorder()

	h.install(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestInstall_AlreadySet verifies that installing over an existing master key
// answers 409 Conflict.
func TestInstall_AlreadySet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.master.EXPECT().Install(gomock.Any(), "admin", "pw").
		Return(models.User{}, service.ErrMasterKeyAlreadySet)

	body := jsonBody(t, models.UnlockRequest{Login: "admin", Password: "pw"})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/install", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.install(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "master key already set")
}

// TestInstall_TokenCreationFails verifies that a token-issuance failure after
// a successful installation surfaces as 500.
func TestInstall_TokenCreationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	admin := models.User{UserID: 1, Login: "admin"}

	mocks.master.EXPECT().Install(gomock.Any(), "admin", "pw").Return(admin, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), admin).
		Return(models.Token{}, errors.New("signing key unavailable"))

	body := jsonBody(t, models.UnlockRequest{Login: "admin", Password: "pw"})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/install", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.install(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// unlock
// ─────────────────────────────────────────────

// TestUnlock_Valid verifies the happy path: status "valid" in the body, a
// Bearer token in the header and a fresh session cookie.
func TestUnlock_Valid(t *testing.T) {
	const signedToken = "signed.jwt.token"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	admin := models.User{UserID: 7, Login: "admin"}

	mocks.master.EXPECT().Unlock(gomock.Any(), "admin", "pw", gomock.Any()).
		Return(models.StatusValid, admin, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), admin).Return(stubToken(signedToken), nil)

	body := jsonBody(t, models.UnlockRequest{Login: "admin", Password: "pw"})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/unlock", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.unlock(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var resp models.UnlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusValid, resp.Status)

	// Without a fingerprint in the context the vault is not warmed, but the
	// session cookie is still minted.
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

// TestUnlock_WarmsSessionVault verifies that a fingerprinted unlock warms the
// session vault with the seed from the freshly minted cookie.
func TestUnlock_WarmsSessionVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	admin := models.User{UserID: 7, Login: "admin"}
	fp := models.Fingerprint{UserAgent: "curl/8.0", RemoteAddr: "10.0.0.5"}

	var warmedSeed string
	mocks.master.EXPECT().Unlock(gomock.Any(), "admin", "pw", gomock.Any()).
		Return(models.StatusValid, admin, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), admin).Return(stubToken("t"), nil)
	mocks.vault.EXPECT().GetKey(gomock.Any(), gomock.Any(), fp).DoAndReturn(
		func(_ context.Context, seed string, _ models.Fingerprint) ([]byte, error) {
			warmedSeed = seed
			return []byte("session-key"), nil
		},
	)

	body := jsonBody(t, models.UnlockRequest{Login: "admin", Password: "pw"})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/unlock", strings.NewReader(body)))
	req = req.WithContext(context.WithValue(req.Context(), utils.FingerprintCtxKey, fp))
	rec := httptest.NewRecorder()

	h.unlock(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookies[0].Value, warmedSeed, "vault must be warmed with the cookie seed")
}

// TestUnlock_ReusesExistingCookie verifies that an unlock with an existing
// session cookie does not mint a new one.
func TestUnlock_ReusesExistingCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	admin := models.User{UserID: 7, Login: "admin"}
	fp := models.Fingerprint{UserAgent: "curl/8.0", RemoteAddr: "10.0.0.5"}

	mocks.master.EXPECT().Unlock(gomock.Any(), "admin", "pw", gomock.Any()).
		Return(models.StatusValid, admin, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), admin).Return(stubToken("t"), nil)
	mocks.vault.EXPECT().GetKey(gomock.Any(), "existing-seed", fp).Return([]byte("session-key"), nil)

	body := jsonBody(t, models.UnlockRequest{Login: "admin", Password: "pw"})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/unlock", strings.NewReader(body)))
	req = req.WithContext(context.WithValue(req.Context(), utils.FingerprintCtxKey, fp))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "existing-seed"})
	rec := httptest.NewRecorder()

	h.unlock(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "no new cookie when the seed already exists")
}

// TestUnlock_NonValidStatuses verifies that wrong/changed/not-set outcomes
// still answer 200 with the status in the body and no token.
func TestUnlock_NonValidStatuses(t *testing.T) {
	for _, status := range []models.MasterPassStatus{models.StatusWrong, models.StatusChanged, models.StatusNotSet} {
		t.Run(string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, mocks := newTestHandler(t, ctrl)

			mocks.master.EXPECT().Unlock(gomock.Any(), "admin", "pw", gomock.Any()).
				Return(status, models.User{UserID: 7, Login: "admin"}, nil)

			body := jsonBody(t, models.UnlockRequest{Login: "admin", Password: "pw"})
			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/unlock", strings.NewReader(body)))
			rec := httptest.NewRecorder()

			h.unlock(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Header().Get("Authorization"))

			var resp models.UnlockResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, status, resp.Status)
		})
	}
}

// TestUnlock_RotationInProgress verifies the fail-fast path while a rotation
// holds the installation lock.
func TestUnlock_RotationInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.master.EXPECT().Unlock(gomock.Any(), "admin", "pw", gomock.Any()).
		Return(models.MasterPassStatus(""), models.User{}, service.ErrRotationInProgress)

	body := jsonBody(t, models.UnlockRequest{Login: "admin", Password: "pw"})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/unlock", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.unlock(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "rotation in progress")
}

// TestUnlock_InvalidJSON verifies that a malformed body answers 400.
func TestUnlock_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/unlock", strings.NewReader("not json")))
	rec := httptest.NewRecorder()

	h.unlock(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// lock
// ─────────────────────────────────────────────

// TestLock_NoCookie verifies that locking without a session cookie is a
// silent no-op.
func TestLock_NoCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/lock", nil))
	rec := httptest.NewRecorder()

	h.lock(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// TestLock_InvalidatesVault verifies that the session vault behind the cookie
// is invalidated and the cookie cleared.
func TestLock_InvalidatesVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.vault.EXPECT().Invalidate(gomock.Any(), "seed-123").Return(nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/lock", nil))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "seed-123"})
	rec := httptest.NewRecorder()

	h.lock(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

// TestLock_InvalidateError verifies that a failing invalidation surfaces as 500.
func TestLock_InvalidateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.vault.EXPECT().Invalidate(gomock.Any(), "seed-123").Return(errors.New("disk full"))

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/lock", nil))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "seed-123"})
	rec := httptest.NewRecorder()

	h.lock(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// rotate
// ─────────────────────────────────────────────

// TestRotate_Success verifies that the rotation report is returned as JSON.
func TestRotate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	report := models.RotationReport{Succeeded: 42, RotatedAt: time.Now().UTC()}
	mocks.rotation.EXPECT().Rotate(gomock.Any(), "admin", "old pw", "new pw").Return(report, nil)

	body := jsonBody(t, models.RotateRequest{Login: "admin", CurrentPassword: "old pw", NewPassword: "new pw"})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/rotate", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.rotate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.RotationReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 42, got.Succeeded)
	assert.Zero(t, got.Failed)
}

// TestRotate_Errors maps the rotation error sentinels onto HTTP statuses.
func TestRotate_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "wrong current password",
			err:            service.ErrWrongMasterPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "rotation already in progress",
			err:            service.ErrRotationInProgress,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "invalid input",
			err:            service.ErrInvalidDataProvided,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "re-encryption failure rolled back",
			err:            errors.New("rotation failed: update exploded"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, mocks := newTestHandler(t, ctrl)

			mocks.rotation.EXPECT().Rotate(gomock.Any(), "admin", "old pw", "new pw").
				Return(models.RotationReport{}, tt.err)

			body := jsonBody(t, models.RotateRequest{Login: "admin", CurrentPassword: "old pw", NewPassword: "new pw"})
			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/master/rotate", strings.NewReader(body)))
			rec := httptest.NewRecorder()

			h.rotate(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
