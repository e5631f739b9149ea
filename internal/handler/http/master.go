// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

func (h *Handler) install(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.MasterKeyService.Install(ctx, req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrMasterKeyAlreadySet):
			log.Err(err).Msg("master key already set")
			http.Error(w, "master key already set", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during master key installation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	keys := service.NewMasterKeyContext()
	defer keys.Clear()

	status, user, err := h.services.MasterKeyService.Unlock(ctx, req.Login, req.Password, keys)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrRotationInProgress):
			log.Err(err).Msg("rotation in progress")
			http.Error(w, "rotation in progress, retry later", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during unlock")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if status == models.StatusValid {
		token, err := h.services.AuthService.CreateToken(ctx, user)
		if err != nil {
			log.Err(err).Msg("creation of token failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))

		h.warmSessionVault(w, r)
	}

	log.Debug().Str("status", string(status)).Msg("unlock attempt finished")
	utils.WriteJSON(w, models.UnlockResponse{Status: status}, http.StatusOK)
}

// lock drops the caller's cached session key so the next request starts from
// a locked state.
func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.services.SessionVaultService.Invalidate(ctx, cookie.Value); err != nil {
		log.Err(err).Msg("session vault invalidation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rotate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	report, err := h.services.RotationService.Rotate(ctx, req.Login, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongMasterPassword):
			log.Err(err).Msg("wrong master password")
			http.Error(w, "wrong master password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrRotationInProgress):
			log.Err(err).Msg("rotation already in progress")
			http.Error(w, "rotation already in progress", http.StatusConflict)
			return
		default:
			log.Err(err).
				Int("succeeded", report.Succeeded).
				Int("failed", report.Failed).
				Msg("rotation failed and was rolled back")
			http.Error(w, "rotation failed and was rolled back", http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int("succeeded", report.Succeeded).Msg("rotation finished")
	utils.WriteJSON(w, report, http.StatusOK)
}

// warmSessionVault ensures the caller has a session cookie and a live vault
// file behind it. Failures are logged only; the unlock itself already
// succeeded.
func (h *Handler) warmSessionVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	seed := ""
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		seed = cookie.Value
	}
	if seed == "" {
		seed = utils.NewUUIDGenerator().Generate()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    seed,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
		})
	}

	fp, ok := utils.GetFingerprintFromContext(ctx)
	if !ok {
		return
	}

	if _, err := h.services.SessionVaultService.GetKey(ctx, seed, fp); err != nil {
		log.Err(err).Msg("session vault warm-up failed")
	}
}
