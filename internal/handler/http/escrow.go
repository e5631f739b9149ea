package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

func (h *Handler) createEscrow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.EscrowCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	validity := h.defaultEscrowValidity
	if req.Validity != "" {
		parsed, err := time.ParseDuration(req.Validity)
		if err != nil || parsed <= 0 {
			log.Err(err).Str("validity", req.Validity).Msg("invalid validity window")
			http.Error(w, "invalid validity window", http.StatusBadRequest)
			return
		}
		validity = parsed
	}

	// The master key is needed in cleartext to seal the escrow, so the
	// administrator re-authenticates within the request.
	keys := service.NewMasterKeyContext()
	defer keys.Clear()

	status, _, err := h.services.MasterKeyService.Unlock(ctx, req.Login, req.Password, keys)
	if err != nil {
		log.Err(err).Msg("unlock for escrow creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if status != models.StatusValid {
		log.Warn().Str("status", string(status)).Msg("escrow creation rejected, master key not unlocked")
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
		return
	}

	escrowKey, expiresAt, err := h.services.EscrowService.Create(ctx, keys, validity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during escrow creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if len(req.Recipients) > 0 {
		h.services.EscrowService.SendByEmail(ctx, req.Recipients, escrowKey, expiresAt)
	}

	utils.WriteJSON(w, models.EscrowCreateResponse{EscrowKey: escrowKey, ExpiresAt: expiresAt}, http.StatusOK)
}

func (h *Handler) redeemEscrow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.EscrowRedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	masterKey, err := h.services.EscrowService.Redeem(ctx, req.EscrowKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrEscrowExpired):
			log.Err(err).Msg("escrow expired or absent")
			http.Error(w, "escrow expired", http.StatusGone)
			return
		case errors.Is(err, service.ErrEscrowLockedOut):
			log.Err(err).Msg("escrow locked out")
			http.Error(w, "escrow locked out", http.StatusLocked)
			return
		case errors.Is(err, service.ErrEscrowInvalidKey):
			log.Err(err).Msg("invalid escrow key")
			http.Error(w, "invalid escrow key", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during escrow redemption")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	resp := models.EscrowRedeemResponse{MasterKey: base64.StdEncoding.EncodeToString(masterKey)}
	for i := range masterKey {
		masterKey[i] = 0
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) expireEscrow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.EscrowService.Expire(ctx); err != nil {
		log.Err(err).Msg("unexpected error occurred during escrow expiry")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
