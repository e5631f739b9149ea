package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Install implements [ServerAdapter]. It POSTs the credentials to
// POST /api/master/install. On success the bearer token is extracted from
// the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Install(ctx context.Context, login, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UnlockRequest{Login: login, Password: password}).
		Post("/api/master/install")
	if err != nil {
		return fmt.Errorf("install request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("install parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Unlock implements [ServerAdapter]. It POSTs the credentials to
// POST /api/master/unlock and returns the reported status. The bearer token
// is stored only when the server issued one, which it does for a valid
// unlock.
func (h *httpServerAdapter) Unlock(ctx context.Context, login, password string) (models.MasterPassStatus, error) {
	var unlockResp models.UnlockResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UnlockRequest{Login: login, Password: password}).
		SetResult(&unlockResp).
		Post("/api/master/unlock")
	if err != nil {
		return "", fmt.Errorf("unlock request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if authHeader := resp.Header().Get("Authorization"); authHeader != "" {
		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return "", fmt.Errorf("unlock parse bearer token: %w", err)
		}
		h.SetToken(token)
	}

	return unlockResp.Status, nil
}

// CreateEscrow implements [ServerAdapter]. It POSTs the escrow request to
// POST /api/escrow/ with the stored bearer token.
func (h *httpServerAdapter) CreateEscrow(ctx context.Context, login, password string, validity time.Duration, recipients []string) (models.EscrowCreateResponse, error) {
	req := models.EscrowCreateRequest{
		Login:      login,
		Password:   password,
		Recipients: recipients,
	}
	if validity > 0 {
		req.Validity = validity.String()
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/escrow/")
	if err != nil {
		return models.EscrowCreateResponse{}, fmt.Errorf("create escrow request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EscrowCreateResponse{}, err
	}

	var created models.EscrowCreateResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.EscrowCreateResponse{}, fmt.Errorf("decode create escrow response: %w", err)
	}

	return created, nil
}

// RedeemEscrow implements [ServerAdapter]. It POSTs the candidate key to
// POST /api/escrow/redeem. Redemption is unauthenticated by design: the
// escrow key is the credential.
func (h *httpServerAdapter) RedeemEscrow(ctx context.Context, escrowKey string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EscrowRedeemRequest{EscrowKey: escrowKey}).
		Post("/api/escrow/redeem")
	if err != nil {
		return "", fmt.Errorf("redeem escrow request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var redeemed models.EscrowRedeemResponse
	if err = json.Unmarshal(resp.Body(), &redeemed); err != nil {
		return "", fmt.Errorf("decode redeem escrow response: %w", err)
	}

	return redeemed.MasterKey, nil
}

// ExpireEscrow implements [ServerAdapter]. It sends DELETE /api/escrow/ with
// the stored bearer token.
func (h *httpServerAdapter) ExpireEscrow(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/escrow/")
	if err != nil {
		return fmt.Errorf("expire escrow request: %w", err)
	}

	return mapHTTPError(resp)
}

// Rotate implements [ServerAdapter]. It POSTs the rotation request to
// POST /api/master/rotate with the stored bearer token and returns the
// server's re-encryption report.
func (h *httpServerAdapter) Rotate(ctx context.Context, login, currentPassword, newPassword string) (models.RotationReport, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RotateRequest{Login: login, CurrentPassword: currentPassword, NewPassword: newPassword}).
		Post("/api/master/rotate")
	if err != nil {
		return models.RotationReport{}, fmt.Errorf("rotate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RotationReport{}, err
	}

	var report models.RotationReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.RotationReport{}, fmt.Errorf("decode rotate response: %w", err)
	}

	return report, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
