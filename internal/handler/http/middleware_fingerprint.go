package http

import (
	"context"
	"net"
	"net/http"

	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

// withFingerprint derives the request's client fingerprint (User-Agent plus
// the host part of the remote address) and stores it in the context under
// [utils.FingerprintCtxKey] for the session vault.
func (h *Handler) withFingerprint(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host := r.RemoteAddr
		if parsed, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			host = parsed
		}

		fp := models.Fingerprint{
			UserAgent:  r.UserAgent(),
			RemoteAddr: host,
		}

		ctx := context.WithValue(r.Context(), utils.FingerprintCtxKey, fp)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
