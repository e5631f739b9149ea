package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withFingerprint)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/master/install", h.install)
		r.Post("/api/master/unlock", h.unlock)
		r.Post("/api/master/lock", h.lock)
		r.Post("/api/escrow/redeem", h.redeemEscrow)
	})

	// administrative routes behind the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/escrow/", h.createEscrow)
		r.Delete("/api/escrow/", h.expireEscrow)
		r.Post("/api/master/rotate", h.rotate)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
