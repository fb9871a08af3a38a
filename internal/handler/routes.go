package handler

import (
	"net/http"

	"github.com/bsak/authsvc/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. The
// change-password route sits behind the bearer-token gate.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, tokens *service.TokenService, limiter *service.TokenBucket) {
	h := NewAuthHandler(auth, limiter)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("POST /auths/register", h.HandleRegister)
	mux.HandleFunc("POST /auths/authenticate", h.HandleAuthenticate)
	mux.Handle("PATCH /auths/change-password", RequireBearer(tokens, http.HandlerFunc(h.HandleChangePassword)))
}
