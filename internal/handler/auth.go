package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bsak/authsvc/internal/domain"
	"github.com/bsak/authsvc/internal/service"
)

// AuthHandler handles the registration, authentication, and password-change
// endpoints. It is the only place error kinds translate to HTTP statuses.
type AuthHandler struct {
	auth    *service.AuthService
	limiter *service.TokenBucket
}

// NewAuthHandler creates a new AuthHandler. limiter throttles authentication
// attempts per client IP.
func NewAuthHandler(auth *service.AuthService, limiter *service.TokenBucket) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

// HandleRegister processes a registration request.
// POST /auths/register
// Request:  {"name":"...","surname":"...","email":"...","password":"..."}
// Response: {"token":"..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(r, &req); err != nil {
		writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if errs := validateRegister(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	token, err := h.auth.Register(r.Context(), req.Name, req.Surname, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeJSON(w, http.StatusBadRequest, []FieldError{{Code: codeGivenEmailExists, Field: "email"}})
			return
		}
		slog.Error("register user", "error", err)
		writeErrorMessage(w, r, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, AuthenticationResponse{Token: token})
}

// HandleAuthenticate processes an authentication request.
// POST /auths/authenticate
// Request:  {"email":"...","password":"..."}
// Response: {"token":"..."}
func (h *AuthHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow(clientIP(r)) {
		writeErrorMessage(w, r, http.StatusTooManyRequests, "Too many authentication attempts.")
		return
	}

	var req AuthenticationRequest
	if err := readJSON(r, &req); err != nil {
		writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if errs := validateAuthentication(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	token, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		var notFound *domain.UserNotFoundError
		switch {
		case errors.As(err, &notFound):
			writeErrorMessage(w, r, http.StatusNotFound, notFound.Error())
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeErrorMessage(w, r, http.StatusBadRequest, "Bad credentials")
		default:
			slog.Error("authenticate user", "error", err)
			writeErrorMessage(w, r, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusOK, AuthenticationResponse{Token: token})
}

// HandleChangePassword processes an authenticated password change.
// PATCH /auths/change-password
// Request:  {"currentPassword":"...","newPassword":"...","confirmationPassword":"..."}
// Response: {"message":"Password changed successfully."}
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := readJSON(r, &req); err != nil {
		writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if errs := validateChangePassword(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	message, err := h.auth.ChangePassword(r.Context(), r.Header.Get("Authorization"),
		req.CurrentPassword, req.NewPassword, req.ConfirmationPassword)
	if err != nil {
		var notFound *domain.UserNotFoundError
		var invalidPassword *domain.InvalidPasswordError
		switch {
		case errors.Is(err, domain.ErrTokenInvalid):
			writeErrorMessage(w, r, http.StatusUnauthorized, "Invalid or expired token!")
		case errors.As(err, &notFound):
			writeErrorMessage(w, r, http.StatusNotFound, notFound.Error())
		case errors.As(err, &invalidPassword):
			writeErrorMessage(w, r, http.StatusBadRequest, invalidPassword.Reason)
		default:
			slog.Error("change password", "error", err)
			writeErrorMessage(w, r, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusOK, ChangePasswordResponse{Message: message})
}
