package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/finbook/finbook/internal/adapter/http/dto"
	"github.com/finbook/finbook/internal/adapter/http/middleware"
	"github.com/finbook/finbook/internal/domain"
	"github.com/finbook/finbook/internal/infrastructure/auth"
	"github.com/finbook/finbook/internal/infrastructure/metrics"
	"github.com/finbook/finbook/internal/usecase"
)

// AuthService defines the behavior needed by AuthHandler.
type AuthService interface {
	Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	userUC     AuthService
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC AuthService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userUC:     userUC,
		jwtManager: jwtManager,
	}
}

// Login verifies credentials and issues a token. The response carries the
// session identity the client holds for the lifetime of the login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.ObserveAuthAttempt(false)
		// Always the same answer for bad email and bad password.
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}
	metrics.ObserveAuthAttempt(true)

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Me returns the account behind the current session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	user, err := h.userUC.GetUser(r.Context(), session.UserID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
