package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ucrconnect/dashboard-api/internal/identity"
	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/models"
	"github.com/ucrconnect/dashboard-api/internal/services"
)

// SignInExchanger defines the interface that the sign-in service must implement.
type SignInExchanger interface {
	SignIn(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// User-facing sign-in messages.
const (
	msgBadCredentials = "Nombre de usuario o contraseña incorrectos."
	msgSignInFailure  = "Ha ocurrido un error durante el inicio de sesión."
)

// SignInRequest represents the JSON body for the credential sign-in
// swagger:model SignInRequest
type SignInRequest struct {
	// Institutional email
	// required: true
	// example: admin@ucr.ac.cr
	Email string `json:"email"`

	// Account password
	// required: true
	Password string `json:"password"`
}

// NewSignInHandler returns an HTTP handler for the credential sign-in.
// @Summary Sign in with email and password
// @Description Exchanges the credential with the identity provider, resolves the local user row and sets the HTTP-only access_token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param signInRequest body handlers.SignInRequest true "Sign-in request"
// @Success 200 {object} handlers.LoginResponse "Login successful"
// @Failure 400 {object} handlers.LoginErrorResponse "Missing required fields"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid credentials"
// @Failure 404 {object} handlers.LoginErrorResponse "User not found"
// @Failure 500 {object} handlers.LoginErrorResponse "Provider error"
// @Router /api/admin/auth/signin [post]
func NewSignInHandler(svc SignInExchanger, cookies SessionCookier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Message: "Invalid request",
				Details: "Malformed JSON body",
			})
			return
		}

		_, token, err := svc.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Invalid request",
					Details: "Missing required fields: email and password",
				})
			case errors.Is(err, identity.ErrInvalidCredentials),
				errors.Is(err, identity.ErrUserNotFound),
				errors.Is(err, identity.ErrWrongPassword):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: msgBadCredentials,
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "User not found",
					Details: "User must be created in the database first",
				})
			default:
				logger.Log.Errorw("credential sign-in failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: msgSignInFailure,
				})
			}
			return
		}

		http.SetCookie(w, cookies.NewCookie(token))
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Message: "Login successful",
		})
	}
}
