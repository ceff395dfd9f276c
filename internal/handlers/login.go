package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/models"
	"github.com/ucrconnect/dashboard-api/internal/services"
)

// LoginExchanger defines the interface that the login service must implement.
type LoginExchanger interface {
	Login(ctx context.Context, email, fullName, authID, authToken string) (*models.UserDB, error)
}

// SessionCookier builds the session cookie set on successful login.
type SessionCookier interface {
	NewCookie(token string) *http.Cookie
}

// LoginRequest represents the JSON body for the login exchange
// swagger:model LoginRequest
type LoginRequest struct {
	// Institutional email
	// required: true
	// example: admin@ucr.ac.cr
	Email string `json:"email"`

	// Display name from the identity provider
	// example: Ana Rodríguez
	FullName string `json:"full_name"`

	// Identity provider user id
	// required: true
	// example: x7GkP2...
	AuthID string `json:"auth_id"`

	// Identity provider bearer token
	// required: true
	// example: eyJhbGciOi...
	AuthToken string `json:"auth_token"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// example: Login successful
	Message string `json:"message"`
}

// LoginErrorResponse represents an error response for the login exchange
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// example: Invalid request
	Message string `json:"message"`

	// Machine-readable detail
	// example: Missing required fields: auth_id and auth_token
	Details string `json:"details,omitempty"`
}

// NewLoginHandler returns an HTTP handler for the login exchange.
// @Summary Exchange a provider token for a session cookie
// @Description Validates the provider identity against the local user table and sets the HTTP-only access_token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login exchange request"
// @Success 200 {object} handlers.LoginResponse "Login successful"
// @Failure 400 {object} handlers.LoginErrorResponse "Missing required fields"
// @Failure 404 {object} handlers.LoginErrorResponse "User not found"
// @Failure 500 {object} handlers.LoginErrorResponse "Database error"
// @Router /api/admin/auth/login [post]
func NewLoginHandler(svc LoginExchanger, cookies SessionCookier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Message: "Invalid request",
				Details: "Malformed JSON body",
			})
			return
		}

		_, err := svc.Login(r.Context(), req.Email, req.FullName, req.AuthID, req.AuthToken)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingAuthFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Invalid request",
					Details: "Missing required fields: auth_id and auth_token",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "User not found",
					Details: "User must be created in the database first",
				})
			default:
				logger.Log.Errorw("login exchange failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Database error",
					Details: "Failed to process authentication",
				})
			}
			return
		}

		http.SetCookie(w, cookies.NewCookie(req.AuthToken))
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Message: "Login successful",
		})
	}
}
