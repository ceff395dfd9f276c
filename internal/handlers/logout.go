package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// LogoutRecorder records a logout for auditing.
type LogoutRecorder interface {
	Logout(ctx context.Context, authID string)
}

// SessionClearer builds the expired cookie that ends the session and
// reads the session token off the request.
type SessionClearer interface {
	ClearedCookie() *http.Cookie
	GetTokenFromCookie(ctx context.Context, r *http.Request) (string, error)
	Subject(ctx context.Context, tokenString string) (string, error)
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// example: Logged out successfully
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that clears the session cookie.
// @Summary Log out
// @Description Expires the access_token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Router /api/admin/auth/logout [post]
func NewLogoutHandler(svc LogoutRecorder, cookies SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Best effort: a missing or opaque cookie still logs the user out.
		var authID string
		if token, err := cookies.GetTokenFromCookie(r.Context(), r); err == nil {
			authID, _ = cookies.Subject(r.Context(), token)
		}
		svc.Logout(r.Context(), authID)

		http.SetCookie(w, cookies.ClearedCookie())
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out successfully",
		})
	}
}
