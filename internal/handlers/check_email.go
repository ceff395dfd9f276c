package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/regform"
)

// EmailChecker defines the interface that the availability service must implement.
type EmailChecker interface {
	CheckEmail(ctx context.Context, email string) (bool, error)
}

// CheckEmailResponse represents an availability answer
// swagger:model CheckEmailResponse
type CheckEmailResponse struct {
	// Whether the email is free to register
	// example: true
	Available bool `json:"available"`
}

// CheckEmailErrorResponse represents an error response for the availability check
// swagger:model CheckEmailErrorResponse
type CheckEmailErrorResponse struct {
	// Error message
	// example: Invalid request
	Message string `json:"message"`

	// Machine-readable detail
	// example: A valid institutional email is required
	Details string `json:"details,omitempty"`
}

// NewCheckEmailHandler returns an HTTP handler for the email-availability lookup.
// @Summary Check email availability
// @Description Reports whether an institutional email is free to register. Idempotent and side-effect-free.
// @Tags users
// @Produce json
// @Param email query string true "Email to check"
// @Success 200 {object} handlers.CheckEmailResponse "Availability answer"
// @Failure 400 {object} handlers.CheckEmailErrorResponse "Missing or invalid email"
// @Failure 500 {object} handlers.CheckEmailErrorResponse "Lookup failed"
// @Router /api/admin/users/check-email [get]
func NewCheckEmailHandler(svc EmailChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")

		// The form never issues a lookup for a statically invalid email;
		// a direct caller gets the same treatment.
		if regform.Validate(regform.FieldEmail, email, regform.Form{Email: email}) != "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckEmailErrorResponse{
				Message: "Invalid request",
				Details: "A valid institutional email is required",
			})
			return
		}

		available, err := svc.CheckEmail(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("availability lookup failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CheckEmailErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CheckEmailResponse{
			Available: available,
		})
	}
}
