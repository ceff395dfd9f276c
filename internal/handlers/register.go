package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/regform"
	"github.com/ucrconnect/dashboard-api/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full name
	// required: true
	// example: Ana Rodríguez
	Name string `json:"name"`

	// Institutional email
	// required: true
	// example: ana.rodriguez@ucr.ac.cr
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret12345
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User registered successfully
	Message string `json:"message"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// example: Validation failed
	Message string `json:"message"`

	// Field-level validation messages
	Errors map[string]string `json:"errors,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Re-validates the submission with the form rules, creates the provider account and the local user row.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Validation failed"
// @Failure 409 {object} handlers.RegisterErrorResponse "Email already registered"
// @Failure 500 {object} handlers.RegisterErrorResponse "Internal server error"
// @Router /api/admin/users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Message: "Invalid request",
			})
			return
		}

		// The browser form already validated; never trust it.
		form := regform.Form{Name: req.Name, Email: req.Email, Password: req.Password}
		fieldErrs := make(map[string]string)
		for _, f := range []regform.Field{regform.FieldName, regform.FieldEmail, regform.FieldPassword} {
			var value string
			switch f {
			case regform.FieldName:
				value = req.Name
			case regform.FieldEmail:
				value = req.Email
			case regform.FieldPassword:
				value = req.Password
			}
			if msg := regform.Validate(f, value, form); msg != "" {
				fieldErrs[string(f)] = msg
			}
		}
		if len(fieldErrs) != 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Message: "Validation failed",
				Errors:  fieldErrs,
			})
			return
		}

		err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Message: "Email already registered",
				})
			default:
				logger.Log.Errorw("registration failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "User registered successfully",
		})
	}
}
