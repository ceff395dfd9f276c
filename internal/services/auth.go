package services

import (
	"context"
	"errors"

	"github.com/ucrconnect/dashboard-api/internal/audit"
	"github.com/ucrconnect/dashboard-api/internal/identity"
	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/models"
)

// Error variables
var (
	ErrMissingAuthFields  = errors.New("missing required fields: auth_id and auth_token")
	ErrMissingCredentials = errors.New("missing required fields: email and password")
	ErrUserNotFound       = errors.New("user must be created in the database first")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByAuthID(ctx context.Context, authID string) (*models.UserDB, error)
}

// ProviderSignIn defines the identity-provider credential exchange.
type ProviderSignIn interface {
	SignIn(ctx context.Context, email, password string) (*identity.Account, error)
}

// AuditPublisher publishes audit events for admin actions.
type AuditPublisher interface {
	Publish(ctx context.Context, kind, email, authID string)
}

// AuthService bridges the identity provider's authentication result to
// the application-owned user record. The provider has already verified
// the credential; this service only confirms the matching local row
// exists.
type AuthService struct {
	provider ProviderSignIn
	reader   UserReader
	audit    AuditPublisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(provider ProviderSignIn, reader UserReader, audit AuditPublisher) *AuthService {
	return &AuthService{
		provider: provider,
		reader:   reader,
		audit:    audit,
	}
}

// SignIn exchanges an email/password credential with the provider and
// resolves the resulting identity to the local user row. It returns the
// provider's bearer token for the session cookie. Provider failures pass
// through as the identity package's typed errors.
func (svc *AuthService) SignIn(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	account, err := svc.provider.SignIn(ctx, email, password)
	if err != nil {
		logger.Log.Errorw("provider sign-in failed", "email", email, "err", err)
		return nil, "", err
	}

	user, err := svc.reader.GetByAuthID(ctx, account.AuthID)
	if err != nil {
		logger.Log.Errorw("failed to look up user by auth id", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("no local user for provider identity", "auth_id", account.AuthID, "email", email)
		return nil, "", ErrUserNotFound
	}

	svc.audit.Publish(ctx, audit.EventAdminLogin, user.Email, account.AuthID)

	return user, account.IDToken, nil
}

// Login resolves the provider identity to the local user row.
func (svc *AuthService) Login(ctx context.Context, email, fullName, authID, authToken string) (*models.UserDB, error) {
	if authID == "" || authToken == "" {
		logger.Log.Errorw("login exchange missing fields", "auth_id_present", authID != "")
		return nil, ErrMissingAuthFields
	}

	user, err := svc.reader.GetByAuthID(ctx, authID)
	if err != nil {
		logger.Log.Errorw("failed to look up user by auth id", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("no local user for provider identity", "auth_id", authID, "email", email)
		return nil, ErrUserNotFound
	}

	svc.audit.Publish(ctx, audit.EventAdminLogin, user.Email, authID)

	return user, nil
}

// Logout records the logout; the cookie itself is cleared by the handler.
func (svc *AuthService) Logout(ctx context.Context, authID string) {
	svc.audit.Publish(ctx, audit.EventAdminLogout, "", authID)
}
