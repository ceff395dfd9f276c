package services

import (
	"context"
	"errors"

	"github.com/ucrconnect/dashboard-api/internal/audit"
	"github.com/ucrconnect/dashboard-api/internal/identity"
	"github.com/ucrconnect/dashboard-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken is returned when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// ProviderAccounts defines the identity-provider operations used during
// registration.
type ProviderAccounts interface {
	SignUp(ctx context.Context, email, password string) (*identity.Account, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, fullName, email, authID, passwordHash string) error
}

// RegistrationService creates a user: a provider account first, then
// the application-owned row keyed by the provider identity.
type RegistrationService struct {
	provider ProviderAccounts
	writer   UserWriter
	audit    AuditPublisher
}

// NewRegistrationService creates a new RegistrationService instance.
func NewRegistrationService(provider ProviderAccounts, writer UserWriter, audit AuditPublisher) *RegistrationService {
	return &RegistrationService{
		provider: provider,
		writer:   writer,
		audit:    audit,
	}
}

// Register creates the provider account and the local user row.
func (svc *RegistrationService) Register(ctx context.Context, name, email, password string) error {
	account, err := svc.provider.SignUp(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			logger.Log.Errorw("email already registered with provider", "email", email)
			return ErrEmailTaken
		}
		logger.Log.Errorw("provider sign-up failed", "err", err)
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, name, email, account.AuthID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	svc.audit.Publish(ctx, audit.EventUserRegistered, email, account.AuthID)

	return nil
}
