package services

import (
	"context"
	"time"

	"github.com/ucrconnect/dashboard-api/internal/logger"
)

// EmailExistenceReader answers whether a user row with an email exists.
type EmailExistenceReader interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AvailabilityCache caches availability answers.
type AvailabilityCache interface {
	GetEmailAvailability(ctx context.Context, email string) (bool, error)
	SetEmailAvailability(ctx context.Context, email string, available bool) error
}

// AvailabilityService answers email-availability checks for the
// registration form: an email is available when no user row holds it.
// Answers are read through a cache so keystroke-driven checks do not
// repeatedly hit the database.
type AvailabilityService struct {
	reader EmailExistenceReader
	cache  AvailabilityCache
}

// NewAvailabilityService creates a new AvailabilityService. A nil cache
// disables caching.
func NewAvailabilityService(reader EmailExistenceReader, cache AvailabilityCache) *AvailabilityService {
	return &AvailabilityService{
		reader: reader,
		cache:  cache,
	}
}

// CheckEmail reports whether the email is free to register.
func (svc *AvailabilityService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if svc.cache != nil {
		if available, err := svc.cache.GetEmailAvailability(ctx, email); err == nil {
			return available, nil
		}
	}

	exists, err := svc.reader.ExistsByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email existence", "err", err)
		return false, err
	}
	available := !exists

	if svc.cache != nil {
		if err := svc.cache.SetEmailAvailability(ctx, email, available); err != nil {
			logger.Log.Warnw("failed to cache availability answer", "err", err)
		}
	}

	return available, nil
}

// StaticAvailability is a fixture-backed availability lookup: a fixed
// set of taken addresses answered after a fixed latency. It stands in
// for the real datastore in development mode and mirrors the original
// simulated check.
type StaticAvailability struct {
	taken   map[string]struct{}
	latency time.Duration
}

// NewStaticAvailability creates a StaticAvailability over the given
// taken addresses.
func NewStaticAvailability(taken []string, latency time.Duration) *StaticAvailability {
	set := make(map[string]struct{}, len(taken))
	for _, email := range taken {
		set[email] = struct{}{}
	}
	return &StaticAvailability{taken: set, latency: latency}
}

// DefaultTakenEmails is the development fixture's exclusion list.
var DefaultTakenEmails = []string{"admin@ucr.ac.cr", "user@ucr.ac.cr"}

// CheckEmail reports availability against the fixed exclusion list.
func (s *StaticAvailability) CheckEmail(ctx context.Context, email string) (bool, error) {
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	_, taken := s.taken[email]
	return !taken, nil
}
