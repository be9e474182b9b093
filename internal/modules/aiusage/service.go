package aiusage

import (
	"context"
	"errors"
)

// Service orchestrates the monthly provider-call quota.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Allow deducts one call from the responder's monthly allowance.
// If the responder row does not exist yet it is initialised and the call is immediately consumed.
// Returns ErrQuotaExhausted when the quota for the current month is used up.
func (s *Service) Allow(ctx context.Context, responder string) error {
	err := s.store.UseCall(ctx, responder)
	if !errors.Is(err, ErrQuotaExhausted) {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureResponder(ctx, responder); initErr != nil {
		return initErr
	}
	return s.store.UseCall(ctx, responder)
}
