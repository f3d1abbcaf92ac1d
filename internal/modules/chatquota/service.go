// README: Chat quota service (per-visitor daily allowance).
package chatquota

import "context"

// Service enforces the daily assistant-message allowance per visitor.
type Service struct {
	store *Store
	limit int64
}

// NewService creates a Service backed by the given Store. limit <= 0 falls
// back to DefaultDailyMessages.
func NewService(store *Store, limit int) *Service {
	if limit <= 0 {
		limit = DefaultDailyMessages
	}
	return &Service{store: store, limit: int64(limit)}
}

// Use consumes one message from the visitor's daily allowance and returns
// how many remain. Returns ErrQuotaExceeded once the allowance is spent;
// the counter keeps ticking past the limit, which is harmless since the key
// expires at midnight.
func (s *Service) Use(ctx context.Context, visitorID string) (remaining int64, err error) {
	count, err := s.store.Incr(ctx, visitorID)
	if err != nil {
		return 0, err
	}
	if count > s.limit {
		return 0, ErrQuotaExceeded
	}
	return s.limit - count, nil
}

// Refund returns one message to the visitor's allowance. Callers use it when
// a message was charged but the assistant never answered.
func (s *Service) Refund(ctx context.Context, visitorID string) error {
	return s.store.Decr(ctx, visitorID)
}
