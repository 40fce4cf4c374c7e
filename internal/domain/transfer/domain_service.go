package transfer

import (
	"time"

	"github.com/interbanking/backend/internal/domain/shared"
)

// DomainService validates a transfer before it is persisted.
type DomainService struct {
	now shared.Clock
}

// DomainServiceOption configures a DomainService
type DomainServiceOption func(*DomainService)

// WithCurrentTime sets the clock that createdAt is checked against.
func WithCurrentTime(clock shared.Clock) DomainServiceOption {
	return func(s *DomainService) {
		s.now = clock
	}
}

// NewDomainService creates a DomainService. It uses the system clock unless
// WithCurrentTime says otherwise.
func NewDomainService(opts ...DomainServiceOption) *DomainService {
	s := &DomainService{now: shared.SystemClock}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateTransfer checks the amount is positive and the creation time is
// not after now.
func (s *DomainService) ValidateTransfer(t *Transfer) error {
	if !t.Amount.IsPositive() {
		return shared.NewValidationError("Transfer amount must be greater than 0")
	}
	if t.CreatedAt.After(s.currentTime()) {
		return shared.NewValidationError("Transfer date cannot be in the future")
	}
	return nil
}

func (s *DomainService) currentTime() time.Time {
	if s.now == nil {
		return shared.SystemClock()
	}
	return s.now()
}

// NotFoundError is returned when no transfer has the given id.
func NotFoundError(id string) error {
	return shared.NewNotFoundError("Transfer", id)
}
