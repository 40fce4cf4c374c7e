package transfer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/interbanking/backend/internal/domain/company"
	"github.com/interbanking/backend/internal/domain/shared"
	"github.com/interbanking/backend/internal/domain/transfer"
	"github.com/interbanking/backend/internal/infrastructure/telemetry"
)

// CompanyFinder resolves the company a transfer belongs to.
type CompanyFinder interface {
	FindByID(ctx context.Context, id string) (*company.Company, error)
}

// Metrics receives transfer business events.
type Metrics interface {
	RecordTransferCreated(ctx context.Context, amount decimal.Decimal)
}

// Service handles transfer use cases
type Service struct {
	transferRepo  transfer.Repository
	companies     CompanyFinder
	domainService *transfer.DomainService
	metrics       Metrics
	now           shared.Clock
	newID         func() string
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics records business metrics for created transfers.
func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the time source for default timestamps and the
// future date check.
func WithClock(clock shared.Clock) Option {
	return func(s *Service) {
		s.now = clock
	}
}

// WithIDGenerator overrides how new transfer ids are built.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		s.newID = gen
	}
}

// NewService creates a new transfer Service
func NewService(transferRepo transfer.Repository, companies CompanyFinder, opts ...Option) *Service {
	s := &Service{
		transferRepo:  transferRepo,
		companies:     companies,
		now:           shared.SystemClock,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.domainService = transfer.NewDomainService(transfer.WithCurrentTime(s.now))
	return s
}

// Create records a transfer for an existing company.
// createdAt defaults to now when omitted.
func (s *Service) Create(ctx context.Context, req CreateTransferRequest) (_ *TransferResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "transfer", "create",
		telemetry.WithAttribute(telemetry.SpanAttrCompanyID, req.CompanyID))
	defer func() { telemetry.End(span, err) }()

	if _, err := s.companies.FindByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, company.NotFoundError(req.CompanyID)
		}
		return nil, err
	}

	createdAt := s.now()
	if req.CreatedAt != nil {
		createdAt = req.CreatedAt.Time.Truncate(shared.TimestampPrecision)
	}

	t, err := transfer.NewTransfer(s.newID(), req.Amount, req.CompanyID, req.DebitAccount, req.CreditAccount, createdAt)
	if err != nil {
		return nil, err
	}
	if err := s.domainService.ValidateTransfer(t); err != nil {
		return nil, err
	}

	// A company deleted after the lookup surfaces here as a not-found error.
	if err := s.transferRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordTransferCreated(ctx, t.Amount.Decimal())
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrTransferID, t.ID.String(),
		telemetry.SpanAttrAmount, t.Amount.String(),
	)

	response := ToTransferResponse(t)
	return &response, nil
}

// List returns every transfer.
func (s *Service) List(ctx context.Context) ([]TransferResponse, error) {
	transfers, err := s.transferRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToTransferResponses(transfers), nil
}

// GetByID retrieves a transfer by ID
func (s *Service) GetByID(ctx context.Context, id string) (*TransferResponse, error) {
	t, err := s.transferRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, transfer.NotFoundError(id)
		}
		return nil, err
	}
	response := ToTransferResponse(t)
	return &response, nil
}

// Delete removes a transfer. Deleting an unknown id fails with not-found.
func (s *Service) Delete(ctx context.Context, id string) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "transfer", "delete",
		telemetry.WithAttribute(telemetry.SpanAttrTransferID, id))
	defer func() { telemetry.End(span, err) }()

	if err := s.transferRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return transfer.NotFoundError(id)
		}
		return err
	}
	return nil
}
