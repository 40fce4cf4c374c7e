package company

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/interbanking/backend/internal/domain/company"
	"github.com/interbanking/backend/internal/domain/shared"
	"github.com/interbanking/backend/internal/infrastructure/telemetry"
)

// TransferCounter reports how many transfers reference a company.
type TransferCounter interface {
	CountByCompany(ctx context.Context, companyID string) (int64, error)
}

// Metrics receives company business events.
type Metrics interface {
	RecordCompanyCreated(ctx context.Context, companyType string)
}

// Service handles company use cases
type Service struct {
	companyRepo   company.Repository
	transfers     TransferCounter
	domainService *company.DomainService
	metrics       Metrics
	now           shared.Clock
	newID         func() string
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics records business metrics for created companies.
func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the time source for period ranges and the
// future adhesion date check.
func WithClock(clock shared.Clock) Option {
	return func(s *Service) {
		s.now = clock
	}
}

// WithIDGenerator overrides how new company ids are built.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		s.newID = gen
	}
}

// NewService creates a new company Service
func NewService(companyRepo company.Repository, transfers TransferCounter, opts ...Option) *Service {
	s := &Service{
		companyRepo:   companyRepo,
		transfers:     transfers,
		domainService: company.NewDomainService(),
		now:           shared.SystemClock,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new company.
// Field validation runs before the CUIT uniqueness check, so a malformed
// CUIT never reaches the lookup.
func (s *Service) Create(ctx context.Context, req CreateCompanyRequest) (_ *CompanyResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "company", "create")
	defer func() { telemetry.End(span, err) }()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyCUIT, req.Cuit,
		telemetry.SpanAttrCompanyType, req.Type,
	)

	if req.AdhesionDate == nil {
		return nil, shared.NewValidationError("Adhesion date is required")
	}

	c, err := company.NewCompanyAt(s.now(), s.newID(), req.Cuit, req.Name, req.AdhesionDate.Time, req.Type)
	if err != nil {
		return nil, err
	}

	existing, err := s.companyRepo.FindByCuit(ctx, c.Cuit.String())
	if err != nil {
		return nil, err
	}
	if err := s.domainService.ValidateCuitUniqueness(existing); err != nil {
		return nil, err
	}

	// The storage unique index reports a concurrent duplicate as the same conflict.
	if err := s.companyRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordCompanyCreated(ctx, c.Type.String())
	}

	telemetry.SetAttribute(span, telemetry.SpanAttrCompanyID, c.ID.String())

	response := ToCompanyResponse(c)
	return &response, nil
}

// List returns all companies, or those that adhered within filter.Period.
func (s *Service) List(ctx context.Context, filter *ListFilter) ([]CompanyResponse, error) {
	var adhesion *shared.DateRange
	if filter != nil && filter.Period != "" {
		r := filter.Period.Range(s.now())
		adhesion = &r
	}

	companies, err := s.companyRepo.FindAll(ctx, adhesion)
	if err != nil {
		return nil, err
	}
	return ToCompanyResponses(companies), nil
}

// ListRecentAdhesions returns companies that adhered within period.
func (s *Service) ListRecentAdhesions(ctx context.Context, period shared.Period) ([]CompanyResponse, error) {
	return s.List(ctx, &ListFilter{Period: period})
}

// ListWithTransfers returns distinct companies with at least one transfer
// created within period.
func (s *Service) ListWithTransfers(ctx context.Context, period shared.Period) (_ []CompanyResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "company", "list_with_transfers")
	defer func() { telemetry.End(span, err) }()
	telemetry.SetAttribute(span, telemetry.SpanAttrPeriod, string(period))

	r := period.Range(s.now())
	companies, err := s.companyRepo.FindWithTransfersInPeriod(ctx, r.From, r.To)
	if err != nil {
		return nil, err
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrResultCount, len(companies))
	return ToCompanyResponses(companies), nil
}

// GetByID retrieves a company by ID
func (s *Service) GetByID(ctx context.Context, id string) (*CompanyResponse, error) {
	c, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCompanyResponse(c)
	return &response, nil
}

// Delete removes a company. Companies with transfers cannot be deleted.
func (s *Service) Delete(ctx context.Context, id string) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "company", "delete",
		telemetry.WithAttribute(telemetry.SpanAttrCompanyID, id))
	defer func() { telemetry.End(span, err) }()

	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}

	count, err := s.transfers.CountByCompany(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return company.HasTransfersError(id)
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return company.NotFoundError(id)
		}
		return err
	}
	return nil
}

func (s *Service) findByID(ctx context.Context, id string) (*company.Company, error) {
	c, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, company.NotFoundError(id)
		}
		return nil, err
	}
	return c, nil
}
