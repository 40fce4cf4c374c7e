package company

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/interbanking/backend/internal/domain/company"
	"github.com/interbanking/backend/internal/domain/shared"
)

// =============================================================================
// Mocks
// =============================================================================

// MockCompanyRepository is a mock implementation of company.Repository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, adhesion *shared.DateRange) ([]company.Company, error) {
	args := m.Called(ctx, adhesion)
	return args.Get(0).([]company.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByCuit(ctx context.Context, cuit string) (*company.Company, error) {
	args := m.Called(ctx, cuit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindWithTransfersInPeriod(ctx context.Context, from, to time.Time) ([]company.Company, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]company.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTransferCounter is a mock implementation of TransferCounter
type MockTransferCounter struct {
	mock.Mock
}

func (m *MockTransferCounter) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

// MockMetrics records company metric calls
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordCompanyCreated(ctx context.Context, companyType string) {
	m.Called(ctx, companyType)
}

// =============================================================================
// Helpers
// =============================================================================

var fixedNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func newTestService(repo *MockCompanyRepository, counter *MockTransferCounter, opts ...Option) *Service {
	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "company-0001" }),
	}, opts...)
	return NewService(repo, counter, opts...)
}

func validRequest() CreateCompanyRequest {
	return CreateCompanyRequest{
		Cuit:         "20-12345678-9",
		Name:         "Test Company S.A.",
		AdhesionDate: &shared.Timestamp{Time: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		Type:         "CORPORATE",
	}
}

func requireDomainCode(t *testing.T, err error, code string) *shared.DomainError {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, code, domainErr.Code)
	return domainErr
}

// =============================================================================
// Create
// =============================================================================

func TestService_Create_Success(t *testing.T) {
	repo := new(MockCompanyRepository)
	metrics := new(MockMetrics)
	svc := newTestService(repo, new(MockTransferCounter), WithMetrics(metrics))
	ctx := context.Background()

	repo.On("FindByCuit", ctx, "20-12345678-9").Return(nil, nil)
	repo.On("Save", ctx, mock.MatchedBy(func(c *company.Company) bool {
		return c.ID == "company-0001" && c.Type == company.CompanyTypeCorporate
	})).Return(nil)
	metrics.On("RecordCompanyCreated", ctx, "CORPORATE").Return()

	resp, err := svc.Create(ctx, validRequest())

	require.NoError(t, err)
	assert.Equal(t, "company-0001", resp.ID)
	assert.Equal(t, "20-12345678-9", resp.Cuit)
	assert.Equal(t, "Test Company S.A.", resp.Name)
	assert.Equal(t, "CORPORATE", resp.Type)
	assert.True(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).Equal(resp.AdhesionDate))
	repo.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestService_Create_DuplicateCuit(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := newTestService(repo, new(MockTransferCounter))
	ctx := context.Background()

	existing := company.RestoreCompany("other", "20-12345678-9", "Other", fixedNow, "PYME")
	repo.On("FindByCuit", ctx, "20-12345678-9").Return(existing, nil)

	_, err := svc.Create(ctx, validRequest())

	domainErr := requireDomainCode(t, err, shared.CodeAlreadyExists)
	assert.Equal(t, "Company with CUIT 20-12345678-9 already exists", domainErr.Message)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Create_ConcurrentDuplicateFromStorage(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := newTestService(repo, new(MockTransferCounter))
	ctx := context.Background()

	repo.On("FindByCuit", ctx, "20-12345678-9").Return(nil, nil)
	repo.On("Save", ctx, mock.Anything).Return(company.DuplicateCuitError("20-12345678-9"))

	_, err := svc.Create(ctx, validRequest())

	assert.True(t, errors.Is(err, shared.ErrAlreadyExists))
}

func TestService_Create_MalformedCuitSkipsLookup(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := newTestService(repo, new(MockTransferCounter))

	req := validRequest()
	req.Cuit = "20123456789"
	_, err := svc.Create(context.Background(), req)

	domainErr := requireDomainCode(t, err, shared.CodeValidation)
	assert.Equal(t, "CUIT must be in format XX-XXXXXXXX-X", domainErr.Message)
	repo.AssertNotCalled(t, "FindByCuit", mock.Anything, mock.Anything)
}

func TestService_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateCompanyRequest)
		message string
	}{
		{"missing adhesion date", func(r *CreateCompanyRequest) { r.AdhesionDate = nil }, "Adhesion date is required"},
		{"future adhesion date", func(r *CreateCompanyRequest) {
			r.AdhesionDate = &shared.Timestamp{Time: time.Now().Add(24 * time.Hour)}
		}, "Adhesion date cannot be in the future"},
		{"short name", func(r *CreateCompanyRequest) { r.Name = "A" }, "Company name must be at least 2 characters long"},
		{"bad type", func(r *CreateCompanyRequest) { r.Type = "STARTUP" }, "Company type must be one of: PYME, CORPORATE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCompanyRepository)
			svc := newTestService(repo, new(MockTransferCounter))
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)

			domainErr := requireDomainCode(t, err, shared.CodeValidation)
			assert.Equal(t, tt.message, domainErr.Message)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Create_FutureAdhesionUsesServiceClock(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := newTestService(repo, new(MockTransferCounter))

	req := validRequest()
	req.AdhesionDate = &shared.Timestamp{Time: fixedNow.Add(time.Hour)}
	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrValidation))
	assert.Equal(t, "Adhesion date cannot be in the future", err.Error())
	repo.AssertNotCalled(t, "FindByCuit", mock.Anything, mock.Anything)
}

func TestService_Create_LookupError(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := newTestService(repo, new(MockTransferCounter))
	ctx := context.Background()

	dbErr := errors.New("connection refused")
	repo.On("FindByCuit", ctx, "20-12345678-9").Return(nil, dbErr)

	_, err := svc.Create(ctx, validRequest())
	assert.ErrorIs(t, err, dbErr)
}

// =============================================================================
// Queries
// =============================================================================

func TestService_List_All(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := newTestService(repo, new(MockTransferCounter))
	ctx := context.Background()

	companies := []company.Company{
		*company.RestoreCompany("c-1", "20-12345678-9", "One", fixedNow, "PYME"),
		*company.RestoreCompany("c-2", "30-12345678-9", "Two", fixedNow, "CORPORATE"),
	}
	repo.On("FindAll", ctx, (*shared.DateRange)(nil)).Return(companies, nil)

	resp, err := svc.List(ctx, nil)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "c-1", resp[0].ID)
	assert.Equal(t, "CORPORATE", resp[1].Type)
}

func TestService_ListRecentAdhesions(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := newTestService(repo, new(MockTransferCounter))
	ctx := context.Background()

	expected := shared.DateRange{From: fixedNow.AddDate(0, 0, -30), To: fixedNow}
	repo.On("FindAll", ctx, &expected).Return([]company.Company{}, nil)

	resp, err := svc.ListRecentAdhesions(ctx, shared.PeriodLastMonth)

	require.NoError(t, err)
	assert.Empty(t, resp)
	repo.AssertExpectations(t)
}

func TestService_ListWithTransfers(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := newTestService(repo, new(MockTransferCounter))
	ctx := context.Background()

	active := *company.RestoreCompany("c-1", "20-12345678-9", "Active", fixedNow, "PYME")
	repo.On("FindWithTransfersInPeriod", ctx, fixedNow.AddDate(0, 0, -30), fixedNow).
		Return([]company.Company{active}, nil)

	resp, err := svc.ListWithTransfers(ctx, shared.PeriodLastMonth)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "c-1", resp[0].ID)
	repo.AssertExpectations(t)
}

func TestService_GetByID(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := newTestService(repo, new(MockTransferCounter))
	ctx := context.Background()

	c := company.RestoreCompany("c-1", "20-12345678-9", "One", fixedNow, "PYME")
	repo.On("FindByID", ctx, "c-1").Return(c, nil)
	repo.On("FindByID", ctx, "missing").Return(nil, shared.ErrNotFound)

	resp, err := svc.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "One", resp.Name)

	_, err = svc.GetByID(ctx, "missing")
	domainErr := requireDomainCode(t, err, shared.CodeNotFound)
	assert.Equal(t, "Company with ID missing not found", domainErr.Message)
}

// =============================================================================
// Delete
// =============================================================================

func TestService_Delete_Success(t *testing.T) {
	repo := new(MockCompanyRepository)
	counter := new(MockTransferCounter)
	svc := newTestService(repo, counter)
	ctx := context.Background()

	c := company.RestoreCompany("c-1", "20-12345678-9", "One", fixedNow, "PYME")
	repo.On("FindByID", ctx, "c-1").Return(c, nil)
	counter.On("CountByCompany", ctx, "c-1").Return(int64(0), nil)
	repo.On("Delete", ctx, "c-1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "c-1"))
	repo.AssertExpectations(t)
	counter.AssertExpectations(t)
}

func TestService_Delete_Twice(t *testing.T) {
	repo := new(MockCompanyRepository)
	counter := new(MockTransferCounter)
	svc := newTestService(repo, counter)
	ctx := context.Background()

	c := company.RestoreCompany("c-1", "20-12345678-9", "One", fixedNow, "PYME")
	repo.On("FindByID", ctx, "c-1").Return(c, nil).Once()
	counter.On("CountByCompany", ctx, "c-1").Return(int64(0), nil).Once()
	repo.On("Delete", ctx, "c-1").Return(nil).Once()
	repo.On("FindByID", ctx, "c-1").Return(nil, shared.ErrNotFound).Once()

	require.NoError(t, svc.Delete(ctx, "c-1"))
	err := svc.Delete(ctx, "c-1")
	domainErr := requireDomainCode(t, err, shared.CodeNotFound)
	assert.Equal(t, "Company with ID c-1 not found", domainErr.Message)
}

func TestService_Delete_HasTransfers(t *testing.T) {
	repo := new(MockCompanyRepository)
	counter := new(MockTransferCounter)
	svc := newTestService(repo, counter)
	ctx := context.Background()

	c := company.RestoreCompany("c-1", "20-12345678-9", "One", fixedNow, "PYME")
	repo.On("FindByID", ctx, "c-1").Return(c, nil)
	counter.On("CountByCompany", ctx, "c-1").Return(int64(3), nil)

	err := svc.Delete(ctx, "c-1")

	requireDomainCode(t, err, shared.CodeConflict)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_RowVanished(t *testing.T) {
	repo := new(MockCompanyRepository)
	counter := new(MockTransferCounter)
	svc := newTestService(repo, counter)
	ctx := context.Background()

	c := company.RestoreCompany("c-1", "20-12345678-9", "One", fixedNow, "PYME")
	repo.On("FindByID", ctx, "c-1").Return(c, nil)
	counter.On("CountByCompany", ctx, "c-1").Return(int64(0), nil)
	repo.On("Delete", ctx, "c-1").Return(shared.ErrNotFound)

	err := svc.Delete(ctx, "c-1")
	assert.Equal(t, "Company with ID c-1 not found", err.Error())
}
