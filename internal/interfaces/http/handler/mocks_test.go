package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	companyapp "github.com/interbanking/backend/internal/application/company"
	transferapp "github.com/interbanking/backend/internal/application/transfer"
	"github.com/interbanking/backend/internal/domain/company"
	"github.com/interbanking/backend/internal/domain/shared"
	"github.com/interbanking/backend/internal/domain/transfer"
	"github.com/interbanking/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// fixedNow pins "now" for every service built by the handler tests.
var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// MockCompanyRepository is a mock implementation of company.Repository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, adhesion *shared.DateRange) ([]company.Company, error) {
	args := m.Called(ctx, adhesion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

// MockTransferRepository is a mock implementation of transfer.Repository
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) FindAll(ctx context.Context) ([]transfer.Transfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transfer.Transfer), args.Error(1)
}

func (m *MockTransferRepository) FindByID(ctx context.Context, id string) (*transfer.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.Transfer), args.Error(1)
}

func (m *MockTransferRepository) Save(ctx context.Context, t *transfer.Transfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransferRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransferRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func newCompanyService(companies *MockCompanyRepository, transfers *MockTransferRepository, id string) *companyapp.Service {
	return companyapp.NewService(companies, transfers,
		companyapp.WithClock(func() time.Time { return fixedNow }),
		companyapp.WithIDGenerator(func() string { return id }),
	)
}

func newTransferService(transfers *MockTransferRepository, companies *MockCompanyRepository, id string) *transferapp.Service {
	return transferapp.NewService(transfers, companies,
		transferapp.WithClock(func() time.Time { return fixedNow }),
		transferapp.WithIDGenerator(func() string { return id }),
	)
}

func sampleCompany(id, cuit string) *company.Company {
	return company.RestoreCompany(id, cuit, "Test Company S.A.", fixedNow.AddDate(0, 0, -3), "PYME")
}
