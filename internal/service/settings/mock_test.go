package settings

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func settingsResult(args mock.Arguments) (*domain.CalendarSettings, error) {
	if s, ok := args.Get(0).(*domain.CalendarSettings); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, s *domain.CalendarSettings) (*domain.CalendarSettings, error) {
	return settingsResult(m.Called(ctx, s))
}

func (m *MockRepository) GetByCompanyAndBranch(ctx context.Context, companyID int64, branchID *int64) (*domain.CalendarSettings, error) {
	return settingsResult(m.Called(ctx, companyID, branchID))
}

func (m *MockRepository) GetWithHierarchy(ctx context.Context, companyID int64, branchID *int64) (*domain.CalendarSettings, error) {
	return settingsResult(m.Called(ctx, companyID, branchID))
}

func (m *MockRepository) GetAllByCompany(ctx context.Context, companyID int64) ([]*domain.CalendarSettings, error) {
	args := m.Called(ctx, companyID)
	if list, ok := args.Get(0).([]*domain.CalendarSettings); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, s *domain.CalendarSettings) (*domain.CalendarSettings, error) {
	return settingsResult(m.Called(ctx, id, s))
}

func (m *MockRepository) DeleteByCompanyAndBranch(ctx context.Context, companyID int64, branchID *int64) error {
	return m.Called(ctx, companyID, branchID).Error(0)
}
