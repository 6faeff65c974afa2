package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-CalendarService/internal/service/settings/models"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

var testDefaults = domain.CalendarSettings{
	StartHour:     8,
	EndHour:       20,
	SlotInterval:  30,
	DensityFactor: 1.2,
	LayoutMode:    domain.LayoutPerEvent,
}

func stored(id, companyID int64, branchID *int64, start, end int) *domain.CalendarSettings {
	return &domain.CalendarSettings{
		ID:            id,
		CompanyID:     companyID,
		BranchID:      branchID,
		StartHour:     start,
		EndHour:       end,
		SlotInterval:  15,
		DensityFactor: 2,
		LayoutMode:    domain.LayoutClustered,
	}
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("branch settings", func(t *testing.T) {
		repo := new(MockRepository)
		branch := ptr.Ptr(int64(3))
		repo.On("GetWithHierarchy", mock.Anything, int64(1), branch).Return(stored(7, 1, branch, 9, 18), nil)

		s := NewService(repo, testDefaults, logger.Nop())
		eff, err := s.Resolve(ctx, 1, branch)

		require.NoError(t, err)
		assert.Equal(t, domain.SettingsLevelBranch, eff.Level)
		assert.Equal(t, domain.CalendarConfig{StartHour: 9, EndHour: 18, SlotInterval: 15}, eff.Config)
		assert.Equal(t, domain.LayoutClustered, eff.Settings.LayoutMode)
		repo.AssertExpectations(t)
	})

	t.Run("defaults when nothing stored", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetWithHierarchy", mock.Anything, int64(1), (*int64)(nil)).Return(nil, settingsRepo.ErrSettingsNotFound)

		s := NewService(repo, testDefaults, logger.Nop())
		eff, err := s.Resolve(ctx, 1, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.SettingsLevelDefault, eff.Level)
		assert.Equal(t, domain.DefaultCalendarConfig(), eff.Config)
		assert.Equal(t, int64(1), eff.Settings.CompanyID)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetWithHierarchy", mock.Anything, int64(1), (*int64)(nil)).Return(nil, assert.AnError)

		s := NewService(repo, testDefaults, logger.Nop())
		_, err := s.Resolve(ctx, 1, nil)

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("corrupted row", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetWithHierarchy", mock.Anything, int64(1), (*int64)(nil)).Return(stored(1, 1, nil, 20, 10), nil)

		s := NewService(repo, testDefaults, logger.Nop())
		_, err := s.Resolve(ctx, 1, nil)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_GetEffective(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetWithHierarchy", mock.Anything, int64(5), (*int64)(nil)).Return(stored(2, 5, nil, 10, 19), nil)

	s := NewService(repo, testDefaults, logger.Nop())
	resp, err := s.GetEffective(context.Background(), &models.GetSettingsRequest{CompanyID: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
	assert.Equal(t, "company", resp.Level)
	assert.Equal(t, 10, resp.StartHour)
	assert.Equal(t, "clustered", resp.LayoutMode)
}

func TestService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("creates branch row from inherited company settings", func(t *testing.T) {
		repo := new(MockRepository)
		branch := ptr.Ptr(int64(4))
		repo.On("GetByCompanyAndBranch", mock.Anything, int64(1), branch).Return(nil, settingsRepo.ErrSettingsNotFound)
		repo.On("GetWithHierarchy", mock.Anything, int64(1), branch).Return(stored(9, 1, nil, 9, 18), nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.CalendarSettings) bool {
			return s.BranchID == branch && s.StartHour == 7 && s.EndHour == 18 && s.SlotInterval == 15
		})).Return(func() *domain.CalendarSettings {
			created := stored(10, 1, branch, 7, 18)
			return created
		}(), nil)

		s := NewService(repo, testDefaults, logger.Nop())
		resp, err := s.Upsert(ctx, &models.UpdateSettingsRequest{CompanyID: 1, BranchID: branch, StartHour: ptr.Ptr(7)})

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "branch", resp.Level)
		repo.AssertExpectations(t)
	})

	t.Run("updates existing company row", func(t *testing.T) {
		repo := new(MockRepository)
		existing := stored(3, 1, nil, 9, 18)
		repo.On("GetByCompanyAndBranch", mock.Anything, int64(1), (*int64)(nil)).Return(existing, nil)
		repo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(s *domain.CalendarSettings) bool {
			return s.SlotInterval == 20 && s.LayoutMode == domain.LayoutPerEvent
		})).Return(stored(3, 1, nil, 9, 18), nil)

		s := NewService(repo, testDefaults, logger.Nop())
		resp, err := s.Upsert(ctx, &models.UpdateSettingsRequest{
			CompanyID:    1,
			SlotInterval: ptr.Ptr(20),
			LayoutMode:   ptr.Ptr(""),
		})

		require.NoError(t, err)
		assert.Equal(t, "company", resp.Level)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByCompanyAndBranch", mock.Anything, int64(1), (*int64)(nil)).Return(stored(3, 1, nil, 9, 18), nil)

		s := NewService(repo, testDefaults, logger.Nop())
		_, err := s.Upsert(ctx, &models.UpdateSettingsRequest{CompanyID: 1, EndHour: ptr.Ptr(5)})

		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects bad company", func(t *testing.T) {
		s := NewService(new(MockRepository), testDefaults, logger.Nop())
		_, err := s.Upsert(ctx, &models.UpdateSettingsRequest{CompanyID: 0})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteByCompanyAndBranch", mock.Anything, int64(1), (*int64)(nil)).Return(nil).Once()
	repo.On("DeleteByCompanyAndBranch", mock.Anything, int64(2), (*int64)(nil)).Return(settingsRepo.ErrSettingsNotFound)

	s := NewService(repo, testDefaults, logger.Nop())

	assert.NoError(t, s.Delete(context.Background(), &models.DeleteSettingsRequest{CompanyID: 1}))
	assert.ErrorIs(t, s.Delete(context.Background(), &models.DeleteSettingsRequest{CompanyID: 2}), ErrSettingsNotFound)
}

func TestService_GetAllByCompany(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetAllByCompany", mock.Anything, int64(1)).Return([]*domain.CalendarSettings{
		stored(1, 1, nil, 9, 18),
		stored(2, 1, ptr.Ptr(int64(3)), 7, 22),
	}, nil)

	s := NewService(repo, testDefaults, logger.Nop())
	resp, err := s.GetAllByCompany(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, resp.Settings, 2)
	assert.Equal(t, "company", resp.Settings[0].Level)
	assert.Equal(t, "branch", resp.Settings[1].Level)
}
