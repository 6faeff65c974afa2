package settings

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек календаря
type SettingsRepository interface {
	Create(ctx context.Context, s *domain.CalendarSettings) (*domain.CalendarSettings, error)
	GetByCompanyAndBranch(ctx context.Context, companyID int64, branchID *int64) (*domain.CalendarSettings, error)
	GetWithHierarchy(ctx context.Context, companyID int64, branchID *int64) (*domain.CalendarSettings, error)
	GetAllByCompany(ctx context.Context, companyID int64) ([]*domain.CalendarSettings, error)
	Update(ctx context.Context, id int64, s *domain.CalendarSettings) (*domain.CalendarSettings, error)
	DeleteByCompanyAndBranch(ctx context.Context, companyID int64, branchID *int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
