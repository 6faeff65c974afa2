package get_settings

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/settings/models"
)

type SettingsService interface {
	GetEffective(ctx context.Context, req *models.GetSettingsRequest) (*models.SettingsResponse, error)
	GetAllByCompany(ctx context.Context, companyID int64) (*models.SettingsListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
