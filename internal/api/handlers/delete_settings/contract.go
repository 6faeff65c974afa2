package delete_settings

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/settings/models"
)

type SettingsService interface {
	Delete(ctx context.Context, req *models.DeleteSettingsRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
