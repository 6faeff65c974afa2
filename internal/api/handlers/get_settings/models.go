package get_settings

import (
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/settings/models"
)

// ToServiceRequest формирует запрос к сервису из URL и query параметров
func ToServiceRequest(companyID int64, branchIDStr string) (*models.GetSettingsRequest, error) {
	branchID, err := handlers.ParseOptionalID(branchIDStr)
	if err != nil {
		return nil, err
	}

	return &models.GetSettingsRequest{
		CompanyID: companyID,
		BranchID:  branchID, // nil означает настройки компании
	}, nil
}
