package update_settings

import "github.com/m04kA/SMC-CalendarService/internal/service/settings/models"

// UpdateSettingsRequest тело PUT запроса
// Незаданные поля наследуются от вышестоящего уровня
type UpdateSettingsRequest struct {
	BranchID      *int64   `json:"branchId,omitempty"`
	StartHour     *int     `json:"startHour,omitempty"`
	EndHour       *int     `json:"endHour,omitempty"`
	SlotInterval  *int     `json:"slotInterval,omitempty"`
	DensityFactor *float64 `json:"densityFactor,omitempty"`
	LayoutMode    *string  `json:"layoutMode,omitempty"`
}

// ToServiceRequest конвертирует тело запроса в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(companyID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		CompanyID:     companyID,
		BranchID:      r.BranchID,
		StartHour:     r.StartHour,
		EndHour:       r.EndHour,
		SlotInterval:  r.SlotInterval,
		DensityFactor: r.DensityFactor,
		LayoutMode:    r.LayoutMode,
	}
}
