package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модели

// GetSettingsRequest запрос на получение действующих настроек
type GetSettingsRequest struct {
	CompanyID int64  `json:"companyId"`
	BranchID  *int64 `json:"branchId,omitempty"` // nil означает настройки компании
}

// UpdateSettingsRequest запрос на изменение настроек уровня (компания или филиал)
// Все поля значений опциональны - незаданные берутся из текущих действующих настроек
type UpdateSettingsRequest struct {
	CompanyID     int64    `json:"companyId"`
	BranchID      *int64   `json:"branchId,omitempty"`
	StartHour     *int     `json:"startHour,omitempty"`
	EndHour       *int     `json:"endHour,omitempty"`
	SlotInterval  *int     `json:"slotInterval,omitempty"`
	DensityFactor *float64 `json:"densityFactor,omitempty"`
	LayoutMode    *string  `json:"layoutMode,omitempty"`
}

// DeleteSettingsRequest запрос на сброс настроек уровня к унаследованным
type DeleteSettingsRequest struct {
	CompanyID int64  `json:"companyId"`
	BranchID  *int64 `json:"branchId,omitempty"`
}

// Response модели

// SettingsResponse ответ с действующими настройками календаря
type SettingsResponse struct {
	ID            int64      `json:"id"` // 0 означает настройки по умолчанию
	CompanyID     int64      `json:"companyId"`
	BranchID      *int64     `json:"branchId,omitempty"`
	Level         string     `json:"level"`
	StartHour     int        `json:"startHour"`
	EndHour       int        `json:"endHour"`
	SlotInterval  int        `json:"slotInterval"`
	DensityFactor float64    `json:"densityFactor"`
	LayoutMode    string     `json:"layoutMode"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// SettingsListResponse ответ со списком настроек компании
type SettingsListResponse struct {
	Settings []SettingsResponse `json:"settings"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.CalendarSettings, level domain.SettingsLevel) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		ID:            s.ID,
		CompanyID:     s.CompanyID,
		BranchID:      s.BranchID,
		Level:         string(level),
		StartHour:     s.StartHour,
		EndHour:       s.EndHour,
		SlotInterval:  s.SlotInterval,
		DensityFactor: s.DensityFactor,
		LayoutMode:    string(s.LayoutMode),
	}
	if !s.CreatedAt.IsZero() {
		createdAt := s.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// FromDomainSettingsList конвертирует список domain моделей в DTO
func FromDomainSettingsList(list []*domain.CalendarSettings) *SettingsListResponse {
	resp := &SettingsListResponse{
		Settings: make([]SettingsResponse, 0, len(list)),
	}

	for _, s := range list {
		level := domain.SettingsLevelCompany
		if s.IsBranchSpecific() {
			level = domain.SettingsLevelBranch
		}
		resp.Settings = append(resp.Settings, *FromDomainSettings(s, level))
	}

	return resp
}

// ApplyTo применяет заданные поля запроса к настройкам
func (r *UpdateSettingsRequest) ApplyTo(s *domain.CalendarSettings) {
	if r.StartHour != nil {
		s.StartHour = *r.StartHour
	}
	if r.EndHour != nil {
		s.EndHour = *r.EndHour
	}
	if r.SlotInterval != nil {
		s.SlotInterval = *r.SlotInterval
	}
	if r.DensityFactor != nil {
		s.DensityFactor = *r.DensityFactor
	}
	if r.LayoutMode != nil {
		s.LayoutMode = domain.LayoutMode(*r.LayoutMode)
	}
}
