package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-CalendarService/internal/service/settings/models"
)

// Service сервис настроек календаря компаний и филиалов
type Service struct {
	repo     SettingsRepository
	defaults domain.CalendarSettings
	logger   Logger
}

// NewService создает новый экземпляр сервиса настроек.
// defaults - настройки из конфигурации приложения, нижний уровень иерархии.
func NewService(repo SettingsRepository, defaults domain.CalendarSettings, logger Logger) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
	}
}

// Resolve возвращает действующие настройки для календаря
// Приоритет: branch > company > defaults
func (s *Service) Resolve(ctx context.Context, companyID int64, branchID *int64) (*domain.EffectiveSettings, error) {
	stored, level, err := s.lookup(ctx, companyID, branchID)
	if err != nil {
		return nil, err
	}

	cfg, err := stored.CalendarConfig()
	if err != nil {
		// В БД попадают только валидные настройки, значит испорчены данные
		s.logger.Error("Resolve: stored settings id=%d are invalid: %v", stored.ID, err)
		return nil, fmt.Errorf("%w: Resolve - invalid stored settings: %v", ErrInternal, err)
	}

	return &domain.EffectiveSettings{
		Settings: *stored,
		Level:    level,
		Config:   cfg,
	}, nil
}

// GetEffective получает действующие настройки с указанием уровня, откуда они взяты
// Если собственных настроек нет ни у филиала, ни у компании - возвращает настройки по умолчанию
func (s *Service) GetEffective(ctx context.Context, req *models.GetSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("GetEffective: fetching settings for company=%d, branch=%v", req.CompanyID, req.BranchID)

	stored, level, err := s.lookup(ctx, req.CompanyID, req.BranchID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetEffective: settings for company=%d resolved (level: %s)", req.CompanyID, level)
	return models.FromDomainSettings(stored, level), nil
}

// GetAllByCompany получает все сохраненные настройки компании
func (s *Service) GetAllByCompany(ctx context.Context, companyID int64) (*models.SettingsListResponse, error) {
	s.logger.Info("GetAllByCompany: fetching settings for company=%d", companyID)

	list, err := s.repo.GetAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("GetAllByCompany: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: GetAllByCompany - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllByCompany: successfully fetched %d settings for company=%d", len(list), companyID)
	return models.FromDomainSettingsList(list), nil
}

// Upsert создает или обновляет собственные настройки уровня
// Незаданные поля наследуются от действующих настроек уровня
func (s *Service) Upsert(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Upsert: updating settings for company=%d, branch=%v", req.CompanyID, req.BranchID)

	if req.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}

	// 1. Ищем собственные настройки уровня
	existing, err := s.repo.GetByCompanyAndBranch(ctx, req.CompanyID, req.BranchID)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("Upsert: failed to check existing settings: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	// 2. Если их нет - основой служат действующие (унаследованные) настройки
	base := existing
	if base == nil {
		inherited, _, err := s.lookup(ctx, req.CompanyID, req.BranchID)
		if err != nil {
			return nil, err
		}
		base = inherited
	}

	// 3. Применяем изменения к копии и валидируем
	updated := *base
	updated.CompanyID = req.CompanyID
	updated.BranchID = req.BranchID
	req.ApplyTo(&updated)

	if err := updated.Validate(); err != nil {
		s.logger.Warn("Upsert: validation failed for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	updated.LayoutMode, _ = domain.ParseLayoutMode(string(updated.LayoutMode))

	level := domain.SettingsLevelCompany
	if updated.IsBranchSpecific() {
		level = domain.SettingsLevelBranch
	}

	// 4. Сохраняем
	if existing == nil {
		created, err := s.repo.Create(ctx, &updated)
		if err != nil {
			s.logger.Error("Upsert: repository error on create: %v", err)
			return nil, fmt.Errorf("%w: Upsert - create: %v", ErrInternal, err)
		}
		s.logger.Info("Upsert: successfully created settings id=%d", created.ID)
		return models.FromDomainSettings(created, level), nil
	}

	saved, err := s.repo.Update(ctx, existing.ID, &updated)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Upsert: settings id=%d disappeared during update", existing.ID)
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Upsert: repository error on update id=%d: %v", existing.ID, err)
		return nil, fmt.Errorf("%w: Upsert - update: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully updated settings id=%d", saved.ID)
	return models.FromDomainSettings(saved, level), nil
}

// Delete удаляет собственные настройки уровня, после чего уровень наследует вышестоящие
func (s *Service) Delete(ctx context.Context, req *models.DeleteSettingsRequest) error {
	s.logger.Info("Delete: deleting settings for company=%d, branch=%v", req.CompanyID, req.BranchID)

	if err := s.repo.DeleteByCompanyAndBranch(ctx, req.CompanyID, req.BranchID); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Delete: settings not found for company=%d, branch=%v", req.CompanyID, req.BranchID)
			return ErrSettingsNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted settings for company=%d, branch=%v", req.CompanyID, req.BranchID)
	return nil
}

// Вспомогательные методы

// lookup ищет настройки по иерархии, при отсутствии возвращает копию настроек по умолчанию
func (s *Service) lookup(ctx context.Context, companyID int64, branchID *int64) (*domain.CalendarSettings, domain.SettingsLevel, error) {
	stored, err := s.repo.GetWithHierarchy(ctx, companyID, branchID)
	if err == nil {
		if stored.IsBranchSpecific() {
			return stored, domain.SettingsLevelBranch, nil
		}
		return stored, domain.SettingsLevelCompany, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("lookup: repository error for company=%d, branch=%v: %v", companyID, branchID, err)
		return nil, "", fmt.Errorf("%w: lookup - repository error: %v", ErrInternal, err)
	}

	defaults := s.defaults
	defaults.ID = 0
	defaults.CompanyID = companyID
	defaults.BranchID = nil
	return &defaults, domain.SettingsLevelDefault, nil
}
