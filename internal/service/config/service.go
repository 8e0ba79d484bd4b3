package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/config"
	vendorRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/vendor"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
)

// Service сервис для работы с настройками поиска слотов салона
type Service struct {
	configRepo ConfigRepository
	vendorRepo VendorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	vendorRepo VendorRepository,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// Get получает настройки салона
// Если салон ничего не настраивал, возвращает значения по умолчанию (IsDefault = true)
func (s *Service) Get(ctx context.Context, vendorID string) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching config for vendor=%s", vendorID)

	config, err := s.load(ctx, "Get", vendorID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainConfig(config), nil
}

// Update частично обновляет настройки салона
// Если настроек еще нет, они создаются поверх значений по умолчанию
func (s *Service) Update(ctx context.Context, vendorID string, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for vendor=%s", vendorID)

	if req == nil || req.IsEmpty() {
		s.logger.Warn("Update: empty update for vendor=%s", vendorID)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// 1. Получаем текущие настройки (или значения по умолчанию)
	config, err := s.load(ctx, "Update", vendorID)
	if err != nil {
		return nil, err
	}

	// 2. Применяем обновления и валидируем
	req.ApplyToConfig(config)
	if err := validateConfigData(config); err != nil {
		s.logger.Warn("Update: validation failed for vendor=%s: %v", vendorID, err)
		return nil, err
	}

	// 3. Сохраняем
	updated, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("Update: repository error for vendor=%s: %v", vendorID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated config id=%d for vendor=%s", updated.ID, vendorID)
	return models.FromDomainConfig(updated), nil
}

// Reset удаляет настройки салона, после чего действуют значения по умолчанию
func (s *Service) Reset(ctx context.Context, vendorID string) error {
	s.logger.Info("Reset: deleting config for vendor=%s", vendorID)

	if err := s.ensureVendor(ctx, "Reset", vendorID); err != nil {
		return err
	}

	if err := s.configRepo.Delete(ctx, vendorID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Reset: config for vendor=%s not found", vendorID)
			return ErrConfigNotFound
		}
		s.logger.Error("Reset: repository error for vendor=%s: %v", vendorID, err)
		return fmt.Errorf("%w: Reset - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reset: successfully deleted config for vendor=%s", vendorID)
	return nil
}

// Вспомогательные методы

// load проверяет салон и загружает настройки, подставляя значения по умолчанию
func (s *Service) load(ctx context.Context, op, vendorID string) (*domain.VendorSlotsConfig, error) {
	if err := s.ensureVendor(ctx, op, vendorID); err != nil {
		return nil, err
	}

	config, err := s.configRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("%s: config for vendor=%s not found, using defaults", op, vendorID)
			return domain.DefaultVendorSlotsConfig(vendorID), nil
		}
		s.logger.Error("%s: repository error for vendor=%s: %v", op, vendorID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return config, nil
}

func (s *Service) ensureVendor(ctx context.Context, op, vendorID string) error {
	if vendorID == "" {
		return fmt.Errorf("%w: vendorId is required", ErrInvalidInput)
	}

	if _, err := s.vendorRepo.GetByID(ctx, vendorID); err != nil {
		if errors.Is(err, vendorRepo.ErrVendorNotFound) {
			s.logger.Warn("%s: vendor id=%s not found", op, vendorID)
			return ErrVendorNotFound
		}
		s.logger.Error("%s: failed to get vendor id=%s: %v", op, vendorID, err)
		return fmt.Errorf("%w: failed to get vendor: %v", ErrInternal, err)
	}

	return nil
}

// validateConfigData валидирует параметры конфигурации
func validateConfigData(c *domain.VendorSlotsConfig) error {
	// Проверяем stepMinutes
	if c.StepMinutes < domain.MinStepMinutes || c.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: stepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}

	// Проверяем буферы
	if c.BufferBeforeMinutes < 0 || c.BufferBeforeMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferBeforeMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}
	if c.BufferAfterMinutes < 0 || c.BufferAfterMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferAfterMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}

	// Проверяем minBookingNoticeMinutes
	if c.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || c.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}

	// Проверяем advanceBookingDays
	if c.AdvanceBookingDays < domain.MinAdvanceBookingDays || c.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	return nil
}
