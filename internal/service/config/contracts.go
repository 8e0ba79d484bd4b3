package config

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ConfigRepository интерфейс репозитория настроек поиска слотов
type ConfigRepository interface {
	GetByVendorID(ctx context.Context, vendorID string) (*domain.VendorSlotsConfig, error)
	Upsert(ctx context.Context, config *domain.VendorSlotsConfig) (*domain.VendorSlotsConfig, error)
	Delete(ctx context.Context, vendorID string) error
}

// VendorRepository интерфейс справочника салонов
type VendorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
