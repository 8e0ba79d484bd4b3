package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

// VendorRepository интерфейс справочника салонов
type VendorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
}

// StaffRepository интерфейс справочника специалистов
type StaffRepository interface {
	// ListActiveByVendor получает активных специалистов с расписанием и блокировками на дату
	ListActiveByVendor(ctx context.Context, vendorID string, date time.Time) ([]domain.StaffMember, error)
}

// CatalogRepository интерфейс каталога услуг и опций
type CatalogRepository interface {
	GetServices(ctx context.Context, vendorID string, ids []string) (map[string]domain.ServiceRequest, error)
	GetAddOns(ctx context.Context, ids []string) (map[string]domain.AddOn, error)
}

// AppointmentRepository интерфейс хранилища записей
type AppointmentRepository interface {
	// ListActiveByVendorAndDate получает активные записи салона на дату
	ListActiveByVendorAndDate(ctx context.Context, vendorID string, date time.Time) ([]domain.ExistingAppointment, error)
}

// ConfigRepository интерфейс репозитория настроек поиска
type ConfigRepository interface {
	GetByVendorID(ctx context.Context, vendorID string) (*domain.VendorSlotsConfig, error)
}

// TravelEstimator интерфейс оценки времени в пути
type TravelEstimator interface {
	Estimate(ctx context.Context, vendorID string, origin, destination domain.Location) (*domain.TravelInfo, error)
}

// SlotSearcher интерфейс движка поиска слотов
type SlotSearcher interface {
	Search(ctx context.Context, params availability.SearchParams) (*availability.SearchResult, error)
}

// TravelObserver учитывает источник оценки поездки (метрики)
type TravelObserver interface {
	ObserveTravelEstimate(source string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
