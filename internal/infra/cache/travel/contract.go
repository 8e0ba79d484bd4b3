package travel

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Estimator источник оценок при промахе кэша
type Estimator interface {
	Estimate(ctx context.Context, vendorID string, origin, destination domain.Location) (*domain.TravelInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
