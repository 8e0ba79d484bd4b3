package get_vendor_config

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
)

type ConfigService interface {
	Get(ctx context.Context, vendorID string) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
