package update_vendor_config

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
)

type ConfigService interface {
	Update(ctx context.Context, vendorID string, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
