package reset_vendor_config

import "context"

type ConfigService interface {
	Reset(ctx context.Context, vendorID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
