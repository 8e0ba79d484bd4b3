package update_vendor_config

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
)

// UpdateVendorConfigRequest HTTP request model
type UpdateVendorConfigRequest struct {
	StepMinutes             *int `json:"stepMinutes,omitempty"`
	BufferBeforeMinutes     *int `json:"bufferBeforeMinutes,omitempty"`
	BufferAfterMinutes      *int `json:"bufferAfterMinutes,omitempty"`
	MinBookingNoticeMinutes *int `json:"minBookingNoticeMinutes,omitempty"`
	AdvanceBookingDays      *int `json:"advanceBookingDays,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateVendorConfigRequest) ToServiceRequest() *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		StepMinutes:             r.StepMinutes,
		BufferBeforeMinutes:     r.BufferBeforeMinutes,
		BufferAfterMinutes:      r.BufferAfterMinutes,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
	}
}
