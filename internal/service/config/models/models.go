package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление настроек поиска салона
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	StepMinutes             *int `json:"stepMinutes,omitempty"`
	BufferBeforeMinutes     *int `json:"bufferBeforeMinutes,omitempty"`
	BufferAfterMinutes      *int `json:"bufferAfterMinutes,omitempty"`
	MinBookingNoticeMinutes *int `json:"minBookingNoticeMinutes,omitempty"`
	AdvanceBookingDays      *int `json:"advanceBookingDays,omitempty"` // 0 = без ограничений
}

// IsEmpty возвращает true, если не передано ни одного поля
func (r *UpdateConfigRequest) IsEmpty() bool {
	return r.StepMinutes == nil &&
		r.BufferBeforeMinutes == nil &&
		r.BufferAfterMinutes == nil &&
		r.MinBookingNoticeMinutes == nil &&
		r.AdvanceBookingDays == nil
}

// Response модели

// ConfigResponse ответ с настройками поиска салона
type ConfigResponse struct {
	ID                      int64      `json:"id"` // 0 означает, что это значения по умолчанию
	VendorID                string     `json:"vendorId"`
	StepMinutes             int        `json:"stepMinutes"`
	BufferBeforeMinutes     int        `json:"bufferBeforeMinutes"`
	BufferAfterMinutes      int        `json:"bufferAfterMinutes"`
	MinBookingNoticeMinutes int        `json:"minBookingNoticeMinutes"`
	AdvanceBookingDays      int        `json:"advanceBookingDays"`
	IsDefault               bool       `json:"isDefault"`
	CreatedAt               *time.Time `json:"createdAt,omitempty"`
	UpdatedAt               *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.VendorSlotsConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:                      c.ID,
		VendorID:                c.VendorID,
		StepMinutes:             c.StepMinutes,
		BufferBeforeMinutes:     c.BufferBeforeMinutes,
		BufferAfterMinutes:      c.BufferAfterMinutes,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		IsDefault:               !c.IsStored(),
	}

	if c.IsStored() {
		createdAt, updatedAt := c.CreatedAt, c.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// ApplyToConfig применяет обновления к существующей конфигурации
// Обновляются только непустые (not nil) поля из request
func (r *UpdateConfigRequest) ApplyToConfig(config *domain.VendorSlotsConfig) {
	if r.StepMinutes != nil {
		config.StepMinutes = *r.StepMinutes
	}
	if r.BufferBeforeMinutes != nil {
		config.BufferBeforeMinutes = *r.BufferBeforeMinutes
	}
	if r.BufferAfterMinutes != nil {
		config.BufferAfterMinutes = *r.BufferAfterMinutes
	}
	if r.MinBookingNoticeMinutes != nil {
		config.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}
	if r.AdvanceBookingDays != nil {
		config.AdvanceBookingDays = *r.AdvanceBookingDays
	}
}
