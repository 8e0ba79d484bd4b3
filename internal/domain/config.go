package domain

import "time"

// VendorSlotsConfig настройки поиска слотов салона
type VendorSlotsConfig struct {
	ID                      int64
	VendorID                string
	StepMinutes             int
	BufferBeforeMinutes     int
	BufferAfterMinutes      int
	MinBookingNoticeMinutes int
	AdvanceBookingDays      int // 0 = без ограничений
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultVendorSlotsConfig конфигурация, если салон ничего не настроил
func DefaultVendorSlotsConfig(vendorID string) *VendorSlotsConfig {
	return &VendorSlotsConfig{
		VendorID:                vendorID,
		StepMinutes:             DefaultStepMinutes,
		BufferBeforeMinutes:     DefaultBufferBeforeMinutes,
		BufferAfterMinutes:      DefaultBufferAfterMinutes,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
	}
}

// IsStored возвращает true, если конфигурация загружена из БД
func (c *VendorSlotsConfig) IsStored() bool {
	return c.ID != 0
}

// HasAdvanceBookingLimit возвращает true, если есть ограничение на дальность записи
func (c *VendorSlotsConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}
