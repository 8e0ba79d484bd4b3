package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий настроек поиска слотов салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByVendorID получает конфигурацию салона
// Если конфигурации нет, возвращает ErrConfigNotFound
func (r *Repository) GetByVendorID(ctx context.Context, vendorID string) (*domain.VendorSlotsConfig, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"vendor_id",
		"step_minutes",
		"buffer_before_minutes",
		"buffer_after_minutes",
		"min_booking_notice_minutes",
		"advance_booking_days",
		"created_at",
		"updated_at",
	).
		From("vendor_slots_config").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVendorID - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.VendorSlotsConfig
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.VendorID,
		&config.StepMinutes,
		&config.BufferBeforeMinutes,
		&config.BufferAfterMinutes,
		&config.MinBookingNoticeMinutes,
		&config.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVendorID - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или обновляет конфигурацию салона (одна запись на салон)
func (r *Repository) Upsert(ctx context.Context, config *domain.VendorSlotsConfig) (*domain.VendorSlotsConfig, error) {
	query, args, err := psqlbuilder.Insert("vendor_slots_config").
		Columns(
			"vendor_id",
			"step_minutes",
			"buffer_before_minutes",
			"buffer_after_minutes",
			"min_booking_notice_minutes",
			"advance_booking_days",
		).
		Values(
			config.VendorID,
			config.StepMinutes,
			config.BufferBeforeMinutes,
			config.BufferAfterMinutes,
			config.MinBookingNoticeMinutes,
			config.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (vendor_id) DO UPDATE SET
			step_minutes = EXCLUDED.step_minutes,
			buffer_before_minutes = EXCLUDED.buffer_before_minutes,
			buffer_after_minutes = EXCLUDED.buffer_after_minutes,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Delete удаляет конфигурацию салона, после чего действуют значения по умолчанию
func (r *Repository) Delete(ctx context.Context, vendorID string) error {
	query, args, err := psqlbuilder.Delete("vendor_slots_config").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
