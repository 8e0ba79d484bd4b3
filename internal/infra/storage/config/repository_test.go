package config

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestRepository_GetByVendorID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, time.October, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, vendor_id, step_minutes, .* FROM vendor_slots_config WHERE vendor_id = \$1`).
		WithArgs("v1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "vendor_id", "step_minutes", "buffer_before_minutes", "buffer_after_minutes",
			"min_booking_notice_minutes", "advance_booking_days", "created_at", "updated_at",
		}).AddRow(int64(7), "v1", int64(30), int64(5), int64(10), int64(120), int64(60), now, now))

	repo := NewRepository(db)
	cfg, err := repo.GetByVendorID(context.Background(), "v1")
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.ID)
	assert.Equal(t, 30, cfg.StepMinutes)
	assert.Equal(t, 5, cfg.BufferBeforeMinutes)
	assert.Equal(t, 10, cfg.BufferAfterMinutes)
	assert.Equal(t, 120, cfg.MinBookingNoticeMinutes)
	assert.Equal(t, 60, cfg.AdvanceBookingDays)
	assert.Equal(t, now, cfg.CreatedAt)
	assert.True(t, cfg.IsStored())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByVendorID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM vendor_slots_config").WillReturnError(sql.ErrNoRows)

	repo := NewRepository(db)
	_, err = repo.GetByVendorID(context.Background(), "v1")
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO vendor_slots_config .* ON CONFLICT \(vendor_id\) DO UPDATE SET`).
		WithArgs("v1", 20, 0, 15, 30, 14).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))

	repo := NewRepository(db)
	cfg, err := repo.Upsert(context.Background(), &domain.VendorSlotsConfig{
		VendorID:                "v1",
		StepMinutes:             20,
		BufferAfterMinutes:      15,
		MinBookingNoticeMinutes: 30,
		AdvanceBookingDays:      14,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), cfg.ID)
	assert.Equal(t, now, cfg.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM vendor_slots_config WHERE vendor_id = \$1`).
		WithArgs("v1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM vendor_slots_config`).
		WithArgs("v2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	assert.NoError(t, repo.Delete(context.Background(), "v1"))
	assert.True(t, errors.Is(repo.Delete(context.Background(), "v2"), ErrConfigNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
