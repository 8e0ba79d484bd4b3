package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий записей (только чтение для поиска слотов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveByVendorAndDate получает все активные записи салона на дату.
// Дополнительные специалисты собираются из позиций записи (appointment_items).
// Сортировка по времени начала.
func (r *Repository) ListActiveByVendorAndDate(ctx context.Context, vendorID string, date time.Time) ([]domain.ExistingAppointment, error) {
	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.staff_id",
		"COALESCE(array_agg(DISTINCT ai.staff_id) FILTER (WHERE ai.staff_id IS NOT NULL AND ai.staff_id <> a.staff_id), '{}')",
		"a.appointment_date",
		"a.start_time",
		"a.end_time",
		"a.status",
		"a.is_home_service",
		"a.travel_time_minutes",
		"COALESCE(a.buffer_before_minutes, 0)",
		"COALESCE(a.buffer_after_minutes, 0)",
	).
		From("appointments a").
		LeftJoin("appointment_items ai ON ai.appointment_id = a.id").
		Where(squirrel.Eq{"a.vendor_id": vendorID}).
		Where(squirrel.Eq{"a.appointment_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"a.status": activeStatuses}).
		GroupBy("a.id").
		OrderBy("a.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVendorAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVendorAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует строки результата в записи
func (r *Repository) scanAppointments(rows *sql.Rows) ([]domain.ExistingAppointment, error) {
	appointments := make([]domain.ExistingAppointment, 0)

	for rows.Next() {
		var (
			appt       domain.ExistingAppointment
			secondary  []string
			start, end types.TimeString
			status     string
			isHome     sql.NullBool
			travelTime sql.NullInt64
		)

		err := rows.Scan(
			&appt.ID,
			&appt.StaffID,
			pq.Array(&secondary),
			&appt.Date,
			&start,
			&end,
			&status,
			&isHome,
			&travelTime,
			&appt.BufferBeforeMinutes,
			&appt.BufferAfterMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.SecondaryStaffIDs = secondary
		appt.StartMinutes = start.Minutes()
		appt.EndMinutes = end.Minutes()
		appt.Status = domain.AppointmentStatus(status)
		appt.IsHomeService = isHome.Bool
		if travelTime.Valid {
			minutes := int(travelTime.Int64)
			appt.TravelTimeMinutes = &minutes
		}

		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
