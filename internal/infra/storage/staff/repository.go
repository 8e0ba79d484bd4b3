package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository справочник специалистов салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специалистов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveByVendor получает активных специалистов салона с недельным расписанием
// и заблокированным временем на указанную дату.
// Порядок стабильный (name, id): по нему разрешается "любой специалист".
func (r *Repository) ListActiveByVendor(ctx context.Context, vendorID string, date time.Time) ([]domain.StaffMember, error) {
	// 1. Специалисты
	staff, err := r.listStaff(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return staff, nil
	}

	index := make(map[string]int, len(staff))
	ids := make([]string, len(staff))
	for i, s := range staff {
		index[s.ID] = i
		ids[i] = s.ID
	}

	// 2. Рабочие часы
	if err := r.loadWorkingHours(ctx, ids, staff, index); err != nil {
		return nil, err
	}

	// 3. Заблокированное время на дату
	if err := r.loadBlockedTimes(ctx, ids, date, staff, index); err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *Repository) listStaff(ctx context.Context, vendorID string) ([]domain.StaffMember, error) {
	query, args, err := psqlbuilder.Select("id", "name").
		From("staff").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVendor - build staff query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVendor - execute staff query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staff := make([]domain.StaffMember, 0)
	for rows.Next() {
		var member domain.StaffMember
		if err := rows.Scan(&member.ID, &member.Name); err != nil {
			return nil, fmt.Errorf("%w: ListActiveByVendor - scan staff: %v", ErrScanRow, err)
		}
		staff = append(staff, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVendor - staff rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}

// loadWorkingHours одна строка на рабочий период; день без периодов - выходной.
// weekday: 0 = воскресенье ... 6 = суббота
func (r *Repository) loadWorkingHours(ctx context.Context, ids []string, staff []domain.StaffMember, index map[string]int) error {
	query, args, err := psqlbuilder.Select("staff_id", "weekday", "is_available", "start_time", "end_time").
		From("staff_working_hours").
		Where(squirrel.Eq{"staff_id": ids}).
		OrderBy("staff_id ASC", "weekday ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ListActiveByVendor - build working hours query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ListActiveByVendor - execute working hours query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			staffID     string
			weekday     int
			isAvailable bool
			start, end  types.TimeString
		)
		if err := rows.Scan(&staffID, &weekday, &isAvailable, &start, &end); err != nil {
			return fmt.Errorf("%w: ListActiveByVendor - scan working hours: %v", ErrScanRow, err)
		}

		i, ok := index[staffID]
		if !ok || weekday < 0 || weekday > 6 {
			continue
		}

		wh := &staff[i].WorkingHours
		day := wh.ForDay(time.Weekday(weekday))
		day.IsAvailable = day.IsAvailable || isAvailable
		if start != "" && end != "" && end.Minutes() > start.Minutes() {
			day.Periods = append(day.Periods, domain.WorkingPeriod{
				StartMinutes: start.Minutes(),
				EndMinutes:   end.Minutes(),
			})
		}
		wh.Set(time.Weekday(weekday), day)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: ListActiveByVendor - working hours rows error: %v", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) loadBlockedTimes(ctx context.Context, ids []string, date time.Time, staff []domain.StaffMember, index map[string]int) error {
	query, args, err := psqlbuilder.Select("staff_id", "blocked_date", "start_time", "end_time", "COALESCE(reason, '')").
		From("staff_blocked_times").
		Where(squirrel.Eq{"staff_id": ids}).
		Where(squirrel.Eq{"blocked_date": date.Format(domain.DateFormat)}).
		OrderBy("staff_id ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ListActiveByVendor - build blocked times query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ListActiveByVendor - execute blocked times query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			staffID    string
			blocked    domain.BlockedTime
			start, end types.TimeString
		)
		if err := rows.Scan(&staffID, &blocked.Date, &start, &end, &blocked.Reason); err != nil {
			return fmt.Errorf("%w: ListActiveByVendor - scan blocked time: %v", ErrScanRow, err)
		}

		i, ok := index[staffID]
		if !ok {
			continue
		}

		// без времени - заблокирован весь день
		blocked.StartMinutes = start.Minutes()
		blocked.EndMinutes = types.MinutesPerDay
		if end != "" {
			blocked.EndMinutes = end.Minutes()
		}
		staff[i].BlockedTimes = append(staff[i].BlockedTimes, blocked)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: ListActiveByVendor - blocked times rows error: %v", ErrScanRow, err)
	}

	return nil
}
