package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// IsAvailable проверяет, свободен ли специалист в окне [windowStart, windowEnd] на дату date.
// Окно уже должно быть расширено на дорогу и буферы.
func IsAvailable(
	staff *domain.StaffMember,
	date time.Time,
	windowStart, windowEnd int,
	appointments []domain.ExistingAppointment,
) bool {
	// 1. "Любой специалист" должен быть разрешен до вызова
	if staff == nil || staff.IsAnyProfessional || staff.ID == domain.AnyProfessionalID {
		return false
	}

	// 2. Специалист работает в этот день недели
	day := staff.WorkingHours.ForDay(date.Weekday())
	if !day.IsAvailable {
		return false
	}

	// 3. Окно целиком внутри одного рабочего периода (перерыв между периодами не перекрываем)
	contained := false
	for _, period := range day.Periods {
		if period.Contains(windowStart, windowEnd) {
			contained = true
			break
		}
	}
	if !contained {
		return false
	}

	// 4. Не пересекается с заблокированным временем на эту дату
	for _, blocked := range staff.BlockedTimes {
		if !domain.SameDay(blocked.Date, date) {
			continue
		}
		if domain.Overlaps(windowStart, windowEnd, blocked.StartMinutes, blocked.EndMinutes) {
			return false
		}
	}

	// 5. Не пересекается с окном исключения активных записей этого специалиста
	for i := range appointments {
		appt := &appointments[i]
		if !appt.IsActive() || !appt.InvolvesStaff(staff.ID) || !domain.SameDay(appt.Date, date) {
			continue
		}
		apptStart, apptEnd := appt.ExclusionWindow()
		if domain.Overlaps(windowStart, windowEnd, apptStart, apptEnd) {
			return false
		}
	}

	return true
}
