package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

// Понедельник
var testDate = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

// Накануне testDate, чтобы ограничение "сейчас" не действовало
var testNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func weekSchedule(periods ...domain.WorkingPeriod) domain.WorkingHours {
	var wh domain.WorkingHours
	day := domain.DaySchedule{IsAvailable: true, Periods: periods}
	for d := time.Sunday; d <= time.Saturday; d++ {
		wh.Set(d, day)
	}
	return wh
}

func period(start, end string) domain.WorkingPeriod {
	return domain.WorkingPeriod{StartMinutes: clock(start), EndMinutes: clock(end)}
}

func clock(hhmm string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return t.Hour()*60 + t.Minute()
}

func newStaff(id, name string) domain.StaffMember {
	return domain.StaffMember{
		ID:           id,
		Name:         name,
		WorkingHours: weekSchedule(period("09:00", "17:00")),
	}
}

func service(id string, minutes int) domain.ServiceRequest {
	return domain.ServiceRequest{ID: id, Name: "Service " + id, DurationMinutes: minutes}
}

func appointment(staffID, start, end string) domain.ExistingAppointment {
	return domain.ExistingAppointment{
		ID:           staffID + "-" + start,
		StaffID:      staffID,
		Date:         testDate,
		StartMinutes: clock(start),
		EndMinutes:   clock(end),
		Status:       domain.StatusConfirmed,
	}
}

func baseParams(staff []domain.StaffMember, assignments ...domain.Assignment) SearchParams {
	return SearchParams{
		Date:        testDate,
		Now:         testNow,
		Assignments: assignments,
		Staff:       staff,
		StepMinutes: 15,
	}
}

func newTestEngine(workers int) *Engine {
	return NewEngine(workers, logger.NewNop(), nil)
}

func startTimes(slots []domain.CandidateSlot) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.StartTime.String())
	}
	return result
}
