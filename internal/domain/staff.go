package domain

import "time"

// WorkingPeriod рабочий интервал внутри дня в минутах от полуночи
type WorkingPeriod struct {
	StartMinutes int
	EndMinutes   int
}

// Contains возвращает true, если [start, end] целиком внутри периода
func (p WorkingPeriod) Contains(start, end int) bool {
	return start >= p.StartMinutes && end <= p.EndMinutes
}

// DaySchedule расписание специалиста на день недели
type DaySchedule struct {
	IsAvailable bool
	Periods     []WorkingPeriod // непересекающиеся, упорядоченные по началу
}

// WorkingHours недельное расписание специалиста
type WorkingHours struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForDay возвращает расписание на указанный день недели
func (w *WorkingHours) ForDay(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{}
	}
}

// Set заменяет расписание на указанный день недели
func (w *WorkingHours) Set(weekday time.Weekday, day DaySchedule) {
	switch weekday {
	case time.Monday:
		w.Monday = day
	case time.Tuesday:
		w.Tuesday = day
	case time.Wednesday:
		w.Wednesday = day
	case time.Thursday:
		w.Thursday = day
	case time.Friday:
		w.Friday = day
	case time.Saturday:
		w.Saturday = day
	case time.Sunday:
		w.Sunday = day
	}
}

// BlockedTime заблокированный интервал специалиста на конкретную дату
type BlockedTime struct {
	Date         time.Time
	StartMinutes int
	EndMinutes   int
	Reason       string
}

// StaffMember специалист, чье время распределяется поиском
type StaffMember struct {
	ID                string
	Name              string
	WorkingHours      WorkingHours
	BlockedTimes      []BlockedTime
	IsAnyProfessional bool
}

// AnyProfessional возвращает заглушку "любой специалист"
func AnyProfessional() StaffMember {
	return StaffMember{
		ID:                AnyProfessionalID,
		Name:              "Any Professional",
		IsAnyProfessional: true,
	}
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Overlaps проверка пересечения полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Граничащие интервалы не пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
