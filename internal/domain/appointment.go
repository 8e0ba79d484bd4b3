package domain

import "time"

// AppointmentStatus статус существующей записи
type AppointmentStatus string

const (
	StatusPending           AppointmentStatus = "pending"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusScheduled         AppointmentStatus = "scheduled"
	StatusTemporarilyLocked AppointmentStatus = "temp_locked"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelled         AppointmentStatus = "cancelled"
	StatusNoShow            AppointmentStatus = "no_show"
)

// ExistingAppointment ранее созданная запись, занимающая время специалистов
type ExistingAppointment struct {
	ID                  string
	StaffID             string
	SecondaryStaffIDs   []string // специалисты из позиций записи
	Date                time.Time
	StartMinutes        int
	EndMinutes          int
	Status              AppointmentStatus
	IsHomeService       bool
	TravelTimeMinutes   *int
	BufferBeforeMinutes int
	BufferAfterMinutes  int
}

// IsActive возвращает true, если запись участвует в проверке конфликтов
func (a *ExistingAppointment) IsActive() bool {
	for _, status := range ActiveStatuses {
		if a.Status == status {
			return true
		}
	}
	return false
}

// InvolvesStaff возвращает true, если специалист основной или дополнительный исполнитель записи
func (a *ExistingAppointment) InvolvesStaff(staffID string) bool {
	if a.StaffID == staffID {
		return true
	}
	for _, id := range a.SecondaryStaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// TravelMinutes время в пути записи; для выездной записи без значения - DefaultHomeServiceTravelMinutes
func (a *ExistingAppointment) TravelMinutes() int {
	if a.TravelTimeMinutes != nil {
		if *a.TravelTimeMinutes < 0 {
			return 0
		}
		return *a.TravelTimeMinutes
	}
	if a.IsHomeService {
		return DefaultHomeServiceTravelMinutes
	}
	return 0
}

// ExclusionWindow интервал, в течение которого специалист занят этой записью:
// [start - travel - bufferBefore, end + travel + bufferAfter]
func (a *ExistingAppointment) ExclusionWindow() (int, int) {
	travel := a.TravelMinutes()
	return a.StartMinutes - travel - nonNegative(a.BufferBeforeMinutes),
		a.EndMinutes + travel + nonNegative(a.BufferAfterMinutes)
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
