package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	VendorID      string
	Date          time.Time // дата (время суток игнорируется, трактуется в таймзоне салона)
	Assignments   []AssignmentRequest
	IsHomeService bool
	Location      *domain.Location // точка клиента, обязательна для выездной услуги

	// Переопределения настроек салона; nil - берется из конфигурации
	StepMinutes  *int
	BufferBefore *int
	BufferAfter  *int
}

// AssignmentRequest услуга + специалист ("any" или ID) + опции
type AssignmentRequest struct {
	ServiceID string
	StaffID   string
	AddOnIDs  []string
}

// IsAnyProfessional возвращает true, если специалист не выбран явно
func (a AssignmentRequest) IsAnyProfessional() bool {
	return isAnyProfessionalID(a.StaffID)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	VendorID        string
	Date            time.Time
	Slots           []domain.CandidateSlot
	Count           int
	ServicesCount   int
	TotalDuration   int // услуги + дорога туда и обратно + буферы
	ServiceDuration int
	StepMinutes     int
	IsHomeService   bool
	Travel          *domain.TravelInfo // только для выездной услуги
}
