package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Причины отказа валидатора последовательности
const (
	ReasonNoAnyProfessional = "No professional available for 'Any Professional' selection."
	reasonStaffUnavailable  = "%s is not available at this time."
)

// SearchParams снимок данных и параметры одного поиска
type SearchParams struct {
	Date         time.Time // целевая дата (время суток игнорируется)
	Now          time.Time // текущее время в таймзоне салона
	Assignments  []domain.Assignment
	Staff        []domain.StaffMember // все активные специалисты салона в стабильном порядке
	Appointments []domain.ExistingAppointment

	IsHomeService bool
	Travel        *domain.TravelInfo // обязателен для выездной услуги

	StepMinutes      int
	BufferBefore     int
	BufferAfter      int
	MinNoticeMinutes int
}

// TravelMinutes время в пути в одну сторону, учитываемое поиском
func (p *SearchParams) TravelMinutes() int {
	if !p.IsHomeService || p.Travel == nil {
		return 0
	}
	return p.Travel.TimeInMinutes
}

// SearchResult отсортированный список слотов и метаданные поиска
type SearchResult struct {
	Date            time.Time
	Slots           []domain.CandidateSlot
	Count           int
	TotalDuration   int // услуги + дорога туда и обратно + буферы
	ServiceDuration int // только услуги
	IsHomeService   bool
	Travel          *domain.TravelInfo
	Candidates      int // сколько стартов было проверено
}

// ValidationInput параметры проверки одного времени начала
type ValidationInput struct {
	Assignments   []domain.Assignment
	ServiceStart  int
	Date          time.Time
	Appointments  []domain.ExistingAppointment
	Staff         []domain.StaffMember
	IsHomeService bool
	TravelMinutes int
	BufferBefore  int
	BufferAfter   int
}

// ValidationResult результат проверки последовательности
type ValidationResult struct {
	Valid           bool
	Reason          string
	Sequence        []domain.SequenceStep
	TotalEndMinutes int
}
