package domain

// Значения конфигурации поиска по умолчанию
const (
	DefaultStepMinutes             = 15
	DefaultBufferBeforeMinutes     = 0
	DefaultBufferAfterMinutes      = 0
	DefaultMinBookingNoticeMinutes = 0
	DefaultAdvanceBookingDays      = 0 // 0 = без ограничений
)

// Ограничения бизнес-валидации
const (
	MinStepMinutes          = 5
	MaxStepMinutes          = 240
	MaxBufferMinutes        = 240
	MinBookingNoticeMinutes = 0
	MaxBookingNoticeMinutes = 10080 // 1 неделя
	MinAdvanceBookingDays   = 0
	MaxAdvanceBookingDays   = 365
	MaxAssignments          = 10
)

// DefaultHomeServiceTravelMinutes время в пути для выездной записи без сохраненного travel time
const DefaultHomeServiceTravelMinutes = 30

// Оценка поездки, когда сервис оценки недоступен
const (
	FallbackTravelMinutes    = 30
	FallbackTravelDistanceKm = 10
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AnyProfessionalID идентификатор-заглушка "любой свободный специалист"
const AnyProfessionalID = "any"

// ActiveStatuses статусы записей, занимающих время специалиста
var ActiveStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusPending,
	StatusScheduled,
	StatusTemporarilyLocked,
}
