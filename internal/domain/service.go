package domain

// ServiceRequest бронируемая услуга
type ServiceRequest struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
}

// AddOn дополнительная опция к конкретной услуге, длительность суммируется с услугой
type AddOn struct {
	ID              string
	ServiceID       string
	Name            string
	DurationMinutes int
	Price           float64
}

// Assignment услуга + специалист (или "любой") + опции в рамках одного запроса
type Assignment struct {
	Service ServiceRequest
	Staff   StaffMember
	AddOns  []AddOn
}

// AddOnsDuration суммарная длительность опций
func (a Assignment) AddOnsDuration() int {
	total := 0
	for _, addOn := range a.AddOns {
		total += addOn.DurationMinutes
	}
	return total
}

// Duration длительность услуги с учетом опций
func (a Assignment) Duration() int {
	return a.Service.DurationMinutes + a.AddOnsDuration()
}

// IsAny возвращает true, если специалист не выбран явно
func (a Assignment) IsAny() bool {
	return a.Staff.IsAnyProfessional
}

// TotalServiceDuration сумма длительностей всех назначений последовательности
func TotalServiceDuration(assignments []Assignment) int {
	total := 0
	for _, a := range assignments {
		total += a.Duration()
	}
	return total
}

// HasAnyProfessional возвращает true, если хотя бы одно назначение просит "любого" специалиста
func HasAnyProfessional(assignments []Assignment) bool {
	for _, a := range assignments {
		if a.IsAny() {
			return true
		}
	}
	return false
}
