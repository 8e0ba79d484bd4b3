package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.VendorID) == "" {
		return fmt.Errorf("%w: vendorId is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Assignments) == 0 {
		return fmt.Errorf("%w: at least one assignment is required", ErrInvalidInput)
	}
	if len(req.Assignments) > domain.MaxAssignments {
		return fmt.Errorf("%w: at most %d assignments are allowed", ErrInvalidInput, domain.MaxAssignments)
	}

	for i, a := range req.Assignments {
		if strings.TrimSpace(a.ServiceID) == "" {
			return fmt.Errorf("%w: assignments[%d].serviceId is required", ErrInvalidInput, i)
		}
		if strings.TrimSpace(a.StaffID) == "" {
			return fmt.Errorf("%w: assignments[%d].staffId is required", ErrInvalidInput, i)
		}
		for j, id := range a.AddOnIDs {
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("%w: assignments[%d].addOnIds[%d] is empty", ErrInvalidInput, i, j)
			}
		}
	}

	if req.IsHomeService {
		if req.Location == nil {
			return fmt.Errorf("%w: location is required for home service", ErrInvalidInput)
		}
		if !req.Location.IsValid() {
			return fmt.Errorf("%w: location is out of range", ErrInvalidInput)
		}
	}

	if req.StepMinutes != nil && (*req.StepMinutes < domain.MinStepMinutes || *req.StepMinutes > domain.MaxStepMinutes) {
		return fmt.Errorf("%w: stepMinutes must be between %d and %d", ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	if req.BufferBefore != nil && (*req.BufferBefore < 0 || *req.BufferBefore > domain.MaxBufferMinutes) {
		return fmt.Errorf("%w: bufferBefore must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}
	if req.BufferAfter != nil && (*req.BufferAfter < 0 || *req.BufferAfter > domain.MaxBufferMinutes) {
		return fmt.Errorf("%w: bufferAfter must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}

	return nil
}

// validateDate проверяет, что дата подходит для поиска
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, now.Location())

	// Проверяем, что дата не в прошлом
	if requestDateOnly.Before(today) {
		return ErrDateInPast
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	// Проверяем, что дата не превышает ограничение advanceBookingDays
	maxDate := today.AddDate(0, 0, advanceBookingDays)
	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// isAnyProfessionalID "any" в любом регистре
func isAnyProfessionalID(staffID string) bool {
	return strings.EqualFold(strings.TrimSpace(staffID), domain.AnyProfessionalID)
}

// uniqueIDs собирает ID без повторов с сохранением порядка
func uniqueIDs(assignments []AssignmentRequest, pick func(AssignmentRequest) []string) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(assignments))
	for _, a := range assignments {
		for _, id := range pick(a) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
