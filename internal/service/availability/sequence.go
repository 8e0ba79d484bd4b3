package availability

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Validate проверяет, можно ли выполнить всю последовательность услуг с началом в in.ServiceStart.
// Каждый задействованный специалист должен быть свободен во всем окне
// [start - travel - bufferBefore, start + services + travel + bufferAfter].
// Ошибка возвращается только при нарушении разбиения окна услуг на шаги.
func Validate(in ValidationInput) (ValidationResult, error) {
	// 1. Суммарная длительность услуг
	totalService := domain.TotalServiceDuration(in.Assignments)

	// 2. Дорога учитывается только для выездной услуги
	travel := 0
	if in.IsHomeService {
		travel = in.TravelMinutes
	}

	// 3. Полное окно занятости специалиста
	fullStart := in.ServiceStart - travel - in.BufferBefore
	fullEnd := in.ServiceStart + totalService + travel + in.BufferAfter

	// 4. "Любой специалист" разрешается один раз на кандидата
	var resolved *domain.StaffMember
	if domain.HasAnyProfessional(in.Assignments) {
		for i := range in.Staff {
			candidate := &in.Staff[i]
			if IsAvailable(candidate, in.Date, fullStart, fullEnd, in.Appointments) {
				resolved = candidate
				break
			}
		}
		if resolved == nil {
			return ValidationResult{Reason: ReasonNoAnyProfessional}, nil
		}
	}

	// 5. Явно выбранные специалисты
	for i := range in.Assignments {
		staff := &in.Assignments[i].Staff
		if staff.IsAnyProfessional {
			continue
		}
		if !IsAvailable(staff, in.Date, fullStart, fullEnd, in.Appointments) {
			return ValidationResult{Reason: fmt.Sprintf(reasonStaffUnavailable, staff.Name)}, nil
		}
	}

	// 6. Строим последовательность шагов
	sequence := buildSequence(in.Assignments, in.ServiceStart, resolved)
	if err := checkPartition(sequence, in.ServiceStart, in.ServiceStart+totalService); err != nil {
		return ValidationResult{}, err
	}

	return ValidationResult{
		Valid:           true,
		Sequence:        sequence,
		TotalEndMinutes: in.ServiceStart + totalService,
	}, nil
}

// buildSequence раскладывает назначения подряд, начиная со start
func buildSequence(assignments []domain.Assignment, start int, resolved *domain.StaffMember) []domain.SequenceStep {
	sequence := make([]domain.SequenceStep, 0, len(assignments))
	current := start

	for _, a := range assignments {
		staff := a.Staff
		if staff.IsAnyProfessional && resolved != nil {
			staff = *resolved
		}

		end := current + a.Duration()
		addOns := make([]domain.AddOn, len(a.AddOns))
		copy(addOns, a.AddOns)

		sequence = append(sequence, domain.SequenceStep{
			ServiceID:         a.Service.ID,
			ServiceName:       a.Service.Name,
			StaffID:           staff.ID,
			StaffName:         staff.Name,
			IsAnyProfessional: a.Staff.IsAnyProfessional,
			StartTime:         types.NewTimeStringFromMinutes(current),
			EndTime:           types.NewTimeStringFromMinutes(end),
			StartMinutes:      current,
			EndMinutes:        end,
			BaseDuration:      a.Service.DurationMinutes,
			AddOnsDuration:    a.AddOnsDuration(),
			TotalDuration:     a.Duration(),
			AddOns:            addOns,
		})
		current = end
	}

	return sequence
}

// checkPartition проверяет, что шаги идут встык и покрывают ровно [start, end)
func checkPartition(sequence []domain.SequenceStep, start, end int) error {
	current := start
	for i, step := range sequence {
		if step.StartMinutes != current {
			return fmt.Errorf("%w: step %d starts at %d, expected %d", ErrSequencePartition, i, step.StartMinutes, current)
		}
		if step.EndMinutes < step.StartMinutes {
			return fmt.Errorf("%w: step %d ends before it starts", ErrSequencePartition, i)
		}
		current = step.EndMinutes
	}
	if current != end {
		return fmt.Errorf("%w: sequence ends at %d, expected %d", ErrSequencePartition, current, end)
	}
	return nil
}
