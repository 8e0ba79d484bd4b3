package availability

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Engine поиск свободных времен для последовательности услуг.
// Работает только по переданному снимку данных и не хранит состояние между вызовами.
type Engine struct {
	workers  int
	logger   Logger
	observer Observer
}

// NewEngine создает движок поиска. workers <= 0 означает GOMAXPROCS.
// observer может быть nil.
func NewEngine(workers int, logger Logger, observer Observer) *Engine {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{
		workers:  workers,
		logger:   logger,
		observer: observer,
	}
}

// Search возвращает все допустимые слоты на дату, отсортированные по времени начала
func (e *Engine) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	started := time.Now()

	// 1. Проверяем параметры
	if err := validateParams(&params); err != nil {
		return nil, err
	}

	travel := params.TravelMinutes()
	serviceDuration := domain.TotalServiceDuration(params.Assignments)
	totalDuration := serviceDuration + travel*2 + params.BufferBefore + params.BufferAfter

	result := &SearchResult{
		Date:            params.Date,
		Slots:           []domain.CandidateSlot{},
		TotalDuration:   totalDuration,
		ServiceDuration: serviceDuration,
		IsHomeService:   params.IsHomeService,
	}
	if params.IsHomeService {
		result.Travel = params.Travel
	}

	// 2. Генерируем кандидатов на сетке шага
	candidates := candidateStarts(&params, totalDuration)
	result.Candidates = len(candidates)
	if len(candidates) == 0 {
		e.observe(started, 0, 0)
		return result, nil
	}

	// 3. Проверяем кандидатов параллельно
	var (
		mu    sync.Mutex
		slots = make([]domain.CandidateSlot, 0, len(candidates))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for _, activityStart := range candidates {
		if gctx.Err() != nil {
			break
		}
		activityStart := activityStart
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			slot, ok := e.evaluate(&params, activityStart, serviceDuration, travel)
			if !ok {
				return nil
			}

			mu.Lock()
			slots = append(slots, slot)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 4. Сортируем по времени начала
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartMinutes < slots[j].StartMinutes
	})

	result.Slots = slots
	result.Count = len(slots)

	e.observe(started, len(candidates), len(slots))
	return result, nil
}

// evaluate проверяет одного кандидата; false - кандидат не подходит
func (e *Engine) evaluate(params *SearchParams, activityStart, serviceDuration, travel int) (domain.CandidateSlot, bool) {
	serviceStart := activityStart + travel + params.BufferBefore

	res, err := Validate(ValidationInput{
		Assignments:   params.Assignments,
		ServiceStart:  serviceStart,
		Date:          params.Date,
		Appointments:  params.Appointments,
		Staff:         params.Staff,
		IsHomeService: params.IsHomeService,
		TravelMinutes: travel,
		BufferBefore:  params.BufferBefore,
		BufferAfter:   params.BufferAfter,
	})
	if err != nil {
		if errors.Is(err, ErrSequencePartition) {
			e.logger.Error("Search: skipping candidate %s: %v", types.MinutesToTime(serviceStart), err)
		}
		return domain.CandidateSlot{}, false
	}
	if !res.Valid {
		return domain.CandidateSlot{}, false
	}

	serviceEnd := serviceStart + serviceDuration
	activityEnd := serviceEnd + travel + params.BufferAfter

	slot := domain.CandidateSlot{
		StartTime:         types.NewTimeStringFromMinutes(serviceStart),
		EndTime:           types.NewTimeStringFromMinutes(serviceEnd),
		StartMinutes:      serviceStart,
		EndMinutes:        serviceEnd,
		ActivityStartTime: types.NewTimeStringFromMinutes(activityStart),
		ActivityEndTime:   types.NewTimeStringFromMinutes(activityEnd),
		Sequence:          res.Sequence,
		TotalDuration:     serviceDuration,
		TravelTime:        travel,
		IsHomeService:     params.IsHomeService,
	}
	if params.IsHomeService && params.Travel != nil {
		slot.TravelSource = params.Travel.Source
	}

	return slot, true
}

func (e *Engine) observe(started time.Time, candidates, slots int) {
	if e.observer == nil {
		return
	}
	e.observer.ObserveSearch(time.Since(started), candidates, slots)
}

// validateParams проверяет параметры поиска до генерации кандидатов
func validateParams(params *SearchParams) error {
	if len(params.Assignments) == 0 {
		return fmt.Errorf("%w: no assignments", ErrInvalidSearch)
	}
	if params.StepMinutes <= 0 {
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidSearch, params.StepMinutes)
	}
	if params.BufferBefore < 0 || params.BufferAfter < 0 || params.MinNoticeMinutes < 0 {
		return fmt.Errorf("%w: buffers and notice must be non-negative", ErrInvalidSearch)
	}
	if params.BufferBefore > types.MinutesPerDay || params.BufferAfter > types.MinutesPerDay {
		return fmt.Errorf("%w: buffers must not exceed a day", ErrInvalidSearch)
	}
	if params.IsHomeService {
		if params.Travel == nil {
			return fmt.Errorf("%w: home service requires travel info", ErrInvalidSearch)
		}
		if params.Travel.TimeInMinutes < 0 || params.Travel.TimeInMinutes > types.MinutesPerDay {
			return fmt.Errorf("%w: travel time must be between 0 and %d, got %d",
				ErrInvalidSearch, types.MinutesPerDay, params.Travel.TimeInMinutes)
		}
	}

	// каждое слагаемое не длиннее суток, поэтому сумма ниже не переполняется
	total := params.TravelMinutes()*2 + params.BufferBefore + params.BufferAfter
	for i, a := range params.Assignments {
		if !a.Staff.IsAnyProfessional && a.Staff.ID == "" {
			return fmt.Errorf("%w: assignment %d has no staff", ErrInvalidSearch, i)
		}
		if err := checkDuration(i, a.Service.DurationMinutes); err != nil {
			return err
		}
		total += a.Service.DurationMinutes
		for _, addOn := range a.AddOns {
			if err := checkDuration(i, addOn.DurationMinutes); err != nil {
				return err
			}
			total += addOn.DurationMinutes
		}
		if total > types.MinutesPerDay {
			return fmt.Errorf("%w: total duration exceeds a day", ErrInvalidSearch)
		}
	}

	return nil
}

func checkDuration(assignment, minutes int) error {
	if minutes < 0 || minutes > types.MinutesPerDay {
		return fmt.Errorf("%w: assignment %d has duration %d outside 0..%d",
			ErrInvalidSearch, assignment, minutes, types.MinutesPerDay)
	}
	return nil
}

// searchRange вычисляет самое раннее начало и самый поздний конец рабочих периодов
// специалистов, определяющих диапазон поиска. ok=false - в этот день никто не работает.
func searchRange(params *SearchParams) (earliest, latest int, ok bool) {
	staff := params.Staff
	if !domain.HasAnyProfessional(params.Assignments) {
		staff = make([]domain.StaffMember, 0, len(params.Assignments))
		for _, a := range params.Assignments {
			staff = append(staff, a.Staff)
		}
	}

	weekday := params.Date.Weekday()
	earliest, latest = types.MinutesPerDay, 0
	for i := range staff {
		day := staff[i].WorkingHours.ForDay(weekday)
		if !day.IsAvailable {
			continue
		}
		for _, period := range day.Periods {
			if period.EndMinutes <= period.StartMinutes {
				continue
			}
			if period.StartMinutes < earliest {
				earliest = period.StartMinutes
			}
			if period.EndMinutes > latest {
				latest = period.EndMinutes
			}
			ok = true
		}
	}

	return earliest, latest, ok
}

// candidateStarts генерирует времена начала активности с шагом StepMinutes.
// Для сегодняшней даты начало поднимается до now + MinNoticeMinutes, округленного вверх до сетки.
func candidateStarts(params *SearchParams, totalDuration int) []int {
	if isDateInPast(params.Date, params.Now) {
		return nil
	}

	earliest, latest, ok := searchRange(params)
	if !ok {
		return nil
	}

	step := params.StepMinutes
	first := earliest

	if domain.SameDay(params.Date, params.Now) {
		minStart := params.Now.Hour()*60 + params.Now.Minute() + params.MinNoticeMinutes
		if params.Now.Second() > 0 || params.Now.Nanosecond() > 0 {
			minStart++
		}
		if minStart > first {
			first = earliest + ceilDiv(minStart-earliest, step)*step
		}
	}

	candidates := make([]int, 0)
	for start := first; start+totalDuration <= latest; start += step {
		candidates = append(candidates, start)
	}
	return candidates
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = date.Date()
	target := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return target.Before(today)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
