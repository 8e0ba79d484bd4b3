package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/config"
	vendorRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/vendor"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case для поиска доступных слотов под последовательность услуг
type UseCase struct {
	vendorRepo      VendorRepository
	staffRepo       StaffRepository
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	configRepo      ConfigRepository
	travel          TravelEstimator
	searcher        SlotSearcher
	travelObserver  TravelObserver
	defaultLocation *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// travel и travelObserver могут быть nil: тогда для выездных услуг используется оценка по умолчанию.
func NewUseCase(
	vendorRepo VendorRepository,
	staffRepo StaffRepository,
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	configRepo ConfigRepository,
	travel TravelEstimator,
	searcher SlotSearcher,
	travelObserver TravelObserver,
	defaultLocation *time.Location,
	logger Logger,
) *UseCase {
	if defaultLocation == nil {
		defaultLocation = time.UTC
	}
	return &UseCase{
		vendorRepo:      vendorRepo,
		staffRepo:       staffRepo,
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		travel:          travel,
		searcher:        searcher,
		travelObserver:  travelObserver,
		defaultLocation: defaultLocation,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: vendor=%s, date=%s, assignments=%d, home=%t",
		req.VendorID, req.Date.Format(domain.DateFormat), len(req.Assignments), req.IsHomeService)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем салон
	vendor, err := uc.vendorRepo.GetByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, vendorRepo.ErrVendorNotFound) {
			uc.logger.Warn("GetAvailableSlots: vendor id=%s not found", req.VendorID)
			return nil, ErrVendorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get vendor id=%s: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get vendor: %v", ErrInternal, err)
	}

	// 3. Текущее время и дата в таймзоне салона
	loc := uc.vendorLocation(vendor)
	now := uc.timeProvider.Now().In(loc)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)

	// 4. Получаем настройки салона
	config, err := uc.configRepo.GetByVendorID(ctx, req.VendorID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = domain.DefaultVendorSlotsConfig(req.VendorID)
		uc.logger.Info("GetAvailableSlots: using default config for vendor=%s", req.VendorID)
	}

	// 5. Валидация даты с учетом конфигурации
	if err := validateDate(date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Получаем активных специалистов
	staff, err := uc.staffRepo.ListActiveByVendor(ctx, req.VendorID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 7. Собираем назначения из каталога
	assignments, err := uc.buildAssignments(ctx, req, staff)
	if err != nil {
		return nil, err
	}

	// 8. Получаем активные записи на дату
	appointments, err := uc.appointmentRepo.ListActiveByVendorAndDate(ctx, req.VendorID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 9. Оценка поездки для выездной услуги
	var travel *domain.TravelInfo
	if req.IsHomeService {
		travel = uc.estimateTravel(ctx, vendor, *req.Location)
	}

	// 10. Поиск
	step := ptr.Value(req.StepMinutes, config.StepMinutes)
	result, err := uc.searcher.Search(ctx, availability.SearchParams{
		Date:             date,
		Now:              now,
		Assignments:      assignments,
		Staff:            staff,
		Appointments:     appointments,
		IsHomeService:    req.IsHomeService,
		Travel:           travel,
		StepMinutes:      step,
		BufferBefore:     ptr.Value(req.BufferBefore, config.BufferBeforeMinutes),
		BufferAfter:      ptr.Value(req.BufferAfter, config.BufferAfterMinutes),
		MinNoticeMinutes: config.MinBookingNoticeMinutes,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: search failed: %v", err)
		return nil, fmt.Errorf("%w: search failed: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: found %d slots out of %d candidates for vendor=%s, date=%s",
		result.Count, result.Candidates, req.VendorID, date.Format(domain.DateFormat))

	return &Response{
		VendorID:        req.VendorID,
		Date:            date,
		Slots:           result.Slots,
		Count:           result.Count,
		ServicesCount:   len(assignments),
		TotalDuration:   result.TotalDuration,
		ServiceDuration: result.ServiceDuration,
		StepMinutes:     step,
		IsHomeService:   req.IsHomeService,
		Travel:          result.Travel,
	}, nil
}

// buildAssignments резолвит услуги, опции и специалистов из запроса
func (uc *UseCase) buildAssignments(ctx context.Context, req *Request, staff []domain.StaffMember) ([]domain.Assignment, error) {
	serviceIDs := uniqueIDs(req.Assignments, func(a AssignmentRequest) []string { return []string{a.ServiceID} })
	services, err := uc.catalogRepo.GetServices(ctx, req.VendorID, serviceIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	addOnIDs := uniqueIDs(req.Assignments, func(a AssignmentRequest) []string { return a.AddOnIDs })
	addOns, err := uc.catalogRepo.GetAddOns(ctx, addOnIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get add-ons: %v", err)
		return nil, fmt.Errorf("%w: failed to get add-ons: %v", ErrInternal, err)
	}

	staffByID := make(map[string]domain.StaffMember, len(staff))
	for _, s := range staff {
		staffByID[s.ID] = s
	}

	assignments := make([]domain.Assignment, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		service, ok := services[a.ServiceID]
		if !ok {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found for vendor=%s", a.ServiceID, req.VendorID)
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, a.ServiceID)
		}

		assignment := domain.Assignment{Service: service}

		for _, id := range a.AddOnIDs {
			addOn, ok := addOns[id]
			if !ok || addOn.ServiceID != service.ID {
				uc.logger.Warn("GetAvailableSlots: add-on id=%s not found for service=%s", id, service.ID)
				return nil, fmt.Errorf("%w: %s", ErrAddOnNotFound, id)
			}
			assignment.AddOns = append(assignment.AddOns, addOn)
		}

		if a.IsAnyProfessional() {
			assignment.Staff = domain.AnyProfessional()
		} else {
			member, ok := staffByID[a.StaffID]
			if !ok {
				uc.logger.Warn("GetAvailableSlots: staff id=%s not found for vendor=%s", a.StaffID, req.VendorID)
				return nil, fmt.Errorf("%w: %s", ErrStaffNotFound, a.StaffID)
			}
			assignment.Staff = member
		}

		assignments = append(assignments, assignment)
	}

	return assignments, nil
}

// estimateTravel оценка поездки; при недоступности сервиса - оценка по умолчанию
func (uc *UseCase) estimateTravel(ctx context.Context, vendor *domain.Vendor, destination domain.Location) *domain.TravelInfo {
	travel := domain.FallbackTravelInfo()

	if uc.travel == nil {
		uc.logger.Warn("GetAvailableSlots: travel estimator is not configured, using fallback for vendor=%s", vendor.ID)
	} else if info, err := uc.travel.Estimate(ctx, vendor.ID, vendor.Location, destination); err != nil {
		uc.logger.Warn("GetAvailableSlots: travel estimate failed for vendor=%s, using fallback: %v", vendor.ID, err)
	} else {
		travel = info
	}

	if uc.travelObserver != nil {
		uc.travelObserver.ObserveTravelEstimate(travel.Source)
	}
	return travel
}

// vendorLocation таймзона салона; некорректная или пустая - таймзона по умолчанию
func (uc *UseCase) vendorLocation(vendor *domain.Vendor) *time.Location {
	if vendor.Timezone == "" {
		return uc.defaultLocation
	}
	loc, err := time.LoadLocation(vendor.Timezone)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid timezone %q for vendor=%s: %v", vendor.Timezone, vendor.ID, err)
		return uc.defaultLocation
	}
	return loc
}
