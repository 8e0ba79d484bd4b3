package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/config"
	vendorRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/vendor"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fakeVendors struct {
	vendor *domain.Vendor
	err    error
}

func (f *fakeVendors) GetByID(_ context.Context, id string) (*domain.Vendor, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.vendor == nil || f.vendor.ID != id {
		return nil, vendorRepo.ErrVendorNotFound
	}
	v := *f.vendor
	return &v, nil
}

type fakeStaff struct {
	staff []domain.StaffMember
}

func (f *fakeStaff) ListActiveByVendor(_ context.Context, _ string, _ time.Time) ([]domain.StaffMember, error) {
	return f.staff, nil
}

type fakeCatalog struct {
	services map[string]domain.ServiceRequest
	addOns   map[string]domain.AddOn
}

func (f *fakeCatalog) GetServices(_ context.Context, _ string, ids []string) (map[string]domain.ServiceRequest, error) {
	result := make(map[string]domain.ServiceRequest)
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			result[id] = s
		}
	}
	return result, nil
}

func (f *fakeCatalog) GetAddOns(_ context.Context, ids []string) (map[string]domain.AddOn, error) {
	result := make(map[string]domain.AddOn)
	for _, id := range ids {
		if a, ok := f.addOns[id]; ok {
			result[id] = a
		}
	}
	return result, nil
}

type fakeAppointments struct {
	appointments []domain.ExistingAppointment
	err          error
}

func (f *fakeAppointments) ListActiveByVendorAndDate(_ context.Context, _ string, _ time.Time) ([]domain.ExistingAppointment, error) {
	return f.appointments, f.err
}

type fakeConfig struct {
	config *domain.VendorSlotsConfig
}

func (f *fakeConfig) GetByVendorID(_ context.Context, _ string) (*domain.VendorSlotsConfig, error) {
	if f.config == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	c := *f.config
	return &c, nil
}

type fakeTravel struct {
	info *domain.TravelInfo
	err  error
}

func (f *fakeTravel) Estimate(_ context.Context, _ string, _, _ domain.Location) (*domain.TravelInfo, error) {
	return f.info, f.err
}

type recordingObserver struct {
	sources []string
}

func (o *recordingObserver) ObserveTravelEstimate(source string) {
	o.sources = append(o.sources, source)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type fixture struct {
	vendors      *fakeVendors
	staff        *fakeStaff
	catalog      *fakeCatalog
	appointments *fakeAppointments
	config       *fakeConfig
	travel       *fakeTravel
	observer     *recordingObserver
	location     *time.Location
	now          time.Time
}

// Понедельник
var searchDate = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

func fullWeek(start, end int) domain.WorkingHours {
	var wh domain.WorkingHours
	for d := time.Sunday; d <= time.Saturday; d++ {
		wh.Set(d, domain.DaySchedule{
			IsAvailable: true,
			Periods:     []domain.WorkingPeriod{{StartMinutes: start, EndMinutes: end}},
		})
	}
	return wh
}

func newFixture() *fixture {
	return &fixture{
		vendors: &fakeVendors{vendor: &domain.Vendor{
			ID:       "v1",
			Name:     "Glow Studio",
			Location: domain.Location{Latitude: 55.75, Longitude: 37.61},
		}},
		staff: &fakeStaff{staff: []domain.StaffMember{
			{ID: "s1", Name: "Alice", WorkingHours: fullWeek(540, 1020)},
			{ID: "s2", Name: "Bob", WorkingHours: fullWeek(600, 1080)},
		}},
		catalog: &fakeCatalog{
			services: map[string]domain.ServiceRequest{
				"cut":   {ID: "cut", Name: "Haircut", DurationMinutes: 30},
				"color": {ID: "color", Name: "Coloring", DurationMinutes: 60},
			},
			addOns: map[string]domain.AddOn{
				"gloss": {ID: "gloss", ServiceID: "color", Name: "Gloss", DurationMinutes: 15},
			},
		},
		appointments: &fakeAppointments{},
		config:       &fakeConfig{},
		travel:       &fakeTravel{info: &domain.TravelInfo{TimeInMinutes: 20, DistanceInKm: 5, Source: domain.TravelSourceEstimator}},
		observer:     &recordingObserver{},
		location:     time.UTC,
		now:          time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(
		f.vendors,
		f.staff,
		f.catalog,
		f.appointments,
		f.config,
		f.travel,
		availability.NewEngine(4, logger.NewNop(), nil),
		f.observer,
		f.location,
		logger.NewNop(),
	)
	uc.timeProvider = fixedTime{now: f.now}
	return uc
}

func baseRequest() *Request {
	return &Request{
		VendorID: "v1",
		Date:     searchDate,
		Assignments: []AssignmentRequest{
			{ServiceID: "cut", StaffID: "s1"},
		},
	}
}

func TestUseCase_Execute_NamedStaff(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, "v1", resp.VendorID)
	assert.Equal(t, 1, resp.ServicesCount)
	assert.Equal(t, domain.DefaultStepMinutes, resp.StepMinutes)
	assert.Equal(t, 31, resp.Count)
	assert.Equal(t, 30, resp.TotalDuration)
	assert.Nil(t, resp.Travel)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "s1", resp.Slots[0].Sequence[0].StaffID)
	assert.Equal(t, "Haircut", resp.Slots[0].Sequence[0].ServiceName)
}

func TestUseCase_Execute_AnyProfessionalAndAddOns(t *testing.T) {
	f := newFixture()
	req := baseRequest()
	req.Assignments = []AssignmentRequest{
		{ServiceID: "cut", StaffID: "ANY"},
		{ServiceID: "color", StaffID: "any", AddOnIDs: []string{"gloss"}},
	}

	resp, err := f.useCase().Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.ServicesCount)
	assert.Equal(t, 105, resp.ServiceDuration)
	require.NotEmpty(t, resp.Slots)

	// Bob работает до 18:00 и покрывает поздние слоты
	last := resp.Slots[len(resp.Slots)-1]
	assert.Equal(t, "16:15", last.StartTime.String())
	assert.Equal(t, "s2", last.Sequence[0].StaffID)
	assert.Equal(t, "s2", last.Sequence[1].StaffID)
	assert.Equal(t, 15, last.Sequence[1].AddOnsDuration)
}

func TestUseCase_Execute_ConfigAndOverrides(t *testing.T) {
	f := newFixture()
	f.config.config = &domain.VendorSlotsConfig{
		ID:                  1,
		VendorID:            "v1",
		StepMinutes:         30,
		BufferBeforeMinutes: 0,
		BufferAfterMinutes:  10,
	}

	resp, err := f.useCase().Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, 30, resp.StepMinutes)
	assert.Equal(t, 40, resp.TotalDuration)
	// 09:00 ... 16:00 с шагом 30, конец активности не позже 17:00
	assert.Equal(t, 15, resp.Count)

	req := baseRequest()
	req.StepMinutes = ptr.Ptr(60)
	req.BufferAfter = ptr.Ptr(0)
	resp, err = f.useCase().Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 60, resp.StepMinutes)
	assert.Equal(t, 30, resp.TotalDuration)
	assert.Equal(t, 8, resp.Count)
}

func TestUseCase_Execute_HomeService(t *testing.T) {
	t.Run("estimator", func(t *testing.T) {
		f := newFixture()
		req := baseRequest()
		req.IsHomeService = true
		req.Location = &domain.Location{Latitude: 55.70, Longitude: 37.55}

		resp, err := f.useCase().Execute(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, resp.Travel)
		assert.Equal(t, 20, resp.Travel.TimeInMinutes)
		assert.Equal(t, 70, resp.TotalDuration)
		assert.Equal(t, "09:20", resp.Slots[0].StartTime.String())
		assert.Equal(t, []string{domain.TravelSourceEstimator}, f.observer.sources)
	})

	t.Run("fallback on estimator failure", func(t *testing.T) {
		f := newFixture()
		f.travel.info = nil
		f.travel.err = errors.New("travel service degraded")
		req := baseRequest()
		req.IsHomeService = true
		req.Location = &domain.Location{Latitude: 55.70, Longitude: 37.55}

		resp, err := f.useCase().Execute(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, resp.Travel)
		assert.Equal(t, domain.FallbackTravelMinutes, resp.Travel.TimeInMinutes)
		assert.Equal(t, domain.TravelSourceFallback, resp.Travel.Source)
		assert.Equal(t, domain.TravelSourceFallback, resp.Slots[0].TravelSource)
		assert.Equal(t, []string{domain.TravelSourceFallback}, f.observer.sources)
	})
}

func TestUseCase_Execute_VendorTimezone(t *testing.T) {
	f := newFixture()
	f.location = time.FixedZone("UTC+3", 3*60*60)
	// 11:37 UTC = 14:37 в таймзоне салона, тот же день
	f.now = time.Date(2026, time.October, 19, 11, 37, 0, 0, time.UTC)

	resp, err := f.useCase().Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "14:45", resp.Slots[0].StartTime.String())
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture, req *Request)
		wantErr error
	}{
		{"empty vendor", func(_ *fixture, req *Request) { req.VendorID = "" }, ErrInvalidInput},
		{"missing date", func(_ *fixture, req *Request) { req.Date = time.Time{} }, ErrInvalidInput},
		{"no assignments", func(_ *fixture, req *Request) { req.Assignments = nil }, ErrInvalidInput},
		{"missing staff id", func(_ *fixture, req *Request) { req.Assignments[0].StaffID = " " }, ErrInvalidInput},
		{"home service without location", func(_ *fixture, req *Request) { req.IsHomeService = true }, ErrInvalidInput},
		{"step out of range", func(_ *fixture, req *Request) { req.StepMinutes = ptr.Ptr(1) }, ErrInvalidInput},
		{"negative buffer", func(_ *fixture, req *Request) { req.BufferBefore = ptr.Ptr(-1) }, ErrInvalidInput},
		{"unknown vendor", func(_ *fixture, req *Request) { req.VendorID = "v404" }, ErrVendorNotFound},
		{"vendor storage failure", func(f *fixture, _ *Request) { f.vendors.err = errors.New("db down") }, ErrInternal},
		{"past date", func(_ *fixture, req *Request) { req.Date = searchDate.AddDate(0, 0, -2) }, ErrDateInPast},
		{"beyond advance horizon", func(f *fixture, req *Request) {
			f.config.config = domain.DefaultVendorSlotsConfig("v1")
			f.config.config.AdvanceBookingDays = 7
			req.Date = searchDate.AddDate(0, 0, 30)
		}, ErrDateTooFarInFuture},
		{"unknown service", func(_ *fixture, req *Request) { req.Assignments[0].ServiceID = "spa" }, ErrServiceNotFound},
		{"add-on of another service", func(_ *fixture, req *Request) {
			req.Assignments[0].AddOnIDs = []string{"gloss"}
		}, ErrAddOnNotFound},
		{"unknown staff", func(_ *fixture, req *Request) { req.Assignments[0].StaffID = "s9" }, ErrStaffNotFound},
		{"appointments failure", func(f *fixture, _ *Request) { f.appointments.err = errors.New("timeout") }, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := baseRequest()
			tt.setup(f, req)

			resp, err := f.useCase().Execute(context.Background(), req)
			assert.Nil(t, resp)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestUseCase_Execute_TodayAllowed(t *testing.T) {
	f := newFixture()
	f.now = time.Date(2026, time.October, 19, 16, 55, 0, 0, time.UTC)

	resp, err := f.useCase().Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, 0, resp.Count)
}
