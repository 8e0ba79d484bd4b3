package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(t *testing.T, uc *stubUseCase, vendorID, body string) (*httptest.ResponseRecorder, AvailableSlotsResponse) {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/vendors/{vendorId}/available-slots", NewHandler(uc, logger.NewNop()).Handle).
		Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/"+vendorID+"/available-slots", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func sampleResponse() *getAvailableSlots.Response {
	slot := domain.CandidateSlot{
		StartTime:         types.NewTimeStringFromMinutes(600),
		EndTime:           types.NewTimeStringFromMinutes(660),
		StartMinutes:      600,
		EndMinutes:        660,
		ActivityStartTime: types.NewTimeStringFromMinutes(570),
		ActivityEndTime:   types.NewTimeStringFromMinutes(690),
		TotalDuration:     60,
		TravelTime:        30,
		TravelSource:      domain.TravelSourceEstimator,
		IsHomeService:     true,
		Sequence: []domain.SequenceStep{{
			ServiceID:         "s1",
			ServiceName:       "Haircut",
			StaffID:           "st1",
			StaffName:         "Anna",
			IsAnyProfessional: true,
			StartTime:         types.NewTimeStringFromMinutes(600),
			EndTime:           types.NewTimeStringFromMinutes(660),
			BaseDuration:      45,
			AddOnsDuration:    15,
			TotalDuration:     60,
			AddOns:            []domain.AddOn{{ID: "a1", Name: "Wash", DurationMinutes: 15, Price: 5}},
		}},
	}

	return &getAvailableSlots.Response{
		VendorID:        "v1",
		Date:            time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		Slots:           []domain.CandidateSlot{slot},
		Count:           1,
		ServicesCount:   1,
		TotalDuration:   120,
		ServiceDuration: 60,
		StepMinutes:     15,
		IsHomeService:   true,
		Travel:          &domain.TravelInfo{TimeInMinutes: 30, DistanceInKm: 12.5, Source: domain.TravelSourceEstimator},
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: sampleResponse()}

	body := `{
		"date": "2026-10-19",
		"assignments": [{"serviceId": "s1", "staffId": "any", "addOnIds": ["a1"]}],
		"isHomeService": true,
		"location": {"lat": 55.75, "lng": 37.61},
		"stepMinutes": 30,
		"bufferAfter": 10
	}`

	rec, resp := serve(t, uc, "v1", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "v1", uc.got.VendorID)
	assert.Equal(t, "2026-10-19", uc.got.Date.Format(domain.DateFormat))
	assert.Equal(t, []getAvailableSlots.AssignmentRequest{{ServiceID: "s1", StaffID: "any", AddOnIDs: []string{"a1"}}}, uc.got.Assignments)
	assert.True(t, uc.got.IsHomeService)
	require.NotNil(t, uc.got.Location)
	assert.Equal(t, 55.75, uc.got.Location.Latitude)
	require.NotNil(t, uc.got.StepMinutes)
	assert.Equal(t, 30, *uc.got.StepMinutes)
	assert.Nil(t, uc.got.BufferBefore)
	require.NotNil(t, uc.got.BufferAfter)
	assert.Equal(t, 10, *uc.got.BufferAfter)

	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Slots, 1)
	slot := resp.Slots[0]
	assert.Equal(t, "10:00", slot.StartTime)
	assert.Equal(t, "11:00", slot.EndTime)
	assert.Equal(t, "09:30", slot.ActivityStartTime)
	assert.Equal(t, "11:30", slot.ActivityEndTime)
	assert.Equal(t, domain.TravelSourceEstimator, slot.TravelSource)
	require.Len(t, slot.Sequence, 1)
	assert.True(t, slot.Sequence[0].IsAnyProfessional)
	assert.Equal(t, "a1", slot.Sequence[0].AddOns[0].ID)

	require.NotNil(t, resp.Metadata)
	assert.Equal(t, "2026-10-19", resp.Metadata.Date)
	assert.Equal(t, "v1", resp.Metadata.VendorID)
	assert.Equal(t, 120, resp.Metadata.TotalDuration)
	assert.Equal(t, 60, resp.Metadata.ServiceDuration)
	require.NotNil(t, resp.Metadata.TravelTime)
	assert.Equal(t, 30, resp.Metadata.TravelTime.TimeInMinutes)
}

func TestHandle_AcceptsISODateTime(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{VendorID: "v1", Date: time.Now()}}

	rec, _ := serve(t, uc, "v1", `{"date":"2026-10-19T15:04:05+03:00","assignments":[{"serviceId":"s1","staffId":"st1"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "2026-10-19", uc.got.Date.Format(domain.DateFormat))
}

func TestHandle_EmptyResultKeepsSlotsArray(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{VendorID: "v1", Date: time.Now()}}

	rec, _ := serve(t, uc, "v1", `{"date":"2026-10-19","assignments":[{"serviceId":"s1","staffId":"st1"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandle_RequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"broken json", `{"date":`, http.StatusBadRequest, msgInvalidRequestBody},
		{"unknown field", `{"date":"2026-10-19","foo":1}`, http.StatusBadRequest, msgInvalidRequestBody},
		{"missing date", `{"assignments":[{"serviceId":"s1","staffId":"any"}]}`, http.StatusBadRequest, msgMissingDate},
		{"no assignments", `{"date":"2026-10-19","assignments":[]}`, http.StatusBadRequest, msgMissingAssignments},
		{"bad date", `{"date":"19.10.2026","assignments":[{"serviceId":"s1","staffId":"any"}]}`, http.StatusBadRequest, msgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			rec, resp := serve(t, uc, "v1", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
			assert.NotNil(t, resp.Slots)
			assert.Empty(t, resp.Slots)
			assert.Zero(t, resp.Count)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{fmt.Errorf("%w: location is required for home service", getAvailableSlots.ErrInvalidInput), http.StatusBadRequest, msgInvalidInput},
		{getAvailableSlots.ErrDateInPast, http.StatusBadRequest, msgDateInPast},
		{fmt.Errorf("%w: can only book 30 days in advance", getAvailableSlots.ErrDateTooFarInFuture), http.StatusBadRequest, msgDateTooFarInFuture},
		{getAvailableSlots.ErrVendorNotFound, http.StatusNotFound, msgVendorNotFound},
		{fmt.Errorf("%w: s9", getAvailableSlots.ErrServiceNotFound), http.StatusNotFound, msgServiceNotFound},
		{fmt.Errorf("%w: a9", getAvailableSlots.ErrAddOnNotFound), http.StatusNotFound, msgAddOnNotFound},
		{fmt.Errorf("%w: st9", getAvailableSlots.ErrStaffNotFound), http.StatusNotFound, msgStaffNotFound},
		{fmt.Errorf("%w: db down", getAvailableSlots.ErrInternal), http.StatusInternalServerError, msgInternalServerError},
		{errors.New("unexpected"), http.StatusInternalServerError, msgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			rec, resp := serve(t, uc, "v1", `{"date":"2026-10-19","assignments":[{"serviceId":"s1","staffId":"any"}]}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
			assert.Empty(t, resp.Slots)
		})
	}
}
