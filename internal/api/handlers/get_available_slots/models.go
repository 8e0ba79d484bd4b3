package get_available_slots

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// Request модели

// AvailableSlotsRequest HTTP тело запроса поиска слотов
type AvailableSlotsRequest struct {
	Date          string              `json:"date"` // YYYY-MM-DD или ISO 8601 с временем
	Assignments   []AssignmentRequest `json:"assignments"`
	IsHomeService bool                `json:"isHomeService"`
	Location      *LocationRequest    `json:"location,omitempty"`
	StepMinutes   *int                `json:"stepMinutes,omitempty"`
	BufferBefore  *int                `json:"bufferBefore,omitempty"`
	BufferAfter   *int                `json:"bufferAfter,omitempty"`
}

// AssignmentRequest услуга и выбранный специалист ("any" - любой)
type AssignmentRequest struct {
	ServiceID string   `json:"serviceId"`
	StaffID   string   `json:"staffId"`
	AddOnIDs  []string `json:"addOnIds,omitempty"`
}

// LocationRequest координаты клиента
type LocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Response модели

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Success  bool            `json:"success"`
	Slots    []AvailableSlot `json:"slots"`
	Count    int             `json:"count"`
	Metadata *Metadata       `json:"metadata,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// AvailableSlot модель найденного слота
type AvailableSlot struct {
	StartTime         string         `json:"startTime"`
	EndTime           string         `json:"endTime"`
	ActivityStartTime string         `json:"activityStartTime"`
	ActivityEndTime   string         `json:"activityEndTime"`
	TotalDuration     int            `json:"totalDuration"`
	TravelTime        int            `json:"travelTime"`
	TravelSource      string         `json:"travelSource,omitempty"`
	IsHomeService     bool           `json:"isHomeService"`
	Sequence          []SequenceStep `json:"sequence"`
}

// SequenceStep одна услуга внутри слота
type SequenceStep struct {
	ServiceID         string  `json:"serviceId"`
	ServiceName       string  `json:"serviceName"`
	StaffID           string  `json:"staffId"`
	StaffName         string  `json:"staffName"`
	IsAnyProfessional bool    `json:"isAnyProfessional"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	BaseDuration      int     `json:"baseDuration"`
	AddOnsDuration    int     `json:"addOnsDuration"`
	TotalDuration     int     `json:"totalDuration"`
	AddOns            []AddOn `json:"addOns"`
}

// AddOn опция услуги
type AddOn struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// Metadata сводная информация о поиске
type Metadata struct {
	Date            string      `json:"date"`
	VendorID        string      `json:"vendorId"`
	ServicesCount   int         `json:"servicesCount"`
	TotalDuration   int         `json:"totalDuration"`
	ServiceDuration int         `json:"serviceDuration"`
	StepMinutes     int         `json:"stepMinutes"`
	IsHomeService   bool        `json:"isHomeService"`
	TravelTime      *TravelTime `json:"travelTime,omitempty"`
}

// TravelTime оценка поездки к клиенту
type TravelTime struct {
	TimeInMinutes int     `json:"timeInMinutes"`
	DistanceInKm  float64 `json:"distanceInKm"`
	Source        string  `json:"source"`
}

// Методы конвертации

// ToUseCaseRequest создает запрос use case из тела HTTP запроса
func ToUseCaseRequest(vendorID string, req *AvailableSlotsRequest) (*getAvailableSlots.Request, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	assignments := make([]getAvailableSlots.AssignmentRequest, len(req.Assignments))
	for i, a := range req.Assignments {
		assignments[i] = getAvailableSlots.AssignmentRequest{
			ServiceID: strings.TrimSpace(a.ServiceID),
			StaffID:   strings.TrimSpace(a.StaffID),
			AddOnIDs:  a.AddOnIDs,
		}
	}

	useCaseReq := &getAvailableSlots.Request{
		VendorID:      vendorID,
		Date:          date,
		Assignments:   assignments,
		IsHomeService: req.IsHomeService,
		StepMinutes:   req.StepMinutes,
		BufferBefore:  req.BufferBefore,
		BufferAfter:   req.BufferAfter,
	}

	if req.Location != nil {
		useCaseReq.Location = &domain.Location{
			Latitude:  req.Location.Lat,
			Longitude: req.Location.Lng,
		}
	}

	return useCaseReq, nil
}

// parseDate принимает "2006-01-02" либо RFC 3339; берется календарная дата
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	date, err := time.Parse(domain.DateFormat, value)
	if err == nil {
		return date, nil
	}

	withTime, rfcErr := time.Parse(time.RFC3339, value)
	if rfcErr != nil {
		return time.Time{}, err
	}

	return time.Date(withTime.Year(), withTime.Month(), withTime.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = fromCandidateSlot(slot)
	}

	metadata := &Metadata{
		Date:            resp.Date.Format(domain.DateFormat),
		VendorID:        resp.VendorID,
		ServicesCount:   resp.ServicesCount,
		TotalDuration:   resp.TotalDuration,
		ServiceDuration: resp.ServiceDuration,
		StepMinutes:     resp.StepMinutes,
		IsHomeService:   resp.IsHomeService,
	}
	if resp.Travel != nil {
		metadata.TravelTime = &TravelTime{
			TimeInMinutes: resp.Travel.TimeInMinutes,
			DistanceInKm:  resp.Travel.DistanceInKm,
			Source:        resp.Travel.Source,
		}
	}

	return &AvailableSlotsResponse{
		Success:  true,
		Slots:    slots,
		Count:    resp.Count,
		Metadata: metadata,
	}
}

func fromCandidateSlot(slot domain.CandidateSlot) AvailableSlot {
	sequence := make([]SequenceStep, len(slot.Sequence))
	for i, step := range slot.Sequence {
		addOns := make([]AddOn, len(step.AddOns))
		for j, addOn := range step.AddOns {
			addOns[j] = AddOn{
				ID:              addOn.ID,
				Name:            addOn.Name,
				DurationMinutes: addOn.DurationMinutes,
				Price:           addOn.Price,
			}
		}

		sequence[i] = SequenceStep{
			ServiceID:         step.ServiceID,
			ServiceName:       step.ServiceName,
			StaffID:           step.StaffID,
			StaffName:         step.StaffName,
			IsAnyProfessional: step.IsAnyProfessional,
			StartTime:         step.StartTime.String(),
			EndTime:           step.EndTime.String(),
			BaseDuration:      step.BaseDuration,
			AddOnsDuration:    step.AddOnsDuration,
			TotalDuration:     step.TotalDuration,
			AddOns:            addOns,
		}
	}

	return AvailableSlot{
		StartTime:         slot.StartTime.String(),
		EndTime:           slot.EndTime.String(),
		ActivityStartTime: slot.ActivityStartTime.String(),
		ActivityEndTime:   slot.ActivityEndTime.String(),
		TotalDuration:     slot.TotalDuration,
		TravelTime:        slot.TravelTime,
		TravelSource:      slot.TravelSource,
		IsHomeService:     slot.IsHomeService,
		Sequence:          sequence,
	}
}

// errorResponse ответ с ошибкой в формате поиска слотов
func errorResponse(message string) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Success: false,
		Slots:   []AvailableSlot{},
		Count:   0,
		Message: message,
	}
}
