package travelservice

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Point координаты в запросе к сервису оценки
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// EstimateRequest запрос оценки поездки
type EstimateRequest struct {
	VendorID    string `json:"vendor_id"`
	Origin      Point  `json:"origin"`
	Destination Point  `json:"destination"`
}

// EstimateResponse ответ сервиса оценки
type EstimateResponse struct {
	TravelTimeMinutes int     `json:"travel_time_minutes"`
	DistanceKm        float64 `json:"distance_km"`
}

// ErrorResponse модель ошибки от сервиса оценки
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FromLocation конвертирует доменную точку
func FromLocation(l domain.Location) Point {
	return Point{Latitude: l.Latitude, Longitude: l.Longitude}
}

// ToDomain конвертирует ответ в доменную модель
func (r *EstimateResponse) ToDomain() *domain.TravelInfo {
	return &domain.TravelInfo{
		TimeInMinutes: r.TravelTimeMinutes,
		DistanceInKm:  r.DistanceKm,
		Source:        domain.TravelSourceEstimator,
	}
}
