package domain

// Источники оценки времени в пути
const (
	TravelSourceEstimator = "estimator"
	TravelSourceCache     = "cache"
	TravelSourceFallback  = "fallback"
)

// TravelInfo оценка поездки специалиста к клиенту (в одну сторону)
type TravelInfo struct {
	TimeInMinutes int
	DistanceInKm  float64
	Source        string
}

// FallbackTravelInfo консервативная оценка при недоступности сервиса оценки
func FallbackTravelInfo() *TravelInfo {
	return &TravelInfo{
		TimeInMinutes: FallbackTravelMinutes,
		DistanceInKm:  FallbackTravelDistanceKm,
		Source:        TravelSourceFallback,
	}
}

// IsFallback возвращает true, если оценка получена не от сервиса
func (t *TravelInfo) IsFallback() bool {
	return t != nil && t.Source == TravelSourceFallback
}
