package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const keyPrefix = "availability:travel"

// DefaultTTL время жизни оценки в кэше по умолчанию
const DefaultTTL = 30 * time.Minute

// entry формат хранения оценки в Redis
type entry struct {
	TimeInMinutes int     `json:"time_in_minutes"`
	DistanceInKm  float64 `json:"distance_in_km"`
}

// Cache кэш оценок поездки поверх Estimator.
// Ошибки Redis не прерывают поиск: запрос уходит в Estimator напрямую.
type Cache struct {
	client    redis.UniversalClient
	estimator Estimator
	ttl       time.Duration
	log       Logger
}

// NewCache создает кэш оценок поездки
func NewCache(client redis.UniversalClient, estimator Estimator, ttl time.Duration, log Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		client:    client,
		estimator: estimator,
		ttl:       ttl,
		log:       log,
	}
}

// Estimate возвращает оценку из кэша (Source = "cache") или запрашивает Estimator и сохраняет результат.
// Ошибки Estimator пробрасываются без изменений и не кэшируются.
func (c *Cache) Estimate(ctx context.Context, vendorID string, origin, destination domain.Location) (*domain.TravelInfo, error) {
	key := Key(vendorID, origin, destination)

	// 1. Пробуем кэш
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var e entry
		if err := json.Unmarshal(raw, &e); err == nil {
			return &domain.TravelInfo{
				TimeInMinutes: e.TimeInMinutes,
				DistanceInKm:  e.DistanceInKm,
				Source:        domain.TravelSourceCache,
			}, nil
		}
		c.log.Warn("TravelCache: corrupted entry key=%s, refreshing", key)
	case errors.Is(err, redis.Nil):
		// промах
	default:
		c.log.Warn("TravelCache: get key=%s failed: %v", key, err)
	}

	// 2. Запрашиваем оценку
	info, err := c.estimator.Estimate(ctx, vendorID, origin, destination)
	if err != nil {
		return nil, err
	}

	// 3. Сохраняем
	payload, err := json.Marshal(entry{TimeInMinutes: info.TimeInMinutes, DistanceInKm: info.DistanceInKm})
	if err != nil {
		c.log.Warn("TravelCache: encode entry key=%s failed: %v", key, err)
		return info, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("TravelCache: set key=%s failed: %v", key, err)
	}

	return info, nil
}

// Key ключ кэша: салон + точка салона + точка клиента, координаты округлены до 4 знаков (~11 м).
// Смена адреса салона дает новый ключ, старые оценки не используются.
func Key(vendorID string, origin, destination domain.Location) string {
	return fmt.Sprintf("%s:%s:%.4f:%.4f:%.4f:%.4f", keyPrefix, vendorID,
		origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)
}
