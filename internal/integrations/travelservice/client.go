package travelservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Client клиент сервиса оценки времени в пути
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента.
// requestsPerSecond <= 0 отключает ограничение частоты запросов.
func NewClient(baseURL string, timeout time.Duration, requestsPerSecond float64, burst int, log Logger) *Client {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		log:     log,
	}
}

// Estimate оценивает поездку от салона до клиента с graceful degradation.
// Некорректные координаты возвращают ErrInvalidLocation, любые другие сбои - ErrServiceDegraded,
// и вызывающий код подставляет оценку по умолчанию.
func (c *Client) Estimate(ctx context.Context, vendorID string, origin, destination domain.Location) (*domain.TravelInfo, error) {
	info, err := c.estimate(ctx, vendorID, origin, destination)
	if err != nil {
		if errors.Is(err, ErrInvalidLocation) {
			c.log.Warn("TravelService rejected location for vendor=%s: %v", vendorID, err)
			return nil, err
		}

		c.log.Error("TravelService unavailable, applying graceful degradation for vendor=%s: %v", vendorID, err)
		return nil, fmt.Errorf("%w: vendor=%s, error=%v", ErrServiceDegraded, vendorID, err)
	}

	return info, nil
}

func (c *Client) estimate(ctx context.Context, vendorID string, origin, destination domain.Location) (*domain.TravelInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	payload, err := json.Marshal(EstimateRequest{
		VendorID:    vendorID,
		Origin:      FromLocation(origin),
		Destination: FromLocation(destination),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/travel/estimate", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return nil, fmt.Errorf("%w: %s", ErrInvalidLocation, errResp.Message)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var estimate EstimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&estimate); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if estimate.TravelTimeMinutes < 0 || estimate.DistanceKm < 0 {
		return nil, fmt.Errorf("%w: negative estimate %d min / %.2f km", ErrInvalidResponse, estimate.TravelTimeMinutes, estimate.DistanceKm)
	}

	return estimate.ToDomain(), nil
}
