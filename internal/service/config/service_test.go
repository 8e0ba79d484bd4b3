package config

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
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type memoryConfigRepo struct {
	configs map[string]domain.VendorSlotsConfig
	nextID  int64
	err     error
}

func newMemoryConfigRepo() *memoryConfigRepo {
	return &memoryConfigRepo{configs: make(map[string]domain.VendorSlotsConfig)}
}

func (m *memoryConfigRepo) GetByVendorID(_ context.Context, vendorID string) (*domain.VendorSlotsConfig, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.configs[vendorID]
	if !ok {
		return nil, configRepo.ErrConfigNotFound
	}
	return &c, nil
}

func (m *memoryConfigRepo) Upsert(_ context.Context, config *domain.VendorSlotsConfig) (*domain.VendorSlotsConfig, error) {
	if config.ID == 0 {
		m.nextID++
		config.ID = m.nextID
		config.CreatedAt = time.Now()
	}
	config.UpdatedAt = time.Now()
	m.configs[config.VendorID] = *config
	return config, nil
}

func (m *memoryConfigRepo) Delete(_ context.Context, vendorID string) error {
	if _, ok := m.configs[vendorID]; !ok {
		return configRepo.ErrConfigNotFound
	}
	delete(m.configs, vendorID)
	return nil
}

type staticVendors map[string]bool

func (v staticVendors) GetByID(_ context.Context, id string) (*domain.Vendor, error) {
	if !v[id] {
		return nil, vendorRepo.ErrVendorNotFound
	}
	return &domain.Vendor{ID: id}, nil
}

func newTestService() (*Service, *memoryConfigRepo) {
	repo := newMemoryConfigRepo()
	return NewService(repo, staticVendors{"v1": true}, logger.NewNop()), repo
}

func TestService_Get_Defaults(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Get(context.Background(), "v1")
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.Equal(t, int64(0), resp.ID)
	assert.Equal(t, domain.DefaultStepMinutes, resp.StepMinutes)
	assert.Equal(t, domain.DefaultAdvanceBookingDays, resp.AdvanceBookingDays)
	assert.Nil(t, resp.CreatedAt)
}

func TestService_UpdateThenGet(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	resp, err := svc.Update(ctx, "v1", &models.UpdateConfigRequest{
		StepMinutes:        ptr.Ptr(30),
		BufferAfterMinutes: ptr.Ptr(10),
	})
	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, 30, resp.StepMinutes)
	assert.Equal(t, 10, resp.BufferAfterMinutes)
	assert.Equal(t, domain.DefaultBufferBeforeMinutes, resp.BufferBeforeMinutes)
	require.NotNil(t, resp.UpdatedAt)

	// частичное обновление сохраняет остальные поля
	resp, err = svc.Update(ctx, "v1", &models.UpdateConfigRequest{AdvanceBookingDays: ptr.Ptr(60)})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.StepMinutes)
	assert.Equal(t, 60, resp.AdvanceBookingDays)
	assert.Len(t, repo.configs, 1)

	got, err := svc.Get(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
	assert.Equal(t, 10, got.BufferAfterMinutes)
}

func TestService_Update_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateConfigRequest
	}{
		{"empty", &models.UpdateConfigRequest{}},
		{"step too small", &models.UpdateConfigRequest{StepMinutes: ptr.Ptr(1)}},
		{"step too large", &models.UpdateConfigRequest{StepMinutes: ptr.Ptr(241)}},
		{"negative buffer", &models.UpdateConfigRequest{BufferBeforeMinutes: ptr.Ptr(-5)}},
		{"notice over a week", &models.UpdateConfigRequest{MinBookingNoticeMinutes: ptr.Ptr(10081)}},
		{"horizon over a year", &models.UpdateConfigRequest{AdvanceBookingDays: ptr.Ptr(366)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			_, err := svc.Update(context.Background(), "v1", tt.req)
			assert.True(t, errors.Is(err, ErrInvalidInput), err)
			assert.Empty(t, repo.configs)
		})
	}
}

func TestService_VendorNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Get(ctx, "v404")
	assert.True(t, errors.Is(err, ErrVendorNotFound))

	_, err = svc.Update(ctx, "v404", &models.UpdateConfigRequest{StepMinutes: ptr.Ptr(30)})
	assert.True(t, errors.Is(err, ErrVendorNotFound))

	assert.True(t, errors.Is(svc.Reset(ctx, "v404"), ErrVendorNotFound))
}

func TestService_Reset(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	assert.True(t, errors.Is(svc.Reset(ctx, "v1"), ErrConfigNotFound))

	_, err := svc.Update(ctx, "v1", &models.UpdateConfigRequest{StepMinutes: ptr.Ptr(20)})
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx, "v1"))

	resp, err := svc.Get(ctx, "v1")
	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
}

func TestService_RepositoryError(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("connection reset")

	_, err := svc.Get(context.Background(), "v1")
	assert.True(t, errors.Is(err, ErrInternal))
}
