package reset_vendor_config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) Reset(_ context.Context, _ string) error {
	return s.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"reset", nil, http.StatusNoContent},
		{"vendor not found", config.ErrVendorNotFound, http.StatusNotFound},
		{"nothing to reset", config.ErrConfigNotFound, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/api/v1/vendors/{vendorId}/config", NewHandler(&stubService{err: tt.err}, logger.NewNop()).Handle).
				Methods(http.MethodDelete)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/vendors/v1/config", nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
