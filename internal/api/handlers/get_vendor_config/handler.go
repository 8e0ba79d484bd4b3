package get_vendor_config

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
)

const (
	msgMissingVendorID = "ID салона обязателен"
	msgVendorNotFound  = "салон не найден"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/config
// Если салон ничего не настраивал, возвращаются значения по умолчанию (isDefault = true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем vendorId из URL
	vendorID := strings.TrimSpace(mux.Vars(r)["vendorId"])
	if vendorID == "" {
		h.logger.Warn("GET /vendors/{id}/config - Missing vendor ID")
		handlers.RespondBadRequest(w, msgMissingVendorID)
		return
	}

	result, err := h.service.Get(r.Context(), vendorID)
	if err != nil {
		if errors.Is(err, config.ErrVendorNotFound) {
			h.logger.Warn("GET /vendors/{id}/config - Vendor not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)
			return
		}

		h.logger.Error("GET /vendors/{id}/config - Failed to get config: vendor_id=%s, error=%v",
			vendorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vendors/{id}/config - Config retrieved successfully: vendor_id=%s, config_id=%d, is_default=%t",
		vendorID, result.ID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
