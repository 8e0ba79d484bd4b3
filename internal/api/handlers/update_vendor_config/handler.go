package update_vendor_config

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
)

const (
	msgMissingVendorID    = "ID салона обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVendorNotFound     = "салон не найден"
	msgInvalidData        = "некорректные данные конфигурации"
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

// Handle PUT /api/v1/vendors/{vendorId}/config
// Частичное обновление: меняются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем vendorId из URL
	vendorID := strings.TrimSpace(mux.Vars(r)["vendorId"])
	if vendorID == "" {
		h.logger.Warn("PUT /vendors/{id}/config - Missing vendor ID")
		handlers.RespondBadRequest(w, msgMissingVendorID)
		return
	}

	// Декодируем body
	var req UpdateVendorConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vendors/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), vendorID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, config.ErrVendorNotFound):
			h.logger.Warn("PUT /vendors/{id}/config - Vendor not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, config.ErrInvalidInput):
			h.logger.Warn("PUT /vendors/{id}/config - Invalid data: vendor_id=%s, error=%v",
				vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /vendors/{id}/config - Failed to update config: vendor_id=%s, error=%v",
				vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /vendors/{id}/config - Config updated successfully: vendor_id=%s, config_id=%d",
		vendorID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
