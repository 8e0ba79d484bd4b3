package reset_vendor_config

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
	msgConfigNotFound  = "конфигурация не найдена"
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

// Handle DELETE /api/v1/vendors/{vendorId}/config
// После сброса поиск использует значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID := strings.TrimSpace(mux.Vars(r)["vendorId"])
	if vendorID == "" {
		h.logger.Warn("DELETE /vendors/{id}/config - Missing vendor ID")
		handlers.RespondBadRequest(w, msgMissingVendorID)
		return
	}

	if err := h.service.Reset(r.Context(), vendorID); err != nil {
		switch {
		case errors.Is(err, config.ErrVendorNotFound):
			h.logger.Warn("DELETE /vendors/{id}/config - Vendor not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, config.ErrConfigNotFound):
			h.logger.Warn("DELETE /vendors/{id}/config - Config not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("DELETE /vendors/{id}/config - Failed to reset config: vendor_id=%s, error=%v",
				vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vendors/{id}/config - Config reset successfully: vendor_id=%s", vendorID)
	handlers.RespondNoContent(w)
}
