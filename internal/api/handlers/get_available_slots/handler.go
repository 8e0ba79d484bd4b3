package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgMissingVendorID     = "ID салона обязателен"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingAssignments  = "необходимо выбрать хотя бы одну услугу"
	msgInvalidInput        = "некорректные параметры запроса"
	msgDateInPast          = "нельзя искать слоты на прошедшую дату"
	msgDateTooFarInFuture  = "дата слишком далеко в будущем"
	msgVendorNotFound      = "салон не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgAddOnNotFound       = "дополнительная опция не найдена"
	msgStaffNotFound       = "специалист не найден"
	msgInternalServerError = "внутренняя ошибка сервера"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vendors/{vendorId}/available-slots
// Body: date, assignments (serviceId, staffId | "any", addOnIds), isHomeService, location, stepMinutes, bufferBefore, bufferAfter
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем vendorId из URL
	vendorID := strings.TrimSpace(mux.Vars(r)["vendorId"])
	if vendorID == "" {
		h.logger.Warn("POST /vendors/{id}/available-slots - Missing vendor ID")
		respondError(w, http.StatusBadRequest, msgMissingVendorID)
		return
	}

	// Парсим тело запроса
	var req AvailableSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vendors/{id}/available-slots - Invalid request body: vendor_id=%s, error=%v", vendorID, err)
		respondError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Date) == "" {
		h.logger.Warn("POST /vendors/{id}/available-slots - Missing date: vendor_id=%s", vendorID)
		respondError(w, http.StatusBadRequest, msgMissingDate)
		return
	}

	if len(req.Assignments) == 0 {
		h.logger.Warn("POST /vendors/{id}/available-slots - Missing assignments: vendor_id=%s", vendorID)
		respondError(w, http.StatusBadRequest, msgMissingAssignments)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(vendorID, &req)
	if err != nil {
		h.logger.Warn("POST /vendors/{id}/available-slots - Invalid date format: vendor_id=%s, error=%v", vendorID, err)
		respondError(w, http.StatusBadRequest, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("POST /vendors/{id}/available-slots - Invalid input: vendor_id=%s, error=%v", vendorID, err)
			respondError(w, http.StatusBadRequest, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("POST /vendors/{id}/available-slots - Date in past: vendor_id=%s, date=%s", vendorID, req.Date)
			respondError(w, http.StatusBadRequest, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("POST /vendors/{id}/available-slots - Date too far in future: vendor_id=%s, date=%s", vendorID, req.Date)
			respondError(w, http.StatusBadRequest, msgDateTooFarInFuture)

		case errors.Is(err, getAvailableSlots.ErrVendorNotFound):
			h.logger.Warn("POST /vendors/{id}/available-slots - Vendor not found: vendor_id=%s", vendorID)
			respondError(w, http.StatusNotFound, msgVendorNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("POST /vendors/{id}/available-slots - Service not found: vendor_id=%s, error=%v", vendorID, err)
			respondError(w, http.StatusNotFound, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrAddOnNotFound):
			h.logger.Warn("POST /vendors/{id}/available-slots - Add-on not found: vendor_id=%s, error=%v", vendorID, err)
			respondError(w, http.StatusNotFound, msgAddOnNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotFound):
			h.logger.Warn("POST /vendors/{id}/available-slots - Staff not found: vendor_id=%s, error=%v", vendorID, err)
			respondError(w, http.StatusNotFound, msgStaffNotFound)

		default:
			h.logger.Error("POST /vendors/{id}/available-slots - Failed to get slots: vendor_id=%s, error=%v", vendorID, err)
			respondError(w, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /vendors/{id}/available-slots - Slots retrieved successfully: vendor_id=%s, date=%s, services=%d, slots_count=%d",
		vendorID, response.Metadata.Date, result.ServicesCount, result.Count)
	handlers.RespondJSON(w, http.StatusOK, response)
}

func respondError(w http.ResponseWriter, status int, message string) {
	handlers.RespondJSON(w, status, errorResponse(message))
}
