package get_available_slots

import "errors"

var (
	// ErrVendorNotFound возвращается, когда салон не найден
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге салона
	ErrServiceNotFound = errors.New("service not found")

	// ErrAddOnNotFound возвращается, когда опция не найдена или не относится к услуге
	ErrAddOnNotFound = errors.New("add-on not found")

	// ErrStaffNotFound возвращается, когда выбранный специалист не найден среди активных
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrDateInPast возвращается, когда дата раньше сегодняшней
	ErrDateInPast = errors.New("date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
