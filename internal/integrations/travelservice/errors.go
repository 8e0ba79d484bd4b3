package travelservice

import "errors"

var (
	// ErrInvalidLocation возвращается, когда сервис отклонил координаты
	ErrInvalidLocation = errors.New("travelservice client: invalid location")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("travelservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("travelservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис оценки недоступен и следует использовать оценку по умолчанию
	ErrServiceDegraded = errors.New("travelservice unavailable: graceful degradation applied")
)
