package depositservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("depositservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("depositservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что источник правил недоступен и следует использовать депозит по умолчанию
	ErrServiceDegraded = errors.New("depositservice unavailable: graceful degradation applied")
)
