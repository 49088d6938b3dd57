package reservations

import "errors"

var (
	// ErrNotFound возвращается, когда бронирование с указанным ID отсутствует
	ErrNotFound = errors.New("reservation not found")

	// ErrIncompleteDraft возвращается, когда в черновике нет ресурса, даты или слота
	ErrIncompleteDraft = errors.New("reservation draft is incomplete")

	// ErrInternal возвращается при внутренних ошибках хранилища
	ErrInternal = errors.New("reservations: internal error")
)
