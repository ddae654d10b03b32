package get_available_slots

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание исполнителя на дату не найдено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
