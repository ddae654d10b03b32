package picker

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrScheduleNotFound возвращается, когда расписание исполнителя на дату не найдено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrSlotNotAvailable возвращается при выборе времени, которое не является допустимым слотом
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrNoActiveGesture возвращается при перемещении или завершении без начатого жеста
	ErrNoActiveGesture = errors.New("no active drag gesture")

	// ErrGestureInProgress возвращается при выборе слота во время перетаскивания
	ErrGestureInProgress = errors.New("drag gesture in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
