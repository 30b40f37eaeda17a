package schedule

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrWorkingHoursNotFound возвращается, когда рабочее окно на день не найдено
	ErrWorkingHoursNotFound = errors.New("working hours not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidWindow возвращается, когда конец окна не позже его начала
	ErrInvalidWindow = errors.New("working window end must be after start")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
