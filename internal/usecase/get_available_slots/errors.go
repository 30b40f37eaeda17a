package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrServiceInactive возвращается, когда услуга скрыта из каталога
	ErrServiceInactive = errors.New("get_available_slots: service is inactive")

	// ErrInvalidServiceDuration возвращается при неположительной длительности услуги.
	// Такая услуга - ошибка данных, а не "полностью занятый день".
	ErrInvalidServiceDuration = errors.New("get_available_slots: service duration must be positive")

	// ErrScheduleMisconfigured возвращается при некорректном рабочем окне
	// (конец не позже начала или нечитаемое время). Отличимо от пустого
	// списка слотов: пустой список - легально занятый или нерабочий день.
	ErrScheduleMisconfigured = errors.New("get_available_slots: working hours are misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
