package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга скрыта из каталога
	ErrServiceInactive = errors.New("create_appointment: service is inactive")

	// ErrServiceNotOfferedOnDate возвращается, когда услуга недоступна в этот день недели
	ErrServiceNotOfferedOnDate = errors.New("create_appointment: service is not offered on this date")

	// ErrInvalidServiceDuration возвращается при неположительной длительности услуги
	ErrInvalidServiceDuration = errors.New("create_appointment: service duration must be positive")

	// ErrProfessionalNotWorking возвращается, когда у профессионала нет рабочих часов на этот день
	ErrProfessionalNotWorking = errors.New("create_appointment: professional does not work on this date")

	// ErrScheduleMisconfigured возвращается при некорректном рабочем окне
	ErrScheduleMisconfigured = errors.New("create_appointment: working hours are misconfigured")

	// ErrSlotInPast возвращается при попытке записи на прошедшее время
	ErrSlotInPast = errors.New("create_appointment: slot is in the past")

	// ErrSlotOutsideWorkingHours возвращается, когда слот не помещается в рабочее окно
	ErrSlotOutsideWorkingHours = errors.New("create_appointment: slot is outside working hours")

	// ErrSlotTaken возвращается, когда слот занят между расчётом и подтверждением.
	// Восстановление - повторный расчёт доступных слотов со свежими данными.
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
