package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	profRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/professional"
	svcRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/service"
	whRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/workinghours"
)

// UseCase use case расчёта доступных слотов для записи
type UseCase struct {
	appointmentRepo  AppointmentRepository
	serviceRepo      ServiceRepository
	whRepo           WorkingHoursRepository
	professionalRepo ProfessionalRepository
	cache            SlotsCache // nil, если кеш выключен
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	whRepo WorkingHoursRepository,
	professionalRepo ProfessionalRepository,
	cache SlotsCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		whRepo:           whRepo,
		professionalRepo: professionalRepo,
		cache:            cache,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Чистый расчёт: читает рабочие часы, услугу и записи, пишет только в кеш.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 2. Текущее время - явный вход расчёта, а не вызов изнутри алгоритма
	now := uc.timeProvider.Now()

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, svcRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// Неположительная длительность - ошибка данных, отклоняем до расчёта
	if !service.HasValidDuration() {
		uc.logger.Warn("GetAvailableSlots: service id=%d has invalid duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, ErrInvalidServiceDuration
	}

	// 4. Проверяем существование профессионала
	if _, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, profRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 5. Ограничение услуги по дням недели проверяется ДО обращения к рабочим
	// часам: услуга, недоступная в этот день, даёт пустой результат независимо
	// от расписания и записей
	weekday := req.Date.Weekday()
	if !service.AllowedWeekdays.Allows(weekday) {
		uc.logger.Info("GetAvailableSlots: service id=%d is not offered on weekday %d", req.ServiceID, weekday)
		return uc.emptyResponse(req), nil
	}

	// 6. Пробуем кеш. Кешированный список считался с now более раннего
	// запроса, поэтому прошедшие с тех пор слоты отбрасываются перед выдачей
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, req.ProfessionalID, req.ServiceID, req.Date); ok {
			return uc.buildResponse(req, filterPastSlots(cached, req.Date, now)), nil
		}
	}

	// 7. Рабочие часы на день недели: отсутствие записи - нерабочий день
	workingHours, err := uc.whRepo.GetByProfessionalAndWeekday(ctx, req.ProfessionalID, weekday)
	if err != nil {
		if errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
			uc.logger.Info("GetAvailableSlots: professional id=%d does not work on weekday %d",
				req.ProfessionalID, weekday)
			return uc.emptyResponse(req), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 8. Привязываем окно к дате; ошибки конфигурации видимы, а не пустой список
	window, err := resolveWindow(workingHours, req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: professional id=%d weekday %d: %v",
			req.ProfessionalID, weekday, err)
		return nil, err
	}

	// 9. Неотменённые записи, пересекающие сутки запроса
	dayStart, dayEnd := dayBounds(req.Date)
	filter := domain.ProfessionalAppointmentsFilter{
		ProfessionalID:   req.ProfessionalID,
		StartDate:        &dayStart,
		EndDate:          &dayEnd,
		IncludeCancelled: false,
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 10. Чистый расчёт слотов
	available := computeAvailableSlots(window, service.DurationMinutes, appointments, now)

	if uc.cache != nil {
		uc.cache.Set(ctx, req.ProfessionalID, req.ServiceID, req.Date, available)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for professional=%d, service=%d, date=%s",
		len(available), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return uc.buildResponse(req, available), nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return uc.buildResponse(req, nil)
}

func (uc *UseCase) buildResponse(req *Request, available []domain.AvailableSlot) *Response {
	out := make([]Slot, len(available))
	for i, slot := range available {
		out[i] = Slot{
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &Response{
		Date:           req.Date,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Slots:          out,
	}
}
