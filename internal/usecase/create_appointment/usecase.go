package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	apptRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	profRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/professional"
	svcRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/service"
	whRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/workinghours"
)

// UseCase use case создания записи на услугу
type UseCase struct {
	appointmentRepo  AppointmentRepository
	serviceRepo      ServiceRepository
	whRepo           WorkingHoursRepository
	professionalRepo ProfessionalRepository
	txManager        TransactionManager
	cache            SlotsCacheInvalidator // nil, если кеш выключен
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	whRepo WorkingHoursRepository,
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	cache SlotsCacheInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		whRepo:           whRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		cache:            cache,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи.
// Выбранный слот между расчётом и подтверждением мог занять другой клиент,
// поэтому проверка конфликта повторяется в сериализуемой транзакции над
// заблокированными строками, и только затем выполняется вставка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: professional=%d, service=%d, date=%s, time=%s, client=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.ClientPhone)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, svcRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	if !service.HasValidDuration() {
		uc.logger.Warn("CreateAppointment: service id=%d has invalid duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, ErrInvalidServiceDuration
	}

	// 4. Ограничение услуги по дням недели
	if !service.AllowedWeekdays.Allows(req.Date.Weekday()) {
		uc.logger.Warn("CreateAppointment: service id=%d is not offered on %s",
			req.ServiceID, req.Date.Format(domain.DateFormat))
		return nil, ErrServiceNotOfferedOnDate
	}

	// 5. Проверяем существование профессионала
	if _, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, profRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 6. Привязываем слот к дате
	slotStart, slotEnd, err := resolveSlotInterval(req, service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	if slotStart.Before(now) {
		uc.logger.Warn("CreateAppointment: slot %s is in the past", slotStart)
		return nil, ErrSlotInPast
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Повторная проверка и вставка - атомарно, в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Рабочие часы на день записи
		workingHours, err := uc.whRepo.GetByProfessionalAndWeekday(txCtx, req.ProfessionalID, req.Date.Weekday())
		if err != nil {
			if errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
				uc.logger.Warn("CreateAppointment: professional id=%d does not work on %s",
					req.ProfessionalID, req.Date.Format(domain.DateFormat))
				return ErrProfessionalNotWorking
			}
			uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}

		windowStart, windowEnd, err := resolveWindow(workingHours, req.Date)
		if err != nil {
			uc.logger.Warn("CreateAppointment: %v", err)
			return err
		}

		// 7.2. Слот целиком внутри рабочего окна
		if slotStart.Before(windowStart) || slotEnd.After(windowEnd) {
			uc.logger.Warn("CreateAppointment: slot %s-%s is outside window %s-%s",
				slotStart.Format(domain.TimeFormat), slotEnd.Format(domain.TimeFormat),
				workingHours.StartTime, workingHours.EndTime)
			return ErrSlotOutsideWorkingHours
		}

		// 7.3. Неотменённые записи дня с блокировкой строк (FOR UPDATE)
		dayStart, dayEnd := dayBounds(req.Date)
		filter := domain.ProfessionalAppointmentsFilter{
			ProfessionalID:   req.ProfessionalID,
			StartDate:        &dayStart,
			EndDate:          &dayEnd,
			IncludeCancelled: false,
		}

		appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.4. Повторная проверка конфликта
		if hasConflict(slotStart, slotEnd, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s taken for professional id=%d",
				req.StartTime, req.ProfessionalID)
			return ErrSlotTaken
		}

		// 7.5. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			StartsAt:       slotStart,
			EndsAt:         slotEnd,
			Status:         domain.StatusConfirmed,
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			ServiceName:    service.Name,
			ServicePrice:   service.Price,
			Notes:          req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс подстраховывает проверку выше
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s taken (unique index) for professional id=%d",
					req.StartTime, req.ProfessionalID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 8. Сбрасываем кеш слотов на этот день
	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, req.ProfessionalID, req.Date)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ProfessionalID:  result.ProfessionalID,
		ServiceID:       result.ServiceID,
		StartsAt:        result.StartsAt,
		EndsAt:          result.EndsAt,
		DurationMinutes: service.DurationMinutes,
		Status:          string(result.Status),
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
