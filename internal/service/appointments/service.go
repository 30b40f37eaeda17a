package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	apptRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Salon-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	cache           SlotsCacheInvalidator // nil, если кеш выключен
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	cache SlotsCacheInvalidator,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		cache:           cache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// Cancel отменяет подтверждённую запись.
// Отменённая запись освобождает свой интервал для новых записей,
// поэтому кеш слотов этого дня сбрасывается.
func (s *Service) Cancel(ctx context.Context, id int64, reason *string) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	if reason != nil && len(*reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.Cancel(ctx, id, reason, s.timeProvider.Now())
	if err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrAppointmentNotFound):
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, apptRepo.ErrCannotCancel):
			s.logger.Warn("Cancel: appointment id=%d cannot be cancelled", id)
			return nil, ErrCannotCancel
		default:
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	if s.cache != nil {
		s.cache.InvalidateDay(ctx, appt.ProfessionalID, appt.StartsAt)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// Finalize помечает подтверждённую запись как завершённую (услуга оказана)
func (s *Service) Finalize(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Finalize: finalizing appointment id=%d", id)

	appt, err := s.appointmentRepo.Finalize(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrAppointmentNotFound):
			s.logger.Warn("Finalize: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, apptRepo.ErrCannotFinalize):
			s.logger.Warn("Finalize: appointment id=%d cannot be finalized", id)
			return nil, ErrCannotFinalize
		default:
			s.logger.Error("Finalize: repository error for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Finalize - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Finalize: successfully finalized appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments получает историю записей клиента по телефону
func (s *Service) GetClientAppointments(ctx context.Context, phone string) (*models.AppointmentListResponse, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}

	s.logger.Info("GetClientAppointments: fetching appointments for client=%s", phone)

	appts, err := s.appointmentRepo.GetByClientPhone(ctx, phone)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: fetched %d appointments for client=%s", len(appts), phone)
	return models.FromDomainAppointmentList(appts), nil
}

// GetProfessionalSchedule получает записи профессионала с фильтрацией
// по периоду, статусу и включению отменённых (календарь админки)
func (s *Service) GetProfessionalSchedule(ctx context.Context, req *models.GetProfessionalScheduleRequest) (*models.AppointmentListResponse, error) {
	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetProfessionalSchedule: fetching appointments for professional=%d", req.ProfessionalID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProfessionalSchedule: invalid filter for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	appts, err := s.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfessionalSchedule: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfessionalSchedule: fetched %d appointments for professional=%d",
		len(appts), req.ProfessionalID)
	return models.FromDomainAppointmentList(appts), nil
}
