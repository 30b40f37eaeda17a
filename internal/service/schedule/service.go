package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	profRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/professional"
	whRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/workinghours"
	"github.com/m04kA/Salon-BookingService/internal/service/schedule/models"
)

// Service сервис управления недельным расписанием профессионалов
type Service struct {
	workingHoursRepo WorkingHoursRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(workingHoursRepo WorkingHoursRepository, professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		workingHoursRepo: workingHoursRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// GetWeeklySchedule возвращает недельное расписание профессионала.
// Дни без записи - выходные.
func (s *Service) GetWeeklySchedule(ctx context.Context, professionalID int64) (*models.WeeklyScheduleResponse, error) {
	if err := s.checkProfessionalExists(ctx, professionalID); err != nil {
		return nil, err
	}

	hours, err := s.workingHoursRepo.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetWeeklySchedule: repository error for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetWeeklySchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWorkingHoursList(professionalID, hours), nil
}

// SetWorkingHours устанавливает рабочее окно на день недели.
// Существующее окно на ту же пару (профессионал, день) заменяется.
func (s *Service) SetWorkingHours(ctx context.Context, professionalID int64, req *models.WorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	if err := validateWorkingHoursRequest(req); err != nil {
		s.logger.Warn("SetWorkingHours: validation failed for professional id=%d: %v", professionalID, err)
		return nil, err
	}

	if err := s.checkProfessionalExists(ctx, professionalID); err != nil {
		return nil, err
	}

	s.logger.Info("SetWorkingHours: professional id=%d, weekday=%d, window=%s-%s",
		professionalID, req.Weekday, req.StartTime, req.EndTime)

	saved, err := s.workingHoursRepo.Upsert(ctx, req.ToDomainWorkingHours(professionalID))
	if err != nil {
		s.logger.Error("SetWorkingHours: repository error for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: SetWorkingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWorkingHours(saved), nil
}

// RemoveWorkingHours удаляет рабочее окно на день недели, делая день выходным
func (s *Service) RemoveWorkingHours(ctx context.Context, professionalID int64, weekday int) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}

	if err := s.checkProfessionalExists(ctx, professionalID); err != nil {
		return err
	}

	s.logger.Info("RemoveWorkingHours: professional id=%d, weekday=%d", professionalID, weekday)

	if err := s.workingHoursRepo.Delete(ctx, professionalID, time.Weekday(weekday)); err != nil {
		if errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
			s.logger.Warn("RemoveWorkingHours: no working hours for professional id=%d, weekday=%d", professionalID, weekday)
			return ErrWorkingHoursNotFound
		}
		s.logger.Error("RemoveWorkingHours: repository error for professional id=%d: %v", professionalID, err)
		return fmt.Errorf("%w: RemoveWorkingHours - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) checkProfessionalExists(ctx context.Context, professionalID int64) error {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		if errors.Is(err, profRepo.ErrProfessionalNotFound) {
			s.logger.Warn("schedule: professional id=%d not found", professionalID)
			return ErrProfessionalNotFound
		}
		s.logger.Error("schedule: failed to fetch professional id=%d: %v", professionalID, err)
		return fmt.Errorf("%w: fetch professional: %v", ErrInternal, err)
	}
	return nil
}

// validateWorkingHoursRequest валидирует входные данные рабочего окна
func validateWorkingHoursRequest(req *models.WorkingHoursRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Weekday < 0 || req.Weekday > 6 {
		return fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}

	wh := req.ToDomainWorkingHours(0)

	if err := wh.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if err := wh.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	if !wh.IsValidWindow() {
		return fmt.Errorf("%w: got %s-%s", ErrInvalidWindow, req.StartTime, req.EndTime)
	}

	return nil
}
