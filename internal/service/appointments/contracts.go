package appointments

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByClientPhone(ctx context.Context, phone string) ([]*domain.Appointment, error)
	GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, reason *string, cancelledAt time.Time) (*domain.Appointment, error)
	Finalize(ctx context.Context, id int64) (*domain.Appointment, error)
}

// SlotsCacheInvalidator сбрасывает кеш слотов после изменения записей (может отсутствовать)
type SlotsCacheInvalidator interface {
	InvalidateDay(ctx context.Context, professionalID int64, date time.Time)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
