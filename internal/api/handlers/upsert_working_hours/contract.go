package upsert_working_hours

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	SetWorkingHours(ctx context.Context, professionalID int64, req *models.WorkingHoursRequest) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
