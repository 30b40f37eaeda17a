package delete_working_hours

import "context"

type ScheduleService interface {
	RemoveWorkingHours(ctx context.Context, professionalID int64, weekday int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
