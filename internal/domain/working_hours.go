package domain

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// WorkingHours represents a professional's working window for one weekday.
// На пару (профессионал, день недели) существует не более одной записи;
// отсутствие записи означает, что профессионал в этот день не работает.
type WorkingHours struct {
	ID             int64
	ProfessionalID int64
	Weekday        time.Weekday // 0 = воскресенье ... 6 = суббота
	StartTime      types.TimeString
	EndTime        types.TimeString
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsValidWindow returns true if the window has positive length.
// Окно с EndTime <= StartTime - ошибка конфигурации расписания.
func (w *WorkingHours) IsValidWindow() bool {
	return w.StartTime.IsBefore(w.EndTime)
}
