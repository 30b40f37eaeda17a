package models

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// WorkingHoursRequest входные данные установки рабочего окна на день недели
type WorkingHoursRequest struct {
	Weekday   int    `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WorkingHoursResponse представление рабочего окна для API
type WorkingHoursResponse struct {
	ProfessionalID int64            `json:"professionalId"`
	Weekday        int              `json:"weekday"`
	StartTime      types.TimeString `json:"startTime"`
	EndTime        types.TimeString `json:"endTime"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// WeeklyScheduleResponse недельное расписание профессионала.
// Дни без записи в списке - выходные.
type WeeklyScheduleResponse struct {
	ProfessionalID int64                   `json:"professionalId"`
	Days           []*WorkingHoursResponse `json:"days"`
}

// ToDomainWorkingHours конвертирует запрос в domain-окно.
// Валидность времени и границ проверяет сервисный слой.
func (r *WorkingHoursRequest) ToDomainWorkingHours(professionalID int64) *domain.WorkingHours {
	return &domain.WorkingHours{
		ProfessionalID: professionalID,
		Weekday:        time.Weekday(r.Weekday),
		StartTime:      types.TimeString(r.StartTime),
		EndTime:        types.TimeString(r.EndTime),
	}
}

// FromDomainWorkingHours конвертирует domain-окно в представление API
func FromDomainWorkingHours(wh *domain.WorkingHours) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		ProfessionalID: wh.ProfessionalID,
		Weekday:        int(wh.Weekday),
		StartTime:      wh.StartTime,
		EndTime:        wh.EndTime,
		UpdatedAt:      wh.UpdatedAt,
	}
}

// FromDomainWorkingHoursList конвертирует недельное расписание
func FromDomainWorkingHoursList(professionalID int64, hours []*domain.WorkingHours) *WeeklyScheduleResponse {
	days := make([]*WorkingHoursResponse, len(hours))
	for i, wh := range hours {
		days[i] = FromDomainWorkingHours(wh)
	}
	return &WeeklyScheduleResponse{
		ProfessionalID: professionalID,
		Days:           days,
	}
}
