package models

import (
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// AppointmentResponse представление записи для API
type AppointmentResponse struct {
	ID                 int64      `json:"id"`
	ProfessionalID     int64      `json:"professionalId"`
	ServiceID          int64      `json:"serviceId"`
	StartsAt           time.Time  `json:"startsAt"`
	EndsAt             time.Time  `json:"endsAt"`
	Status             string     `json:"status"`
	ClientName         string     `json:"clientName"`
	ClientPhone        string     `json:"clientPhone"`
	ServiceName        string     `json:"serviceName"`
	ServicePrice       float64    `json:"servicePrice"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// GetProfessionalScheduleRequest запрос расписания профессионала
type GetProfessionalScheduleRequest struct {
	ProfessionalID   int64
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *GetProfessionalScheduleRequest) ToDomainFilter() (domain.ProfessionalAppointmentsFilter, error) {
	filter := domain.ProfessionalAppointmentsFilter{
		ProfessionalID:   r.ProfessionalID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return domain.ProfessionalAppointmentsFilter{}, err
		}
		filter.Status = ptr.Ptr(status)
	}

	return filter, nil
}

// ToDomainAppointmentStatus конвертирует строку в статус записи
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(s) {
	case domain.StatusConfirmed, domain.StatusFinalized, domain.StatusCancelled:
		return domain.AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// FromDomainAppointment конвертирует domain-запись в представление API
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 appt.ID,
		ProfessionalID:     appt.ProfessionalID,
		ServiceID:          appt.ServiceID,
		StartsAt:           appt.StartsAt,
		EndsAt:             appt.EndsAt,
		Status:             string(appt.Status),
		ClientName:         appt.ClientName,
		ClientPhone:        appt.ClientPhone,
		ServiceName:        appt.ServiceName,
		ServicePrice:       appt.ServicePrice,
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        appt.CancelledAt,
		CreatedAt:          appt.CreatedAt,
		UpdatedAt:          appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain-записей
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		out[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}
