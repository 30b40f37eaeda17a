package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusFinalized AppointmentStatus = "finalized"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked service slot for a client
type Appointment struct {
	ID             int64
	ProfessionalID int64
	ServiceID      int64
	StartsAt       time.Time
	EndsAt         time.Time // = StartsAt + длительность услуги на момент создания
	Status         AppointmentStatus

	// Данные клиента и денормализация услуги для истории
	ClientName   string
	ClientPhone  string
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time interval.
// Только неотменённые записи учитываются при расчёте доступных слотов.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// CanBeFinalized returns true if the appointment can be marked as finalized
func (a *Appointment) CanBeFinalized() bool {
	return a.Status == StatusConfirmed
}

// Overlaps reports whether the appointment interval intersects [start, end).
// Полуоткрытые интервалы: граничащие записи пересечением не считаются.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return start.Before(a.EndsAt) && end.After(a.StartsAt)
}

// ProfessionalAppointmentsFilter фильтр для выборки записей профессионала
type ProfessionalAppointmentsFilter struct {
	ProfessionalID   int64      // Обязательный параметр
	StartDate        *time.Time // Начало периода (опционально)
	EndDate          *time.Time // Конец периода (опционально)
	Status           *AppointmentStatus
	IncludeCancelled bool // Включать ли отменённые записи
}
