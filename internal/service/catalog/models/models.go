package models

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// ServiceRequest входные данные создания/обновления услуги.
// AllowedWeekdays: nil - без ограничения (каждый день), иначе - явный
// список номеров дней недели (0 = воскресенье ... 6 = суббота).
type ServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	AllowedWeekdays []int   `json:"allowedWeekdays,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

// ServiceResponse представление услуги для API
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	AllowedWeekdays []int     `json:"allowedWeekdays,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse список услуг каталога
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// ToDomainService конвертирует запрос в domain-услугу
func (r *ServiceRequest) ToDomainService() *domain.Service {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &domain.Service{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		AllowedWeekdays: domain.WeekdaysFromList(r.AllowedWeekdays),
		Active:          active,
	}
}

// FromDomainService конвертирует domain-услугу в представление API
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		AllowedWeekdays: svc.AllowedWeekdays.List(),
		Active:          svc.Active,
		CreatedAt:       svc.CreatedAt,
		UpdatedAt:       svc.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain-услуг
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	out := make([]*ServiceResponse, len(services))
	for i, svc := range services {
		out[i] = FromDomainService(svc)
	}
	return &ServiceListResponse{
		Services: out,
		Total:    len(out),
	}
}
