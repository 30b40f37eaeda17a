package get_professional_schedule

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/appointments/models"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// ToServiceRequest собирает запрос расписания из параметров URL и query.
// date задает один день; startDate/endDate - полуинтервал [startDate, endDate).
func ToServiceRequest(professionalID int64, dateStr, startDateStr, endDateStr, statusStr string, includeCancelled bool) (*models.GetProfessionalScheduleRequest, error) {
	req := &models.GetProfessionalScheduleRequest{
		ProfessionalID:   professionalID,
		IncludeCancelled: includeCancelled,
	}

	if dateStr != "" {
		// Один день: [date, date+1)
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = ptr.Ptr(date)
		req.EndDate = ptr.Ptr(date.AddDate(0, 0, 1))
	} else {
		if startDateStr != "" {
			startDate, err := time.Parse(domain.DateFormat, startDateStr)
			if err != nil {
				return nil, err
			}
			req.StartDate = ptr.Ptr(startDate)
		}
		if endDateStr != "" {
			endDate, err := time.Parse(domain.DateFormat, endDateStr)
			if err != nil {
				return nil, err
			}
			req.EndDate = ptr.Ptr(endDate)
		}
	}

	if statusStr != "" {
		req.Status = ptr.Ptr(statusStr)
	}

	return req, nil
}
