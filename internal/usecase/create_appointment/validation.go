package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// resolveSlotInterval привязывает запрошенный слот к дате.
// Конец слота = начало + длительность услуги на момент создания.
func resolveSlotInterval(req *Request, durationMinutes int) (start, end time.Time, err error) {
	start, err = req.StartTime.At(req.Date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end = start.Add(time.Duration(durationMinutes) * time.Minute)
	return start, end, nil
}

// resolveWindow превращает рабочие часы в интервал на дату записи
func resolveWindow(wh *domain.WorkingHours, date time.Time) (start, end time.Time, err error) {
	start, err = wh.StartTime.At(date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start time %q: %v", ErrScheduleMisconfigured, wh.StartTime, err)
	}

	end, err = wh.EndTime.At(date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end time %q: %v", ErrScheduleMisconfigured, wh.EndTime, err)
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: window %s-%s has no length", ErrScheduleMisconfigured, wh.StartTime, wh.EndTime)
	}

	return start, end, nil
}

// hasConflict проверяет пересечение слота [start, end) с неотменёнными записями.
// Строгие неравенства: граничащие интервалы не конфликтуют.
func hasConflict(start, end time.Time, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if start.Before(appt.EndsAt) && end.After(appt.StartsAt) {
			return true
		}
	}
	return false
}

// dayBounds возвращает полуоткрытый интервал суток [00:00, +24h) для даты
func dayBounds(date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}
