package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// slotWindow рабочее окно профессионала, привязанное к конкретной дате
type slotWindow struct {
	start time.Time
	end   time.Time
}

// resolveWindow превращает рабочие часы (HH:MM) в интервал на дату запроса.
// Нечитаемое время или окно нулевой/отрицательной длины - ошибка конфигурации
// расписания, а не пустой день.
func resolveWindow(wh *domain.WorkingHours, date time.Time) (slotWindow, error) {
	start, err := wh.StartTime.At(date)
	if err != nil {
		return slotWindow{}, fmt.Errorf("%w: start time %q: %v", ErrScheduleMisconfigured, wh.StartTime, err)
	}

	end, err := wh.EndTime.At(date)
	if err != nil {
		return slotWindow{}, fmt.Errorf("%w: end time %q: %v", ErrScheduleMisconfigured, wh.EndTime, err)
	}

	if !end.After(start) {
		return slotWindow{}, fmt.Errorf("%w: window %s-%s has no length", ErrScheduleMisconfigured, wh.StartTime, wh.EndTime)
	}

	return slotWindow{start: start, end: end}, nil
}

// computeAvailableSlots возвращает доступные слоты внутри окна по возрастанию.
//
// Курсор идёт от начала окна с фиксированным шагом, равным длительности услуги:
// выравнивание слотов определяется только началом окна, не круглыми минутами.
// Слот, не помещающийся до конца окна, обрывает проход (slotEnd == end окна
// ещё допустим). Прошедшие и конфликтующие слоты пропускаются, но проход
// продолжается - позже в этот же день слоты ещё могут быть свободны.
func computeAvailableSlots(
	window slotWindow,
	durationMinutes int,
	appointments []*domain.Appointment,
	now time.Time,
) []domain.AvailableSlot {
	duration := time.Duration(durationMinutes) * time.Minute
	available := make([]domain.AvailableSlot, 0)

	for cursor := window.start; ; cursor = cursor.Add(duration) {
		slotEnd := cursor.Add(duration)
		if slotEnd.After(window.end) {
			break
		}

		if cursor.Before(now) {
			continue
		}

		if hasConflict(cursor, slotEnd, appointments) {
			continue
		}

		available = append(available, domain.AvailableSlot{
			StartTime:       types.NewTimeString(cursor),
			DurationMinutes: durationMinutes,
		})
	}

	return available
}

// hasConflict проверяет пересечение кандидата [start, end) с неотменёнными
// записями. Строгие неравенства: граничащие интервалы не конфликтуют.
// Список записей может быть шире дня запроса - проверяется каждый интервал.
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

// filterPastSlots отбрасывает слоты, начало которых раньше now. Кешированный
// список считался с now более раннего запроса, поэтому перед выдачей его нужно
// повторно отфильтровать текущим временем.
func filterPastSlots(slots []domain.AvailableSlot, date time.Time, now time.Time) []domain.AvailableSlot {
	filtered := make([]domain.AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		start, err := slot.StartTime.At(date)
		if err != nil {
			continue
		}
		if start.Before(now) {
			continue
		}
		filtered = append(filtered, slot)
	}
	return filtered
}

// dayBounds возвращает полуоткрытый интервал суток [00:00, +24h) для даты
func dayBounds(date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}
