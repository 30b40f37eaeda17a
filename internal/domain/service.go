package domain

import (
	"sort"
	"time"
)

// Service represents a bookable salon service
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int // Длительность услуги = длина слота
	Price           float64
	AllowedWeekdays AllowedWeekdays
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasValidDuration returns true if the service duration is positive
func (s *Service) HasValidDuration() bool {
	return s.DurationMinutes > 0
}

// AllowedWeekdays models the days of week on which a service may be booked:
// either unrestricted (every day) or restricted to an explicit set.
// Исторически пустой список в хранилище означал "все дни"; явная модель
// убирает двусмысленность между "не задано" и "задано пустым".
type AllowedWeekdays struct {
	restricted bool
	days       [7]bool // индекс = time.Weekday (0 = воскресенье)
}

// AllWeekdays возвращает неограниченный набор (услуга доступна каждый день)
func AllWeekdays() AllowedWeekdays {
	return AllowedWeekdays{}
}

// RestrictedWeekdays возвращает набор, ограниченный перечисленными днями
func RestrictedWeekdays(days ...time.Weekday) AllowedWeekdays {
	aw := AllowedWeekdays{restricted: true}
	for _, d := range days {
		if d >= time.Sunday && d <= time.Saturday {
			aw.days[d] = true
		}
	}
	return aw
}

// WeekdaysFromList декодирует набор из списка номеров дней (0=воскресенье).
// nil или пустой список означает отсутствие ограничения.
func WeekdaysFromList(days []int) AllowedWeekdays {
	if len(days) == 0 {
		return AllWeekdays()
	}
	aw := AllowedWeekdays{restricted: true}
	for _, d := range days {
		if d >= 0 && d <= 6 {
			aw.days[d] = true
		}
	}
	return aw
}

// IsRestricted returns true if the set limits the service to specific weekdays
func (aw AllowedWeekdays) IsRestricted() bool {
	return aw.restricted
}

// Allows returns true if the service may be booked on the given weekday
func (aw AllowedWeekdays) Allows(day time.Weekday) bool {
	if !aw.restricted {
		return true
	}
	if day < time.Sunday || day > time.Saturday {
		return false
	}
	return aw.days[day]
}

// List возвращает отсортированный список номеров дней или nil для неограниченного набора
func (aw AllowedWeekdays) List() []int {
	if !aw.restricted {
		return nil
	}
	out := make([]int, 0, 7)
	for d := 0; d < 7; d++ {
		if aw.days[d] {
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}
